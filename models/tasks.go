package models

// ResyncTask asks a worker to refresh one subscription from Stripe.
type ResyncTask struct {
	SubscriptionID string `json:"subscription_id"`
	RunID          string `json:"run_id"`
}

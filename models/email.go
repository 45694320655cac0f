package models

// Email is an operator alert sent when a Stripe event could not be reconciled.
type Email struct {
	Args    map[string]string `json:"args"`
	Subject string            `json:"subject"`
	To      string            `json:"to"`
	From    string            `json:"from"`
	Body    string            `json:"body"`
}

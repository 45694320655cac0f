package billing

import (
	"lineblocs.com/billing/internal/reconcile"
)

// BillingHandler is the payment provider surface used outside webhooks:
// hosted portal sessions and direct fetches for resync.
type BillingHandler interface {
	CreatePortalSession(params PortalSessionParams) (string, error)
	FetchSubscription(id string) (*reconcile.ProviderSubscription, error)
	FetchSchedule(id string) (*reconcile.ProviderSchedule, error)
}

type PortalSessionParams struct {
	// BaseURL includes the scheme, e.g. https://app.lineblocs.com
	BaseURL          string
	CustomerID       string
	OrganizationSlug string
}

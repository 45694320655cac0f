package models

import "time"

// Organization is the tenant that owns a subscription.
type Organization struct {
	ID               string
	Slug             string
	Name             string
	BillingEmail     string
	StripeCustomerID string
	TrialEnd         time.Time
	CreatedAt        time.Time
}

// Product mirrors a Stripe product. MaxSeats is the raw metadata value and
// may be empty or non-numeric.
type Product struct {
	StripeID string
	Name     string
	MaxSeats string
}

// Price mirrors a Stripe price.
type Price struct {
	StripeID        string
	LookupKey       string
	UnitAmountCents int64
	Currency        string
	ProductID       string
	Product         *Product
}

// CatalogKey is the identifier used to find the price in the tier catalog:
// the lookup key when Stripe has one, otherwise the price id.
func (p *Price) CatalogKey() string {
	if p.LookupKey != "" {
		return p.LookupKey
	}
	return p.StripeID
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive            SubscriptionStatus = "active"
	SubscriptionStatusTrialing          SubscriptionStatus = "trialing"
	SubscriptionStatusPastDue           SubscriptionStatus = "past_due"
	SubscriptionStatusPaused            SubscriptionStatus = "paused"
	SubscriptionStatusCanceled          SubscriptionStatus = "canceled"
	SubscriptionStatusIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionStatusIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionStatusUnpaid            SubscriptionStatus = "unpaid"
)

// Subscription is the locally cached copy of a Stripe subscription.
type Subscription struct {
	StripeID          string
	OrganizationID    string
	Status            SubscriptionStatus
	CancelAtPeriodEnd bool
	Created           time.Time
	TrialEnd          *time.Time
	Items             []SubscriptionItem
}

type SubscriptionItem struct {
	StripeID           string
	SubscriptionID     string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	PriceID            string
	Quantity           int64
	Price              *Price
}

// SubscriptionSchedule is a Stripe-managed future plan change.
type SubscriptionSchedule struct {
	StripeID          string
	SubscriptionID    string
	Created           time.Time
	CurrentPhaseStart time.Time
	CurrentPhaseEnd   time.Time
	Phases            []SchedulePhase
}

// SchedulePhase has no identity of its own; phases are always replaced as a set.
type SchedulePhase struct {
	ScheduleID string
	StartDate  time.Time
	EndDate    time.Time
	PriceID    string
	Quantity   int64
	Price      *Price
}

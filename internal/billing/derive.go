package billing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"lineblocs.com/billing/internal/catalog"
	"lineblocs.com/billing/models"
)

// DefaultMaxSeats is used when a product has no usable max_seats metadata.
// It is a placeholder until every product carries a seat cap.
const DefaultMaxSeats = 1

// OrganizationSnapshot is everything the derivation reads. Subscription and
// Schedule are nil when nothing is cached.
type OrganizationSnapshot struct {
	Organization models.Organization
	MemberCount  int
	Subscription *models.Subscription
	Schedule     *models.SubscriptionSchedule
}

var cancellableStatuses = map[models.SubscriptionStatus]bool{
	models.SubscriptionStatusActive:   true,
	models.SubscriptionStatusTrialing: true,
	models.SubscriptionStatusPastDue:  true,
	models.SubscriptionStatusPaused:   true,
}

// DeriveBillingViewModel builds the billing page state for an organization.
// It does no I/O and never reads the clock; now is the reference time.
func DeriveBillingViewModel(snapshot OrganizationSnapshot, now time.Time) (*models.BillingViewModel, error) {
	if snapshot.Subscription == nil {
		return deriveTrial(snapshot)
	}

	sub := snapshot.Subscription
	if len(sub.Items) == 0 || sub.Items[0].Price == nil {
		return nil, &catalog.UnknownPriceError{ID: "subscription " + sub.StripeID + " has no priced items"}
	}

	periodEnd := currentPeriodEnd(sub.Items)

	// mixed-tier subscriptions are not sold, so the first item speaks for all
	price := sub.Items[0].Price
	plan, err := catalog.LookupTierAndInterval(price.CatalogKey())
	if err != nil {
		return nil, err
	}

	maxSeats := DefaultMaxSeats
	if price.Product != nil {
		maxSeats = ParseMaxSeats(price.Product.MaxSeats)
	}

	rate := MonthlyRatePerSeat(price.UnitAmountCents, plan.Interval)

	pending, err := pendingChange(snapshot.Schedule, now)
	if err != nil {
		return nil, err
	}

	return &models.BillingViewModel{
		BillingEmail:      snapshot.Organization.BillingEmail,
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		CancelOrModifySubscriptionModalProps: models.CancelOrModifySubscriptionModalProps{
			CanCancelSubscription: !sub.CancelAtPeriodEnd && cancellableStatuses[sub.Status],
			CurrentTier:           string(plan.Tier),
			CurrentTierInterval:   string(plan.Interval),
		},
		CurrentInterval:           string(plan.Interval),
		CurrentMonthlyRatePerUser: rate,
		CurrentPeriodEnd:          periodEnd,
		CurrentSeats:              snapshot.MemberCount,
		CurrentTier:               string(plan.Tier),
		IsEnterprisePlan:          maxSeats > catalog.MaxSeatCap(),
		IsOnFreeTrial:             sub.Status == models.SubscriptionStatusTrialing,
		MaxSeats:                  maxSeats,
		OrganizationSlug:          snapshot.Organization.Slug,
		PendingChange:             pending,
		ProjectedTotal:            rate.Mul(decimal.NewFromInt(int64(snapshot.MemberCount))),
		SubscriptionStatus:        subscriptionStatus(sub, periodEnd, now),
	}, nil
}

func deriveTrial(snapshot OrganizationSnapshot) (*models.BillingViewModel, error) {
	cents, err := catalog.ListRateCents(catalog.TrialTier, catalog.TrialInterval)
	if err != nil {
		return nil, err
	}
	rate := MonthlyRatePerSeat(cents, catalog.TrialInterval)

	return &models.BillingViewModel{
		BillingEmail:      snapshot.Organization.BillingEmail,
		CancelAtPeriodEnd: false,
		CancelOrModifySubscriptionModalProps: models.CancelOrModifySubscriptionModalProps{
			CanCancelSubscription: false,
			CurrentTier:           string(catalog.TrialTier),
			CurrentTierInterval:   string(catalog.TrialInterval),
		},
		CurrentInterval:           string(catalog.TrialInterval),
		CurrentMonthlyRatePerUser: rate,
		CurrentPeriodEnd:          snapshot.Organization.TrialEnd,
		CurrentSeats:              snapshot.MemberCount,
		CurrentTier:               string(catalog.TrialTier),
		IsEnterprisePlan:          false,
		IsOnFreeTrial:             true,
		MaxSeats:                  catalog.SeatCap(catalog.TrialTier),
		OrganizationSlug:          snapshot.Organization.Slug,
		ProjectedTotal:            rate.Mul(decimal.NewFromInt(int64(snapshot.MemberCount))),
		SubscriptionStatus:        models.BillingStatusActive,
	}, nil
}

// currentPeriodEnd is the latest period end across items; the subscription
// renews when its slowest item does.
func currentPeriodEnd(items []models.SubscriptionItem) time.Time {
	var end time.Time
	for _, item := range items {
		if item.CurrentPeriodEnd.After(end) {
			end = item.CurrentPeriodEnd
		}
	}
	return end
}

func subscriptionStatus(sub *models.Subscription, periodEnd, now time.Time) models.BillingStatus {
	if sub.CancelAtPeriodEnd && now.After(periodEnd) {
		return models.BillingStatusPaused
	}
	switch sub.Status {
	case models.SubscriptionStatusActive, models.SubscriptionStatusTrialing:
		return models.BillingStatusActive
	}
	return models.BillingStatusInactive
}

// MonthlyRatePerSeat converts a unit amount into the monthly equivalent in
// currency units. Annual amounts are divided by 12 and rounded to the cent
// first.
func MonthlyRatePerSeat(unitAmountCents int64, interval catalog.Interval) decimal.Decimal {
	cents := decimal.NewFromInt(unitAmountCents)
	if interval == catalog.IntervalAnnual {
		cents = cents.Div(decimal.NewFromInt(12)).Round(0)
	}
	return cents.Shift(-2)
}

// ParseMaxSeats coerces the product metadata value, falling back to
// DefaultMaxSeats. It never fails.
func ParseMaxSeats(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultMaxSeats
	}
	return n
}

func pendingChange(schedule *models.SubscriptionSchedule, now time.Time) (*models.PendingChange, error) {
	if schedule == nil {
		return nil, nil
	}

	var future []models.SchedulePhase
	for _, phase := range schedule.Phases {
		if phase.StartDate.After(now) {
			future = append(future, phase)
		}
	}
	if len(future) == 0 {
		return nil, nil
	}
	sort.SliceStable(future, func(i, j int) bool {
		return future[i].StartDate.Before(future[j].StartDate)
	})
	next := future[0]

	key := next.PriceID
	if next.Price != nil {
		key = next.Price.CatalogKey()
	}
	plan, err := catalog.LookupTierAndInterval(key)
	if err != nil {
		return nil, err
	}

	return &models.PendingChange{
		PendingTier:       string(plan.Tier),
		PendingInterval:   string(plan.Interval),
		PendingChangeDate: next.StartDate,
	}, nil
}

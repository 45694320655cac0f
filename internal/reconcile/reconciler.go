package reconcile

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"
	"lineblocs.com/billing/internal/catalog"
	"lineblocs.com/billing/models"
	"lineblocs.com/billing/repository"
)

// Reconciler writes Stripe's view of subscriptions and schedules into the
// local cache. Every payload is the full current state, so applying the same
// payload twice, or payloads out of order, converges.
type Reconciler struct {
	subscriptionRepository repository.SubscriptionRepository
	scheduleRepository     repository.ScheduleRepository
	priceRepository        repository.PriceRepository
	logger                 *logrus.Entry
}

func NewReconciler(subscriptionRepository repository.SubscriptionRepository, scheduleRepository repository.ScheduleRepository, priceRepository repository.PriceRepository) *Reconciler {
	return &Reconciler{
		subscriptionRepository: subscriptionRepository,
		scheduleRepository:     scheduleRepository,
		priceRepository:        priceRepository,
		logger:                 logrus.WithField("component", "reconciler"),
	}
}

func (r *Reconciler) ReconcileSubscription(ctx context.Context, p *ProviderSubscription) (*models.Subscription, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}

	existing, err := r.subscriptionRepository.GetSubscription(ctx, p.ID)
	if err != nil && !repository.IsMissing(err) {
		return nil, reconciliationError("load subscription", p.ID, err)
	}

	// the owning organization is fixed when the subscription is first seen
	organizationID := p.Metadata[MetadataOrganizationID]
	if existing != nil {
		if organizationID != "" && organizationID != existing.OrganizationID {
			r.logger.WithFields(logrus.Fields{
				"subscription": p.ID,
				"cached_org":   existing.OrganizationID,
				"metadata_org": organizationID,
			}).Warn("ignoring organization change on subscription metadata")
		}
		organizationID = existing.OrganizationID
	}
	if organizationID == "" {
		return nil, &repository.MissingEntityError{Entity: "organization for subscription", Key: p.ID}
	}

	sub := &models.Subscription{
		StripeID:          p.ID,
		OrganizationID:    organizationID,
		Status:            models.SubscriptionStatus(p.Status),
		CancelAtPeriodEnd: p.CancelAtPeriodEnd,
		Created:           unixTime(p.Created),
		Items:             make([]models.SubscriptionItem, 0, len(p.Items.Data)),
	}
	if p.TrialEnd != nil && *p.TrialEnd > 0 {
		t := unixTime(*p.TrialEnd)
		sub.TrialEnd = &t
	}
	for _, item := range p.Items.Data {
		start, end := item.CurrentPeriodStart, item.CurrentPeriodEnd
		if start == 0 {
			start = p.CurrentPeriodStart
		}
		if end == 0 {
			end = p.CurrentPeriodEnd
		}
		sub.Items = append(sub.Items, models.SubscriptionItem{
			StripeID:           item.ID,
			SubscriptionID:     p.ID,
			CurrentPeriodStart: unixTime(start),
			CurrentPeriodEnd:   unixTime(end),
			PriceID:            item.Price.ID,
			Quantity:           item.Quantity,
			Price:              item.Price.Model(),
		})
	}

	if err := r.subscriptionRepository.UpsertSubscription(ctx, sub); err != nil {
		return nil, reconciliationError("upsert subscription", p.ID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"subscription": sub.StripeID,
		"organization": sub.OrganizationID,
		"status":       sub.Status,
		"items":        len(sub.Items),
		"created":      existing == nil,
	}).Info("subscription reconciled")
	return sub, nil
}

// ReconcileSchedule creates or updates the cached schedule and replaces its
// phases. It returns ErrScheduleReleased without writing anything when the
// schedule has no current phase.
func (r *Reconciler) ReconcileSchedule(ctx context.Context, p *ProviderSchedule) (*models.SubscriptionSchedule, error) {
	if err := validate.Struct(p); err != nil {
		return nil, err
	}
	if p.CurrentPhase == nil {
		r.logger.WithField("schedule", p.ID).Info("schedule released, nothing to reconcile")
		return nil, ErrScheduleReleased
	}

	subscriptionID := p.Subscription.ID
	if _, err := r.subscriptionRepository.GetSubscription(ctx, subscriptionID); err != nil {
		if repository.IsMissing(err) {
			return nil, err
		}
		return nil, reconciliationError("load subscription", subscriptionID, err)
	}

	phases, err := r.resolvePhases(ctx, p)
	if err != nil {
		return nil, err
	}

	schedule := &models.SubscriptionSchedule{
		StripeID:          p.ID,
		SubscriptionID:    subscriptionID,
		Created:           unixTime(p.Created),
		CurrentPhaseStart: unixTime(p.CurrentPhase.StartDate),
		CurrentPhaseEnd:   unixTime(p.CurrentPhase.EndDate),
		Phases:            phases,
	}

	_, err = r.scheduleRepository.GetSchedule(ctx, p.ID)
	switch {
	case repository.IsMissing(err):
		err = r.scheduleRepository.CreateSchedule(ctx, schedule)
		if repository.IsDuplicate(err) {
			// another delivery created it first
			err = r.scheduleRepository.UpdateSchedule(ctx, schedule)
		}
	case err != nil:
		return nil, reconciliationError("load schedule", p.ID, err)
	default:
		err = r.scheduleRepository.UpdateSchedule(ctx, schedule)
	}
	if err != nil {
		return nil, reconciliationError("write schedule", p.ID, err)
	}

	r.logger.WithFields(logrus.Fields{
		"schedule":     schedule.StripeID,
		"subscription": schedule.SubscriptionID,
		"phases":       len(schedule.Phases),
	}).Info("subscription schedule reconciled")
	return schedule, nil
}

// resolvePhases checks every phase price before anything is written.
func (r *Reconciler) resolvePhases(ctx context.Context, p *ProviderSchedule) ([]models.SchedulePhase, error) {
	resolved := map[string]*models.Price{}
	phases := make([]models.SchedulePhase, 0, len(p.Phases))
	for _, phase := range p.Phases {
		if len(phase.Items) == 0 || phase.Items[0].Price.ID == "" {
			return nil, &MissingPriceReferenceError{ScheduleID: p.ID}
		}
		item := phase.Items[0]

		price, ok := resolved[item.Price.ID]
		if !ok {
			var err error
			price, err = r.priceRepository.GetPrice(ctx, item.Price.ID)
			if repository.IsMissing(err) {
				return nil, &MissingPriceReferenceError{ScheduleID: p.ID, PriceID: item.Price.ID}
			}
			if err != nil {
				return nil, reconciliationError("load price", item.Price.ID, err)
			}
			if _, err := catalog.LookupTierAndInterval(price.CatalogKey()); err != nil {
				return nil, err
			}
			resolved[item.Price.ID] = price
		}

		phases = append(phases, models.SchedulePhase{
			ScheduleID: p.ID,
			StartDate:  unixTime(phase.StartDate),
			EndDate:    unixTime(phase.EndDate),
			PriceID:    price.StripeID,
			Quantity:   item.Quantity,
			Price:      price,
		})
	}
	sort.SliceStable(phases, func(i, j int) bool {
		return phases[i].StartDate.Before(phases[j].StartDate)
	})
	return phases, nil
}

func (r *Reconciler) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if err := r.scheduleRepository.DeleteSchedule(ctx, scheduleID); err != nil {
		return reconciliationError("delete schedule", scheduleID, err)
	}
	r.logger.WithField("schedule", scheduleID).Info("subscription schedule deleted")
	return nil
}

package cmd

import (
	"context"
	"fmt"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	billing "lineblocs.com/billing/handlers/billing"
	"lineblocs.com/billing/internal/events"
	"lineblocs.com/billing/internal/reconcile"
	"lineblocs.com/billing/repository"
)

// ResyncJob refreshes cached subscriptions straight from Stripe. It repairs
// the cache after missed or failed webhook deliveries.
type ResyncJob struct {
	subscriptionRepository repository.SubscriptionRepository
	billingHandler         billing.BillingHandler
	reconciler             events.SubscriptionReconciler
	logger                 *logrus.Entry
}

type ResyncResult struct {
	Synced int
	Failed int
}

func NewResyncJob(subscriptionRepository repository.SubscriptionRepository, billingHandler billing.BillingHandler, reconciler events.SubscriptionReconciler) *ResyncJob {
	return &ResyncJob{
		subscriptionRepository: subscriptionRepository,
		billingHandler:         billingHandler,
		reconciler:             reconciler,
		logger:                 logrus.WithField("component", "subscription_resync"),
	}
}

// Run resyncs every subscription that can still change. A failure on one
// subscription is logged and the loop moves on.
func (rj *ResyncJob) Run(ctx context.Context) (ResyncResult, error) {
	var result ResyncResult

	ids, err := rj.subscriptionRepository.ListSyncableSubscriptionIDs(ctx)
	if err != nil {
		helpers.Log(logrus.ErrorLevel, "error listing subscriptions to resync: "+err.Error())
		return result, err
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := rj.SyncSubscription(ctx, id); err != nil {
			rj.logger.WithError(err).WithField("subscription", id).Error("resync failed")
			result.Failed++
			continue
		}
		result.Synced++
	}

	helpers.Log(logrus.InfoLevel, fmt.Sprintf("resync finished: %d synced, %d failed", result.Synced, result.Failed))
	return result, nil
}

// SyncSubscription fetches one subscription and its schedule, if any, and
// reconciles both.
func (rj *ResyncJob) SyncSubscription(ctx context.Context, subscriptionID string) error {
	sub, err := rj.billingHandler.FetchSubscription(subscriptionID)
	if err != nil {
		return err
	}
	if _, err := rj.reconciler.ReconcileSubscription(ctx, sub); err != nil {
		return err
	}

	if sub.Schedule.ID == "" {
		return nil
	}
	schedule, err := rj.billingHandler.FetchSchedule(sub.Schedule.ID)
	if err != nil {
		return err
	}
	_, err = rj.reconciler.ReconcileSchedule(ctx, schedule)
	if errors.Is(err, reconcile.ErrScheduleReleased) {
		return nil
	}
	return err
}

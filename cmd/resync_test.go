package cmd

import (
	"context"
	"errors"
	"testing"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lineblocs.com/billing/internal/reconcile"
	"lineblocs.com/billing/mocks"
	"lineblocs.com/billing/models"
)

func TestResyncJob(t *testing.T) {
	t.Parallel()
	helpers.InitLogrus("file")

	t.Run("Should fail when subscriptions cannot be listed", func(t *testing.T) {
		t.Parallel()

		subRepo := mocks.NewSubscriptionRepository(t)
		handler := mocks.NewBillingHandler(t)
		reconciler := mocks.NewSubscriptionReconciler(t)

		listErr := errors.New("failed to list subscriptions")
		subRepo.EXPECT().ListSyncableSubscriptionIDs(mock.Anything).Return(nil, listErr)

		_, err := NewResyncJob(subRepo, handler, reconciler).Run(context.Background())
		assert.Equal(t, listErr, err)
	})

	t.Run("Should reconcile subscriptions and their schedules", func(t *testing.T) {
		t.Parallel()

		subRepo := mocks.NewSubscriptionRepository(t)
		handler := mocks.NewBillingHandler(t)
		reconciler := mocks.NewSubscriptionReconciler(t)

		withSchedule := &reconcile.ProviderSubscription{ID: "sub_1", Schedule: reconcile.ExpandableID{ID: "sub_sched_1"}}
		withoutSchedule := &reconcile.ProviderSubscription{ID: "sub_2"}
		schedule := &reconcile.ProviderSchedule{ID: "sub_sched_1"}

		subRepo.EXPECT().ListSyncableSubscriptionIDs(mock.Anything).Return([]string{"sub_1", "sub_2"}, nil)
		handler.EXPECT().FetchSubscription("sub_1").Return(withSchedule, nil)
		handler.EXPECT().FetchSubscription("sub_2").Return(withoutSchedule, nil)
		handler.EXPECT().FetchSchedule("sub_sched_1").Return(schedule, nil)
		reconciler.EXPECT().ReconcileSubscription(mock.Anything, withSchedule).Return(&models.Subscription{StripeID: "sub_1"}, nil)
		reconciler.EXPECT().ReconcileSubscription(mock.Anything, withoutSchedule).Return(&models.Subscription{StripeID: "sub_2"}, nil)
		reconciler.EXPECT().ReconcileSchedule(mock.Anything, schedule).Return(nil, reconcile.ErrScheduleReleased)

		result, err := NewResyncJob(subRepo, handler, reconciler).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ResyncResult{Synced: 2}, result)
	})

	t.Run("Should keep going after a subscription fails", func(t *testing.T) {
		t.Parallel()

		subRepo := mocks.NewSubscriptionRepository(t)
		handler := mocks.NewBillingHandler(t)
		reconciler := mocks.NewSubscriptionReconciler(t)

		second := &reconcile.ProviderSubscription{ID: "sub_2"}

		subRepo.EXPECT().ListSyncableSubscriptionIDs(mock.Anything).Return([]string{"sub_1", "sub_2"}, nil)
		handler.EXPECT().FetchSubscription("sub_1").Return(nil, errors.New("stripe: rate limited"))
		handler.EXPECT().FetchSubscription("sub_2").Return(second, nil)
		reconciler.EXPECT().ReconcileSubscription(mock.Anything, second).Return(&models.Subscription{StripeID: "sub_2"}, nil)

		result, err := NewResyncJob(subRepo, handler, reconciler).Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ResyncResult{Synced: 1, Failed: 1}, result)
	})

	t.Run("Should report a schedule that fails to reconcile", func(t *testing.T) {
		t.Parallel()

		subRepo := mocks.NewSubscriptionRepository(t)
		handler := mocks.NewBillingHandler(t)
		reconciler := mocks.NewSubscriptionReconciler(t)

		sub := &reconcile.ProviderSubscription{ID: "sub_1", Schedule: reconcile.ExpandableID{ID: "sub_sched_1"}}
		schedule := &reconcile.ProviderSchedule{ID: "sub_sched_1"}
		missing := &reconcile.MissingPriceReferenceError{ScheduleID: "sub_sched_1", PriceID: "price_gone"}

		handler.EXPECT().FetchSubscription("sub_1").Return(sub, nil)
		handler.EXPECT().FetchSchedule("sub_sched_1").Return(schedule, nil)
		reconciler.EXPECT().ReconcileSubscription(mock.Anything, sub).Return(&models.Subscription{StripeID: "sub_1"}, nil)
		reconciler.EXPECT().ReconcileSchedule(mock.Anything, schedule).Return(nil, missing)

		err := NewResyncJob(subRepo, handler, reconciler).SyncSubscription(context.Background(), "sub_1")
		assert.Equal(t, missing, err)
	})
}

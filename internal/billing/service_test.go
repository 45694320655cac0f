package billing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lineblocs.com/billing/mocks"
	"lineblocs.com/billing/models"
	"lineblocs.com/billing/repository"
)

func TestBillingService(t *testing.T) {
	t.Parallel()

	org := testOrganization()
	now := day(2025, time.June, 10)

	t.Run("Should surface a missing organization", func(t *testing.T) {
		t.Parallel()

		orgRepo := mocks.NewOrganizationRepository(t)
		subRepo := mocks.NewSubscriptionRepository(t)
		schedRepo := mocks.NewScheduleRepository(t)

		missing := &repository.MissingEntityError{Entity: "organization", Key: "gone"}
		orgRepo.EXPECT().GetOrganizationBySlug(mock.Anything, "gone").Return(nil, missing)

		service := NewBillingService(orgRepo, subRepo, schedRepo)
		_, err := service.GetBillingViewModel(context.Background(), "gone", now)
		assert.True(t, repository.IsMissing(err))
	})

	t.Run("Should derive the trial view when nothing was purchased", func(t *testing.T) {
		t.Parallel()

		orgRepo := mocks.NewOrganizationRepository(t)
		subRepo := mocks.NewSubscriptionRepository(t)
		schedRepo := mocks.NewScheduleRepository(t)

		orgRepo.EXPECT().GetOrganizationBySlug(mock.Anything, "acme").Return(&org, nil)
		orgRepo.EXPECT().CountMembers(mock.Anything, "org_1").Return(2, nil)
		subRepo.EXPECT().GetLatestSubscription(mock.Anything, "org_1").
			Return(nil, &repository.MissingEntityError{Entity: "subscription", Key: "org_1"})

		service := NewBillingService(orgRepo, subRepo, schedRepo)
		vm, err := service.GetBillingViewModel(context.Background(), "acme", now)
		require.NoError(t, err)
		assert.True(t, vm.IsOnFreeTrial)
		assert.Equal(t, 2, vm.CurrentSeats)
		assert.Equal(t, "acme", vm.OrganizationSlug)
	})

	t.Run("Should load subscription and schedule into the snapshot", func(t *testing.T) {
		t.Parallel()

		orgRepo := mocks.NewOrganizationRepository(t)
		subRepo := mocks.NewSubscriptionRepository(t)
		schedRepo := mocks.NewScheduleRepository(t)

		price := testPrice("mid_monthly", 3000, "5")
		sub := testSubscription(models.SubscriptionStatusActive, false, price, day(2025, time.July, 1))
		schedule := &models.SubscriptionSchedule{
			StripeID:       "sub_sched_1",
			SubscriptionID: sub.StripeID,
			Phases: []models.SchedulePhase{
				{StartDate: day(2025, time.July, 1), EndDate: day(2026, time.July, 1), PriceID: "price_mid_annual", Price: testPrice("mid_annual", 30000, "5")},
			},
		}

		orgRepo.EXPECT().GetOrganizationBySlug(mock.Anything, "acme").Return(&org, nil)
		orgRepo.EXPECT().CountMembers(mock.Anything, "org_1").Return(3, nil)
		subRepo.EXPECT().GetLatestSubscription(mock.Anything, "org_1").Return(sub, nil)
		schedRepo.EXPECT().GetLatestSchedule(mock.Anything, "sub_1").Return(schedule, nil)

		service := NewBillingService(orgRepo, subRepo, schedRepo)
		vm, err := service.GetBillingViewModel(context.Background(), "acme", now)
		require.NoError(t, err)
		assert.False(t, vm.IsOnFreeTrial)
		assert.Equal(t, "90", vm.ProjectedTotal.String())
		require.NotNil(t, vm.PendingChange)
		assert.Equal(t, "annual", vm.PendingChange.PendingInterval)
	})

	t.Run("Should fail when the member count cannot be read", func(t *testing.T) {
		t.Parallel()

		orgRepo := mocks.NewOrganizationRepository(t)
		subRepo := mocks.NewSubscriptionRepository(t)
		schedRepo := mocks.NewScheduleRepository(t)

		orgRepo.EXPECT().GetOrganizationBySlug(mock.Anything, "acme").Return(&org, nil)
		orgRepo.EXPECT().CountMembers(mock.Anything, "org_1").Return(0, errors.New("connection reset"))

		service := NewBillingService(orgRepo, subRepo, schedRepo)
		_, err := service.GetBillingViewModel(context.Background(), "acme", now)
		assert.EqualError(t, err, "connection reset")
	})
}

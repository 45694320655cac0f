package billing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"lineblocs.com/billing/models"
	"lineblocs.com/billing/repository"
)

type BillingService struct {
	organizationRepository repository.OrganizationRepository
	subscriptionRepository repository.SubscriptionRepository
	scheduleRepository     repository.ScheduleRepository
	logger                 *logrus.Entry
}

func NewBillingService(oRepo repository.OrganizationRepository, sRepo repository.SubscriptionRepository, schRepo repository.ScheduleRepository) *BillingService {
	return &BillingService{
		organizationRepository: oRepo,
		subscriptionRepository: sRepo,
		scheduleRepository:     schRepo,
		logger:                 logrus.WithField("component", "billing_view"),
	}
}

// LoadSnapshot reads the cached billing state of an organization. A missing
// organization is an error; a missing subscription or schedule is not.
func (s *BillingService) LoadSnapshot(ctx context.Context, slug string) (*OrganizationSnapshot, error) {
	org, err := s.organizationRepository.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	members, err := s.organizationRepository.CountMembers(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	snapshot := &OrganizationSnapshot{
		Organization: *org,
		MemberCount:  members,
	}

	sub, err := s.subscriptionRepository.GetLatestSubscription(ctx, org.ID)
	if repository.IsMissing(err) {
		return snapshot, nil
	}
	if err != nil {
		return nil, err
	}
	snapshot.Subscription = sub

	schedule, err := s.scheduleRepository.GetLatestSchedule(ctx, sub.StripeID)
	if repository.IsMissing(err) {
		return snapshot, nil
	}
	if err != nil {
		return nil, err
	}
	snapshot.Schedule = schedule
	return snapshot, nil
}

// GetBillingViewModel loads the organization by slug and derives its billing
// page state at now.
func (s *BillingService) GetBillingViewModel(ctx context.Context, slug string, now time.Time) (*models.BillingViewModel, error) {
	snapshot, err := s.LoadSnapshot(ctx, slug)
	if err != nil {
		return nil, err
	}
	vm, err := DeriveBillingViewModel(*snapshot, now)
	if err != nil {
		s.logger.WithError(err).WithField("organization", slug).Error("could not derive billing view model")
		return nil, err
	}
	return vm, nil
}

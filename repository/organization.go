package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"lineblocs.com/billing/models"
)

type OrganizationRepository interface {
	GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error)
	GetOrganization(ctx context.Context, id string) (*models.Organization, error)
	CountMembers(ctx context.Context, organizationID string) (int, error)
	UpdateCheckoutDetails(ctx context.Context, organizationID, billingEmail, customerID string, trialEnd time.Time) error
	ClearStripeCustomer(ctx context.Context, customerID string) (int64, error)
}

type OrganizationService struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) OrganizationRepository {
	return NewOrganizationService(db)
}

func NewOrganizationService(db *sql.DB) *OrganizationService {
	return &OrganizationService{db: db}
}

const selectOrganization = "SELECT id, slug, name, billing_email, stripe_customer_id, trial_end, created_at FROM organizations"

func (o *OrganizationService) GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	row := o.db.QueryRowContext(ctx, selectOrganization+" WHERE slug = ?", slug)
	org, err := scanOrganization(row)
	if err != nil {
		return nil, missingOr(err, "organization", slug)
	}
	return org, nil
}

func (o *OrganizationService) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	row := o.db.QueryRowContext(ctx, selectOrganization+" WHERE id = ?", id)
	org, err := scanOrganization(row)
	if err != nil {
		return nil, missingOr(err, "organization", id)
	}
	return org, nil
}

func scanOrganization(row *sql.Row) (*models.Organization, error) {
	var org models.Organization
	var email, customerID sql.NullString
	if err := row.Scan(&org.ID, &org.Slug, &org.Name, &email, &customerID, &org.TrialEnd, &org.CreatedAt); err != nil {
		return nil, err
	}
	org.BillingEmail = email.String
	org.StripeCustomerID = customerID.String
	return &org, nil
}

func (o *OrganizationService) CountMembers(ctx context.Context, organizationID string) (int, error) {
	var count int
	row := o.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM organization_memberships WHERE organization_id = ?", organizationID)
	if err := row.Scan(&count); err != nil {
		return 0, errors.Wrapf(err, "error counting members of organization %s", organizationID)
	}
	return count, nil
}

func (o *OrganizationService) UpdateCheckoutDetails(ctx context.Context, organizationID, billingEmail, customerID string, trialEnd time.Time) error {
	res, err := o.db.ExecContext(ctx,
		"UPDATE organizations SET billing_email = ?, stripe_customer_id = ?, trial_end = ?, updated_at = ? WHERE id = ?",
		billingEmail, customerID, trialEnd, time.Now(), organizationID)
	if err != nil {
		return errors.Wrapf(err, "error updating checkout details of organization %s", organizationID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "could not get affected rows")
	}
	if affected == 0 {
		return &MissingEntityError{Entity: "organization", Key: organizationID}
	}
	return nil
}

func (o *OrganizationService) ClearStripeCustomer(ctx context.Context, customerID string) (int64, error) {
	res, err := o.db.ExecContext(ctx,
		"UPDATE organizations SET stripe_customer_id = NULL, updated_at = ? WHERE stripe_customer_id = ?",
		time.Now(), customerID)
	if err != nil {
		return 0, errors.Wrapf(err, "error clearing stripe customer %s", customerID)
	}
	return res.RowsAffected()
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"lineblocs.com/billing/models"
)

type SubscriptionRepository interface {
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	GetLatestSubscription(ctx context.Context, organizationID string) (*models.Subscription, error)
	UpsertSubscription(ctx context.Context, sub *models.Subscription) error
	ListSyncableSubscriptionIDs(ctx context.Context) ([]string, error)
}

type SubscriptionService struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) SubscriptionRepository {
	return NewSubscriptionService(db)
}

func NewSubscriptionService(db *sql.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

const selectSubscription = "SELECT stripe_id, organization_id, status, cancel_at_period_end, created, trial_end FROM stripe_subscriptions"

func (ss *SubscriptionService) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	row := ss.db.QueryRowContext(ctx, selectSubscription+" WHERE stripe_id = ?", id)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, missingOr(err, "subscription", id)
	}
	if sub.Items, err = ss.getItems(ctx, sub.StripeID); err != nil {
		return nil, err
	}
	return sub, nil
}

// GetLatestSubscription returns the most recently created subscription of an
// organization with items, prices and products loaded.
func (ss *SubscriptionService) GetLatestSubscription(ctx context.Context, organizationID string) (*models.Subscription, error) {
	row := ss.db.QueryRowContext(ctx, selectSubscription+" WHERE organization_id = ? ORDER BY created DESC LIMIT 1", organizationID)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, missingOr(err, "subscription for organization", organizationID)
	}
	if sub.Items, err = ss.getItems(ctx, sub.StripeID); err != nil {
		return nil, err
	}
	return sub, nil
}

func scanSubscription(row *sql.Row) (*models.Subscription, error) {
	var sub models.Subscription
	var status string
	var trialEnd sql.NullTime
	if err := row.Scan(&sub.StripeID, &sub.OrganizationID, &status, &sub.CancelAtPeriodEnd, &sub.Created, &trialEnd); err != nil {
		return nil, err
	}
	sub.Status = models.SubscriptionStatus(status)
	if trialEnd.Valid {
		t := trialEnd.Time
		sub.TrialEnd = &t
	}
	return &sub, nil
}

func (ss *SubscriptionService) getItems(ctx context.Context, subscriptionID string) ([]models.SubscriptionItem, error) {
	rows, err := ss.db.QueryContext(ctx, `SELECT i.stripe_id, i.current_period_start, i.current_period_end, i.quantity,
	p.stripe_id, p.lookup_key, p.unit_amount, p.currency, pr.stripe_id, pr.name, pr.max_seats
	FROM stripe_subscription_items i
	INNER JOIN stripe_prices p ON p.stripe_id = i.price_id
	INNER JOIN stripe_products pr ON pr.stripe_id = p.product_id
	WHERE i.subscription_id = ? ORDER BY i.position ASC`, subscriptionID)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading items of subscription %s", subscriptionID)
	}
	defer rows.Close()

	items := []models.SubscriptionItem{}
	for rows.Next() {
		var item models.SubscriptionItem
		var price models.Price
		var product models.Product
		var maxSeats sql.NullString
		err := rows.Scan(&item.StripeID, &item.CurrentPeriodStart, &item.CurrentPeriodEnd, &item.Quantity,
			&price.StripeID, &price.LookupKey, &price.UnitAmountCents, &price.Currency,
			&product.StripeID, &product.Name, &maxSeats)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning subscription item")
		}
		product.MaxSeats = maxSeats.String
		price.ProductID = product.StripeID
		price.Product = &product
		item.SubscriptionID = subscriptionID
		item.PriceID = price.StripeID
		item.Price = &price
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpsertSubscription writes the subscription and replaces its items in one
// transaction. organization_id is only written on insert.
func (ss *SubscriptionService) UpsertSubscription(ctx context.Context, sub *models.Subscription) error {
	return withTx(ctx, ss.db, func(tx *sql.Tx) error {
		for _, item := range sub.Items {
			if item.Price == nil {
				continue
			}
			if err := upsertPrice(ctx, tx, item.Price); err != nil {
				return err
			}
		}

		var trialEnd sql.NullTime
		if sub.TrialEnd != nil {
			trialEnd = sql.NullTime{Time: *sub.TrialEnd, Valid: true}
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO stripe_subscriptions (`stripe_id`, `organization_id`, `status`, `cancel_at_period_end`, `created`, `trial_end`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?, ?) "+
				"ON DUPLICATE KEY UPDATE status = VALUES(status), cancel_at_period_end = VALUES(cancel_at_period_end), created = VALUES(created), trial_end = VALUES(trial_end), updated_at = VALUES(updated_at)",
			sub.StripeID, sub.OrganizationID, string(sub.Status), sub.CancelAtPeriodEnd, sub.Created, trialEnd, time.Now())
		if err != nil {
			return errors.Wrapf(err, "error upserting subscription %s", sub.StripeID)
		}

		_, err = tx.ExecContext(ctx, "DELETE FROM stripe_subscription_items WHERE subscription_id = ?", sub.StripeID)
		if err != nil {
			return errors.Wrapf(err, "error clearing items of subscription %s", sub.StripeID)
		}
		for i, item := range sub.Items {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO stripe_subscription_items (`stripe_id`, `subscription_id`, `position`, `current_period_start`, `current_period_end`, `price_id`, `quantity`) VALUES (?, ?, ?, ?, ?, ?, ?)",
				item.StripeID, sub.StripeID, i, item.CurrentPeriodStart, item.CurrentPeriodEnd, item.PriceID, item.Quantity)
			if err != nil {
				return errors.Wrapf(err, "error inserting item %s", item.StripeID)
			}
		}
		return nil
	})
}

func (ss *SubscriptionService) ListSyncableSubscriptionIDs(ctx context.Context) ([]string, error) {
	rows, err := ss.db.QueryContext(ctx,
		"SELECT stripe_id FROM stripe_subscriptions WHERE status NOT IN (?, ?) ORDER BY created ASC",
		string(models.SubscriptionStatusCanceled), string(models.SubscriptionStatusIncompleteExpired))
	if err != nil {
		return nil, errors.Wrap(err, "error listing subscriptions")
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "error scanning subscription id")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lineblocs.com/billing/models"
)

func TestSubscriptionService(t *testing.T) {
	t.Parallel()

	periodStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	t.Run("Should upsert prices, the subscription and replace its items", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		price := &models.Price{
			StripeID:        "price_mid_monthly",
			LookupKey:       "mid_monthly",
			UnitAmountCents: 3000,
			Currency:        "usd",
			ProductID:       "prod_mid",
			Product:         &models.Product{StripeID: "prod_mid", Name: "Startup", MaxSeats: "5"},
		}
		sub := &models.Subscription{
			StripeID:       "sub_1",
			OrganizationID: "org_1",
			Status:         models.SubscriptionStatusActive,
			Created:        periodStart,
			Items: []models.SubscriptionItem{
				{StripeID: "si_1", CurrentPeriodStart: periodStart, CurrentPeriodEnd: periodEnd, PriceID: price.StripeID, Quantity: 2, Price: price},
				{StripeID: "si_2", CurrentPeriodStart: periodStart, CurrentPeriodEnd: periodEnd, PriceID: price.StripeID, Quantity: 1, Price: price},
			},
		}

		mockSql.ExpectBegin()
		for range sub.Items {
			mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_products")).
				WithArgs("prod_mid", "Startup", "5", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_prices")).
				WithArgs("price_mid_monthly", "mid_monthly", int64(3000), "usd", "prod_mid", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_subscriptions")).
			WithArgs("sub_1", "org_1", "active", false, periodStart, nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM stripe_subscription_items WHERE subscription_id = ?")).
			WithArgs("sub_1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_subscription_items")).
			WithArgs("si_1", "sub_1", 0, periodStart, periodEnd, "price_mid_monthly", int64(2)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_subscription_items")).
			WithArgs("si_2", "sub_1", 1, periodStart, periodEnd, "price_mid_monthly", int64(1)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mockSql.ExpectCommit()

		err = NewSubscriptionRepository(db).UpsertSubscription(context.Background(), sub)
		assert.NoError(t, err)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should not touch the organization on conflict", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sub := &models.Subscription{StripeID: "sub_1", OrganizationID: "org_1", Status: models.SubscriptionStatusCanceled, Created: periodStart}

		mockSql.ExpectBegin()
		mockSql.ExpectExec(`ON DUPLICATE KEY UPDATE status = VALUES\(status\), cancel_at_period_end`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM stripe_subscription_items")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockSql.ExpectCommit()

		err = NewSubscriptionRepository(db).UpsertSubscription(context.Background(), sub)
		assert.NoError(t, err)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should roll back when an item insert fails", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sub := &models.Subscription{
			StripeID:       "sub_1",
			OrganizationID: "org_1",
			Status:         models.SubscriptionStatusActive,
			Created:        periodStart,
			Items:          []models.SubscriptionItem{{StripeID: "si_1", PriceID: "price_gone"}},
		}

		mockSql.ExpectBegin()
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_subscriptions")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM stripe_subscription_items")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_subscription_items")).
			WillReturnError(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})
		mockSql.ExpectRollback()

		err = NewSubscriptionRepository(db).UpsertSubscription(context.Background(), sub)
		assert.ErrorContains(t, err, "error inserting item si_1")
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should load the latest subscription with items in order", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta(selectSubscription + " WHERE organization_id = ? ORDER BY created DESC LIMIT 1")).
			WithArgs("org_1").
			WillReturnRows(sqlmock.NewRows([]string{"stripe_id", "organization_id", "status", "cancel_at_period_end", "created", "trial_end"}).
				AddRow("sub_1", "org_1", "trialing", true, periodStart, nil))
		mockSql.ExpectQuery(regexp.QuoteMeta("FROM stripe_subscription_items i")).
			WithArgs("sub_1").
			WillReturnRows(sqlmock.NewRows([]string{"stripe_id", "current_period_start", "current_period_end", "quantity",
				"stripe_id", "lookup_key", "unit_amount", "currency", "stripe_id", "name", "max_seats"}).
				AddRow("si_1", periodStart, periodEnd, 4, "price_high_annual", "high_annual", 54000, "usd", "prod_high", "Business", "25").
				AddRow("si_2", periodStart, periodEnd, 1, "price_high_annual", "high_annual", 54000, "usd", "prod_high", "Business", nil))

		sub, err := NewSubscriptionRepository(db).GetLatestSubscription(context.Background(), "org_1")
		require.NoError(t, err)
		assert.Equal(t, models.SubscriptionStatusTrialing, sub.Status)
		assert.True(t, sub.CancelAtPeriodEnd)
		assert.Nil(t, sub.TrialEnd)
		require.Len(t, sub.Items, 2)
		assert.Equal(t, "si_1", sub.Items[0].StripeID)
		assert.Equal(t, "25", sub.Items[0].Price.Product.MaxSeats)
		assert.Equal(t, "", sub.Items[1].Price.Product.MaxSeats)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should list subscriptions that can still change", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("SELECT stripe_id FROM stripe_subscriptions WHERE status NOT IN (?, ?)")).
			WithArgs("canceled", "incomplete_expired").
			WillReturnRows(sqlmock.NewRows([]string{"stripe_id"}).AddRow("sub_1").AddRow("sub_2"))

		ids, err := NewSubscriptionRepository(db).ListSyncableSubscriptionIDs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"sub_1", "sub_2"}, ids)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}

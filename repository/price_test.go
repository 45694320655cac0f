package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lineblocs.com/billing/models"
)

func TestPriceService(t *testing.T) {
	t.Parallel()

	t.Run("Should make sure a collapsed product exists before the price", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectBegin()
		mockSql.ExpectExec(regexp.QuoteMeta("ON DUPLICATE KEY UPDATE stripe_id = stripe_id")).
			WithArgs("prod_low", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_prices")).
			WithArgs("price_low_monthly", "low_monthly", int64(1700), "usd", "prod_low", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockSql.ExpectCommit()

		err = NewPriceRepository(db).UpsertPrice(context.Background(), &models.Price{
			StripeID:        "price_low_monthly",
			LookupKey:       "low_monthly",
			UnitAmountCents: 1700,
			Currency:        "usd",
			ProductID:       "prod_low",
		})
		assert.NoError(t, err)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should store empty seat metadata as NULL", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectBegin()
		mockSql.ExpectExec(regexp.QuoteMeta("INSERT INTO stripe_products")).
			WithArgs("prod_low", "Hobby", nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mockSql.ExpectCommit()

		err = NewPriceRepository(db).UpsertProduct(context.Background(), &models.Product{StripeID: "prod_low", Name: "Hobby"})
		assert.NoError(t, err)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should resolve a cached price with its product", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("FROM stripe_prices p INNER JOIN stripe_products pr")).
			WithArgs("price_mid_annual").
			WillReturnRows(sqlmock.NewRows([]string{"stripe_id", "lookup_key", "unit_amount", "currency", "product_id", "name", "max_seats"}).
				AddRow("price_mid_annual", "mid_annual", 30000, "usd", "prod_mid", "Startup", "5"))

		price, err := NewPriceRepository(db).GetPrice(context.Background(), "price_mid_annual")
		require.NoError(t, err)
		assert.Equal(t, int64(30000), price.UnitAmountCents)
		assert.Equal(t, "prod_mid", price.Product.StripeID)
		assert.Equal(t, "5", price.Product.MaxSeats)
	})

	t.Run("Should report an unknown price as missing", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("FROM stripe_prices p")).
			WithArgs("price_unknown").
			WillReturnRows(sqlmock.NewRows([]string{"stripe_id"}))

		_, err = NewPriceRepository(db).GetPrice(context.Background(), "price_unknown")
		assert.True(t, IsMissing(err))
	})
}

func TestIsDuplicate(t *testing.T) {
	t.Parallel()

	t.Run("Should detect wrapped duplicate key errors", func(t *testing.T) {
		t.Parallel()
		err := errors.Wrap(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, "error inserting schedule")
		assert.True(t, IsDuplicate(err))
		assert.False(t, IsDuplicate(errors.New("boom")))
		assert.False(t, IsDuplicate(&mysql.MySQLError{Number: 1452}))
	})
}

func TestIsReferenced(t *testing.T) {
	t.Parallel()

	t.Run("Should detect wrapped foreign key violations on delete", func(t *testing.T) {
		t.Parallel()
		err := errors.Wrap(&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}, "error deleting price price_1")
		assert.True(t, IsReferenced(err))
		assert.False(t, IsReferenced(&mysql.MySQLError{Number: 1062}))
		assert.False(t, IsReferenced(errors.New("boom")))
	})
}

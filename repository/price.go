package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"lineblocs.com/billing/models"
)

type PriceRepository interface {
	GetPrice(ctx context.Context, id string) (*models.Price, error)
	UpsertPrice(ctx context.Context, price *models.Price) error
	DeletePrice(ctx context.Context, id string) error
	UpsertProduct(ctx context.Context, product *models.Product) error
}

type PriceService struct {
	db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return NewPriceService(db)
}

func NewPriceService(db *sql.DB) *PriceService {
	return &PriceService{db: db}
}

func (ps *PriceService) GetPrice(ctx context.Context, id string) (*models.Price, error) {
	var price models.Price
	var product models.Product
	var maxSeats sql.NullString
	row := ps.db.QueryRowContext(ctx, `SELECT p.stripe_id, p.lookup_key, p.unit_amount, p.currency, p.product_id, pr.name, pr.max_seats
	FROM stripe_prices p INNER JOIN stripe_products pr ON pr.stripe_id = p.product_id
	WHERE p.stripe_id = ?`, id)
	err := row.Scan(&price.StripeID, &price.LookupKey, &price.UnitAmountCents, &price.Currency, &price.ProductID, &product.Name, &maxSeats)
	if err != nil {
		return nil, missingOr(err, "price", id)
	}
	product.StripeID = price.ProductID
	product.MaxSeats = maxSeats.String
	price.Product = &product
	return &price, nil
}

func (ps *PriceService) UpsertPrice(ctx context.Context, price *models.Price) error {
	return withTx(ctx, ps.db, func(tx *sql.Tx) error {
		return upsertPrice(ctx, tx, price)
	})
}

func (ps *PriceService) DeletePrice(ctx context.Context, id string) error {
	_, err := ps.db.ExecContext(ctx, "DELETE FROM stripe_prices WHERE stripe_id = ?", id)
	if err != nil {
		return errors.Wrapf(err, "error deleting price %s", id)
	}
	return nil
}

func (ps *PriceService) UpsertProduct(ctx context.Context, product *models.Product) error {
	return withTx(ctx, ps.db, func(tx *sql.Tx) error {
		return upsertProduct(ctx, tx, product)
	})
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// upsertPrice writes the product first so the foreign key always resolves. A
// price whose product was not expanded only guarantees that the product row
// exists.
func upsertPrice(ctx context.Context, tx execer, price *models.Price) error {
	if price.Product != nil {
		if err := upsertProduct(ctx, tx, price.Product); err != nil {
			return err
		}
	} else {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO stripe_products (`stripe_id`, `name`, `max_seats`, `updated_at`) VALUES (?, '', NULL, ?) ON DUPLICATE KEY UPDATE stripe_id = stripe_id",
			price.ProductID, time.Now())
		if err != nil {
			return errors.Wrapf(err, "error ensuring product %s", price.ProductID)
		}
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO stripe_prices (`stripe_id`, `lookup_key`, `unit_amount`, `currency`, `product_id`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE lookup_key = VALUES(lookup_key), unit_amount = VALUES(unit_amount), currency = VALUES(currency), product_id = VALUES(product_id), updated_at = VALUES(updated_at)",
		price.StripeID, price.LookupKey, price.UnitAmountCents, price.Currency, price.ProductID, time.Now())
	if err != nil {
		return errors.Wrapf(err, "error upserting price %s", price.StripeID)
	}
	return nil
}

func upsertProduct(ctx context.Context, tx execer, product *models.Product) error {
	var maxSeats sql.NullString
	if product.MaxSeats != "" {
		maxSeats = sql.NullString{String: product.MaxSeats, Valid: true}
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO stripe_products (`stripe_id`, `name`, `max_seats`, `updated_at`) VALUES (?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE name = VALUES(name), max_seats = VALUES(max_seats), updated_at = VALUES(updated_at)",
		product.StripeID, product.Name, maxSeats, time.Now())
	if err != nil {
		return errors.Wrapf(err, "error upserting product %s", product.StripeID)
	}
	return nil
}

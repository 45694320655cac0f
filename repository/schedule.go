package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"lineblocs.com/billing/models"
)

type ScheduleRepository interface {
	GetSchedule(ctx context.Context, id string) (*models.SubscriptionSchedule, error)
	GetLatestSchedule(ctx context.Context, subscriptionID string) (*models.SubscriptionSchedule, error)
	CreateSchedule(ctx context.Context, schedule *models.SubscriptionSchedule) error
	UpdateSchedule(ctx context.Context, schedule *models.SubscriptionSchedule) error
	ReplacePhases(ctx context.Context, scheduleID string, phases []models.SchedulePhase) error
	DeleteSchedule(ctx context.Context, id string) error
}

type ScheduleService struct {
	db *sql.DB
}

func NewScheduleRepository(db *sql.DB) ScheduleRepository {
	return NewScheduleService(db)
}

func NewScheduleService(db *sql.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

const selectSchedule = "SELECT stripe_id, subscription_id, created, current_phase_start, current_phase_end FROM stripe_subscription_schedules"

func (ss *ScheduleService) GetSchedule(ctx context.Context, id string) (*models.SubscriptionSchedule, error) {
	row := ss.db.QueryRowContext(ctx, selectSchedule+" WHERE stripe_id = ?", id)
	schedule, err := scanSchedule(row)
	if err != nil {
		return nil, missingOr(err, "subscription schedule", id)
	}
	if schedule.Phases, err = ss.getPhases(ctx, schedule.StripeID); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (ss *ScheduleService) GetLatestSchedule(ctx context.Context, subscriptionID string) (*models.SubscriptionSchedule, error) {
	row := ss.db.QueryRowContext(ctx, selectSchedule+" WHERE subscription_id = ? ORDER BY created DESC LIMIT 1", subscriptionID)
	schedule, err := scanSchedule(row)
	if err != nil {
		return nil, missingOr(err, "subscription schedule for subscription", subscriptionID)
	}
	if schedule.Phases, err = ss.getPhases(ctx, schedule.StripeID); err != nil {
		return nil, err
	}
	return schedule, nil
}

func scanSchedule(row *sql.Row) (*models.SubscriptionSchedule, error) {
	var s models.SubscriptionSchedule
	if err := row.Scan(&s.StripeID, &s.SubscriptionID, &s.Created, &s.CurrentPhaseStart, &s.CurrentPhaseEnd); err != nil {
		return nil, err
	}
	return &s, nil
}

func (ss *ScheduleService) getPhases(ctx context.Context, scheduleID string) ([]models.SchedulePhase, error) {
	rows, err := ss.db.QueryContext(ctx, `SELECT ph.start_date, ph.end_date, ph.quantity, p.stripe_id, p.lookup_key, p.unit_amount, p.currency, p.product_id
	FROM stripe_subscription_schedule_phases ph
	INNER JOIN stripe_prices p ON p.stripe_id = ph.price_id
	WHERE ph.schedule_id = ? ORDER BY ph.start_date ASC`, scheduleID)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading phases of schedule %s", scheduleID)
	}
	defer rows.Close()

	phases := []models.SchedulePhase{}
	for rows.Next() {
		var phase models.SchedulePhase
		var price models.Price
		err := rows.Scan(&phase.StartDate, &phase.EndDate, &phase.Quantity,
			&price.StripeID, &price.LookupKey, &price.UnitAmountCents, &price.Currency, &price.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning schedule phase")
		}
		phase.ScheduleID = scheduleID
		phase.PriceID = price.StripeID
		phase.Price = &price
		phases = append(phases, phase)
	}
	return phases, rows.Err()
}

func (ss *ScheduleService) CreateSchedule(ctx context.Context, schedule *models.SubscriptionSchedule) error {
	return withTx(ctx, ss.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO stripe_subscription_schedules (`stripe_id`, `subscription_id`, `created`, `current_phase_start`, `current_phase_end`, `updated_at`) VALUES (?, ?, ?, ?, ?, ?)",
			schedule.StripeID, schedule.SubscriptionID, schedule.Created, schedule.CurrentPhaseStart, schedule.CurrentPhaseEnd, time.Now())
		if err != nil {
			return errors.Wrapf(err, "error inserting schedule %s", schedule.StripeID)
		}
		return insertPhases(ctx, tx, schedule.StripeID, schedule.Phases)
	})
}

// UpdateSchedule updates the scalar fields and swaps the phase set in a
// single transaction, so readers never see a schedule without phases.
func (ss *ScheduleService) UpdateSchedule(ctx context.Context, schedule *models.SubscriptionSchedule) error {
	return withTx(ctx, ss.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"UPDATE stripe_subscription_schedules SET created = ?, current_phase_start = ?, current_phase_end = ?, updated_at = ? WHERE stripe_id = ?",
			schedule.Created, schedule.CurrentPhaseStart, schedule.CurrentPhaseEnd, time.Now(), schedule.StripeID)
		if err != nil {
			return errors.Wrapf(err, "error updating schedule %s", schedule.StripeID)
		}
		return replacePhases(ctx, tx, schedule.StripeID, schedule.Phases)
	})
}

// ReplacePhases swaps the phase set of a schedule as one unit.
func (ss *ScheduleService) ReplacePhases(ctx context.Context, scheduleID string, phases []models.SchedulePhase) error {
	return withTx(ctx, ss.db, func(tx *sql.Tx) error {
		return replacePhases(ctx, tx, scheduleID, phases)
	})
}

func (ss *ScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	return withTx(ctx, ss.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM stripe_subscription_schedule_phases WHERE schedule_id = ?", id); err != nil {
			return errors.Wrapf(err, "error deleting phases of schedule %s", id)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stripe_subscription_schedules WHERE stripe_id = ?", id); err != nil {
			return errors.Wrapf(err, "error deleting schedule %s", id)
		}
		return nil
	})
}

// Stripe does not give phases stable ids, so there is nothing to diff
// against: the old set is dropped and the new one inserted.
func replacePhases(ctx context.Context, tx *sql.Tx, scheduleID string, phases []models.SchedulePhase) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM stripe_subscription_schedule_phases WHERE schedule_id = ?", scheduleID); err != nil {
		return errors.Wrapf(err, "error clearing phases of schedule %s", scheduleID)
	}
	return insertPhases(ctx, tx, scheduleID, phases)
}

func insertPhases(ctx context.Context, tx *sql.Tx, scheduleID string, phases []models.SchedulePhase) error {
	for _, phase := range phases {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO stripe_subscription_schedule_phases (`schedule_id`, `start_date`, `end_date`, `price_id`, `quantity`) VALUES (?, ?, ?, ?, ?)",
			scheduleID, phase.StartDate, phase.EndDate, phase.PriceID, phase.Quantity)
		if err != nil {
			return errors.Wrapf(err, "error inserting phase of schedule %s starting %s", scheduleID, phase.StartDate.Format(time.RFC3339))
		}
	}
	return nil
}

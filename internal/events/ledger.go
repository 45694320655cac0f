package events

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	processingEventTTL = 10 * time.Minute
	processedEventTTL  = 30 * 24 * time.Hour
)

// Ledger remembers which Stripe events were already handled so redeliveries
// are skipped. A claim only lasts processingEventTTL until MarkProcessed
// confirms it, so an event whose worker died is picked up again.
type Ledger interface {
	// Claim returns false when the event is being processed or was processed.
	Claim(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
	Release(ctx context.Context, eventID string) error
}

type RedisLedger struct {
	rdb           *redis.Client
	processingTTL time.Duration
	processedTTL  time.Duration
}

func NewRedisLedger(rdb *redis.Client) *RedisLedger {
	return &RedisLedger{rdb: rdb, processingTTL: processingEventTTL, processedTTL: processedEventTTL}
}

func ledgerKey(eventID string) string {
	return fmt.Sprintf("billing_event:%s", eventID)
}

func (l *RedisLedger) Claim(ctx context.Context, eventID string) (bool, error) {
	ok, err := l.rdb.SetNX(ctx, ledgerKey(eventID), "processing", l.processingTTL).Result()
	if err != nil {
		return false, errors.Wrapf(err, "could not claim event %s", eventID)
	}
	return ok, nil
}

func (l *RedisLedger) MarkProcessed(ctx context.Context, eventID string) error {
	if err := l.rdb.Set(ctx, ledgerKey(eventID), "processed", l.processedTTL).Err(); err != nil {
		return errors.Wrapf(err, "could not mark event %s processed", eventID)
	}
	return nil
}

func (l *RedisLedger) Release(ctx context.Context, eventID string) error {
	if err := l.rdb.Del(ctx, ledgerKey(eventID)).Err(); err != nil {
		return errors.Wrapf(err, "could not release event %s", eventID)
	}
	return nil
}

package events

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisLedger(t *testing.T) {
	t.Parallel()

	t.Run("Should namespace event keys", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "billing_event:evt_1", ledgerKey("evt_1"))
	})

	t.Run("Should hold a claim only briefly until the event is processed", func(t *testing.T) {
		t.Parallel()

		ledger := NewRedisLedger(nil)
		assert.Equal(t, 10*time.Minute, ledger.processingTTL)
		assert.Equal(t, 30*24*time.Hour, ledger.processedTTL)
	})

	t.Run("Should surface redis errors instead of claiming", func(t *testing.T) {
		t.Parallel()

		rdb := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
			MaxRetries:  -1,
		})
		defer rdb.Close()

		ledger := NewRedisLedger(rdb)
		claimed, err := ledger.Claim(context.Background(), "evt_1")
		assert.Error(t, err)
		assert.False(t, claimed)
		assert.Error(t, ledger.MarkProcessed(context.Background(), "evt_1"))
		assert.Error(t, ledger.Release(context.Background(), "evt_1"))
	})
}

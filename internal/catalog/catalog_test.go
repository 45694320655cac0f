package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	for _, tier := range Tiers() {
		for _, interval := range Intervals() {
			priceID, err := LookupPriceID(tier, interval)
			require.NoError(t, err)

			got, err := LookupTierAndInterval(priceID)
			require.NoError(t, err)
			assert.Equal(t, TierAndInterval{Tier: tier, Interval: interval}, got)

			key, err := LookupKey(tier, interval)
			require.NoError(t, err)
			got, err = LookupTierAndInterval(key)
			require.NoError(t, err)
			assert.Equal(t, TierAndInterval{Tier: tier, Interval: interval}, got)
		}
	}
}

func TestCatalogIsBijective(t *testing.T) {
	t.Parallel()

	seenIDs := map[string]bool{}
	seenPairs := map[TierAndInterval]bool{}
	for _, e := range Entries() {
		assert.False(t, seenIDs[e.PriceID], "duplicate price id %s", e.PriceID)
		assert.False(t, seenIDs[e.LookupKey], "lookup key %s collides", e.LookupKey)
		seenIDs[e.PriceID] = true
		seenIDs[e.LookupKey] = true

		pair := TierAndInterval{Tier: e.Tier, Interval: e.Interval}
		assert.False(t, seenPairs[pair], "duplicate pair %v", pair)
		seenPairs[pair] = true
	}
	assert.Len(t, seenPairs, len(Tiers())*len(Intervals()))
}

func TestLookupTierAndInterval(t *testing.T) {
	t.Parallel()

	t.Run("Should resolve a lookup key", func(t *testing.T) {
		t.Parallel()

		got, err := LookupTierAndInterval("mid_annual")
		assert.NoError(t, err)
		assert.Equal(t, TierMid, got.Tier)
		assert.Equal(t, IntervalAnnual, got.Interval)
	})

	t.Run("Should fail loudly for an unknown price", func(t *testing.T) {
		t.Parallel()

		_, err := LookupTierAndInterval("price_does_not_exist")
		var unknown *UnknownPriceError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, "price_does_not_exist", unknown.ID)
	})

	t.Run("Should reject an unsupported tier", func(t *testing.T) {
		t.Parallel()

		_, err := LookupPriceID(Tier("enterprise"), IntervalMonthly)
		var unknown *UnknownPriceError
		assert.True(t, errors.As(err, &unknown))
	})
}

func TestSeatCaps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, SeatCap(TierLow))
	assert.Equal(t, 25, SeatCap(TrialTier))
	assert.Equal(t, 25, MaxSeatCap())
	assert.Equal(t, "startup", TierMid.DisplayName())
}

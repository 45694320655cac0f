package catalog

import (
	"fmt"
	"strings"
)

type Tier string

const (
	TierLow  Tier = "low"
	TierMid  Tier = "mid"
	TierHigh Tier = "high"
)

type Interval string

const (
	IntervalMonthly Interval = "monthly"
	IntervalAnnual  Interval = "annual"
)

// TrialTier and TrialInterval describe the plan shown to organizations that
// have never purchased a subscription.
const (
	TrialTier     = TierHigh
	TrialInterval = IntervalAnnual
)

// Entry is one row of the compiled-in price table.
type Entry struct {
	PriceID   string
	LookupKey string
	Tier      Tier
	Interval  Interval
	// list price in cents for one seat and one billing interval
	UnitAmountCents int64
}

type TierAndInterval struct {
	Tier     Tier
	Interval Interval
}

type tierInfo struct {
	displayName string
	seatCap     int
}

var tiers = map[Tier]tierInfo{
	TierLow:  {displayName: "hobby", seatCap: 1},
	TierMid:  {displayName: "startup", seatCap: 5},
	TierHigh: {displayName: "business", seatCap: 25},
}

var entries = []Entry{
	{PriceID: "price_1PxLbHobbyMonthly", LookupKey: "low_monthly", Tier: TierLow, Interval: IntervalMonthly, UnitAmountCents: 1700},
	{PriceID: "price_1PxLbHobbyAnnual", LookupKey: "low_annual", Tier: TierLow, Interval: IntervalAnnual, UnitAmountCents: 18000},
	{PriceID: "price_1PxLbStartupMonthly", LookupKey: "mid_monthly", Tier: TierMid, Interval: IntervalMonthly, UnitAmountCents: 3000},
	{PriceID: "price_1PxLbStartupAnnual", LookupKey: "mid_annual", Tier: TierMid, Interval: IntervalAnnual, UnitAmountCents: 30000},
	{PriceID: "price_1PxLbBusinessMonthly", LookupKey: "high_monthly", Tier: TierHigh, Interval: IntervalMonthly, UnitAmountCents: 5500},
	{PriceID: "price_1PxLbBusinessAnnual", LookupKey: "high_annual", Tier: TierHigh, Interval: IntervalAnnual, UnitAmountCents: 54000},
}

var (
	byID  = map[string]Entry{}
	byKey = map[TierAndInterval]Entry{}
)

func init() {
	for _, e := range entries {
		byID[e.PriceID] = e
		byID[e.LookupKey] = e
		byKey[TierAndInterval{Tier: e.Tier, Interval: e.Interval}] = e
	}
}

// UnknownPriceError is returned when a price id, lookup key or tier/interval
// pair has no catalog entry.
type UnknownPriceError struct {
	ID string
}

func (e *UnknownPriceError) Error() string {
	return fmt.Sprintf("catalog: unknown price %q", e.ID)
}

// LookupTierAndInterval resolves either a Stripe price id or a lookup key.
func LookupTierAndInterval(id string) (TierAndInterval, error) {
	e, ok := byID[strings.TrimSpace(id)]
	if !ok {
		return TierAndInterval{}, &UnknownPriceError{ID: id}
	}
	return TierAndInterval{Tier: e.Tier, Interval: e.Interval}, nil
}

func LookupPriceID(tier Tier, interval Interval) (string, error) {
	e, err := lookupEntry(tier, interval)
	if err != nil {
		return "", err
	}
	return e.PriceID, nil
}

func LookupKey(tier Tier, interval Interval) (string, error) {
	e, err := lookupEntry(tier, interval)
	if err != nil {
		return "", err
	}
	return e.LookupKey, nil
}

// ListRateCents returns the catalog list price for one seat and one interval.
func ListRateCents(tier Tier, interval Interval) (int64, error) {
	e, err := lookupEntry(tier, interval)
	if err != nil {
		return 0, err
	}
	return e.UnitAmountCents, nil
}

func lookupEntry(tier Tier, interval Interval) (Entry, error) {
	e, ok := byKey[TierAndInterval{Tier: tier, Interval: interval}]
	if !ok {
		return Entry{}, &UnknownPriceError{ID: string(tier) + "_" + string(interval)}
	}
	return e, nil
}

// SeatCap returns the seat limit of a tier, 0 for an unknown tier.
func SeatCap(tier Tier) int {
	return tiers[tier].seatCap
}

// MaxSeatCap is the largest seat cap of any catalog tier.
func MaxSeatCap() int {
	max := 0
	for _, t := range tiers {
		if t.seatCap > max {
			max = t.seatCap
		}
	}
	return max
}

func (t Tier) DisplayName() string {
	return tiers[t].displayName
}

// Entries returns a copy of the compiled-in table.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func Tiers() []Tier {
	return []Tier{TierLow, TierMid, TierHigh}
}

func Intervals() []Interval {
	return []Interval{IntervalMonthly, IntervalAnnual}
}

package cache

import (
	"time"

	"StonkWatch/internal/market"
)

// Policy decides whether a cached timestamp is still fresh. Policies consult
// only the timestamp, never the payload.
type Policy interface {
	Valid(lastUpdated, now time.Time) bool
}

// DailyPolicy keeps an entry valid until the calendar day rolls over in the
// market's reference timezone.
type DailyPolicy struct {
	Calendar *market.Calendar
}

func (p DailyPolicy) Valid(lastUpdated, now time.Time) bool {
	if lastUpdated.IsZero() {
		return false
	}
	return p.Calendar.SameLocalDay(lastUpdated, now)
}

// MarketAwarePolicy uses a short TTL during the trading session and a longer
// one outside it. Both bounds are exclusive: diff < TTL, never <=.
type MarketAwarePolicy struct {
	Calendar  *market.Calendar
	TTLOpen   time.Duration
	TTLClosed time.Duration
}

func (p MarketAwarePolicy) Valid(lastUpdated, now time.Time) bool {
	if lastUpdated.IsZero() {
		return false
	}
	ttl := p.TTLClosed
	if p.Calendar.InSession(now) {
		ttl = p.TTLOpen
	}
	return now.Sub(lastUpdated) < ttl
}

// FixedWindowPolicy uses one flat TTL regardless of session.
type FixedWindowPolicy struct {
	TTL time.Duration
}

func (p FixedWindowPolicy) Valid(lastUpdated, now time.Time) bool {
	if lastUpdated.IsZero() {
		return false
	}
	return now.Sub(lastUpdated) < p.TTL
}

// PolicyConfig carries the tunable TTLs.
type PolicyConfig struct {
	QuoteTTLOpen   time.Duration
	QuoteTTLClosed time.Duration
	IntradayTTL    time.Duration
}

// DefaultPolicies maps every category to its staleness rule: quotes are
// market-aware, intraday uses a fixed window, everything else rolls over
// daily.
func DefaultPolicies(cal *market.Calendar, cfg PolicyConfig) map[Category]Policy {
	daily := DailyPolicy{Calendar: cal}
	policies := make(map[Category]Policy, len(Categories()))
	for _, c := range Categories() {
		policies[c] = daily
	}
	policies[CategoryQuotes] = MarketAwarePolicy{
		Calendar:  cal,
		TTLOpen:   cfg.QuoteTTLOpen,
		TTLClosed: cfg.QuoteTTLClosed,
	}
	policies[CategoryIntraday] = FixedWindowPolicy{TTL: cfg.IntradayTTL}
	return policies
}

package cache

import (
	"testing"
	"time"

	"StonkWatch/internal/market"
)

func testCalendar(t *testing.T) *market.Calendar {
	t.Helper()
	cal, err := market.NewCalendar("America/Los_Angeles", "06:30", "13:00")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	return cal
}

func TestDailyPolicy(t *testing.T) {
	cal := testCalendar(t)
	p := DailyPolicy{Calendar: cal}
	loc := cal.Location()

	now := time.Date(2026, 3, 10, 15, 0, 0, 0, loc)

	if !p.Valid(time.Date(2026, 3, 10, 1, 0, 0, 0, loc), now) {
		t.Fatalf("same local day should be valid")
	}
	if p.Valid(time.Date(2026, 3, 9, 23, 59, 0, 0, loc), now) {
		t.Fatalf("prior calendar day should be stale")
	}
	if p.Valid(time.Time{}, now) {
		t.Fatalf("zero timestamp should be stale")
	}
}

func TestMarketAwarePolicy(t *testing.T) {
	cal := testCalendar(t)
	p := MarketAwarePolicy{Calendar: cal, TTLOpen: 10 * time.Minute, TTLClosed: time.Hour}
	loc := cal.Location()

	inSession := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)   // Tuesday 10:00
	outSession := time.Date(2026, 3, 10, 18, 0, 0, 0, loc)  // Tuesday 18:00

	if !p.Valid(inSession.Add(-5*time.Minute), inSession) {
		t.Fatalf("5m old in session should be valid")
	}
	if p.Valid(inSession.Add(-10*time.Minute), inSession) {
		t.Fatalf("boundary must be exclusive: diff == TTLOpen is stale")
	}
	if !p.Valid(outSession.Add(-30*time.Minute), outSession) {
		t.Fatalf("30m old out of session should be valid under 1h TTL")
	}
	if p.Valid(outSession.Add(-time.Hour), outSession) {
		t.Fatalf("boundary must be exclusive: diff == TTLClosed is stale")
	}
}

func TestFixedWindowPolicy(t *testing.T) {
	p := FixedWindowPolicy{TTL: 30 * time.Minute}
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	if !p.Valid(now.Add(-29*time.Minute), now) {
		t.Fatalf("inside window should be valid")
	}
	if p.Valid(now.Add(-30*time.Minute), now) {
		t.Fatalf("boundary must be exclusive")
	}
	if p.Valid(now.Add(-31*time.Minute), now) {
		t.Fatalf("outside window should be stale")
	}
}

func TestDefaultPoliciesAssignment(t *testing.T) {
	cal := testCalendar(t)
	policies := DefaultPolicies(cal, PolicyConfig{
		QuoteTTLOpen:   10 * time.Minute,
		QuoteTTLClosed: 4 * time.Hour,
		IntradayTTL:    30 * time.Minute,
	})

	if _, ok := policies[CategoryQuotes].(MarketAwarePolicy); !ok {
		t.Fatalf("quotes should be market-aware")
	}
	if _, ok := policies[CategoryIntraday].(FixedWindowPolicy); !ok {
		t.Fatalf("intraday should be fixed-window")
	}
	for _, c := range []Category{CategoryLobbying, CategoryCongress, CategoryContracts, CategoryNews, CategoryHomepage, CategorySectors, CategoryMarketOverview} {
		if _, ok := policies[c].(DailyPolicy); !ok {
			t.Fatalf("%s should be daily", c)
		}
	}
}

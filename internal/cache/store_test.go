package cache

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"StonkWatch/internal/domain/models"
	"StonkWatch/pkg/blob"
	applogger "StonkWatch/pkg/logger"
)

func newTestStore(t *testing.T, clock Clock) *Store {
	t.Helper()
	files, err := blob.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	policies := DefaultPolicies(testCalendar(t), PolicyConfig{
		QuoteTTLOpen:   10 * time.Minute,
		QuoteTTLClosed: 4 * time.Hour,
		IntradayTTL:    30 * time.Minute,
	})
	return NewStore(files, policies, applogger.Nop(), WithClock(clock), WithMemoryTTL(time.Minute))
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestFirstAccessAlwaysMisses(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	s := newTestStore(t, fixedClock(now))

	for _, c := range Categories() {
		if _, ok := s.Get(context.Background(), c); ok {
			t.Errorf("%s: expected first access to miss", c)
		}
	}
}

func TestSetThenGetSameDay(t *testing.T) {
	loc := testCalendar(t).Location()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	s := newTestStore(t, fixedClock(now))
	ctx := context.Background()

	trades := []models.TradeRecord{
		{Ticker: "AAPL", Representative: "A Rep", Transaction: "Purchase", Amount: 75000, ReportDate: "2026-03-01"},
	}
	s.Set(ctx, CategoryCongress, trades)

	got, ok := GetTyped[[]models.TradeRecord](ctx, s, CategoryCongress)
	if !ok {
		t.Fatalf("expected hit on same calendar day")
	}
	if !reflect.DeepEqual(got, trades) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestDailyRollover(t *testing.T) {
	loc := testCalendar(t).Location()
	day1 := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	day2 := time.Date(2026, 3, 11, 0, 5, 0, 0, loc)

	var now time.Time
	s := newTestStore(t, func() time.Time { return now })
	ctx := context.Background()

	now = day1
	s.Set(ctx, CategoryLobbying, []models.LobbyingRecord{{Ticker: "MSFT", Client: "X", Amount: 1000, Date: "2026-03-10"}})

	if _, ok := s.Get(ctx, CategoryLobbying); !ok {
		t.Fatalf("expected hit on write day")
	}

	now = day2
	if _, ok := s.Get(ctx, CategoryLobbying); ok {
		t.Fatalf("expected miss after local day rollover")
	}
}

func TestMarketAwareWindow(t *testing.T) {
	loc := testCalendar(t).Location()
	written := time.Date(2026, 3, 10, 10, 0, 0, 0, loc) // Tuesday, in session

	var now time.Time
	s := newTestStore(t, func() time.Time { return now })
	ctx := context.Background()

	now = written
	s.Set(ctx, CategoryQuotes, models.WatchlistState{"AAPL": {Current: 150}})

	now = written.Add(5 * time.Minute)
	if _, ok := s.Get(ctx, CategoryQuotes); !ok {
		t.Fatalf("5m old quote in session should be valid")
	}

	now = written.Add(15 * time.Minute)
	if _, ok := s.Get(ctx, CategoryQuotes); ok {
		t.Fatalf("15m old quote in session should be stale")
	}
}

func TestGetQuotesRequiresEveryTicker(t *testing.T) {
	loc := testCalendar(t).Location()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	s := newTestStore(t, fixedClock(now))
	ctx := context.Background()

	state := models.WatchlistState{
		"AAPL": {Current: 150, Change: 1, PercentChange: 0.6, Open: 149, PreviousClose: 148},
		"MSFT": nil, // tracked but never fetched
	}
	s.Set(ctx, CategoryQuotes, state)

	if _, ok := s.GetQuotes(ctx, []string{"AAPL"}); !ok {
		t.Fatalf("AAPL alone should validate")
	}
	if _, ok := s.GetQuotes(ctx, []string{"AAPL", "MSFT"}); ok {
		t.Fatalf("pending MSFT must invalidate the read even while time-fresh")
	}
	if _, ok := s.GetQuotes(ctx, []string{"TSLA"}); ok {
		t.Fatalf("untracked ticker must invalidate the read")
	}
}

func TestRoundTripFidelity(t *testing.T) {
	loc := testCalendar(t).Location()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	s := newTestStore(t, fixedClock(now))
	ctx := context.Background()

	summary := models.HomepageSummary{
		LastUpdated: now.UTC(),
		Sentiment:   models.Sentiment{Index: 8, BuyCount: 3, SellCount: 1, Total: 4},
		NotableTrades: []models.TradeRecord{
			{Ticker: "NVDA", Transaction: "Purchase", Amount: 300000.25, ReportDate: "2026-03-02"},
		},
		Frequent: []models.TickerFrequency{
			{Ticker: "NVDA", Count: 3, Trades: []models.TradeRecord{{Ticker: "NVDA"}, {Ticker: "NVDA"}, {Ticker: "NVDA"}}},
		},
		MultiSignals: []models.MultiSignalTicker{
			{Ticker: "NVDA", CongressCount: 5, LobbyingCount: 5, TotalCount: 10},
		},
	}
	s.Set(ctx, CategoryHomepage, summary)

	got, ok := GetTyped[models.HomepageSummary](ctx, s, CategoryHomepage)
	if !ok {
		t.Fatalf("expected hit")
	}
	if !reflect.DeepEqual(got, summary) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, summary)
	}
}

func TestConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	loc := testCalendar(t).Location()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	s := newTestStore(t, fixedClock(now))
	ctx := context.Background()

	cats := []Category{CategoryLobbying, CategoryCongress, CategoryContracts, CategoryNews, CategorySectors}

	var wg sync.WaitGroup
	for i, c := range cats {
		wg.Add(1)
		go func(i int, c Category) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.Set(ctx, c, map[string]int{"writer": i, "iter": j})
			}
		}(i, c)
	}
	wg.Wait()

	// Every category's update must survive: whole-index writes are
	// serialized, so no last-writer-wins across categories.
	for _, c := range cats {
		if _, ok := s.Get(ctx, c); !ok {
			t.Errorf("%s: update lost under concurrent writers", c)
		}
		if ts, ok := s.LastUpdated(ctx, c); !ok || !ts.Equal(now) {
			t.Errorf("%s: missing or wrong timestamp %v", c, ts)
		}
	}
}

func TestCorruptPayloadDegradesToMiss(t *testing.T) {
	loc := testCalendar(t).Location()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)

	files, err := blob.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	policies := DefaultPolicies(testCalendar(t), PolicyConfig{
		QuoteTTLOpen: 10 * time.Minute, QuoteTTLClosed: 4 * time.Hour, IntradayTTL: 30 * time.Minute,
	})
	s := NewStore(files, policies, applogger.Nop(), WithClock(fixedClock(now)), WithMemoryTTL(0))
	ctx := context.Background()

	s.Set(ctx, CategoryNews, []models.NewsArticle{{Title: "t"}})
	// Corrupt the payload behind the store's back.
	if err := files.SetBytes(ctx, "newsCache", []byte("{not json")); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	if _, ok := GetTyped[[]models.NewsArticle](ctx, s, CategoryNews); ok {
		t.Fatalf("corrupt payload must degrade to a miss, not an error")
	}
}

func TestMetadataSurvivesRestart(t *testing.T) {
	loc := testCalendar(t).Location()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, loc)
	dir := t.TempDir()
	ctx := context.Background()

	files, err := blob.NewFileStore(dir)
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	policies := DefaultPolicies(testCalendar(t), PolicyConfig{
		QuoteTTLOpen: 10 * time.Minute, QuoteTTLClosed: 4 * time.Hour, IntradayTTL: 30 * time.Minute,
	})

	s1 := NewStore(files, policies, applogger.Nop(), WithClock(fixedClock(now)))
	s1.Set(ctx, CategoryContracts, []models.ContractRecord{{Ticker: "LMT", Agency: "DoD", Amount: 9.9e6, Date: "2026-03-09"}})

	// New store over the same directory, same day: still a hit.
	files2, err := blob.NewFileStore(dir)
	if err != nil {
		t.Fatalf("file store: %v", err)
	}
	s2 := NewStore(files2, policies, applogger.Nop(), WithClock(fixedClock(now.Add(time.Hour))))
	got, ok := GetTyped[[]models.ContractRecord](ctx, s2, CategoryContracts)
	if !ok || len(got) != 1 || got[0].Ticker != "LMT" {
		t.Fatalf("expected persisted payload across restart, got %+v ok=%v", got, ok)
	}
}

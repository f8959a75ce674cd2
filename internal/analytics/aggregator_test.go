package analytics

import (
	"testing"
	"time"

	"StonkWatch/internal/domain/models"
)

func testConfig() Config {
	return Config{
		NotableMinAmount:       50001,
		NotableLimit:           20,
		FrequentLookbackMonths: 3,
		FrequentMinCount:       3,
		MultiLookbackMonths:    6,
		MultiMinTotal:          10,
	}
}

func trade(ticker, tx string, amount float64, reportDate string) models.TradeRecord {
	return models.TradeRecord{Ticker: ticker, Transaction: tx, Amount: models.FlexFloat(amount), ReportDate: reportDate}
}

func TestSentimentIndex(t *testing.T) {
	a := New(testConfig())

	got := a.Sentiment([]models.TradeRecord{
		trade("AAPL", "Purchase", 1, ""),
		trade("MSFT", "Purchase", 1, ""),
		trade("NVDA", "Buy", 1, ""),
		trade("TSLA", "Sale (Full)", 1, ""),
		trade("XOM", "Exchange", 1, ""), // unclassified, excluded
	})
	if got.BuyCount != 3 || got.SellCount != 1 || got.Total != 4 {
		t.Fatalf("counts wrong: %+v", got)
	}
	if got.Index != 8 {
		t.Fatalf("3 buys / 1 sell should round to 8, got %d", got.Index)
	}
}

func TestSentimentNeutralWithNoClassifiedTrades(t *testing.T) {
	a := New(testConfig())

	for _, trades := range [][]models.TradeRecord{
		nil,
		{trade("AAPL", "Exchange", 1, "")},
	} {
		got := a.Sentiment(trades)
		if got.Index != 5 || got.Total != 0 {
			t.Fatalf("expected neutral 5 with zero total, got %+v", got)
		}
	}
}

func TestNotableTradesThresholdAndOrder(t *testing.T) {
	a := New(testConfig())

	got := a.NotableTrades([]models.TradeRecord{
		trade("AAPL", "Purchase", 50000, ""), // below threshold
		trade("MSFT", "Purchase", 50001, ""), // at threshold, included
		trade("NVDA", "Purchase", 500000, ""),
		trade("TSLA", "Sale", 100000, ""),
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 notable trades, got %d", len(got))
	}
	if got[0].Ticker != "NVDA" || got[1].Ticker != "TSLA" || got[2].Ticker != "MSFT" {
		t.Fatalf("wrong order: %v %v %v", got[0].Ticker, got[1].Ticker, got[2].Ticker)
	}
}

func TestNotableTradesLimit(t *testing.T) {
	cfg := testConfig()
	cfg.NotableLimit = 2
	a := New(cfg)

	got := a.NotableTrades([]models.TradeRecord{
		trade("A", "Purchase", 60000, ""),
		trade("B", "Purchase", 70000, ""),
		trade("C", "Purchase", 80000, ""),
	})
	if len(got) != 2 || got[0].Ticker != "C" || got[1].Ticker != "B" {
		t.Fatalf("limit not applied: %+v", got)
	}
}

func TestFrequentTickersWindowAndMinimum(t *testing.T) {
	a := New(testConfig())
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	got := a.FrequentTickers([]models.TradeRecord{
		trade("NVDA", "Purchase", 1, "2026-05-01"),
		trade("NVDA", "Sale", 1, "2026-05-20"),
		trade("NVDA", "Purchase", 1, "2026-06-10"),
		trade("AAPL", "Purchase", 1, "2026-06-01"),
		trade("AAPL", "Purchase", 1, "2026-06-02"), // only 2 inside window
		trade("MSFT", "Purchase", 1, "2026-01-01"), // outside 3-month window
		trade("MSFT", "Purchase", 1, "2026-01-02"),
		trade("MSFT", "Purchase", 1, "2026-01-03"),
	}, now)

	if len(got) != 1 {
		t.Fatalf("expected only NVDA, got %+v", got)
	}
	if got[0].Ticker != "NVDA" || got[0].Count != 3 || len(got[0].Trades) != 3 {
		t.Fatalf("NVDA entry wrong: %+v", got[0])
	}
}

func TestMultiSignalTickersTotalThreshold(t *testing.T) {
	a := New(testConfig())
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	var trades []models.TradeRecord
	var lobbying []models.LobbyingRecord
	for i := 0; i < 5; i++ {
		trades = append(trades, trade("LMT", "Purchase", 1, "2026-05-01"))
		lobbying = append(lobbying, models.LobbyingRecord{Ticker: "LMT", Date: "2026-04-01"})
	}
	// 9 total signals stays under the threshold.
	for i := 0; i < 9; i++ {
		trades = append(trades, trade("BA", "Purchase", 1, "2026-05-01"))
	}

	got := a.MultiSignalTickers(trades, lobbying, nil, now)
	if len(got) != 1 {
		t.Fatalf("expected only LMT, got %+v", got)
	}
	lmt := got[0]
	if lmt.CongressCount != 5 || lmt.LobbyingCount != 5 || lmt.ContractCount != 0 || lmt.TotalCount != 10 {
		t.Fatalf("LMT counts wrong: %+v", lmt)
	}
}

func TestMultiSignalIgnoresOldRecords(t *testing.T) {
	a := New(testConfig())
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	var contracts []models.ContractRecord
	for i := 0; i < 12; i++ {
		contracts = append(contracts, models.ContractRecord{Ticker: "RTX", Date: "2025-01-01"})
	}
	if got := a.MultiSignalTickers(nil, nil, contracts, now); len(got) != 0 {
		t.Fatalf("records outside the window must not count: %+v", got)
	}
}

func TestSectorSummary(t *testing.T) {
	a := New(testConfig())

	got := a.SectorSummary([]models.SectorQuote{
		{Symbol: "XLK", PercentChange: 2.0},
		{Symbol: "XLE", PercentChange: -1.0},
		{Symbol: "XLF", PercentChange: 1.0},
		{Symbol: "XLV", PercentChange: 3.0, Err: true}, // excluded
	})
	if got.Advancing != 2 || got.Declining != 1 {
		t.Fatalf("breadth wrong: %+v", got)
	}
	if got.Best == nil || got.Best.Symbol != "XLK" || got.Worst == nil || got.Worst.Symbol != "XLE" {
		t.Fatalf("best/worst wrong: %+v", got)
	}
	if got.AverageChange != (2.0-1.0+1.0)/3 {
		t.Fatalf("average wrong: %v", got.AverageChange)
	}
	if got.Sentiment != "Bullish" {
		t.Fatalf("expected Bullish, got %q", got.Sentiment)
	}
}

func TestSectorSummaryEmpty(t *testing.T) {
	a := New(testConfig())
	got := a.SectorSummary(nil)
	if got.Sentiment != "Neutral" || got.Best != nil || got.Worst != nil {
		t.Fatalf("empty input should be neutral with no best/worst: %+v", got)
	}
}

package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"StonkWatch/internal/domain/models"
	"StonkWatch/pkg/util"
)

// Config carries the derived-analytics thresholds.
type Config struct {
	NotableMinAmount       float64
	NotableLimit           int
	FrequentLookbackMonths int
	FrequentMinCount       int
	MultiLookbackMonths    int
	MultiMinTotal          int
}

// Aggregator derives the homepage and sector views from raw provider records.
// All methods are pure over their inputs.
type Aggregator struct {
	cfg Config
}

func New(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Sentiment computes the 0-10 congressional buy/sell index. Trades whose
// transaction text mentions neither buying nor selling are excluded from the
// ratio; with no classified trades the index is the neutral 5.
func (a *Aggregator) Sentiment(trades []models.TradeRecord) models.Sentiment {
	var buys, sells int
	for _, tr := range trades {
		tx := strings.ToLower(tr.Transaction)
		switch {
		case strings.Contains(tx, "purchase") || strings.Contains(tx, "buy"):
			buys++
		case strings.Contains(tx, "sale") || strings.Contains(tx, "sell"):
			sells++
		}
	}

	s := models.Sentiment{BuyCount: buys, SellCount: sells, Total: buys + sells}
	if s.Total == 0 {
		s.Index = 5
		return s
	}
	s.Index = int(math.Round(10 * float64(buys) / float64(s.Total)))
	return s
}

// NotableTrades returns the largest disclosures at or above the notable
// threshold, sorted by amount descending and capped at the configured limit.
func (a *Aggregator) NotableTrades(trades []models.TradeRecord) []models.TradeRecord {
	notable := make([]models.TradeRecord, 0)
	for _, tr := range trades {
		if tr.Amount.Float64() >= a.cfg.NotableMinAmount {
			notable = append(notable, tr)
		}
	}
	sort.SliceStable(notable, func(i, j int) bool {
		return notable[i].Amount > notable[j].Amount
	})
	if len(notable) > a.cfg.NotableLimit {
		notable = notable[:a.cfg.NotableLimit]
	}
	return notable
}

// FrequentTickers finds tickers traded at least the configured number of
// times inside the lookback window, judged by report date. Records with an
// unparseable report date are skipped.
func (a *Aggregator) FrequentTickers(trades []models.TradeRecord, now time.Time) []models.TickerFrequency {
	cutoff := now.AddDate(0, -a.cfg.FrequentLookbackMonths, 0)

	byTicker := make(map[string][]models.TradeRecord)
	for _, tr := range trades {
		if tr.Ticker == "" {
			continue
		}
		reported, ok := util.ParseTime(tr.ReportDate)
		if !ok || reported.Before(cutoff) {
			continue
		}
		byTicker[tr.Ticker] = append(byTicker[tr.Ticker], tr)
	}

	out := make([]models.TickerFrequency, 0)
	for ticker, recent := range byTicker {
		if len(recent) < a.cfg.FrequentMinCount {
			continue
		}
		out = append(out, models.TickerFrequency{Ticker: ticker, Count: len(recent), Trades: recent})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Ticker < out[j].Ticker
	})
	return out
}

// MultiSignalTickers surfaces tickers with heavy combined activity across
// congressional trading, lobbying, and contract awards inside the lookback
// window.
func (a *Aggregator) MultiSignalTickers(
	trades []models.TradeRecord,
	lobbying []models.LobbyingRecord,
	contracts []models.ContractRecord,
	now time.Time,
) []models.MultiSignalTicker {
	cutoff := now.AddDate(0, -a.cfg.MultiLookbackMonths, 0)
	counts := make(map[string]*models.MultiSignalTicker)

	at := func(ticker string) *models.MultiSignalTicker {
		c, ok := counts[ticker]
		if !ok {
			c = &models.MultiSignalTicker{Ticker: ticker}
			counts[ticker] = c
		}
		return c
	}
	inWindow := func(date string) bool {
		t, ok := util.ParseTime(date)
		return ok && !t.Before(cutoff)
	}

	for _, tr := range trades {
		if tr.Ticker != "" && inWindow(tr.ReportDate) {
			at(tr.Ticker).CongressCount++
		}
	}
	for _, lb := range lobbying {
		if lb.Ticker != "" && inWindow(lb.Date) {
			at(lb.Ticker).LobbyingCount++
		}
	}
	for _, ct := range contracts {
		if ct.Ticker != "" && inWindow(ct.Date) {
			at(ct.Ticker).ContractCount++
		}
	}

	out := make([]models.MultiSignalTicker, 0)
	for _, c := range counts {
		c.TotalCount = c.CongressCount + c.LobbyingCount + c.ContractCount
		if c.TotalCount >= a.cfg.MultiMinTotal {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalCount != out[j].TotalCount {
			return out[i].TotalCount > out[j].TotalCount
		}
		return out[i].Ticker < out[j].Ticker
	})
	return out
}

// BuildHomepage assembles the full homepage summary.
func (a *Aggregator) BuildHomepage(
	trades []models.TradeRecord,
	lobbying []models.LobbyingRecord,
	contracts []models.ContractRecord,
	now time.Time,
) models.HomepageSummary {
	return models.HomepageSummary{
		LastUpdated:   now.UTC(),
		Sentiment:     a.Sentiment(trades),
		NotableTrades: a.NotableTrades(trades),
		Frequent:      a.FrequentTickers(trades, now),
		MultiSignals:  a.MultiSignalTickers(trades, lobbying, contracts, now),
	}
}

// SectorSummary derives breadth statistics from sector quotes. Errored
// symbols are excluded from every statistic.
func (a *Aggregator) SectorSummary(sectors []models.SectorQuote) models.SectorSummary {
	var summary models.SectorSummary
	var sum float64
	var counted int

	for i := range sectors {
		sq := sectors[i]
		if sq.Err {
			continue
		}
		counted++
		sum += sq.PercentChange
		if sq.PercentChange > 0 {
			summary.Advancing++
		} else if sq.PercentChange < 0 {
			summary.Declining++
		}
		if summary.Best == nil || sq.PercentChange > summary.Best.PercentChange {
			best := sq
			summary.Best = &best
		}
		if summary.Worst == nil || sq.PercentChange < summary.Worst.PercentChange {
			worst := sq
			summary.Worst = &worst
		}
	}

	if counted > 0 {
		summary.AverageChange = sum / float64(counted)
	}
	switch {
	case summary.AverageChange > 0.5:
		summary.Sentiment = "Bullish"
	case summary.AverageChange < -0.5:
		summary.Sentiment = "Bearish"
	default:
		summary.Sentiment = "Neutral"
	}
	return summary
}

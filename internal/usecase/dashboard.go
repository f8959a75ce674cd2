package usecase

import (
	"context"
	"time"

	"StonkWatch/internal/analytics"
	"StonkWatch/internal/cache"
	"StonkWatch/internal/domain/models"
	"StonkWatch/internal/domain/repository"
	applogger "StonkWatch/pkg/logger"
)

// Dashboard serves every read path backed by the category cache: a request
// first consults the cache, fetches from the provider only on a miss, and
// writes the fresh payload back. A failed write-back never fails the request.
type Dashboard struct {
	store    *cache.Store
	gov      repository.GovDataFeed
	news     repository.NewsFeed
	market   repository.MarketFeed
	agg      *analytics.Aggregator
	logger   *applogger.Logger
	metrics  repository.Metrics
	clock    cache.Clock
	pageSize int
}

// DashboardOption configures Dashboard.
type DashboardOption func(*Dashboard)

// WithDashboardClock overrides the wall clock.
func WithDashboardClock(c cache.Clock) DashboardOption {
	return func(d *Dashboard) { d.clock = c }
}

// WithDashboardMetrics attaches a metrics recorder.
func WithDashboardMetrics(m repository.Metrics) DashboardOption {
	return func(d *Dashboard) { d.metrics = m }
}

// NewDashboard creates the dashboard usecase.
func NewDashboard(
	store *cache.Store,
	gov repository.GovDataFeed,
	news repository.NewsFeed,
	market repository.MarketFeed,
	agg *analytics.Aggregator,
	l *applogger.Logger,
	pageSize int,
	opts ...DashboardOption,
) *Dashboard {
	d := &Dashboard{
		store:    store,
		gov:      gov,
		news:     news,
		market:   market,
		agg:      agg,
		logger:   l,
		clock:    time.Now,
		pageSize: pageSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Lobbying returns the lobbying feed. Only the default first page is served
// from cache; explicit paging always hits the provider.
func (d *Dashboard) Lobbying(ctx context.Context, page, pageSize int) ([]models.LobbyingRecord, error) {
	if cached, ok := cachedList(ctx, d, page, pageSize, getLobbying); ok {
		return cached, nil
	}
	records, err := fetched(d, "quiver", func() ([]models.LobbyingRecord, error) {
		return d.gov.Lobbying(ctx, page, pageSize)
	})
	if err != nil {
		return nil, err
	}
	d.writeBack(ctx, page, pageSize, cache.CategoryLobbying, records)
	return records, nil
}

// LobbyingHistory returns one ticker's lobbying history, always live.
func (d *Dashboard) LobbyingHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.LobbyingRecord, error) {
	return fetched(d, "quiver", func() ([]models.LobbyingRecord, error) {
		return d.gov.LobbyingHistory(ctx, ticker, page, pageSize)
	})
}

// CongressTrades returns the congressional trading feed.
func (d *Dashboard) CongressTrades(ctx context.Context, page, pageSize int) ([]models.TradeRecord, error) {
	if cached, ok := cachedList(ctx, d, page, pageSize, getCongress); ok {
		return cached, nil
	}
	records, err := fetched(d, "quiver", func() ([]models.TradeRecord, error) {
		return d.gov.CongressTrades(ctx, page, pageSize)
	})
	if err != nil {
		return nil, err
	}
	d.writeBack(ctx, page, pageSize, cache.CategoryCongress, records)
	return records, nil
}

// CongressTradeHistory returns one ticker's trade history, always live.
func (d *Dashboard) CongressTradeHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.TradeRecord, error) {
	return fetched(d, "quiver", func() ([]models.TradeRecord, error) {
		return d.gov.CongressTradeHistory(ctx, ticker, page, pageSize)
	})
}

// Contracts returns the government contract feed.
func (d *Dashboard) Contracts(ctx context.Context, page, pageSize int) ([]models.ContractRecord, error) {
	if cached, ok := cachedList(ctx, d, page, pageSize, getContracts); ok {
		return cached, nil
	}
	records, err := fetched(d, "quiver", func() ([]models.ContractRecord, error) {
		return d.gov.Contracts(ctx, page, pageSize)
	})
	if err != nil {
		return nil, err
	}
	d.writeBack(ctx, page, pageSize, cache.CategoryContracts, records)
	return records, nil
}

// ContractHistory returns one ticker's contract history, always live.
func (d *Dashboard) ContractHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.ContractRecord, error) {
	return fetched(d, "quiver", func() ([]models.ContractRecord, error) {
		return d.gov.ContractHistory(ctx, ticker, page, pageSize)
	})
}

// News returns the merged headline list, daily-cached.
func (d *Dashboard) News(ctx context.Context) ([]models.NewsArticle, error) {
	if cached, ok := cache.GetTyped[[]models.NewsArticle](ctx, d.store, cache.CategoryNews); ok {
		return cached, nil
	}
	articles, err := fetched(d, "newsapi", func() ([]models.NewsArticle, error) {
		return d.news.Headlines(ctx)
	})
	if err != nil {
		return nil, err
	}
	d.store.Set(ctx, cache.CategoryNews, articles)
	return articles, nil
}

// Homepage returns the derived homepage summary. The summary is cached under
// its own category; a miss rebuilds it from the cached (or freshly fetched)
// raw feeds.
func (d *Dashboard) Homepage(ctx context.Context) (models.HomepageSummary, error) {
	if cached, ok := cache.GetTyped[models.HomepageSummary](ctx, d.store, cache.CategoryHomepage); ok {
		return cached, nil
	}

	trades, err := d.CongressTrades(ctx, 1, d.pageSize)
	if err != nil {
		return models.HomepageSummary{}, err
	}
	lobbying, err := d.Lobbying(ctx, 1, d.pageSize)
	if err != nil {
		return models.HomepageSummary{}, err
	}
	contracts, err := d.Contracts(ctx, 1, d.pageSize)
	if err != nil {
		return models.HomepageSummary{}, err
	}

	summary := d.agg.BuildHomepage(trades, lobbying, contracts, d.clock())
	d.store.Set(ctx, cache.CategoryHomepage, summary)
	return summary, nil
}

// Sectors returns the sector ETF snapshot, daily-cached.
func (d *Dashboard) Sectors(ctx context.Context) (models.SectorSnapshot, error) {
	if cached, ok := cache.GetTyped[models.SectorSnapshot](ctx, d.store, cache.CategorySectors); ok {
		return cached, nil
	}
	sectors, err := fetched(d, "yahoo", func() ([]models.SectorQuote, error) {
		return d.market.Sectors(ctx)
	})
	if err != nil {
		return models.SectorSnapshot{}, err
	}
	snapshot := models.SectorSnapshot{LastUpdated: d.clock().UTC(), Sectors: sectors}
	d.store.Set(ctx, cache.CategorySectors, snapshot)
	return snapshot, nil
}

// SectorSummary derives breadth statistics from the sector snapshot.
func (d *Dashboard) SectorSummary(ctx context.Context) (models.SectorSummary, error) {
	snapshot, err := d.Sectors(ctx)
	if err != nil {
		return models.SectorSummary{}, err
	}
	return d.agg.SectorSummary(snapshot.Sectors), nil
}

// MarketOverview returns the index and commodity strip, daily-cached.
func (d *Dashboard) MarketOverview(ctx context.Context) ([]models.MarketIndex, error) {
	if cached, ok := cache.GetTyped[[]models.MarketIndex](ctx, d.store, cache.CategoryMarketOverview); ok {
		return cached, nil
	}
	overview, err := fetched(d, "yahoo", func() ([]models.MarketIndex, error) {
		return d.market.Overview(ctx)
	})
	if err != nil {
		return nil, err
	}
	d.store.Set(ctx, cache.CategoryMarketOverview, overview)
	return overview, nil
}

// Intraday returns one symbol's intraday series. The cache holds a single
// series at a time; asking for a different symbol is a miss.
func (d *Dashboard) Intraday(ctx context.Context, symbol string) (*models.IntradaySeries, error) {
	if cached, ok := cache.GetTyped[*models.IntradaySeries](ctx, d.store, cache.CategoryIntraday); ok {
		if cached != nil && cached.Symbol == symbol {
			return cached, nil
		}
	}
	series, err := fetched(d, "yahoo", func() (*models.IntradaySeries, error) {
		return d.market.Intraday(ctx, symbol)
	})
	if err != nil {
		return nil, err
	}
	d.store.Set(ctx, cache.CategoryIntraday, series)
	return series, nil
}

// cachedList serves a cached listing when the request is the default first
// page. Explicit paging bypasses the cache entirely.
func cachedList[T any](ctx context.Context, d *Dashboard, page, pageSize int, get func(context.Context, *cache.Store) ([]T, bool)) ([]T, bool) {
	if page > 1 || pageSize != d.pageSize {
		return nil, false
	}
	return get(ctx, d.store)
}

func (d *Dashboard) writeBack(ctx context.Context, page, pageSize int, cat cache.Category, payload any) {
	if page > 1 || pageSize != d.pageSize {
		return
	}
	d.store.Set(ctx, cat, payload)
}

// fetched runs a provider call with outcome and latency metrics.
func fetched[T any](d *Dashboard, provider string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	if d.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		d.metrics.RecordFetch(provider, outcome)
		d.metrics.RecordFetchLatency(provider, time.Since(start).Seconds())
	}
	if err != nil {
		d.logger.Error("provider fetch failed",
			applogger.String("provider", provider), applogger.Error(err))
	}
	return out, err
}

func getLobbying(ctx context.Context, s *cache.Store) ([]models.LobbyingRecord, bool) {
	return cache.GetTyped[[]models.LobbyingRecord](ctx, s, cache.CategoryLobbying)
}

func getCongress(ctx context.Context, s *cache.Store) ([]models.TradeRecord, bool) {
	return cache.GetTyped[[]models.TradeRecord](ctx, s, cache.CategoryCongress)
}

func getContracts(ctx context.Context, s *cache.Store) ([]models.ContractRecord, bool) {
	return cache.GetTyped[[]models.ContractRecord](ctx, s, cache.CategoryContracts)
}

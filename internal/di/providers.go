package di

import (
	"fmt"
	"io"

	"StonkWatch/internal/analytics"
	"StonkWatch/internal/cache"
	"StonkWatch/internal/domain/repository"
	"StonkWatch/internal/handler/api"
	"StonkWatch/internal/market"
	"StonkWatch/internal/service/finnhub"
	"StonkWatch/internal/service/newsapi"
	"StonkWatch/internal/service/quiver"
	"StonkWatch/internal/service/yahoo"
	"StonkWatch/internal/usecase"
	"StonkWatch/internal/watchlist"
	"StonkWatch/pkg/blob"
	"StonkWatch/pkg/config"
	httpclient "StonkWatch/pkg/http"
	applogger "StonkWatch/pkg/logger"
	"StonkWatch/pkg/metrics"
	"StonkWatch/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideBlobStore creates the cache blob backend from config.
func ProvideBlobStore(cfg *config.Config) (blob.BytesStore, error) {
	switch cfg.Cache.Backend {
	case "redis":
		return blob.NewRedisStore(blob.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		}), nil
	default:
		store, err := blob.NewFileStore(cfg.Cache.Dir)
		if err != nil {
			return nil, fmt.Errorf("file blob store: %w", err)
		}
		return store, nil
	}
}

// ProvideCalendar creates the market session calendar.
func ProvideCalendar(cfg *config.Config) (*market.Calendar, error) {
	return market.NewCalendar(cfg.Market.Timezone, cfg.Market.Open, cfg.Market.Close)
}

// ProvideCacheStore creates the staleness-aware category cache.
func ProvideCacheStore(
	blobs blob.BytesStore,
	cal *market.Calendar,
	cfg *config.Config,
	l *applogger.Logger,
	m repository.Metrics,
) *cache.Store {
	policies := cache.DefaultPolicies(cal, cache.PolicyConfig{
		QuoteTTLOpen:   cfg.Cache.QuoteTTLOpen,
		QuoteTTLClosed: cfg.Cache.QuoteTTLClosed,
		IntradayTTL:    cfg.Cache.IntradayTTL,
	})
	return cache.NewStore(blobs, policies, l,
		cache.WithMemoryTTL(cfg.Cache.MemoryTTL),
		cache.WithMetrics(m))
}

// ProvideGovDataFeed creates the Quiver API client.
func ProvideGovDataFeed(cfg *config.Config) repository.GovDataFeed {
	client := httpclient.NewClient(httpclient.WithTimeout(cfg.Quiver.Timeout))
	return quiver.NewClient(client, cfg.Quiver.BaseURL, cfg.Quiver.APIToken, cfg.Quiver.PageSize)
}

// ProvideQuoteFeed creates the Finnhub API client.
func ProvideQuoteFeed(cfg *config.Config) repository.QuoteFeed {
	client := httpclient.NewClient(httpclient.WithTimeout(cfg.Finnhub.Timeout))
	return finnhub.NewClient(client, cfg.Finnhub.BaseURL, cfg.Finnhub.APIKey)
}

// ProvideNewsFeed creates the NewsAPI client.
func ProvideNewsFeed(cfg *config.Config) repository.NewsFeed {
	client := httpclient.NewClient(httpclient.WithTimeout(cfg.News.Timeout))
	return newsapi.NewClient(client, cfg.News.BaseURL, cfg.News.APIKey, cfg.News.Country)
}

// ProvideMarketFeed creates the Yahoo Finance chart client.
func ProvideMarketFeed(cfg *config.Config, l *applogger.Logger) repository.MarketFeed {
	client := httpclient.NewClient(httpclient.WithTimeout(cfg.Yahoo.Timeout))
	return yahoo.NewClient(client, cfg.Yahoo.BaseURL, l)
}

// ProvideAggregator creates the derived-analytics aggregator.
func ProvideAggregator(cfg *config.Config) *analytics.Aggregator {
	return analytics.New(analytics.Config{
		NotableMinAmount:       cfg.Analytics.NotableMinAmount,
		NotableLimit:           cfg.Analytics.NotableLimit,
		FrequentLookbackMonths: cfg.Analytics.FrequentLookbackMonths,
		FrequentMinCount:       cfg.Analytics.FrequentMinCount,
		MultiLookbackMonths:    cfg.Analytics.MultiLookbackMonths,
		MultiMinTotal:          cfg.Analytics.MultiMinTotal,
	})
}

// ProvideWatchlist creates the persistent watchlist store.
func ProvideWatchlist(blobs blob.BytesStore, l *applogger.Logger) repository.Watchlist {
	return watchlist.NewStore(blobs, l)
}

// ProvideDashboard creates the dashboard usecase.
func ProvideDashboard(
	store *cache.Store,
	gov repository.GovDataFeed,
	news repository.NewsFeed,
	mkt repository.MarketFeed,
	agg *analytics.Aggregator,
	l *applogger.Logger,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.Dashboard {
	return usecase.NewDashboard(store, gov, news, mkt, agg, l, cfg.Quiver.PageSize,
		usecase.WithDashboardMetrics(m))
}

// ProvideWatchlistService creates the watchlist usecase.
func ProvideWatchlistService(
	wl repository.Watchlist,
	quotes repository.QuoteFeed,
	store *cache.Store,
	l *applogger.Logger,
	m repository.Metrics,
) *usecase.WatchlistService {
	return usecase.NewWatchlistService(wl, quotes, store, l, m)
}

// ProvideRouter bundles the API handlers.
func ProvideRouter(dashboard *usecase.Dashboard, wl *usecase.WatchlistService) *api.Router {
	return api.NewRouter(api.NewDashboardHandler(dashboard), api.NewWatchlistHandler(wl))
}

// ProvideApp creates the application server. Closable infrastructure, the
// Redis client in particular, is handed to the app for shutdown.
func ProvideApp(cfg *config.Config, l *applogger.Logger, router *api.Router, blobs blob.BytesStore) *server.App {
	var closers []io.Closer
	if c, ok := blobs.(io.Closer); ok {
		closers = append(closers, c)
	}
	return server.New(cfg, l, router, closers...)
}

package repository

import (
	"context"

	"StonkWatch/internal/domain/models"
)

// GovDataFeed fetches congressional trading, lobbying, and contract data.
// Implementations return (nil, err) on failure; they never panic past this
// boundary.
type GovDataFeed interface {
	Lobbying(ctx context.Context, page, pageSize int) ([]models.LobbyingRecord, error)
	LobbyingHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.LobbyingRecord, error)
	CongressTrades(ctx context.Context, page, pageSize int) ([]models.TradeRecord, error)
	CongressTradeHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.TradeRecord, error)
	Contracts(ctx context.Context, page, pageSize int) ([]models.ContractRecord, error)
	ContractHistory(ctx context.Context, ticker string, page, pageSize int) ([]models.ContractRecord, error)
}

// QuoteFeed fetches live quotes for a ticker batch.
type QuoteFeed interface {
	Quotes(ctx context.Context, tickers []string) (map[string]models.Quote, error)
}

// NewsFeed fetches the merged business + technology headlines.
type NewsFeed interface {
	Headlines(ctx context.Context) ([]models.NewsArticle, error)
}

// MarketFeed fetches sector ETF performance, market overview symbols, and
// intraday series.
type MarketFeed interface {
	Sectors(ctx context.Context) ([]models.SectorQuote, error)
	Overview(ctx context.Context) ([]models.MarketIndex, error)
	Intraday(ctx context.Context, symbol string) (*models.IntradaySeries, error)
}

// Watchlist persists the tracked ticker set.
type Watchlist interface {
	List(ctx context.Context) (models.WatchlistState, error)
	Add(ctx context.Context, ticker string) (models.WatchlistState, error)
	Remove(ctx context.Context, ticker string) (models.WatchlistState, error)
	MergeQuotes(ctx context.Context, fresh map[string]models.Quote) (models.WatchlistState, error)
}

// Metrics records cache and provider activity.
type Metrics interface {
	RecordCacheHit(category string)
	RecordCacheMiss(category, reason string)
	RecordFetch(provider, outcome string)
	RecordFetchLatency(provider string, seconds float64)
}

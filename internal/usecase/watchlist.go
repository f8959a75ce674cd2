package usecase

import (
	"context"
	"time"

	"StonkWatch/internal/cache"
	"StonkWatch/internal/domain/models"
	"StonkWatch/internal/domain/repository"
	applogger "StonkWatch/pkg/logger"
)

// WatchlistService couples the persisted ticker set with the quote cache.
// Reads validate the cached quote batch against the full watchlist: one
// pending ticker forces a refresh of the whole batch, so a freshly added
// ticker shows a price on the next read.
type WatchlistService struct {
	watchlist repository.Watchlist
	quotes    repository.QuoteFeed
	store     *cache.Store
	logger    *applogger.Logger
	metrics   repository.Metrics
}

// NewWatchlistService creates the watchlist usecase.
func NewWatchlistService(
	watchlist repository.Watchlist,
	quotes repository.QuoteFeed,
	store *cache.Store,
	l *applogger.Logger,
	metrics repository.Metrics,
) *WatchlistService {
	return &WatchlistService{
		watchlist: watchlist,
		quotes:    quotes,
		store:     store,
		logger:    l,
		metrics:   metrics,
	}
}

// List returns the watchlist with the freshest quotes available, fetching
// from the provider when the cached batch is stale or incomplete.
func (s *WatchlistService) List(ctx context.Context) (models.WatchlistState, error) {
	state, err := s.watchlist.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(state) == 0 {
		return state, nil
	}

	tickers := state.Tickers()
	if cached, ok := s.store.GetQuotes(ctx, tickers); ok {
		// The cached payload is the whole batch from the last refresh and
		// may still hold tickers removed since then. Serve only what is
		// tracked right now.
		out := make(models.WatchlistState, len(tickers))
		for _, ticker := range tickers {
			out[ticker] = cached[ticker]
		}
		return out, nil
	}
	return s.refresh(ctx, tickers)
}

// Add tracks a new ticker. The ticker starts pending; the next List or
// Refresh fills its quote.
func (s *WatchlistService) Add(ctx context.Context, ticker string) (models.WatchlistState, error) {
	return s.watchlist.Add(ctx, ticker)
}

// Remove stops tracking a ticker.
func (s *WatchlistService) Remove(ctx context.Context, ticker string) (models.WatchlistState, error) {
	return s.watchlist.Remove(ctx, ticker)
}

// Refresh force-fetches quotes for the given tickers, bypassing staleness
// checks, and returns the merged watchlist.
func (s *WatchlistService) Refresh(ctx context.Context, tickers []string) (models.WatchlistState, error) {
	return s.refresh(ctx, tickers)
}

func (s *WatchlistService) refresh(ctx context.Context, tickers []string) (models.WatchlistState, error) {
	start := time.Now()
	fresh, err := s.quotes.Quotes(ctx, tickers)
	if s.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		s.metrics.RecordFetch("finnhub", outcome)
		s.metrics.RecordFetchLatency("finnhub", time.Since(start).Seconds())
	}
	if err != nil {
		s.logger.Error("quote refresh failed",
			applogger.Strings("tickers", tickers), applogger.Error(err))
		return nil, err
	}

	merged, err := s.watchlist.MergeQuotes(ctx, fresh)
	if err != nil {
		return nil, err
	}
	s.store.Set(ctx, cache.CategoryQuotes, merged)
	return merged, nil
}

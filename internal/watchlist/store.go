package watchlist

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"StonkWatch/internal/domain/models"
	"StonkWatch/pkg/blob"
	applogger "StonkWatch/pkg/logger"
)

const stateKey = "stonkData"

// Store persists the tracked ticker set and each ticker's last-known quote
// as one blob. All read-modify-write cycles hold a single mutex, so a quote
// merge cannot lose a concurrent add or remove.
type Store struct {
	mu     sync.Mutex
	blobs  blob.BytesStore
	logger *applogger.Logger
}

// NewStore creates a watchlist store over the given blob backend.
func NewStore(blobs blob.BytesStore, l *applogger.Logger) *Store {
	return &Store{blobs: blobs, logger: l}
}

// List returns the current watchlist state.
func (s *Store) List(ctx context.Context) (models.WatchlistState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(ctx)
}

// Add inserts a ticker with a pending quote. Tickers are normalized to
// uppercase and the call is idempotent: re-adding a tracked ticker keeps its
// existing quote and skips the persist.
func (s *Store) Add(ctx context.Context, ticker string) (models.WatchlistState, error) {
	ticker = normalize(ticker)

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readLocked(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := state[ticker]; ok {
		return state, nil
	}

	state[ticker] = nil
	if err := s.writeLocked(ctx, state); err != nil {
		return nil, err
	}
	s.logger.Info("watchlist ticker added", applogger.String("ticker", ticker))
	return state, nil
}

// Remove drops a ticker and persists unconditionally, even when the ticker
// was never tracked.
func (s *Store) Remove(ctx context.Context, ticker string) (models.WatchlistState, error) {
	ticker = normalize(ticker)

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readLocked(ctx)
	if err != nil {
		return nil, err
	}
	delete(state, ticker)
	if err := s.writeLocked(ctx, state); err != nil {
		return nil, err
	}
	s.logger.Info("watchlist ticker removed", applogger.String("ticker", ticker))
	return state, nil
}

// MergeQuotes overwrites the quotes for the tickers present in fresh and
// leaves every other entry untouched, then persists and returns the union.
func (s *Store) MergeQuotes(ctx context.Context, fresh map[string]models.Quote) (models.WatchlistState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readLocked(ctx)
	if err != nil {
		return nil, err
	}
	for ticker, quote := range fresh {
		q := quote
		state[normalize(ticker)] = &q
	}
	if err := s.writeLocked(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// readLocked loads the persisted state, treating a missing or corrupt blob
// as an empty watchlist.
func (s *Store) readLocked(ctx context.Context) (models.WatchlistState, error) {
	b, ok, err := s.blobs.GetBytes(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.WatchlistState{}, nil
	}

	var state models.WatchlistState
	if err := json.Unmarshal(b, &state); err != nil {
		s.logger.Warn("watchlist state corrupt, resetting", applogger.Error(err))
		return models.WatchlistState{}, nil
	}
	if state == nil {
		state = models.WatchlistState{}
	}
	return state, nil
}

func (s *Store) writeLocked(ctx context.Context, state models.WatchlistState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.blobs.SetBytes(ctx, stateKey, b)
}

func normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

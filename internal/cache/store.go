package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"StonkWatch/internal/domain/models"
	"StonkWatch/internal/domain/repository"
	"StonkWatch/pkg/blob"
	applogger "StonkWatch/pkg/logger"
)

const metadataKey = "cacheMetadata"

// Clock supplies the current time; injected for tests.
type Clock func() time.Time

type metadataEntry struct {
	LastUpdated *time.Time `json:"lastUpdated"`
	PayloadRef  string     `json:"payloadRef"`
}

type metadataIndex map[Category]metadataEntry

// Store is the staleness-aware category cache. One metadata index record
// tracks every category's last-updated timestamp and payload locator; one
// blob per category holds the payload. All metadata read-modify-writes are
// serialized through a single mutex, so concurrent writers to different
// categories cannot lose each other's updates.
//
// Every failure mode degrades: unreadable metadata or payload is a miss, a
// failed persist is logged and swallowed. Store never returns an error.
type Store struct {
	mu       sync.Mutex
	blobs    blob.BytesStore
	mem      *blob.TTLCache
	memTTL   time.Duration
	policies map[Category]Policy
	logger   *applogger.Logger
	metrics  repository.Metrics
	clock    Clock
}

// StoreOption configures Store.
type StoreOption func(*Store)

// WithClock overrides the wall clock.
func WithClock(c Clock) StoreOption {
	return func(s *Store) { s.clock = c }
}

// WithMemoryTTL sets the in-process read-through TTL for payload bytes.
func WithMemoryTTL(ttl time.Duration) StoreOption {
	return func(s *Store) { s.memTTL = ttl }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m repository.Metrics) StoreOption {
	return func(s *Store) { s.metrics = m }
}

// NewStore creates a category cache over the given blob backend.
func NewStore(blobs blob.BytesStore, policies map[Category]Policy, l *applogger.Logger, opts ...StoreOption) *Store {
	s := &Store{
		blobs:    blobs,
		mem:      blob.NewTTLCache(),
		memTTL:   30 * time.Second,
		policies: policies,
		logger:   l,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached payload bytes for a category, or (nil, false) when
// the entry is missing, stale, or unreadable.
func (s *Store) Get(ctx context.Context, cat Category) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.readIndexLocked(ctx)
	entry, ok := idx[cat]
	if !ok || entry.LastUpdated == nil {
		s.miss(cat, "missing")
		return nil, false
	}

	policy, ok := s.policies[cat]
	if !ok {
		s.miss(cat, "missing")
		return nil, false
	}
	if !policy.Valid(*entry.LastUpdated, s.clock()) {
		s.miss(cat, "stale")
		return nil, false
	}

	b, ok := s.readPayloadLocked(ctx, entry.PayloadRef)
	if !ok {
		s.miss(cat, "read_error")
		return nil, false
	}

	s.hit(cat)
	return b, true
}

// Set writes the payload blob, stamps the category's metadata with the
// current time, and persists the whole index. Persist failures are logged
// and swallowed: the caller still holds the fresh payload in memory and the
// request it is serving must succeed.
func (s *Store) Set(ctx context.Context, cat Category, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("cache payload marshal failed",
			applogger.String("category", string(cat)), applogger.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.readIndexLocked(ctx)
	entry, ok := idx[cat]
	if !ok {
		entry = metadataEntry{PayloadRef: payloadRef(cat)}
	}

	if err := s.blobs.SetBytes(ctx, entry.PayloadRef, b); err != nil {
		s.logger.Error("cache payload write failed",
			applogger.String("category", string(cat)), applogger.Error(err))
		return
	}
	if s.memTTL > 0 {
		s.mem.Set(entry.PayloadRef, b, s.memTTL)
	}

	now := s.clock()
	entry.LastUpdated = &now
	idx[cat] = entry
	s.writeIndexLocked(ctx, idx)
}

// GetQuotes is the validated quote read used by the watchlist path. Beyond
// timestamp validity, every required ticker must carry a non-nil quote in
// the payload; a pending ticker makes the whole read a miss regardless of
// age.
func (s *Store) GetQuotes(ctx context.Context, required []string) (models.WatchlistState, bool) {
	b, ok := s.Get(ctx, CategoryQuotes)
	if !ok {
		return nil, false
	}

	var state models.WatchlistState
	if err := json.Unmarshal(b, &state); err != nil {
		s.logger.Warn("quote cache decode failed", applogger.Error(err))
		s.miss(CategoryQuotes, "decode_error")
		return nil, false
	}

	for _, ticker := range required {
		q, ok := state[ticker]
		if !ok || q == nil {
			s.miss(CategoryQuotes, "pending_quote")
			return nil, false
		}
	}
	return state, true
}

// LastUpdated reports a category's metadata timestamp, if any.
func (s *Store) LastUpdated(ctx context.Context, cat Category) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.readIndexLocked(ctx)
	entry, ok := idx[cat]
	if !ok || entry.LastUpdated == nil {
		return time.Time{}, false
	}
	return *entry.LastUpdated, true
}

// GetTyped decodes a cache hit into T. Decode failure degrades to a miss.
func GetTyped[T any](ctx context.Context, s *Store, cat Category) (T, bool) {
	var out T
	b, ok := s.Get(ctx, cat)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(b, &out); err != nil {
		s.logger.Warn("cache payload decode failed",
			applogger.String("category", string(cat)), applogger.Error(err))
		s.miss(cat, "decode_error")
		var zero T
		return zero, false
	}
	return out, true
}

// readIndexLocked loads the metadata index, materializing the first-run
// default (all categories, null timestamps) when the record is missing or
// unreadable. The default is unconditionally stale, so every category's
// first access fetches fresh data.
func (s *Store) readIndexLocked(ctx context.Context) metadataIndex {
	b, ok, err := s.blobs.GetBytes(ctx, metadataKey)
	if err != nil {
		s.logger.Warn("cache metadata read failed", applogger.Error(err))
		return s.defaultIndexLocked(ctx)
	}
	if !ok {
		return s.defaultIndexLocked(ctx)
	}

	var idx metadataIndex
	if err := json.Unmarshal(b, &idx); err != nil {
		s.logger.Warn("cache metadata corrupt, rebuilding", applogger.Error(err))
		return s.defaultIndexLocked(ctx)
	}
	for _, c := range Categories() {
		if e, ok := idx[c]; !ok || e.PayloadRef == "" {
			e.PayloadRef = payloadRef(c)
			idx[c] = e
		}
	}
	return idx
}

func (s *Store) defaultIndexLocked(ctx context.Context) metadataIndex {
	s.logger.Info("creating new cache metadata index")
	idx := make(metadataIndex, len(Categories()))
	for _, c := range Categories() {
		idx[c] = metadataEntry{PayloadRef: payloadRef(c)}
	}
	s.writeIndexLocked(ctx, idx)
	return idx
}

func (s *Store) writeIndexLocked(ctx context.Context, idx metadataIndex) {
	b, err := json.Marshal(idx)
	if err != nil {
		s.logger.Error("cache metadata marshal failed", applogger.Error(err))
		return
	}
	if err := s.blobs.SetBytes(ctx, metadataKey, b); err != nil {
		s.logger.Error("cache metadata write failed", applogger.Error(err))
	}
}

func (s *Store) readPayloadLocked(ctx context.Context, ref string) ([]byte, bool) {
	if s.memTTL > 0 {
		if b, ok := s.mem.Get(ref); ok {
			return b, true
		}
	}
	b, ok, err := s.blobs.GetBytes(ctx, ref)
	if err != nil {
		s.logger.Warn("cache payload read failed",
			applogger.String("ref", ref), applogger.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if s.memTTL > 0 {
		s.mem.Set(ref, b, s.memTTL)
	}
	return b, true
}

func (s *Store) hit(cat Category) {
	if s.metrics != nil {
		s.metrics.RecordCacheHit(string(cat))
	}
}

func (s *Store) miss(cat Category, reason string) {
	if s.metrics != nil {
		s.metrics.RecordCacheMiss(string(cat), reason)
	}
}

package startup

import (
	"context"
	"sync"

	"github.com/wepopagani/Brain/internal/observability"
)

// Store owns the process-wide normalized table. Loads build a complete
// new snapshot and publish it in a single swap, so readers never
// observe a partially-rebuilt table.
type Store struct {
	csvPath    string
	normalizer *Normalizer
	logger     *observability.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
}

// Snapshot is one immutable load result: the raw table, its column
// classification, and the normalized records derived from them.
type Snapshot struct {
	Raw            *RawTable
	Classification *Classification
	Records        []Record
}

// NewStore creates a store reading from csvPath. No data is loaded
// until the first Load call.
func NewStore(csvPath string, logger *observability.Logger) *Store {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	return &Store{
		csvPath:    csvPath,
		normalizer: NewNormalizer(logger),
		logger:     logger.WithComponent("store"),
	}
}

// Load reads and normalizes the CSV, then atomically replaces the
// current snapshot. Safe to call repeatedly; the same file yields the
// same table. A missing CSV returns ErrNoData and leaves the previous
// snapshot in place.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := LoadCSV(s.csvPath)
	if err != nil {
		return err
	}

	class := ClassifyColumns(raw.Headers)
	for cat, size := range class.CategorySizes() {
		s.logger.Debug().Str("category", string(cat)).Int("columns", size).Msg("classified columns")
	}

	records := s.normalizer.Normalize(raw, class)

	snap := &Snapshot{
		Raw:            raw,
		Classification: class,
		Records:        records,
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	s.logger.Info().
		Int("columns", len(raw.Headers)).
		Int("rows", len(raw.Rows)).
		Int("records", len(records)).
		Msg("startup table published")

	return nil
}

// LoadIfNeeded loads only when no snapshot has been published yet.
func (s *Store) LoadIfNeeded(ctx context.Context) error {
	if s.Loaded() {
		return nil
	}
	return s.Load(ctx)
}

// Loaded reports whether a snapshot is available.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot != nil
}

// Current returns the published snapshot, or nil before the first
// successful load.
func (s *Store) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Records returns the normalized table of the current snapshot.
func (s *Store) Records() []Record {
	if snap := s.Current(); snap != nil {
		return snap.Records
	}
	return nil
}

// CSVPath returns the configured CSV location.
func (s *Store) CSVPath() string {
	return s.csvPath
}

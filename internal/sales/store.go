package sales

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vendascope/backend/internal/feed"
	"github.com/vendascope/backend/pkg/errors"
	"github.com/vendascope/backend/pkg/logger"
	"github.com/vendascope/backend/pkg/metrics"
)

// Fetcher produces raw feed records. Satisfied by feed.Client.
type Fetcher interface {
	Fetch(ctx context.Context) ([]feed.Record, feed.Source, error)
}

// StoreParams wires the snapshot store.
type StoreParams struct {
	Fetcher         Fetcher
	Normalizer      *Normalizer
	Logger          *logger.Logger
	Metrics         *metrics.FeedMetrics
	RefreshInterval time.Duration
}

// Store owns the active sales snapshot. Refreshes build a complete new
// repository before swapping it in, so readers always see a consistent
// dataset and a failed refresh leaves the previous snapshot serving.
type Store struct {
	fetcher         Fetcher
	normalizer      *Normalizer
	logg            *logger.Logger
	metrics         *metrics.FeedMetrics
	refreshInterval time.Duration

	current atomic.Pointer[Repository]
}

func NewStore(params StoreParams) (*Store, error) {
	if params.Fetcher == nil {
		return nil, errors.New(errors.CodeInternal, "sales store requires a fetcher")
	}
	if params.Normalizer == nil {
		return nil, errors.New(errors.CodeInternal, "sales store requires a normalizer")
	}
	if params.Logger == nil {
		return nil, errors.New(errors.CodeInternal, "sales store requires a logger")
	}
	if params.RefreshInterval <= 0 {
		params.RefreshInterval = time.Minute
	}
	return &Store{
		fetcher:         params.Fetcher,
		normalizer:      params.Normalizer,
		logg:            params.Logger,
		metrics:         params.Metrics,
		refreshInterval: params.RefreshInterval,
	}, nil
}

// Snapshot returns the active repository, or nil before the first
// successful refresh.
func (s *Store) Snapshot() *Repository {
	return s.current.Load()
}

// Ready reports whether a snapshot has been loaded.
func (s *Store) Ready() bool {
	return s.current.Load() != nil
}

// Refresh fetches the feed, normalizes it, and atomically swaps in the new
// snapshot. Rejected rows are counted and logged in aggregate, never
// individually.
func (s *Store) Refresh(ctx context.Context) error {
	started := time.Now()

	records, source, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.metrics.IncRefreshFailure()
		return errors.Wrap(errors.CodeDependency, err, "fetching sales feed")
	}

	ctx = s.logg.WithFeedSource(ctx, string(source))
	s.metrics.AddRowsIngested(string(source), len(records))

	sales := make([]Sale, 0, len(records))
	rejected := make(map[RejectReason]int)
	for _, record := range records {
		sale, rejection := s.normalizer.Normalize(record)
		if rejection != nil {
			rejected[rejection.Reason]++
			continue
		}
		sales = append(sales, sale)
	}
	for reason, count := range rejected {
		s.metrics.AddRowsRejected(string(reason), count)
	}

	s.current.Store(NewRepository(sales))

	s.metrics.IncRefreshSuccess()
	s.metrics.SetSnapshotSize(len(sales))
	s.metrics.ObserveRefresh(time.Since(started))

	ctx = s.logg.WithFields(ctx, map[string]any{
		"rows_fetched":  len(records),
		"rows_accepted": len(sales),
		"rows_rejected": len(records) - len(sales),
	})
	s.logg.Info(ctx, "sales snapshot refreshed")
	return nil
}

// Run refreshes the snapshot on the configured interval until the context
// is cancelled. Refresh failures are logged and the previous snapshot
// keeps serving.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logg.Info(ctx, "sales snapshot refresh loop stopped")
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logg.Error(ctx, "scheduled snapshot refresh failed", err)
			}
		}
	}
}

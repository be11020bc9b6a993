// Package service wires the pitch store, the fetch pool and the scoring
// engine together behind the operations the HTTP API and CLI need.
package service

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/okian/stuffscore/internal/adapters/fetch"
	"github.com/okian/stuffscore/internal/adapters/repository"
	"github.com/okian/stuffscore/internal/domain/dedupe"
	"github.com/okian/stuffscore/internal/domain/pitch"
	"github.com/okian/stuffscore/internal/domain/scoring"
	"github.com/okian/stuffscore/internal/domain/types"
	"github.com/okian/stuffscore/pkg/logger"
	"github.com/okian/stuffscore/pkg/metrics"
)

// Service implements the API dependencies for the stuff score system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	pool   *fetch.Pool
	scorer scoring.Scorer

	// Configuration
	dbPath       string
	fetchWorkers int
	fetchTimeout time.Duration
	cohorts      map[string][]string

	// State
	started   bool
	ownsStore bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the pitch store. The caller keeps ownership and closes it.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDBPath sets the SQLite file opened on Start when no store was given.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithFetchWorkers sets the number of concurrent per-pitcher fetches.
func WithFetchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.fetchWorkers = n
		}
	}
}

// WithFetchTimeout bounds the fetch step of one stuff score request.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithCohorts sets the named rosters of display names.
func WithCohorts(cohorts map[string][]string) Option {
	return func(s *Service) {
		s.cohorts = make(map[string][]string, len(cohorts))
		for name, roster := range cohorts {
			s.cohorts[name] = slices.Clone(roster)
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		fetchWorkers: 4,
		fetchTimeout: 10 * time.Second,
		cohorts:      map[string][]string{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start opens the store if needed and builds the fetch pool and scorer.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting stuff score service...")

	if s.store == nil {
		if s.dbPath == "" {
			return ErrNoStore
		}
		store, err := repository.NewSQLiteStore(s.dbPath, repository.WithLogger(s.logger.Named("repository")))
		if err != nil {
			return fmt.Errorf("open pitch store: %w", err)
		}
		s.store = store
		s.ownsStore = true
		s.logger.Info(ctx, "using sqlite store", logger.String("path", s.dbPath))
	}

	s.pool = fetch.NewPool(s.store,
		fetch.WithWorkers(s.fetchWorkers),
		fetch.WithTimeout(s.fetchTimeout),
		fetch.WithLogger(s.logger.Named("fetch")),
	)
	s.scorer = scoring.NewCohortScorer(scoring.WithLogger(s.logger.Named("scoring")))

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "stuff score service started",
		logger.Int("fetchWorkers", s.fetchWorkers),
		logger.Duration("fetchTimeout", s.fetchTimeout),
		logger.Int("cohorts", len(s.cohorts)),
	)

	return nil
}

// Stop releases the store when the service opened it.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping stuff score service...")

	if s.ownsStore && s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error(context.Background(), "error closing store", logger.Error(err))
		}
		s.store = nil
		s.ownsStore = false
	}

	s.started = false
	s.logger.Info(context.Background(), "stuff score service stopped")
}

// Cohorts returns the configured cohort names in sorted order.
func (s *Service) Cohorts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.cohorts))
}

// Roster returns the members of cohort that have pitch data, ordered by name.
func (s *Service) Roster(ctx context.Context, cohort string) ([]pitch.Pitcher, error) {
	store, err := s.readyStore()
	if err != nil {
		return nil, err
	}

	names, ok := s.rosterNames(ctx, cohort)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCohort, cohort)
	}

	pitchers, err := store.Pitchers(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("load roster %s: %w", cohort, err)
	}
	return pitchers, nil
}

// Summary returns a pitcher's per-pitch-type rows rounded for display.
// Unknown pitchers yield an empty slice.
func (s *Service) Summary(ctx context.Context, pitcherID int64) ([]pitch.PitchTypeRow, error) {
	store, err := s.readyStore()
	if err != nil {
		return nil, err
	}
	return store.DisplaySummary(ctx, pitcherID)
}

// Highlights returns the notable pitches of one pitcher. It returns
// repository.ErrNotFound when the pitcher has no pitches.
func (s *Service) Highlights(ctx context.Context, pitcherID int64) (pitch.Highlights, error) {
	rows, err := s.Summary(ctx, pitcherID)
	if err != nil {
		return pitch.Highlights{}, err
	}
	h, ok := pitch.HighlightsOf(rows)
	if !ok {
		p, err := s.Pitcher(ctx, pitcherID)
		if err != nil {
			return pitch.Highlights{}, err
		}
		return pitch.Highlights{}, fmt.Errorf("pitcher %d (%s) has no pitches: %w", p.ID, p.Name, repository.ErrNotFound)
	}
	return h, nil
}

// Pitcher looks up one player by id, whether or not it has pitches. It
// returns repository.ErrNotFound for unknown ids.
func (s *Service) Pitcher(ctx context.Context, pitcherID int64) (pitch.Pitcher, error) {
	store, err := s.readyStore()
	if err != nil {
		return pitch.Pitcher{}, err
	}
	p, err := store.Player(ctx, pitcherID)
	if err != nil {
		return pitch.Pitcher{}, err
	}
	return pitch.Pitcher{ID: p.PlayerID, Name: p.Name()}, nil
}

// StuffScore computes the leaderboard for one cohort. The roster is loaded,
// every pitcher's rows are fetched, and only then is the cohort scored in a
// single pass. It returns scoring.ErrInsufficientCohort when fewer than two
// pitchers have data.
func (s *Service) StuffScore(ctx context.Context, cohort string) (types.Leaderboard, error) {
	pitchers, err := s.Roster(ctx, cohort)
	if err != nil {
		return types.Leaderboard{}, err
	}

	if len(pitchers) < 2 {
		metrics.RecordInsufficientCohort(cohort)
		s.logger.Warn(ctx, "not enough pitchers for stuff score",
			logger.String("cohort", cohort),
			logger.Int("pitchers", len(pitchers)),
		)
		return types.Leaderboard{}, scoring.ErrInsufficientCohort
	}

	s.mu.RLock()
	pool, scorer := s.pool, s.scorer
	s.mu.RUnlock()

	summaries, err := pool.Fetch(ctx, pitchers)
	if err != nil {
		return types.Leaderboard{}, err
	}

	return scorer.Score(ctx, scoring.Input{Cohort: cohort, Summaries: summaries})
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"fetchWorkers":   s.fetchWorkers,
		"fetchTimeoutMs": s.fetchTimeout.Milliseconds(),
		"cohorts":        len(s.cohorts),
	}

	if s.started {
		stats["fetchWorkers"] = s.pool.Workers()
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		if n, err := s.store.CountPitchers(context.Background()); err == nil {
			stats["pitchersWithData"] = n
		}
	}

	return stats
}

func (s *Service) readyStore() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

func (s *Service) rosterNames(ctx context.Context, cohort string) ([]string, bool) {
	s.mu.RLock()
	names, ok := s.cohorts[cohort]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return dedupe.Unique(ctx, names, dedupe.WithCaseFold()), true
}

// Package scoring turns per-pitch-type summaries into a ranked stuff score
// leaderboard: usage-weighted profiles, cohort Z-scores, a fixed-weight
// composite and a stable descending sort.
package scoring

import (
	"context"
	"time"

	"github.com/okian/stuffscore/internal/domain/pitch"
	"github.com/okian/stuffscore/internal/domain/types"
	"github.com/okian/stuffscore/pkg/logger"
	"github.com/okian/stuffscore/pkg/metrics"
)

// Input is one complete cohort snapshot to score.
type Input struct {
	Cohort    string
	Summaries []pitch.Summary
}

// Scorer computes a leaderboard for a complete cohort.
type Scorer interface {
	// Score returns ErrInsufficientCohort when fewer than two pitchers have data.
	Score(ctx context.Context, in Input) (types.Leaderboard, error)
}

// Option applies a configuration option to the CohortScorer.
type Option func(*CohortScorer)

// WithLogger sets the logger used to report scoring runs.
func WithLogger(l logger.Logger) Option {
	return func(s *CohortScorer) {
		if l != nil {
			s.logger = l
		}
	}
}

// CohortScorer implements Scorer on top of Compute and records metrics.
// It holds no per-request state and is safe for concurrent use.
type CohortScorer struct {
	logger logger.Logger
}

// NewCohortScorer creates a scorer with the given options.
func NewCohortScorer(opts ...Option) *CohortScorer {
	s := &CohortScorer{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score scores the cohort in one synchronous pass.
func (s *CohortScorer) Score(ctx context.Context, in Input) (types.Leaderboard, error) {
	start := time.Now()
	lb, err := Compute(in.Summaries)
	metrics.RecordScoringLatency(float64(time.Since(start).Microseconds()) / 1000)

	if err != nil {
		metrics.RecordInsufficientCohort(in.Cohort)
		if s.logger != nil {
			s.logger.Warn(ctx, "cohort cannot be scored",
				logger.String("cohort", in.Cohort),
				logger.Int("pitchers", len(in.Summaries)),
				logger.Error(err),
			)
		}
		return types.Leaderboard{}, err
	}

	metrics.RecordScoringRun(in.Cohort)
	metrics.UpdateCohortSize(in.Cohort, len(lb.Entries))
	if s.logger != nil {
		s.logger.Debug(ctx, "cohort scored",
			logger.String("cohort", in.Cohort),
			logger.Int("pitchers", len(lb.Entries)),
		)
	}
	return lb, nil
}

// Compute runs the full pipeline over a cohort. Pitchers without any rows
// are dropped first; if fewer than two remain it returns
// ErrInsufficientCohort. Intermediate values keep full precision and only
// the returned records are rounded.
func Compute(summaries []pitch.Summary) (types.Leaderboard, error) {
	profiles := make([]Profile, 0, len(summaries))
	for _, s := range summaries {
		if !s.HasData() {
			continue
		}
		profiles = append(profiles, Aggregate(s.Pitcher, s.Rows))
	}

	stats, err := Normalize(profiles)
	if err != nil {
		return types.Leaderboard{}, err
	}

	entries := make([]types.ScoreEntry, len(profiles))
	for i, p := range profiles {
		entries[i] = Entry(p, ZScores(p, stats))
	}
	Rank(entries)

	return types.Leaderboard{
		Entries:     entries,
		LeagueStats: LeagueStats(stats),
	}, nil
}

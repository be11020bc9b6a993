// Package seed writes a synthetic pitches database for every configured
// roster name so the service can run without the licensed dataset.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/stuffscore/internal/adapters/repository"
	"github.com/okian/stuffscore/pkg/logger"
)

// Validate checks that cfg can produce a database.
func (c *Config) Validate() error {
	switch {
	case c.DBPath == "":
		return fmt.Errorf("%w: db path is empty", ErrInvalidConfig)
	case c.PitchesPerPitcher <= 0:
		return fmt.Errorf("%w: pitches per pitcher must be positive, got %d", ErrInvalidConfig, c.PitchesPerPitcher)
	case c.ContactRate < 0 || c.ContactRate > 1:
		return fmt.Errorf("%w: contact rate must be within [0,1], got %v", ErrInvalidConfig, c.ContactRate)
	}
	return nil
}

// Run creates the schema at cfg.DBPath and fills it. Re-running with the
// same seed and rosters adds nothing new.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logger.Get().Named("seed")
	stats := &Stats{StartTime: time.Now()}

	names := rosterNames(ctx, cfg.Cohorts)
	if len(names) == 0 {
		return nil, ErrNoRosters
	}

	store, err := repository.NewSQLiteStore(cfg.DBPath, repository.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	log.Info(ctx, "seeding pitches database",
		logger.String("dbPath", cfg.DBPath),
		logger.Int("players", len(names)),
		logger.Int("pitchesPerPitcher", cfg.PitchesPerPitcher),
		logger.Any("seed", cfg.Seed))

	roster := players(names)
	if err := store.UpsertPlayers(ctx, roster); err != nil {
		return nil, fmt.Errorf("write players: %w", err)
	}
	stats.Players = len(roster)

	g := newGenerator(cfg)
	batch := make([]repository.Pitch, 0, insertBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := store.InsertPitches(ctx, batch); err != nil {
			return fmt.Errorf("write pitches: %w", err)
		}
		stats.Pitches += len(batch)
		batch = batch[:0]
		return nil
	}

	for _, p := range roster {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during seeding: %w", err)
		}
		for _, pt := range g.pitches(p) {
			batch = append(batch, pt)
			if len(batch) == insertBatchSize {
				if err := flush(); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	log.Info(ctx, "seeding complete",
		logger.Int("players", stats.Players),
		logger.Int("pitches", stats.Pitches),
		logger.Duration("duration", stats.Duration))
	return stats, nil
}

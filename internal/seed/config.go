package seed

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	DBPath            string              // SQLite file to create or extend
	Seed              uint64              // PRNG seed; equal seeds give identical data
	PitchesPerPitcher int                 // Pitches generated for each roster pitcher
	ContactRate       float64             // Share of pitches that carry batted-ball data
	Cohorts           map[string][]string // Rosters whose names become players
}

// Stats holds seeding statistics.
type Stats struct {
	Players   int
	Pitches   int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

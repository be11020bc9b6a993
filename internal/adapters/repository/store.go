// Package repository reads pitch data from the SQLite pitches database.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/okian/stuffscore/internal/domain/pitch"
	"github.com/okian/stuffscore/pkg/logger"
	"github.com/okian/stuffscore/pkg/metrics"
)

// Store provides read access to pitchers and their per-pitch-type summaries.
type Store interface {
	// Pitchers returns the roster members that have pitch data, ordered by
	// display name. Names that match no player are ignored.
	Pitchers(ctx context.Context, names []string) ([]pitch.Pitcher, error)

	// Summary returns the pitch-type rows used for scoring, most thrown first.
	// A pitcher without pitches yields an empty slice.
	Summary(ctx context.Context, pitcherID int64) ([]pitch.PitchTypeRow, error)

	// DisplaySummary is Summary with averages rounded for display.
	DisplaySummary(ctx context.Context, pitcherID int64) ([]pitch.PitchTypeRow, error)

	// CountPitchers returns how many players threw at least one pitch.
	CountPitchers(ctx context.Context) (int, error)

	// Player returns one row of the players table, or ErrNotFound.
	Player(ctx context.Context, id int64) (Player, error)

	Close() error
}

// Player is one row of the players table.
type Player struct {
	PlayerID int64  `db:"player_id"`
	NameUse  string `db:"name_use"`
	NameLast string `db:"name_last"`
}

// Name returns the display name used by rosters.
func (p Player) Name() string {
	return p.NameUse + " " + p.NameLast
}

// Pitch is one row of the pitches table. Nil measurements are stored as NULL.
type Pitch struct {
	PitchUID             string   `db:"pitch_uid"`
	PitcherID            int64    `db:"pitcher_id"`
	PitchType            string   `db:"pitch_type"`
	ReleaseSpeed         *float64 `db:"release_speed"`
	HorizontalBreak      *float64 `db:"horizontal_break"`
	InducedVerticalBreak *float64 `db:"induced_vertical_break"`
	SpinRate             *float64 `db:"spin_rate"`
	HitExitSpeed         *float64 `db:"hit_exit_speed"`
	HitLaunchAngle       *float64 `db:"hit_launch_angle"`
}

// summaryRow mirrors the summary queries before NULLs become nil pointers.
type summaryRow struct {
	PitchType               string          `db:"pitch_type"`
	PitchCount              int64           `db:"pitch_count"`
	UsagePct                sql.NullFloat64 `db:"usage_pct"`
	AvgSpeed                sql.NullFloat64 `db:"avg_speed"`
	AvgHorizontalBreak      sql.NullFloat64 `db:"avg_horizontal_break"`
	AvgInducedVerticalBreak sql.NullFloat64 `db:"avg_induced_vertical_break"`
	AvgSpinRate             sql.NullFloat64 `db:"avg_spin_rate"`
	AvgHitExitSpeed         sql.NullFloat64 `db:"avg_hit_exit_speed"`
	AvgHitLaunchAngle       sql.NullFloat64 `db:"avg_hit_launch_angle"`
}

func (r summaryRow) toDomain() pitch.PitchTypeRow {
	return pitch.PitchTypeRow{
		PitchType:               r.PitchType,
		PitchCount:              r.PitchCount,
		UsagePct:                nullable(r.UsagePct),
		AvgSpeed:                nullable(r.AvgSpeed),
		AvgHorizontalBreak:      nullable(r.AvgHorizontalBreak),
		AvgInducedVerticalBreak: nullable(r.AvgInducedVerticalBreak),
		AvgSpinRate:             nullable(r.AvgSpinRate),
		AvgHitExitSpeed:         nullable(r.AvgHitExitSpeed),
		AvgHitLaunchAngle:       nullable(r.AvgHitLaunchAngle),
	}
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return pitch.Float(v.Float64)
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db            *sqlx.DB
	logger        logger.Logger
	maxOpenConns  int
	busyTimeoutMs int
}

// NewSQLiteStore opens the SQLite database at path and creates the schema if
// it is missing.
func NewSQLiteStore(path string, opts ...Option) (*SQLiteStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	s := &SQLiteStore{
		maxOpenConns:  4,
		busyTimeoutMs: 5000,
	}
	for _, opt := range opts {
		opt(s)
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", path, s.busyTimeoutMs)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(s.maxOpenConns)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s.db = db
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Pitchers returns the roster members that have pitch data.
func (s *SQLiteStore) Pitchers(ctx context.Context, names []string) ([]pitch.Pitcher, error) {
	if len(names) == 0 {
		return []pitch.Pitcher{}, nil
	}
	defer s.observe("pitchers", time.Now())

	query, args, err := sqlx.In(rosterQuery, names)
	if err != nil {
		return nil, fmt.Errorf("expand roster query: %w", err)
	}

	out := []pitch.Pitcher{}
	if err := s.db.SelectContext(ctx, &out, s.db.Rebind(query), args...); err != nil {
		s.fail(ctx, "pitchers", err)
		return nil, fmt.Errorf("select pitchers: %w", err)
	}
	return out, nil
}

// Summary returns the full-precision rows used for scoring.
func (s *SQLiteStore) Summary(ctx context.Context, pitcherID int64) ([]pitch.PitchTypeRow, error) {
	defer s.observe("summary", time.Now())
	return s.summary(ctx, "summary", summaryQuery, pitcherID)
}

// DisplaySummary returns rows rounded the way the summary table shows them.
func (s *SQLiteStore) DisplaySummary(ctx context.Context, pitcherID int64) ([]pitch.PitchTypeRow, error) {
	defer s.observe("display_summary", time.Now())
	return s.summary(ctx, "display_summary", displaySummaryQuery, pitcherID)
}

func (s *SQLiteStore) summary(ctx context.Context, name, query string, pitcherID int64) ([]pitch.PitchTypeRow, error) {
	var rows []summaryRow
	if err := s.db.SelectContext(ctx, &rows, query, pitcherID); err != nil {
		s.fail(ctx, name, err)
		return nil, fmt.Errorf("select %s for pitcher %d: %w", name, pitcherID, err)
	}

	out := make([]pitch.PitchTypeRow, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// CountPitchers returns how many players threw at least one pitch.
func (s *SQLiteStore) CountPitchers(ctx context.Context) (int, error) {
	defer s.observe("count_pitchers", time.Now())

	var n int
	if err := s.db.GetContext(ctx, &n, countPitchersQuery); err != nil {
		s.fail(ctx, "count_pitchers", err)
		return 0, fmt.Errorf("count pitchers: %w", err)
	}
	return n, nil
}

// Player returns a single player by id.
func (s *SQLiteStore) Player(ctx context.Context, id int64) (Player, error) {
	defer s.observe("player", time.Now())

	var p Player
	err := s.db.GetContext(ctx, &p, `SELECT player_id, name_use, name_last FROM players WHERE player_id = ?`, id)
	if err == sql.ErrNoRows {
		return Player{}, fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	if err != nil {
		s.fail(ctx, "player", err)
		return Player{}, fmt.Errorf("get player %d: %w", id, err)
	}
	return p, nil
}

// UpsertPlayers inserts or renames players in one transaction.
func (s *SQLiteStore) UpsertPlayers(ctx context.Context, players []Player) error {
	defer s.observe("upsert_players", time.Now())
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, p := range players {
			if _, err := tx.NamedExecContext(ctx, upsertPlayer, p); err != nil {
				return fmt.Errorf("upsert player %d: %w", p.PlayerID, err)
			}
		}
		return nil
	})
}

// InsertPitches stores pitches in one transaction. Pitches whose uid is
// already present are skipped.
func (s *SQLiteStore) InsertPitches(ctx context.Context, pitches []Pitch) error {
	defer s.observe("insert_pitches", time.Now())
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		stmt, err := tx.PrepareNamedContext(ctx, insertPitch)
		if err != nil {
			return fmt.Errorf("prepare insert pitch: %w", err)
		}
		defer stmt.Close()

		for _, p := range pitches {
			if _, err := stmt.ExecContext(ctx, p); err != nil {
				return fmt.Errorf("insert pitch %s: %w", p.PitchUID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *SQLiteStore) observe(query string, start time.Time) {
	metrics.RecordStoreQueryLatency(query, float64(time.Since(start).Microseconds())/1000)
}

func (s *SQLiteStore) fail(ctx context.Context, query string, err error) {
	metrics.RecordErrorByComponent("repository", query)
	if s.logger != nil {
		s.logger.Error(ctx, "query failed", logger.String("query", query), logger.Error(err))
	}
}

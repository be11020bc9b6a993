package repository

const schema = `
CREATE TABLE IF NOT EXISTS players (
    player_id  INTEGER PRIMARY KEY,
    name_use   TEXT NOT NULL,
    name_last  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS pitches (
    pitch_uid               TEXT PRIMARY KEY,
    pitcher_id              INTEGER NOT NULL REFERENCES players(player_id),
    pitch_type              TEXT NOT NULL,
    release_speed           REAL,
    horizontal_break        REAL,
    induced_vertical_break  REAL,
    spin_rate               REAL,
    hit_exit_speed          REAL,
    hit_launch_angle        REAL
);

CREATE INDEX IF NOT EXISTS idx_pitches_pitcher ON pitches(pitcher_id);
CREATE INDEX IF NOT EXISTS idx_players_name ON players(name_use, name_last);
`

// rosterQuery matches display names ("name_use name_last") and keeps only
// players that threw at least one pitch.
const rosterQuery = `
SELECT DISTINCT
    pl.player_id AS pitcher_id,
    pl.name_use || ' ' || pl.name_last AS name
FROM players pl
INNER JOIN pitches pt ON pl.player_id = pt.pitcher_id
WHERE pl.name_use || ' ' || pl.name_last IN (?)
ORDER BY name, pitcher_id`

// summaryQuery feeds scoring. Usage is rounded to one decimal; the averages
// keep full precision.
const summaryQuery = `
WITH pitcher_pitches AS (
    SELECT * FROM pitches WHERE pitcher_id = ?
),
tot AS (
    SELECT COUNT(*) AS total_pitches FROM pitcher_pitches
)
SELECT
    pp.pitch_type,
    COUNT(*) AS pitch_count,
    ROUND(100.0 * COUNT(*) / tot.total_pitches, 1) AS usage_pct,
    AVG(pp.release_speed) AS avg_speed,
    AVG(pp.horizontal_break) AS avg_horizontal_break,
    AVG(pp.induced_vertical_break) AS avg_induced_vertical_break,
    AVG(pp.spin_rate) AS avg_spin_rate,
    AVG(pp.hit_exit_speed) AS avg_hit_exit_speed,
    AVG(pp.hit_launch_angle) AS avg_hit_launch_angle
FROM pitcher_pitches pp
CROSS JOIN tot
GROUP BY pp.pitch_type, tot.total_pitches
ORDER BY pitch_count DESC, pp.pitch_type`

// displaySummaryQuery is summaryQuery with every average rounded for display.
const displaySummaryQuery = `
WITH pitcher_pitches AS (
    SELECT * FROM pitches WHERE pitcher_id = ?
),
tot AS (
    SELECT COUNT(*) AS total_pitches FROM pitcher_pitches
)
SELECT
    pp.pitch_type,
    COUNT(*) AS pitch_count,
    ROUND(100.0 * COUNT(*) / tot.total_pitches, 1) AS usage_pct,
    ROUND(AVG(pp.release_speed), 1) AS avg_speed,
    ROUND(AVG(pp.horizontal_break), 2) AS avg_horizontal_break,
    ROUND(AVG(pp.induced_vertical_break), 2) AS avg_induced_vertical_break,
    ROUND(AVG(pp.spin_rate), 0) AS avg_spin_rate,
    ROUND(AVG(pp.hit_exit_speed), 1) AS avg_hit_exit_speed,
    ROUND(AVG(pp.hit_launch_angle), 1) AS avg_hit_launch_angle
FROM pitcher_pitches pp
CROSS JOIN tot
GROUP BY pp.pitch_type, tot.total_pitches
ORDER BY pitch_count DESC, pp.pitch_type`

const countPitchersQuery = `SELECT COUNT(DISTINCT pitcher_id) FROM pitches`

const upsertPlayer = `
INSERT INTO players (player_id, name_use, name_last)
VALUES (:player_id, :name_use, :name_last)
ON CONFLICT(player_id) DO UPDATE SET
    name_use = excluded.name_use,
    name_last = excluded.name_last`

const insertPitch = `
INSERT OR IGNORE INTO pitches (
    pitch_uid, pitcher_id, pitch_type, release_speed, horizontal_break,
    induced_vertical_break, spin_rate, hit_exit_speed, hit_launch_angle
) VALUES (
    :pitch_uid, :pitcher_id, :pitch_type, :release_speed, :horizontal_break,
    :induced_vertical_break, :spin_rate, :hit_exit_speed, :hit_launch_angle
)`

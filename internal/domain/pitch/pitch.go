// Package pitch contains the pitch-level records exchanged between the
// data provider and the scoring engine.
package pitch

// Pitcher identifies one pitcher in a cohort.
type Pitcher struct {
	ID   int64  `json:"pitcher_id" db:"pitcher_id"`
	Name string `json:"name" db:"name"`
}

// PitchTypeRow is the per-pitch-type summary of one pitcher.
// Nil averages mean the source had no tracking or batted-ball data of that
// kind for the pitch type.
type PitchTypeRow struct {
	PitchType               string   `json:"pitch_type" yaml:"pitch_type"`
	PitchCount              int64    `json:"pitch_count" yaml:"pitch_count"`
	UsagePct                *float64 `json:"usage_pct" yaml:"usage_pct"`
	AvgSpeed                *float64 `json:"avg_speed" yaml:"avg_speed"`
	AvgHorizontalBreak      *float64 `json:"avg_horizontal_break" yaml:"avg_horizontal_break"`
	AvgInducedVerticalBreak *float64 `json:"avg_induced_vertical_break" yaml:"avg_induced_vertical_break"`
	AvgSpinRate             *float64 `json:"avg_spin_rate" yaml:"avg_spin_rate"`
	AvgHitExitSpeed         *float64 `json:"avg_hit_exit_speed" yaml:"avg_hit_exit_speed"`
	AvgHitLaunchAngle       *float64 `json:"avg_hit_launch_angle" yaml:"avg_hit_launch_angle"`
}

// UsageFraction returns usage_pct/100, treating a missing usage as zero.
func (r PitchTypeRow) UsageFraction() float64 {
	if r.UsagePct == nil {
		return 0
	}
	return *r.UsagePct / 100
}

// Summary is one pitcher together with all of its pitch-type rows.
type Summary struct {
	Pitcher Pitcher
	Rows    []PitchTypeRow
}

// HasData reports whether the pitcher threw at least one pitch type.
func (s Summary) HasData() bool {
	return len(s.Rows) > 0
}

// Float returns a pointer to v. Handy for building rows in tests and seeds.
func Float(v float64) *float64 {
	return &v
}

package scoring

import (
	"gonum.org/v1/gonum/stat"
)

// Dimension identifies one of the six profile fields that get normalized.
type Dimension int

const (
	Speed Dimension = iota
	HorizontalBreak
	InducedVerticalBreak
	SpinRate
	ExitVelocity
	LaunchAngle

	dimensionCount
)

var dimensionNames = [dimensionCount]string{
	Speed:                "speed",
	HorizontalBreak:      "horizontal_break",
	InducedVerticalBreak: "induced_vertical_break",
	SpinRate:             "spin_rate",
	ExitVelocity:         "exit_velocity",
	LaunchAngle:          "launch_angle",
}

func (d Dimension) String() string {
	if d < 0 || d >= dimensionCount {
		return "unknown"
	}
	return dimensionNames[d]
}

// Dimensions lists every normalized dimension in a fixed order.
func Dimensions() []Dimension {
	return []Dimension{Speed, HorizontalBreak, InducedVerticalBreak, SpinRate, ExitVelocity, LaunchAngle}
}

// Included reports whether v counts toward the cohort statistics of d.
// A zero means "no data" everywhere; speed, breaks, spin and exit velocity
// must be positive while vertical break and launch angle only need to be
// nonzero.
func (d Dimension) Included(v float64) bool {
	switch d {
	case InducedVerticalBreak, LaunchAngle:
		return v != 0
	default:
		return v > 0
	}
}

// Flipped reports whether lower values are better for d. Flipped dimensions
// give pitchers without data a neutral zero instead of a penalty.
func (d Dimension) Flipped() bool {
	return d == ExitVelocity || d == LaunchAngle
}

// DimensionStats holds the cohort mean and population standard deviation of
// one dimension, computed over the included values only.
type DimensionStats struct {
	Mean     float64
	Std      float64
	Included int
}

// CohortStats holds the statistics of every dimension for one cohort.
type CohortStats struct {
	dims [dimensionCount]DimensionStats
}

// Of returns the statistics of dimension d.
func (s CohortStats) Of(d Dimension) DimensionStats {
	if d < 0 || d >= dimensionCount {
		return DimensionStats{Std: 1}
	}
	return s.dims[d]
}

// Normalize computes the cohort statistics over profiles. It returns
// ErrInsufficientCohort when fewer than two profiles are supplied.
//
// With no included values the mean is 0, and with fewer than two included
// values the standard deviation is 1.
func Normalize(profiles []Profile) (CohortStats, error) {
	var stats CohortStats
	if len(profiles) < minCohortSize {
		return stats, ErrInsufficientCohort
	}

	values := make([]float64, 0, len(profiles))
	for _, d := range Dimensions() {
		values = values[:0]
		for _, p := range profiles {
			if v := p.Value(d); d.Included(v) {
				values = append(values, v)
			}
		}
		stats.dims[d] = describe(values)
	}
	return stats, nil
}

func describe(values []float64) DimensionStats {
	ds := DimensionStats{Std: 1, Included: len(values)}
	switch len(values) {
	case 0:
	case 1:
		ds.Mean = values[0]
	default:
		ds.Mean, ds.Std = stat.PopMeanStdDev(values, nil)
	}
	return ds
}

// Components are the six full-precision Z-scores of one pitcher. Exit
// velocity and launch angle are already sign-flipped so that higher is
// always better.
type Components struct {
	Speed                float64
	SpinRate             float64
	InducedVerticalBreak float64
	HorizontalBreak      float64
	ExitVelocity         float64
	LaunchAngle          float64
}

func (c *Components) set(d Dimension, z float64) {
	switch d {
	case Speed:
		c.Speed = z
	case HorizontalBreak:
		c.HorizontalBreak = z
	case InducedVerticalBreak:
		c.InducedVerticalBreak = z
	case SpinRate:
		c.SpinRate = z
	case ExitVelocity:
		c.ExitVelocity = z
	case LaunchAngle:
		c.LaunchAngle = z
	}
}

// ZScore converts v into a Z-score for dimension d.
//
// Standard dimensions are scored for every pitcher, so a missing value is
// pulled toward a negative score. Flipped dimensions score (mean-v)/std
// and only when v itself passes the inclusion filter; otherwise 0.
func ZScore(d Dimension, v float64, s DimensionStats) float64 {
	if s.Std <= 0 {
		return 0
	}
	if d.Flipped() {
		if !d.Included(v) {
			return 0
		}
		return (s.Mean - v) / s.Std
	}
	return (v - s.Mean) / s.Std
}

// ZScores computes every component Z-score of p against the cohort.
func ZScores(p Profile, stats CohortStats) Components {
	var c Components
	for _, d := range Dimensions() {
		c.set(d, ZScore(d, p.Value(d), stats.Of(d)))
	}
	return c
}

package scoring

import (
	"cmp"
	"math"
	"slices"

	"github.com/okian/stuffscore/internal/domain/types"
)

// Rank sorts entries in place by stuff score, highest first. The sort is
// stable: equal scores keep their input order.
func Rank(entries []types.ScoreEntry) {
	slices.SortStableFunc(entries, func(a, b types.ScoreEntry) int {
		return cmp.Compare(b.StuffScore, a.StuffScore)
	})
}

// Round rounds x to the given number of decimal places, half away from zero.
func Round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

// Entry builds the rounded output row for one pitcher.
func Entry(p Profile, z Components) types.ScoreEntry {
	return types.ScoreEntry{
		PitcherID:  p.PitcherID,
		Name:       p.Name,
		StuffScore: Round(Composite(z), 3),
		ZSpeed:     Round(z.Speed, 3),
		ZSpin:      Round(z.SpinRate, 3),
		ZIVB:       Round(z.InducedVerticalBreak, 3),
		ZHB:        Round(z.HorizontalBreak, 3),
		ZEV:        Round(z.ExitVelocity, 3),
		ZLA:        Round(z.LaunchAngle, 3),
	}
}

// LeagueStats rounds the cohort statistics for output.
func LeagueStats(s CohortStats) types.LeagueStats {
	return types.LeagueStats{
		MeanSpeed: Round(s.Of(Speed).Mean, 2),
		StdSpeed:  Round(s.Of(Speed).Std, 2),
		MeanHB:    Round(s.Of(HorizontalBreak).Mean, 2),
		StdHB:     Round(s.Of(HorizontalBreak).Std, 2),
		MeanIVB:   Round(s.Of(InducedVerticalBreak).Mean, 2),
		StdIVB:    Round(s.Of(InducedVerticalBreak).Std, 2),
		MeanSpin:  Round(s.Of(SpinRate).Mean, 0),
		StdSpin:   Round(s.Of(SpinRate).Std, 0),
		MeanEV:    Round(s.Of(ExitVelocity).Mean, 2),
		StdEV:     Round(s.Of(ExitVelocity).Std, 2),
		MeanLA:    Round(s.Of(LaunchAngle).Mean, 2),
		StdLA:     Round(s.Of(LaunchAngle).Std, 2),
	}
}

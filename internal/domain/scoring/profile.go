package scoring

import (
	"math"

	"github.com/okian/stuffscore/internal/domain/pitch"
)

// Profile is one pitcher's usage-weighted summary across pitch types.
type Profile struct {
	PitcherID            int64
	Name                 string
	Speed                float64
	HorizontalBreak      float64
	InducedVerticalBreak float64
	SpinRate             float64
	ExitVelocity         float64
	LaunchAngle          float64
}

// Value returns the profile field backing dimension d.
func (p Profile) Value(d Dimension) float64 {
	switch d {
	case Speed:
		return p.Speed
	case HorizontalBreak:
		return p.HorizontalBreak
	case InducedVerticalBreak:
		return p.InducedVerticalBreak
	case SpinRate:
		return p.SpinRate
	case ExitVelocity:
		return p.ExitVelocity
	case LaunchAngle:
		return p.LaunchAngle
	default:
		return 0
	}
}

// Aggregate collapses a pitcher's per-pitch-type rows into one profile.
//
// Each field is the sum of usage_pct/100 times the row's average. Break
// magnitudes use the absolute value since direction does not matter. A nil
// average skips that field for that row only; the weight is never
// renormalized. Rows are taken as-is, without validating counts or usage.
func Aggregate(p pitch.Pitcher, rows []pitch.PitchTypeRow) Profile {
	out := Profile{PitcherID: p.ID, Name: p.Name}
	for _, r := range rows {
		w := r.UsageFraction()
		if r.AvgSpeed != nil {
			out.Speed += w * *r.AvgSpeed
		}
		if r.AvgHorizontalBreak != nil {
			out.HorizontalBreak += w * math.Abs(*r.AvgHorizontalBreak)
		}
		if r.AvgInducedVerticalBreak != nil {
			out.InducedVerticalBreak += w * math.Abs(*r.AvgInducedVerticalBreak)
		}
		if r.AvgSpinRate != nil {
			out.SpinRate += w * *r.AvgSpinRate
		}
		if r.AvgHitExitSpeed != nil {
			out.ExitVelocity += w * *r.AvgHitExitSpeed
		}
		if r.AvgHitLaunchAngle != nil {
			out.LaunchAngle += w * *r.AvgHitLaunchAngle
		}
	}
	return out
}

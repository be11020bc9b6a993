package scoring

// Fixed component weights of the stuff score. They sum to 1.
const (
	WeightSpeed                = 0.25
	WeightSpinRate             = 0.20
	WeightInducedVerticalBreak = 0.20
	WeightHorizontalBreak      = 0.15
	WeightExitVelocity         = 0.10
	WeightLaunchAngle          = 0.10
)

// Weights returns the component weights in Components field order.
func Weights() []float64 {
	return []float64{
		WeightSpeed,
		WeightSpinRate,
		WeightInducedVerticalBreak,
		WeightHorizontalBreak,
		WeightExitVelocity,
		WeightLaunchAngle,
	}
}

// Composite combines the six Z-scores into one stuff score at full precision.
func Composite(z Components) float64 {
	return WeightSpeed*z.Speed +
		WeightSpinRate*z.SpinRate +
		WeightInducedVerticalBreak*z.InducedVerticalBreak +
		WeightHorizontalBreak*z.HorizontalBreak +
		WeightExitVelocity*z.ExitVelocity +
		WeightLaunchAngle*z.LaunchAngle
}

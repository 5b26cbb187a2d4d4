package nutrition

import "math"

// rerCoefficient and rerExponent are the constants of the interspecies
// resting-energy formula RER = 70 * kg^0.75 (kcal/day).
const (
	rerCoefficient = 70.0
	rerExponent    = 0.75
)

// DefaultWeightLossFactor is the typical weight-loss guideline: feed ~80%
// of the RER at ideal weight.
const DefaultWeightLossFactor = 0.8

// RERKcal returns the Resting Energy Requirement in kcal/day for a mammal
// of the given body weight. The veterinary formula is defined in kcal, so
// that is the native unit here. Non-physical inputs are not guarded.
func RERKcal(weightKg float64) float64 {
	return rerCoefficient * math.Pow(weightKg, rerExponent)
}

// WeightLossTargetKcal returns a daily feeding target in kcal/day for
// weight loss: the RER at ideal weight scaled by factor (typically
// DefaultWeightLossFactor).
func WeightLossTargetKcal(idealWeightKg, factor float64) float64 {
	return RERKcal(idealWeightKg) * factor
}

// WeightLossTargetKJ is WeightLossTargetKcal converted to kJ/day.
func WeightLossTargetKJ(idealWeightKg, factor float64) float64 {
	return KcalToKJ(WeightLossTargetKcal(idealWeightKg, factor))
}

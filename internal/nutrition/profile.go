package nutrition

import "time"

// DogProfile describes the pet the plans are built for.
type DogProfile struct {
	Name            string
	CurrentWeightKg float64
	IdealWeightKg   float64
	Neutered        bool
	Notes           string
}

// RERKcal returns the profile's resting energy requirement at current
// weight, in kcal/day.
func (p DogProfile) RERKcal() float64 {
	return RERKcal(p.CurrentWeightKg)
}

// WeightLossTargetKcal returns the profile's daily weight-loss feeding
// target in kcal/day, using the RER at ideal weight scaled by factor.
func (p DogProfile) WeightLossTargetKcal(factor float64) float64 {
	return WeightLossTargetKcal(p.IdealWeightKg, factor)
}

// WeightLossTargetKJ is WeightLossTargetKcal in kJ/day.
func (p DogProfile) WeightLossTargetKJ(factor float64) float64 {
	return WeightLossTargetKJ(p.IdealWeightKg, factor)
}

// WeightEntry is one dated weigh-in.
type WeightEntry struct {
	Day      time.Time
	WeightKg float64
	Notes    string
}

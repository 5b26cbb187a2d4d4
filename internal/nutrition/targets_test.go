package nutrition

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRERKcal(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		want     float64
	}{
		{name: "35 kg dog", weightKg: 35.0, want: 70.0 * math.Pow(35.0, 0.75)},
		{name: "10 kg dog", weightKg: 10.0, want: 70.0 * math.Pow(10.0, 0.75)},
		{name: "zero weight", weightKg: 0, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, RERKcal(tc.weightKg), floatTolerance)
		})
	}

	// Worked example from the veterinary formula: ~1007.3 kcal/day at 35 kg.
	assert.InDelta(t, 1007.3, RERKcal(35.0), 0.1)
}

func TestWeightLossTargets(t *testing.T) {
	// ~805.8 kcal/day at 35 kg ideal weight and the default 0.8 factor.
	kcal := WeightLossTargetKcal(35.0, DefaultWeightLossFactor)
	assert.InDelta(t, 805.8, kcal, 0.1)
	assert.InDelta(t, RERKcal(35.0)*0.8, kcal, floatTolerance)

	assert.InDelta(t, KcalToKJ(kcal), WeightLossTargetKJ(35.0, DefaultWeightLossFactor), floatTolerance)

	// A different factor scales linearly.
	assert.InDelta(t, RERKcal(20.0)*0.9, WeightLossTargetKcal(20.0, 0.9), floatTolerance)
}

func TestDogProfileTargets(t *testing.T) {
	profile := DogProfile{
		Name:            "Maple",
		CurrentWeightKg: 38.5,
		IdealWeightKg:   35.0,
		Neutered:        true,
	}

	assert.InDelta(t, RERKcal(38.5), profile.RERKcal(), floatTolerance)
	assert.InDelta(t, WeightLossTargetKcal(35.0, 0.8), profile.WeightLossTargetKcal(0.8), floatTolerance)
	assert.InDelta(t, WeightLossTargetKJ(35.0, 0.8), profile.WeightLossTargetKJ(0.8), floatTolerance)
}

func TestWeightEntry(t *testing.T) {
	entry := WeightEntry{
		Day:      time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		WeightKg: 37.9,
		Notes:    "after morning walk",
	}

	assert.Equal(t, 37.9, entry.WeightKg)
	assert.Equal(t, time.August, entry.Day.Month())
}

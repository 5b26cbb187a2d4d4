// Package nutrition models pet food energy and cost: food items with fixed
// energy density and unit price, recipes built from weighed ingredients,
// dated meal plans, and the veterinary daily-target formulas. Every derived
// quantity is recomputed on access from immutable inputs, so values are
// always consistent with the data they were built from.
package nutrition

// KJPerKcal is the fixed conversion constant between kilojoules and
// kilocalories (thermochemical calorie).
const KJPerKcal = 4.184

// KcalToKJ converts kilocalories to kilojoules.
func KcalToKJ(kcal float64) float64 {
	return kcal * KJPerKcal
}

// KJToKcal converts kilojoules to kilocalories.
func KJToKcal(kj float64) float64 {
	return kj / KJPerKcal
}

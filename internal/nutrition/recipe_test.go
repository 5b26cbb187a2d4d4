package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChicken() *FoodItem {
	return NewFoodItem("chicken breast", CategoryProtein, 6903.6, 17.61, "")
}

func testRice() *FoodItem {
	return NewFoodItem("white rice", CategoryCarb, 5439.2, 0.75, "")
}

func TestIngredientDerivedValues(t *testing.T) {
	r := NewRecipe("test")
	r.Add(testChicken(), 140)

	ings := r.Ingredients()
	require.Len(t, ings, 1)

	ing := ings[0]
	assert.Equal(t, "chicken breast", ing.Food().Name())
	assert.InDelta(t, 140.0, ing.Grams(), floatTolerance)
	assert.InDelta(t, 966.504, ing.EnergyKJ(), floatTolerance)
	assert.InDelta(t, 966.504/4.184, ing.EnergyKcal(), floatTolerance)
	assert.InDelta(t, 2.4654, ing.Cost(), floatTolerance)
}

func TestRecipeTotals(t *testing.T) {
	// Worked example: chicken 140 g + rice 156 g.
	r := NewRecipe("chicken and rice")
	r.Add(testChicken(), 140)
	r.Add(testRice(), 156)

	assert.InDelta(t, 1815.0192, r.TotalKJ(), floatTolerance)
	assert.InDelta(t, 1815.0192/4.184, r.TotalKcal(), floatTolerance)
	assert.InDelta(t, 140*17.61/1000.0+156*0.75/1000.0, r.TotalCost(), floatTolerance)
}

func TestRecipeTotalsAreSumOfIngredients(t *testing.T) {
	r := NewRecipe("mixed")
	r.Add(testChicken(), 140)
	r.Add(testRice(), 156)
	r.Add(NewFoodItem("green beans", CategoryVeg, 1757.3, 4.00, ""), 80)

	var wantKJ, wantCost float64
	for _, ing := range r.Ingredients() {
		wantKJ += ing.EnergyKJ()
		wantCost += ing.Cost()
	}

	assert.InDelta(t, wantKJ, r.TotalKJ(), floatTolerance)
	assert.InDelta(t, wantCost, r.TotalCost(), floatTolerance)
	assert.InDelta(t, KJToKcal(wantKJ), r.TotalKcal(), floatTolerance)
}

func TestEmptyRecipeTotalsAreZero(t *testing.T) {
	r := NewRecipe("empty")

	assert.Zero(t, r.TotalKJ())
	assert.Zero(t, r.TotalKcal())
	assert.Zero(t, r.TotalCost())
	assert.Empty(t, r.Ingredients())
	assert.Empty(t, r.EnergyKJByFood())
	assert.Empty(t, r.EnergyKJByCategory())
}

func TestRecipeTotalsTrackLaterAdditions(t *testing.T) {
	// Totals are recomputed on access, never cached.
	r := NewRecipe("growing")
	r.Add(testChicken(), 100)
	first := r.TotalKJ()

	r.Add(testChicken(), 100)
	assert.InDelta(t, 2*first, r.TotalKJ(), floatTolerance)
}

func TestEnergyKJByFoodMergesByName(t *testing.T) {
	// Two distinct FoodItem values sharing a name collapse into one entry.
	r := NewRecipe("double chicken")
	r.Add(testChicken(), 100)
	r.Add(NewFoodItem("chicken breast", CategoryProtein, 6903.6, 18.00, ""), 50)
	r.Add(testRice(), 156)

	byFood := r.EnergyKJByFood()
	require.Len(t, byFood, 2)
	assert.InDelta(t, 6903.6*150/1000.0, byFood["chicken breast"], floatTolerance)
	assert.InDelta(t, 5439.2*156/1000.0, byFood["white rice"], floatTolerance)
}

func TestEnergyKJByCategorySumsToTotal(t *testing.T) {
	r := NewRecipe("full bowl")
	r.Add(testChicken(), 140)
	r.Add(testRice(), 156)
	r.Add(NewFoodItem("carrots", CategoryVeg, 1475.1, 2.60, ""), 60)
	r.Add(NewFoodItem("fish oil", CategorySupplement, 37000, 40.00, ""), 5)

	byCat := r.EnergyKJByCategory()
	require.Len(t, byCat, 4)

	var sum float64
	for _, kj := range byCat {
		sum += kj
	}
	assert.InDelta(t, r.TotalKJ(), sum, floatTolerance)
}

func TestRecipeIngredientOrderIsAdditionOrder(t *testing.T) {
	r := NewRecipe("ordered")
	r.Add(testRice(), 156)
	r.Add(testChicken(), 140)

	ings := r.Ingredients()
	require.Len(t, ings, 2)
	assert.Equal(t, "white rice", ings[0].Food().Name())
	assert.Equal(t, "chicken breast", ings[1].Food().Name())
}

func TestRecipeNotes(t *testing.T) {
	r := NewRecipeWithNotes("bland diet", "for upset stomachs")
	assert.Equal(t, "bland diet", r.Name())
	assert.Equal(t, "for upset stomachs", r.Notes())
}

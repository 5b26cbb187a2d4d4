package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGroceryListSharedFood(t *testing.T) {
	// One shared FoodItem used at 100 g and 50 g across two plans totals
	// 150 g on the grocery list.
	chicken := testChicken()

	r1 := NewRecipe("day one bowl")
	r1.Add(chicken, 100)
	p1 := NewDailyMealPlan(testDay(1))
	p1.AddRecipe(r1)

	r2 := NewRecipe("day two bowl")
	r2.Add(chicken, 50)
	p2 := NewDailyMealPlan(testDay(2))
	p2.AddRecipe(r2)

	list := BuildGroceryList([]*DailyMealPlan{p1, p2})

	require.Len(t, list, 1)
	assert.InDelta(t, 150.0, list.Grams("chicken breast"), floatTolerance)
}

func TestBuildGroceryListMergesByName(t *testing.T) {
	// Two equal-but-distinct FoodItem values merge under their shared name;
	// the first-seen item supplies price and density.
	first := NewFoodItem("white rice", CategoryCarb, 5439.2, 0.75, "")
	second := NewFoodItem("white rice", CategoryCarb, 5439.2, 0.80, "")

	r := NewRecipe("rice twice")
	r.Add(first, 200)
	r.Add(second, 100)
	p := NewDailyMealPlan(testDay(3))
	p.AddRecipe(r)

	list := BuildGroceryList([]*DailyMealPlan{p})

	require.Len(t, list, 1)
	assert.InDelta(t, 300.0, list.Grams("white rice"), floatTolerance)
	assert.Same(t, first, list["white rice"].Food)
}

func TestGroceryListLinesSortedByName(t *testing.T) {
	r := NewRecipe("bowl")
	r.Add(testRice(), 156)
	r.Add(testChicken(), 140)
	r.Add(NewFoodItem("green beans", CategoryVeg, 1757.3, 4.00, ""), 80)
	p := NewDailyMealPlan(testDay(4))
	p.AddRecipe(r)

	lines := BuildGroceryList([]*DailyMealPlan{p}).Lines()

	require.Len(t, lines, 3)
	assert.Equal(t, "chicken breast", lines[0].Food.Name())
	assert.Equal(t, "green beans", lines[1].Food.Name())
	assert.Equal(t, "white rice", lines[2].Food.Name())
}

func TestGroceryListCosts(t *testing.T) {
	r := NewRecipe("bowl")
	r.Add(testChicken(), 1000)
	r.Add(testRice(), 2000)
	p := NewDailyMealPlan(testDay(5))
	p.AddRecipe(r)

	list := BuildGroceryList([]*DailyMealPlan{p})

	assert.InDelta(t, 17.61, list["chicken breast"].Cost(), floatTolerance)
	assert.InDelta(t, 17.61+1.50, list.TotalCost(), floatTolerance)
}

func TestBuildGroceryListEmpty(t *testing.T) {
	assert.Empty(t, BuildGroceryList(nil))
	assert.Zero(t, BuildGroceryList(nil).Grams("anything"))
}

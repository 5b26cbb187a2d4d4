package nutrition

import "sort"

// GroceryLine is one food on a grocery list with the total mass required.
type GroceryLine struct {
	Food  *FoodItem
	Grams float64
}

// Cost returns the cost in dollars of buying this line's mass of the food.
func (l GroceryLine) Cost() float64 {
	return l.Food.Cost(l.Grams)
}

// GroceryList maps food names to the total grams required across a set of
// meal plans. Keying is by name, not by object identity: two FoodItem
// values that share a name are treated as the same grocery line, with the
// first-seen item supplying density and price.
type GroceryList map[string]GroceryLine

// BuildGroceryList sums ingredient masses across every recipe in every
// plan. Pure function: the plans are not modified.
func BuildGroceryList(plans []*DailyMealPlan) GroceryList {
	out := make(GroceryList)
	for _, plan := range plans {
		for _, recipe := range plan.Recipes() {
			for _, ing := range recipe.Ingredients() {
				line := out[ing.Food().Name()]
				if line.Food == nil {
					line.Food = ing.Food()
				}
				line.Grams += ing.Grams()
				out[ing.Food().Name()] = line
			}
		}
	}
	return out
}

// Grams returns the total grams required for the named food, or zero if
// the food is not on the list.
func (g GroceryList) Grams(name string) float64 {
	return g[name].Grams
}

// Lines returns the list sorted by food name for deterministic output.
func (g GroceryList) Lines() []GroceryLine {
	lines := make([]GroceryLine, 0, len(g))
	for _, line := range g {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Food.Name() < lines[j].Food.Name()
	})
	return lines
}

// TotalCost returns the cost in dollars of buying every line on the list.
func (g GroceryList) TotalCost() float64 {
	var total float64
	for _, line := range g {
		total += line.Cost()
	}
	return total
}

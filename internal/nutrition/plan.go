package nutrition

import "time"

// DailyMealPlan is the ordered set of recipes fed on one calendar date.
// Recipes are held by reference; editing a recipe after adding it is
// reflected in the plan totals, which sum over recipes exactly the way a
// recipe sums over ingredients.
type DailyMealPlan struct {
	day     time.Time
	recipes []*Recipe
}

// NewDailyMealPlan constructs an empty plan for the given date. Only the
// date portion of day is meaningful.
func NewDailyMealPlan(day time.Time) *DailyMealPlan {
	return &DailyMealPlan{day: day}
}

// Day returns the plan's calendar date.
func (p *DailyMealPlan) Day() time.Time { return p.day }

// AddRecipe appends a recipe to the plan.
func (p *DailyMealPlan) AddRecipe(r *Recipe) {
	p.recipes = append(p.recipes, r)
}

// Recipes returns the plan's recipes in addition order. The returned slice
// is a copy.
func (p *DailyMealPlan) Recipes() []*Recipe {
	out := make([]*Recipe, len(p.recipes))
	copy(out, p.recipes)
	return out
}

// TotalKJ returns the summed energy of all recipes in kJ.
func (p *DailyMealPlan) TotalKJ() float64 {
	var total float64
	for _, r := range p.recipes {
		total += r.TotalKJ()
	}
	return total
}

// TotalKcal returns the summed energy of all recipes in kcal.
func (p *DailyMealPlan) TotalKcal() float64 {
	return KJToKcal(p.TotalKJ())
}

// TotalCost returns the summed cost of all recipes in dollars.
func (p *DailyMealPlan) TotalCost() float64 {
	var total float64
	for _, r := range p.recipes {
		total += r.TotalCost()
	}
	return total
}

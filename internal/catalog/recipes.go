package catalog

import (
	"time"

	"github.com/rgreer/pawfuel/internal/nutrition"
)

// ChickenRiceBowl builds the basic bland-diet meal: chicken breast over
// white rice. Recipes are mutable, so each call builds a fresh one.
func ChickenRiceBowl() *nutrition.Recipe {
	r := nutrition.NewRecipeWithNotes("Chicken & rice bowl", "Basic bland diet; weigh after cooking.")
	r.Add(chickenBreast, 140)
	r.Add(whiteRice, 156)
	return r
}

// ChickenVegBowl builds the vegetable-topped variant used for weight-loss
// weeks: less rice, thigh for palatability, and low-energy vegetables for
// volume.
func ChickenVegBowl() *nutrition.Recipe {
	r := nutrition.NewRecipeWithNotes("Chicken & veg bowl", "Weight-loss variant; vegetables add volume, not energy.")
	r.Add(chickenThigh, 120)
	r.Add(brownRice, 100)
	r.Add(greenBeans, 80)
	r.Add(carrots, 60)
	return r
}

// DailyPlan builds a one-day plan for the given date: the rice bowl in the
// morning and the veg bowl in the evening.
func DailyPlan(day time.Time) *nutrition.DailyMealPlan {
	plan := nutrition.NewDailyMealPlan(day)
	plan.AddRecipe(ChickenRiceBowl())
	plan.AddRecipe(ChickenVegBowl())
	return plan
}

// WeekPlan builds consecutive daily plans starting at the given date.
func WeekPlan(start time.Time, days int) []*nutrition.DailyMealPlan {
	plans := make([]*nutrition.DailyMealPlan, 0, days)
	for i := 0; i < days; i++ {
		plans = append(plans, DailyPlan(start.AddDate(0, 0, i)))
	}
	return plans
}

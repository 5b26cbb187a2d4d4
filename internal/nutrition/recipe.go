package nutrition

// Ingredient is one weighed addition of a food to a recipe. The food is a
// shared reference (food items are immutable and referenced by many
// ingredients); grams is fixed when the ingredient is added.
type Ingredient struct {
	food  *FoodItem
	grams float64
}

// Food returns the referenced food item.
func (i Ingredient) Food() *FoodItem { return i.food }

// Grams returns the mass of this ingredient.
func (i Ingredient) Grams() float64 { return i.grams }

// EnergyKJ returns the ingredient's energy in kJ.
func (i Ingredient) EnergyKJ() float64 {
	return i.food.EnergyKJ(i.grams)
}

// EnergyKcal returns the ingredient's energy in kcal.
func (i Ingredient) EnergyKcal() float64 {
	return i.food.EnergyKcal(i.grams)
}

// Cost returns the ingredient's cost in dollars.
func (i Ingredient) Cost() float64 {
	return i.food.Cost(i.grams)
}

// Recipe is one meal: a named, ordered list of weighed ingredients.
// Ingredient order is addition order and matters only for display. Totals
// are recomputed on every call, so they always reflect the current
// ingredient list.
type Recipe struct {
	name        string
	ingredients []Ingredient
	notes       string
}

// NewRecipe constructs an empty recipe.
func NewRecipe(name string) *Recipe {
	return &Recipe{name: name}
}

// NewRecipeWithNotes constructs an empty recipe carrying free-form notes.
func NewRecipeWithNotes(name, notes string) *Recipe {
	return &Recipe{name: name, notes: notes}
}

// Name returns the recipe name.
func (r *Recipe) Name() string { return r.name }

// Notes returns the recipe notes.
func (r *Recipe) Notes() string { return r.notes }

// Add appends one weighed ingredient to the recipe.
func (r *Recipe) Add(food *FoodItem, grams float64) {
	r.ingredients = append(r.ingredients, Ingredient{food: food, grams: grams})
}

// Ingredients returns the ingredients in addition order. The returned
// slice is a copy; the recipe's own list cannot be reordered through it.
func (r *Recipe) Ingredients() []Ingredient {
	out := make([]Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// TotalKJ returns the summed energy of all ingredients in kJ.
func (r *Recipe) TotalKJ() float64 {
	var total float64
	for _, ing := range r.ingredients {
		total += ing.EnergyKJ()
	}
	return total
}

// TotalKcal returns the summed energy of all ingredients in kcal.
func (r *Recipe) TotalKcal() float64 {
	return KJToKcal(r.TotalKJ())
}

// TotalCost returns the summed cost of all ingredients in dollars.
func (r *Recipe) TotalCost() float64 {
	var total float64
	for _, ing := range r.ingredients {
		total += ing.Cost()
	}
	return total
}

// EnergyKJByFood returns energy in kJ grouped by food name. Two distinct
// FoodItem values sharing a name are merged.
func (r *Recipe) EnergyKJByFood() map[string]float64 {
	out := make(map[string]float64, len(r.ingredients))
	for _, ing := range r.ingredients {
		out[ing.food.Name()] += ing.EnergyKJ()
	}
	return out
}

// EnergyKJByCategory returns energy in kJ grouped by food category.
// The values always sum to TotalKJ.
func (r *Recipe) EnergyKJByCategory() map[FoodCategory]float64 {
	out := make(map[FoodCategory]float64)
	for _, ing := range r.ingredients {
		out[ing.food.Category()] += ing.EnergyKJ()
	}
	return out
}

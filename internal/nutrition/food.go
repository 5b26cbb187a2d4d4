package nutrition

import (
	"errors"
	"fmt"
	"strings"
)

// FoodCategory classifies a food item. The set is closed; there is no
// polymorphism behind it.
type FoodCategory string

// Valid food categories.
const (
	CategoryProtein    FoodCategory = "PROTEIN"
	CategoryCarb       FoodCategory = "CARB"
	CategoryFat        FoodCategory = "FAT"
	CategoryVeg        FoodCategory = "VEG"
	CategorySupplement FoodCategory = "SUPPLEMENT"
	CategoryOther      FoodCategory = "OTHER"
)

// ErrUnknownCategory is returned by ParseCategory for values outside the
// closed category set.
var ErrUnknownCategory = errors.New("unknown food category")

// Categories returns all valid categories in declaration order.
func Categories() []FoodCategory {
	return []FoodCategory{
		CategoryProtein,
		CategoryCarb,
		CategoryFat,
		CategoryVeg,
		CategorySupplement,
		CategoryOther,
	}
}

// ParseCategory maps case-insensitive text to a FoodCategory.
// Only the config/CLI layer parses categories; the core model takes them
// as typed values.
func ParseCategory(s string) (FoodCategory, error) {
	c := FoodCategory(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryProtein, CategoryCarb, CategoryFat, CategoryVeg, CategorySupplement, CategoryOther:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// gramsPerKg converts per-kilogram densities to per-gram values.
const gramsPerKg = 1000.0

// FoodItem is an immutable record of a prepared food's energy density and
// unit cost. Fields are fixed at construction; items are shared by
// reference between ingredients and never mutated. The name is the unique
// key for aggregation.
type FoodItem struct {
	name         string
	category     FoodCategory
	kjPerKg      float64
	dollarsPerKg float64
	notes        string
}

// NewFoodItem constructs a food item. Inputs are not validated: the model
// accepts any numeric density or price and leaves range checks to callers
// that need them.
func NewFoodItem(name string, category FoodCategory, kjPerKg, dollarsPerKg float64, notes string) *FoodItem {
	return &FoodItem{
		name:         name,
		category:     category,
		kjPerKg:      kjPerKg,
		dollarsPerKg: dollarsPerKg,
		notes:        notes,
	}
}

// Name returns the food's unique name.
func (f *FoodItem) Name() string { return f.name }

// Category returns the food's category.
func (f *FoodItem) Category() FoodCategory { return f.category }

// KJPerKg returns the energy density in kJ per kilogram of prepared food.
func (f *FoodItem) KJPerKg() float64 { return f.kjPerKg }

// DollarsPerKg returns the cost per kilogram of prepared food.
func (f *FoodItem) DollarsPerKg() float64 { return f.dollarsPerKg }

// Notes returns the free-form sourcing notes.
func (f *FoodItem) Notes() string { return f.notes }

// KJPerGram returns the energy density in kJ per gram.
func (f *FoodItem) KJPerGram() float64 {
	return f.kjPerKg / gramsPerKg
}

// EnergyKJ returns the energy in kJ of the given mass of this food.
func (f *FoodItem) EnergyKJ(grams float64) float64 {
	return f.KJPerGram() * grams
}

// EnergyKcal returns the energy in kcal of the given mass of this food.
func (f *FoodItem) EnergyKcal(grams float64) float64 {
	return KJToKcal(f.EnergyKJ(grams))
}

// Cost returns the cost in dollars of the given mass of this food.
func (f *FoodItem) Cost(grams float64) float64 {
	return f.dollarsPerKg * (grams / gramsPerKg)
}

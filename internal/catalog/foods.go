// Package catalog holds the static food and recipe data the planning tool
// ships with: prepared-food energy densities sourced from USDA listings and
// grocery prices in CAD/kg from Canadian store listings. Everything here is
// built once at init and treated as immutable.
package catalog

import "github.com/rgreer/pawfuel/internal/nutrition"

// Prepared foods. Energy densities are for cooked weights; prices are per
// kilogram of prepared food (rice prices assume ~3x cooked yield from dry).
var (
	chickenBreast = nutrition.NewFoodItem(
		"Chicken breast, cooked (meat only)",
		nutrition.CategoryProtein,
		6903.6, // 165 kcal/100g
		17.61,
		"Energy: roasted chicken breast (USDA). Price: Real Canadian Superstore club pack.",
	)

	chickenThigh = nutrition.NewFoodItem(
		"Chicken thigh, cooked (boneless/skinless)",
		nutrition.CategoryProtein,
		7490.0, // 179 kcal/100g
		20.92,
		"Energy: cooked boneless/skinless thigh (USDA). Price: Real Canadian Superstore club pack.",
	)

	whiteRice = nutrition.NewFoodItem(
		"White rice, cooked (long-grain, enriched)",
		nutrition.CategoryCarb,
		5439.2, // 130 kcal/100g
		0.75,
		"Energy: cooked long-grain white rice (USDA). Price: derived from No Frills 8 kg dry bag, ~3x cooked yield.",
	)

	brownRice = nutrition.NewFoodItem(
		"Brown rice, cooked (long-grain)",
		nutrition.CategoryCarb,
		5146.3, // 123 kcal/100g
		0.80,
		"Energy: cooked long-grain brown rice (USDA). Price: derived from No Frills dry brown rice, ~3x cooked yield.",
	)

	mixedVegetables = nutrition.NewFoodItem(
		"Mixed vegetables, frozen (prepared/cooked)",
		nutrition.CategoryVeg,
		3012.5, // 72 kcal/100g
		3.25,
		"Energy: frozen mixed vegetables (USDA). Price: No Frills 2 kg frozen bag.",
	)

	greenBeans = nutrition.NewFoodItem(
		"Green beans, cooked",
		nutrition.CategoryVeg,
		1757.3, // 42 kcal/100g
		4.00,
		"Energy: cooked green beans (USDA). Price: No Frills frozen 750 g bag.",
	)

	carrots = nutrition.NewFoodItem(
		"Carrots, cooked (boiled, drained)",
		nutrition.CategoryVeg,
		1475.1, // 55 kcal per 156 g cup
		2.60,
		"Energy: boiled carrots (USDA, converted from 1 cup / 156 g). Price: No Frills 3 lb bag.",
	)

	butternutSquash = nutrition.NewFoodItem(
		"Butternut squash, cooked (baked/roasted)",
		nutrition.CategoryVeg,
		1673.6, // 82 kcal per 205 g cup
		4.39,
		"Energy: baked butternut squash (USDA, converted from 1 cup / 205 g). Price: No Frills fresh produce.",
	)
)

// foods lists the catalog in definition order.
var foods = []*nutrition.FoodItem{
	chickenBreast,
	chickenThigh,
	whiteRice,
	brownRice,
	mixedVegetables,
	greenBeans,
	carrots,
	butternutSquash,
}

// Foods returns the catalog foods in definition order. The returned slice
// is a copy; the items themselves are shared immutable values.
func Foods() []*nutrition.FoodItem {
	out := make([]*nutrition.FoodItem, len(foods))
	copy(out, foods)
	return out
}

// FoodsByName returns a name-keyed index of the catalog.
func FoodsByName() map[string]*nutrition.FoodItem {
	out := make(map[string]*nutrition.FoodItem, len(foods))
	for _, f := range foods {
		out[f.Name()] = f
	}
	return out
}

// Lookup returns the catalog food with the given name, or false if the
// catalog has no such food.
func Lookup(name string) (*nutrition.FoodItem, bool) {
	for _, f := range foods {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Package export flattens the nutrition model into row-per-record tables
// for display or CSV export. Row building is pure; the only I/O is the
// caller-supplied writer handed to WriteCSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rgreer/pawfuel/internal/nutrition"
)

// FoodHeader is the column order of rows produced by FoodRows.
var FoodHeader = []string{"name", "category", "kj_per_kg", "dollars_per_kg", "notes"}

// IngredientHeader is the column order of rows produced by IngredientRows.
var IngredientHeader = []string{
	"recipe_name",
	"food_name",
	"grams",
	"energy_kj",
	"energy_kcal",
	"ingredient_cost",
	"recipe_total_kj",
	"recipe_total_kcal",
	"recipe_total_cost",
}

// formatFloat renders a float with the minimum digits that round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FoodRows returns one row per food, ordered as given, under FoodHeader.
// The header is the first row.
func FoodRows(foods []*nutrition.FoodItem) [][]string {
	rows := make([][]string, 0, len(foods)+1)
	rows = append(rows, FoodHeader)
	for _, f := range foods {
		rows = append(rows, []string{
			f.Name(),
			string(f.Category()),
			formatFloat(f.KJPerKg()),
			formatFloat(f.DollarsPerKg()),
			f.Notes(),
		})
	}
	return rows
}

// IngredientRows returns one row per ingredient across the given recipes,
// in recipe order then addition order, under IngredientHeader. Each row
// repeats its recipe's totals so the table is self-contained.
func IngredientRows(recipes []*nutrition.Recipe) [][]string {
	rows := [][]string{IngredientHeader}
	for _, r := range recipes {
		totalKJ := r.TotalKJ()
		totalKcal := r.TotalKcal()
		totalCost := r.TotalCost()
		for _, ing := range r.Ingredients() {
			rows = append(rows, []string{
				r.Name(),
				ing.Food().Name(),
				formatFloat(ing.Grams()),
				formatFloat(ing.EnergyKJ()),
				formatFloat(ing.EnergyKcal()),
				formatFloat(ing.Cost()),
				formatFloat(totalKJ),
				formatFloat(totalKcal),
				formatFloat(totalCost),
			})
		}
	}
	return rows
}

// WriteCSV writes rows to w in CSV form.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Package shopping turns one calendar week of plan slots into a scaled,
// deduplicated ingredient shopping list.
package shopping

import (
	"sort"
	"strings"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/normalize"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/planner"
)

// Item is one aggregated shopping list row, keyed by normalized name and
// unit. Category and name display values come from the first-seen line.
type Item struct {
	IngredientName string  `json:"ingredient_name"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity"`
}

// Aggregate builds the automatic shopping list for one calendar week of a
// plan. Each contributing slot scales its recipe's whole-recipe ingredient
// quantities by servings/recipeServings; spice-category lines are skipped.
// Rows come back sorted by category, then name.
func Aggregate(slots []models.PlanSlot, recipes map[string]models.Recipe, startMonday string, weekOffset int, defaultServings int) []Item {
	totals := make(map[string]*Item)

	for _, slot := range slots {
		if planner.WeekIndex(startMonday, slot.SlotDate) != weekOffset {
			continue
		}
		if slot.Status == models.SlotStatusOut || slot.RecipeID == nil {
			continue
		}
		recipe, ok := recipes[*slot.RecipeID]
		if !ok {
			continue
		}

		servings := defaultServings
		if slot.ServingsOverride != nil {
			servings = *slot.ServingsOverride
		}
		recipeServings := recipe.RecipeServings
		if recipeServings <= 0 {
			recipeServings = 1
		}
		scale := float64(servings) / float64(recipeServings)

		for _, line := range recipe.Ingredients {
			category := line.Category
			if category == "" {
				category = "General"
			}
			if strings.Contains(strings.ToLower(normalize.StripAccents(category)), "especia") {
				continue
			}

			name := line.IngredientBase
			if name == "" {
				name = line.IngredientName
			}
			normalizedName := normalize.IngredientName(name)
			unit := normalize.Unit(line.Unit)

			key := normalizedName + "|" + unit
			item, ok := totals[key]
			if !ok {
				item = &Item{IngredientName: normalizedName, Unit: unit, Category: category}
				totals[key] = item
			}

			total := line.QuantityRecipeTotal
			if total == 0 {
				total = line.QuantityPerServing * float64(recipeServings)
			}
			item.Quantity += total * scale
		}
	}

	items := make([]Item, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].IngredientName < items[j].IngredientName
	})
	return items
}

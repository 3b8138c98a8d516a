package planner

import (
	"strings"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/normalize"
)

// Flags classify a recipe for the weekly variety and safety rules.
type Flags struct {
	IsRisotto bool
	HasRice   bool
	HasBeef   bool
}

// RecipeFlags inspects the recipe name and ingredient text with case- and
// accent-insensitive substring checks. A nil recipe carries no flags.
func RecipeFlags(recipe *models.Recipe) Flags {
	if recipe == nil {
		return Flags{}
	}

	name := strings.ToLower(normalize.StripAccents(recipe.Name))

	var builder strings.Builder
	for _, line := range recipe.Ingredients {
		text := line.IngredientBase
		if text == "" {
			text = line.IngredientName
		}
		builder.WriteString(strings.ToLower(normalize.StripAccents(text)))
		builder.WriteString(" ")
	}
	ingredients := builder.String()

	isRisotto := strings.Contains(name, "risotto")
	return Flags{
		IsRisotto: isRisotto,
		HasRice:   isRisotto || strings.Contains(name, "arroz") || strings.Contains(ingredients, "arroz"),
		HasBeef:   strings.Contains(name, "ternera") || strings.Contains(ingredients, "ternera"),
	}
}

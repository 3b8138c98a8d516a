package shopping

import (
	"testing"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateScalesAndSums(t *testing.T) {
	recipeID := "rec-1"
	override := 6

	recipes := map[string]models.Recipe{
		recipeID: {
			ID:             recipeID,
			Name:           "Arroz con verduras",
			RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Arroz", IngredientBase: "arroz", QuantityRecipeTotal: 800, Unit: "g", Category: "Ingrediente"},
				{IngredientName: "Pimentón", IngredientBase: "pimenton", QuantityRecipeTotal: 5, Unit: "g", Category: "Especias"},
			},
		},
	}

	slots := []models.PlanSlot{
		{SlotDate: "2025-09-01", SlotName: "mon_dinner", Status: models.SlotStatusRecipe, RecipeID: &recipeID, ServingsOverride: &override},
		{SlotDate: "2025-09-03", SlotName: "wed_dinner", Status: models.SlotStatusRecipe, RecipeID: &recipeID},
	}

	items := Aggregate(slots, recipes, "2025-09-01", 0, 3)
	require.Len(t, items, 1, "spice lines are excluded")

	// 800 * (6/4) + 800 * (3/4) = 1200 + 600 = 1800
	assert.Equal(t, "arroz", items[0].IngredientName)
	assert.Equal(t, "g", items[0].Unit)
	assert.Equal(t, "Ingrediente", items[0].Category)
	assert.InDelta(t, 1800, items[0].Quantity, 1e-9)
}

func TestAggregateSkipsOutAndOtherWeeks(t *testing.T) {
	recipeID := "rec-1"
	recipes := map[string]models.Recipe{
		recipeID: {
			ID:             recipeID,
			RecipeServings: 2,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Garbanzos", IngredientBase: "garbanzos", QuantityRecipeTotal: 400, Unit: "g", Category: "Legumbres"},
			},
		},
	}

	slots := []models.PlanSlot{
		{SlotDate: "2025-09-01", SlotName: "mon_dinner", Status: models.SlotStatusOut, RecipeID: &recipeID},
		{SlotDate: "2025-09-08", SlotName: "mon_dinner", Status: models.SlotStatusRecipe, RecipeID: &recipeID},
		{SlotDate: "2025-09-02", SlotName: "tue_dinner", Status: models.SlotStatusRecipe},
	}

	assert.Empty(t, Aggregate(slots, recipes, "2025-09-01", 0, 2))

	// The week-1 slot shows up when week 1 is selected.
	items := Aggregate(slots, recipes, "2025-09-01", 1, 2)
	require.Len(t, items, 1)
	assert.InDelta(t, 400, items[0].Quantity, 1e-9)
}

func TestAggregateMergesByNormalizedKey(t *testing.T) {
	idA, idB := "rec-a", "rec-b"
	recipes := map[string]models.Recipe{
		idA: {
			ID: idA, RecipeServings: 1,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Cebolla picada", QuantityRecipeTotal: 100, Unit: "gr", Category: "Verduras"},
			},
		},
		idB: {
			ID: idB, RecipeServings: 1,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Cebolla", IngredientBase: "cebolla", QuantityRecipeTotal: 50, Unit: "g", Category: "Verduras"},
			},
		},
	}

	slots := []models.PlanSlot{
		{SlotDate: "2025-09-01", SlotName: "mon_dinner", Status: models.SlotStatusRecipe, RecipeID: &idA},
		{SlotDate: "2025-09-02", SlotName: "tue_dinner", Status: models.SlotStatusRecipe, RecipeID: &idB},
	}

	// "Cebolla picada"/gr and "cebolla"/g normalize to the same key.
	items := Aggregate(slots, recipes, "2025-09-01", 0, 1)
	require.Len(t, items, 1)
	assert.Equal(t, "cebolla", items[0].IngredientName)
	assert.InDelta(t, 150, items[0].Quantity, 1e-9)
}

func TestAggregateSortsByCategoryThenName(t *testing.T) {
	id := "rec-1"
	recipes := map[string]models.Recipe{
		id: {
			ID: id, RecipeServings: 1,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "zanahoria", QuantityRecipeTotal: 1, Unit: "unidad", Category: "Verduras"},
				{IngredientName: "atun", QuantityRecipeTotal: 1, Unit: "lata", Category: "Conservas"},
				{IngredientName: "cebolla", QuantityRecipeTotal: 1, Unit: "unidad", Category: "Verduras"},
			},
		},
	}
	slots := []models.PlanSlot{
		{SlotDate: "2025-09-01", SlotName: "mon_dinner", Status: models.SlotStatusRecipe, RecipeID: &id},
	}

	items := Aggregate(slots, recipes, "2025-09-01", 0, 1)
	require.Len(t, items, 3)
	assert.Equal(t, "atun", items[0].IngredientName)
	assert.Equal(t, "cebolla", items[1].IngredientName)
	assert.Equal(t, "zanahoria", items[2].IngredientName)
}

func TestAggregateFallsBackToPerServingQuantity(t *testing.T) {
	id := "rec-1"
	recipes := map[string]models.Recipe{
		id: {
			ID: id, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "leche", QuantityPerServing: 50, Unit: "ml", Category: "Lacteos"},
			},
		},
	}
	slots := []models.PlanSlot{
		{SlotDate: "2025-09-01", SlotName: "mon_dinner", Status: models.SlotStatusRecipe, RecipeID: &id},
	}

	// 50 ml/serving * 4 servings = 200 total, scaled by 2/4.
	items := Aggregate(slots, recipes, "2025-09-01", 0, 2)
	require.Len(t, items, 1)
	assert.InDelta(t, 100, items[0].Quantity, 1e-9)
}

package planner

import (
	"fmt"
	"testing"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStartMonday = "2025-09-01"

func poolRecipe(id, name string, ingredients ...string) models.Recipe {
	lines := make([]models.RecipeIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, models.RecipeIngredient{IngredientName: ing, IngredientBase: ing})
	}
	return models.Recipe{
		ID:             id,
		Name:           name,
		MealType:       models.MealTypePool,
		RecipeServings: 4,
		Ingredients:    lines,
	}
}

func fixedRecipe(id, name, mealType string) models.Recipe {
	return models.Recipe{ID: id, Name: name, MealType: mealType, RecipeServings: 4}
}

// plainPool builds n pool recipes that trigger none of the variety flags.
func plainPool(n int) []models.Recipe {
	recipes := make([]models.Recipe, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("pool-%02d", i)
		recipes = append(recipes, poolRecipe(id, fmt.Sprintf("Guiso %02d", i), "patata", "cebolla"))
	}
	return recipes
}

func testCatalog(pool []models.Recipe) Catalog {
	recipes := append([]models.Recipe{}, pool...)
	recipes = append(recipes,
		fixedRecipe("pizza-1", "Pizza casera", models.MealTypePizzaFixed),
		fixedRecipe("pizza-2", "Pizza margarita", models.MealTypePizzaFixed),
		fixedRecipe("pasta-1", "Pasta al pesto", models.MealTypePastaFixed),
	)
	return NewCatalog(recipes)
}

func TestGenerateIsDeterministic(t *testing.T) {
	catalog := testCatalog(plainPool(8))

	first := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 42)
	second := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 42)

	require.Equal(t, first, second)
}

func TestGenerateSlotDatesMatchTemplate(t *testing.T) {
	catalog := testCatalog(plainPool(8))
	slots := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 0)

	require.Len(t, slots, models.DefaultWeeksCount*len(WeekTemplate))

	defsByName := make(map[string]SlotDefinition)
	for _, def := range WeekTemplate {
		defsByName[def.SlotName] = def
	}

	for _, slot := range slots {
		def, ok := defsByName[slot.SlotName]
		require.True(t, ok, "unknown slot name %s", slot.SlotName)

		week := WeekIndex(testStartMonday, slot.SlotDate)
		assert.GreaterOrEqual(t, week, 0)
		assert.Less(t, week, models.DefaultWeeksCount)
		assert.Equal(t, AddDays(testStartMonday, week*7+def.DayOffset), slot.SlotDate)
		assert.Equal(t, def.Kind, slot.Kind)
		assert.Equal(t, def.DefaultStatus, slot.Status)
	}
}

func TestGenerateFixedSlotsUseFirstCatalogRecipe(t *testing.T) {
	catalog := testCatalog(plainPool(8))
	slots := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 0)

	for _, slot := range slots {
		switch slot.Kind {
		case models.MealTypePizzaFixed:
			require.NotNil(t, slot.RecipeID)
			assert.Equal(t, "pizza-1", *slot.RecipeID)
		case models.MealTypePastaFixed:
			require.NotNil(t, slot.RecipeID)
			assert.Equal(t, "pasta-1", *slot.RecipeID)
		}
	}
}

func TestGenerateRespectsCooldown(t *testing.T) {
	catalog := testCatalog(plainPool(12))
	slots := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 7)

	datesByRecipe := make(map[string][]string)
	for _, slot := range slots {
		if slot.Kind != models.MealTypePool || slot.RecipeID == nil {
			continue
		}
		datesByRecipe[*slot.RecipeID] = append(datesByRecipe[*slot.RecipeID], slot.SlotDate)
	}

	for recipeID, dates := range datesByRecipe {
		for i := 1; i < len(dates); i++ {
			gap := DaysBetween(dates[i-1], dates[i])
			assert.GreaterOrEqual(t, gap, CooldownDays,
				"recipe %s repeated after %d days (%s -> %s)", recipeID, gap, dates[i-1], dates[i])
		}
	}
}

func TestGenerateSingleRecipePoolRelaxesCooldown(t *testing.T) {
	catalog := testCatalog(plainPool(1))
	slots := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 0)

	// Cooldown cannot hold with one recipe; every pool slot still gets it.
	for _, slot := range slots {
		if slot.Kind != models.MealTypePool {
			continue
		}
		require.NotNil(t, slot.RecipeID)
		assert.Equal(t, "pool-00", *slot.RecipeID)
	}
}

func TestGenerateWeeklyRiceAndRisottoCaps(t *testing.T) {
	pool := plainPool(9)
	pool = append(pool,
		poolRecipe("rice-1", "Arroz con verduras", "arroz"),
		poolRecipe("rice-2", "Paella", "arroz", "gambas"),
		poolRecipe("risotto-1", "Risotto de setas", "arroz", "setas"),
	)
	catalog := testCatalog(pool)
	slots := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 3)

	recipesByID := make(map[string]models.Recipe)
	for _, recipe := range pool {
		recipesByID[recipe.ID] = recipe
	}

	riceByWeek := make(map[int]int)
	risottoByWeek := make(map[int]int)
	for _, slot := range slots {
		if slot.RecipeID == nil {
			continue
		}
		recipe, ok := recipesByID[*slot.RecipeID]
		if !ok {
			continue
		}
		week := WeekIndex(testStartMonday, slot.SlotDate)
		flags := RecipeFlags(&recipe)
		if flags.HasRice {
			riceByWeek[week]++
		}
		if flags.IsRisotto {
			risottoByWeek[week]++
		}
	}

	for week := 0; week < models.DefaultWeeksCount; week++ {
		assert.LessOrEqual(t, riceByWeek[week], 2, "week %d exceeds rice cap", week)
		assert.LessOrEqual(t, risottoByWeek[week], 1, "week %d exceeds risotto cap", week)
	}
}

func TestGenerateRiceOnlyPoolTriggersRelaxation(t *testing.T) {
	pool := []models.Recipe{
		poolRecipe("rice-1", "Arroz blanco", "arroz"),
		poolRecipe("rice-2", "Arroz tres delicias", "arroz"),
		poolRecipe("rice-3", "Paella mixta", "arroz"),
	}
	catalog := testCatalog(pool)
	slots := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 0)

	// The weekly rice cap cannot hold; the generator must still assign
	// every pool slot instead of failing.
	for _, slot := range slots {
		if slot.Kind == models.MealTypePool {
			assert.NotNil(t, slot.RecipeID)
		}
	}
}

func TestGenerateAvoidsBeefOnConsecutiveDays(t *testing.T) {
	pool := plainPool(11)
	pool = append(pool, poolRecipe("beef-1", "Estofado de ternera", "ternera", "zanahoria"))
	catalog := testCatalog(pool)
	slots := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 11)

	recipesByID := make(map[string]models.Recipe)
	for _, recipe := range pool {
		recipesByID[recipe.ID] = recipe
	}

	beefDates := make(map[string]bool)
	for _, slot := range slots {
		if slot.RecipeID == nil {
			continue
		}
		recipe, ok := recipesByID[*slot.RecipeID]
		if !ok {
			continue
		}
		if RecipeFlags(&recipe).HasBeef {
			beefDates[slot.SlotDate] = true
		}
	}

	for date := range beefDates {
		assert.False(t, beefDates[AddDays(date, 1)],
			"beef assigned on consecutive days %s and %s", date, AddDays(date, 1))
	}
}

func TestGenerateEmptyCatalogEmitsUnassignedSlots(t *testing.T) {
	slots := Generate(Catalog{}, testStartMonday, models.DefaultWeeksCount, 0)

	require.Len(t, slots, models.DefaultWeeksCount*len(WeekTemplate))
	for _, slot := range slots {
		assert.Nil(t, slot.RecipeID)
	}
}

func TestRecipeFlags(t *testing.T) {
	risotto := poolRecipe("r1", "Risotto de champiñones")
	flags := RecipeFlags(&risotto)
	assert.True(t, flags.IsRisotto)
	assert.True(t, flags.HasRice, "risotto implies rice")
	assert.False(t, flags.HasBeef)

	paella := poolRecipe("r2", "Paella", "Arroz bomba")
	flags = RecipeFlags(&paella)
	assert.False(t, flags.IsRisotto)
	assert.True(t, flags.HasRice, "rice detected from ingredient text")

	beef := poolRecipe("r3", "Guiso casero", "Ternera gallega")
	assert.True(t, RecipeFlags(&beef).HasBeef)

	accented := poolRecipe("r4", "Arróz especial")
	assert.True(t, RecipeFlags(&accented).HasRice, "accent-insensitive match")

	assert.Equal(t, Flags{}, RecipeFlags(nil))
}

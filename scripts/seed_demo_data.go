package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/database"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/services"
)

func main() {
	// Parse command line flags
	ownerID := flag.String("owner", "", "Owner UUID to seed data for")
	dbPath := flag.String("db", "mealplan.sqlite", "SQLite database path")
	flag.Parse()

	if *ownerID == "" {
		*ownerID = uuid.NewString()
		fmt.Printf("No owner given, generated one: %s\n", *ownerID)
	}
	if _, err := uuid.Parse(*ownerID); err != nil {
		log.Fatal("Invalid owner UUID:", err)
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Skip owners that already have recipes
	var count int64
	db.Model(&models.Recipe{}).Where("owner_id = ?", *ownerID).Count(&count)
	if count > 0 {
		fmt.Printf("Owner %s already has %d recipes, nothing to do.\n", *ownerID, count)
		return
	}

	catalogService := services.NewCatalogService(db)
	recipeService := services.NewRecipeService(db, catalogService)
	profileService := services.NewProfileService(db)

	seedCatalog(catalogService, *ownerID)
	seedRecipes(recipeService, *ownerID)
	seedProfiles(profileService, *ownerID)

	fmt.Printf("✓ Demo data created for owner %s!\n", *ownerID)
	fmt.Println("\nFetch a plan with:")
	fmt.Printf("curl 'http://localhost:8080/api/v1/plans?start_monday=2025-09-01' \\\n")
	fmt.Printf("  -H 'Authorization: Bearer <token with uid=%s>'\n", *ownerID)
}

func seedCatalog(svc services.CatalogService, ownerID string) {
	entries := []models.IngredientCatalogEntry{
		{IngredientBase: "arroz", DefaultUnit: "g", DefaultCategory: "Despensa"},
		{IngredientBase: "cebolla", DefaultUnit: "unidad", DefaultCategory: "Verdura"},
		{IngredientBase: "pollo", DefaultUnit: "g", DefaultCategory: "Carne"},
		{IngredientBase: "ternera", DefaultUnit: "g", DefaultCategory: "Carne"},
		{IngredientBase: "tomate", DefaultUnit: "g", DefaultCategory: "Verdura"},
	}
	for _, entry := range entries {
		if _, err := svc.CreateEntry(ownerID, entry); err != nil {
			log.Printf("Failed to create catalog entry %s: %v", entry.IngredientBase, err)
		}
	}
	fmt.Printf("Created %d catalog entries\n", len(entries))
}

func seedRecipes(svc services.RecipeService, ownerID string) {
	recipes := []models.Recipe{
		{
			Name: "Pizza casera", MealType: models.MealTypePizzaFixed,
			Kcal: 780, ProteinG: 32, CarbsG: 95, FatG: 28, FiberG: 5, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Harina de trigo", QuantityRecipeTotal: 500, Unit: "g", Category: "Despensa"},
				{IngredientName: "Tomate triturado", QuantityRecipeTotal: 200, Unit: "g", Category: "Verdura"},
				{IngredientName: "Mozzarella", QuantityRecipeTotal: 250, Unit: "g", Category: "Lacteos"},
			},
		},
		{
			Name: "Macarrones con tomate", MealType: models.MealTypePastaFixed,
			Kcal: 620, ProteinG: 22, CarbsG: 88, FatG: 18, FiberG: 6, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Macarrones", QuantityRecipeTotal: 400, Unit: "g", Category: "Despensa"},
				{IngredientName: "Tomate triturado", QuantityRecipeTotal: 400, Unit: "g", Category: "Verdura"},
			},
		},
		{
			Name: "Arroz con pollo", MealType: models.MealTypePool,
			Kcal: 540, ProteinG: 35, CarbsG: 62, FatG: 14, FiberG: 3, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Arroz", QuantityRecipeTotal: 320, Unit: "g"},
				{IngredientName: "Pollo", QuantityRecipeTotal: 600, Unit: "g"},
				{IngredientName: "Pimenton dulce", QuantityRecipeTotal: 5, Unit: "g", Category: "Especias"},
			},
		},
		{
			Name: "Lentejas estofadas", MealType: models.MealTypePool,
			Kcal: 480, ProteinG: 26, CarbsG: 58, FatG: 12, FiberG: 14, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Lentejas", QuantityRecipeTotal: 400, Unit: "g", Category: "Legumbre"},
				{IngredientName: "Zanahoria", QuantityRecipeTotal: 200, Unit: "g", Category: "Verdura"},
				{IngredientName: "Cebolla", QuantityRecipeTotal: 1},
			},
		},
		{
			Name: "Merluza al horno", MealType: models.MealTypePool,
			Kcal: 380, ProteinG: 38, CarbsG: 20, FatG: 15, FiberG: 3, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Merluza", QuantityRecipeTotal: 800, Unit: "g", Category: "Pescado"},
				{IngredientName: "Patata", QuantityRecipeTotal: 600, Unit: "g", Category: "Verdura"},
			},
		},
		{
			Name: "Ternera guisada", MealType: models.MealTypePool,
			Kcal: 560, ProteinG: 42, CarbsG: 30, FatG: 28, FiberG: 4, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Ternera", QuantityRecipeTotal: 800, Unit: "g"},
				{IngredientName: "Patata", QuantityRecipeTotal: 400, Unit: "g", Category: "Verdura"},
			},
		},
		{
			Name: "Risotto de setas", MealType: models.MealTypePool,
			Kcal: 610, ProteinG: 18, CarbsG: 80, FatG: 22, FiberG: 4, RecipeServings: 4,
			Ingredients: []models.RecipeIngredient{
				{IngredientName: "Arroz arborio", QuantityRecipeTotal: 320, Unit: "g"},
				{IngredientName: "Setas variadas", QuantityRecipeTotal: 300, Unit: "g", Category: "Verdura"},
			},
		},
	}
	for _, recipe := range recipes {
		if _, err := svc.CreateRecipe(ownerID, recipe); err != nil {
			log.Printf("Failed to create recipe %s: %v", recipe.Name, err)
		}
	}
	fmt.Printf("Created %d recipes\n", len(recipes))
}

func seedProfiles(svc services.ProfileService, ownerID string) {
	profiles := []models.Profile{
		{Name: "Lucia", Sex: models.SexFemale, AgeYears: 34, WeightKg: 62, HeightCm: 168, ActivityLevel: models.ActivityModerate, Goal: models.GoalMaintain},
		{Name: "Marcos", Sex: models.SexMale, AgeYears: 36, WeightKg: 82, HeightCm: 181, ActivityLevel: models.ActivityLight, Goal: models.GoalLose},
	}
	for _, profile := range profiles {
		if _, err := svc.CreateProfile(ownerID, profile); err != nil {
			log.Printf("Failed to create profile %s: %v", profile.Name, err)
		}
	}
	fmt.Printf("Created %d profiles\n", len(profiles))
}

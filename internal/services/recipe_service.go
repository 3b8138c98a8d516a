package services

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/normalize"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/planner"
)

// RecipeService provides methods to interact with the recipe store
type RecipeService interface {
	// GetAllRecipes retrieves the owner's recipes, optionally filtered by
	// meal type and a case-insensitive name substring
	GetAllRecipes(ownerID, mealType, name string) ([]models.Recipe, error)
	// GetRecipeByID retrieves a recipe with its ingredient lines
	GetRecipeByID(ownerID, id string) (models.Recipe, error)
	// CreateRecipe validates and stores a new recipe with its ingredients
	CreateRecipe(ownerID string, recipe models.Recipe) (models.Recipe, error)
	// UpdateRecipe replaces a recipe and its ingredient lines atomically
	UpdateRecipe(ownerID string, recipe models.Recipe) (models.Recipe, error)
	// DeleteRecipe deletes a recipe and its ingredient lines
	DeleteRecipe(ownerID, id string) error
	// CatalogSnapshot loads every recipe of the owner grouped for the
	// plan generator, in stable creation order
	CatalogSnapshot(ownerID string) (planner.Catalog, error)
}

// recipeService is the implementation of the RecipeService interface
type recipeService struct {
	db      *gorm.DB
	catalog CatalogService
}

// NewRecipeService creates a new instance of RecipeService
func NewRecipeService(db *gorm.DB, catalog CatalogService) RecipeService {
	return &recipeService{db: db, catalog: catalog}
}

func (s *recipeService) GetAllRecipes(ownerID, mealType, name string) ([]models.Recipe, error) {
	query := s.db.Preload("Ingredients").Where("owner_id = ?", ownerID)
	if mealType != "" {
		query = query.Where("meal_type = ?", mealType)
	}
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *recipeService) GetRecipeByID(ownerID, id string) (models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Preload("Ingredients").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&recipe).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (s *recipeService) CreateRecipe(ownerID string, recipe models.Recipe) (models.Recipe, error) {
	if err := validateRecipe(&recipe); err != nil {
		return models.Recipe{}, err
	}

	recipe.ID = uuid.NewString()
	recipe.OwnerID = ownerID
	if err := s.prepareIngredients(ownerID, &recipe); err != nil {
		return models.Recipe{}, err
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ownerID string, recipe models.Recipe) (models.Recipe, error) {
	if err := validateRecipe(&recipe); err != nil {
		return models.Recipe{}, err
	}

	var existing models.Recipe
	if err := s.db.Where("id = ? AND owner_id = ?", recipe.ID, ownerID).
		First(&existing).Error; err != nil {
		return models.Recipe{}, err
	}

	recipe.OwnerID = ownerID
	recipe.CreatedAt = existing.CreatedAt
	if err := s.prepareIngredients(ownerID, &recipe); err != nil {
		return models.Recipe{}, err
	}

	// Replace the recipe row and its ingredient lines in one transaction so
	// a failure leaves the previous version intact
	ingredients := recipe.Ingredients
	recipe.Ingredients = nil
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Recipe{}, err
	}

	recipe.Ingredients = ingredients
	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ownerID, id string) error {
	var recipe models.Recipe
	if err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).
		First(&recipe).Error; err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

func (s *recipeService) CatalogSnapshot(ownerID string) (planner.Catalog, error) {
	var recipes []models.Recipe
	if err := s.db.Preload("Ingredients").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&recipes).Error; err != nil {
		return planner.Catalog{}, err
	}
	return planner.NewCatalog(recipes), nil
}

// validateRecipe enforces the rules shared by create and update
func validateRecipe(recipe *models.Recipe) error {
	recipe.Name = strings.TrimSpace(recipe.Name)
	if recipe.Name == "" {
		return models.ErrNameRequired
	}

	if recipe.MealType == "" {
		recipe.MealType = models.MealTypePool
	}
	switch recipe.MealType {
	case models.MealTypePool, models.MealTypePizzaFixed, models.MealTypePastaFixed:
	default:
		return models.ErrInvalidMealType
	}

	if recipe.RecipeServings <= 0 {
		return models.ErrInvalidServings
	}

	for _, v := range []float64{recipe.Kcal, recipe.ProteinG, recipe.CarbsG, recipe.FatG, recipe.FiberG} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return models.ErrInvalidMacros
		}
	}

	for _, ing := range recipe.Ingredients {
		if strings.TrimSpace(ing.IngredientName) == "" {
			return models.ErrNameRequired
		}
		if ing.QuantityRecipeTotal <= 0 || math.IsNaN(ing.QuantityRecipeTotal) || math.IsInf(ing.QuantityRecipeTotal, 0) {
			return models.ErrInvalidQuantity
		}
	}

	return nil
}

// prepareIngredients normalizes each line, derives per-serving quantities
// and fills missing unit/category from the owner's ingredient catalog
func (s *recipeService) prepareIngredients(ownerID string, recipe *models.Recipe) error {
	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		ing.ID = uuid.NewString()
		ing.RecipeID = recipe.ID
		ing.IngredientName = strings.TrimSpace(ing.IngredientName)
		ing.IngredientBase = normalize.IngredientName(ing.IngredientName)
		rawUnit := strings.TrimSpace(ing.Unit)
		ing.Unit = normalize.Unit(rawUnit)
		ing.QuantityPerServing = ing.QuantityRecipeTotal / float64(recipe.RecipeServings)

		if ing.Category == "" || rawUnit == "" {
			defaults, err := s.catalog.ResolveDefaults(ownerID, ing.IngredientBase)
			if err != nil {
				return err
			}
			if defaults != nil {
				if ing.Category == "" {
					ing.Category = defaults.DefaultCategory
				}
				if rawUnit == "" && defaults.DefaultUnit != "" {
					ing.Unit = defaults.DefaultUnit
				}
			}
		}
		if ing.Category == "" {
			ing.Category = "Ingrediente"
		}
	}
	return nil
}

package models

import (
	"time"
)

// Meal type values for Recipe.MealType
const (
	MealTypePool       = "pool"
	MealTypePizzaFixed = "pizza_fixed"
	MealTypePastaFixed = "pasta_fixed"
)

// Recipe represents a recipe with its per-serving macros and ingredient lines.
//
// Convention: the macro fields (Kcal, ProteinG, CarbsG, FatG, FiberG) are
// per serving, while ingredient quantities are stored for the whole recipe
// (QuantityRecipeTotal). Coverage consumes the macros directly; the shopping
// list scales QuantityRecipeTotal by servings/RecipeServings.
type Recipe struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	OwnerID        string    `gorm:"index;not null" json:"owner_id"`
	Name           string    `gorm:"not null" json:"name"`
	MealType       string    `gorm:"not null;default:'pool'" json:"meal_type"`
	Kcal           float64   `json:"kcal"`
	ProteinG       float64   `json:"protein_g"`
	CarbsG         float64   `json:"carbs_g"`
	FatG           float64   `json:"fat_g"`
	FiberG         float64   `json:"fiber_g"`
	RecipeServings int       `gorm:"not null;default:4" json:"recipe_servings"`
	PrepMinutes    *int      `json:"prep_minutes"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
}

// RecipeIngredient is one ingredient line, owned by exactly one recipe.
type RecipeIngredient struct {
	ID                  string  `gorm:"primaryKey" json:"id"`
	RecipeID            string  `gorm:"index;not null" json:"recipe_id"`
	IngredientName      string  `gorm:"not null" json:"ingredient_name"`
	IngredientBase      string  `gorm:"not null" json:"ingredient_base"`
	QuantityRecipeTotal float64 `gorm:"not null" json:"quantity_recipe_total"`
	QuantityPerServing  float64 `json:"quantity_per_serving"`
	Unit                string  `gorm:"not null" json:"unit"`
	Category            string  `json:"category"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

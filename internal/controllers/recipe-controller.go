package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/services"
)

// RecipeController handles HTTP requests related to recipes
type RecipeController interface {
	// GetAllRecipes retrieves the owner's recipes
	GetAllRecipes(ctx *gin.Context)
	// GetRecipeByID retrieves a recipe by its ID
	GetRecipeByID(ctx *gin.Context)
	// CreateRecipe creates a new recipe
	CreateRecipe(ctx *gin.Context)
	// UpdateRecipe updates an existing recipe
	UpdateRecipe(ctx *gin.Context)
	// DeleteRecipe deletes a recipe by its ID
	DeleteRecipe(ctx *gin.Context)
}

type recipeController struct {
	service services.RecipeService
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.RecipeService) RecipeController {
	return &recipeController{service: service}
}

// GetAllRecipes godoc
// @Summary Get all recipes
// @Description Get the authenticated owner's recipes with optional filtering
// @Tags recipes
// @Accept json
// @Produce json
// @Param meal_type query string false "Filter by meal type (pool, pizza_fixed, pasta_fixed)"
// @Param name query string false "Filter by recipe name (partial match)"
// @Success 200 {array} models.Recipe
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/recipes [get]
func (c *recipeController) GetAllRecipes(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	mealType := ctx.Query("meal_type")
	name := ctx.Query("name")

	recipes, err := c.service.GetAllRecipes(ownerID, mealType, name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}
	ctx.JSON(http.StatusOK, recipes)
}

// GetRecipeByID godoc
// @Summary Get recipe by ID
// @Description Get a single recipe with its ingredient lines
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/recipes/{id} [get]
func (c *recipeController) GetRecipeByID(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	recipe, err := c.service.GetRecipeByID(ownerID, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Recipe not found")
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// CreateRecipe godoc
// @Summary Create a new recipe
// @Description Create a new recipe with the input payload
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body models.Recipe true "Recipe object"
// @Success 201 {object} models.Recipe
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/recipes [post]
func (c *recipeController) CreateRecipe(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var recipe models.Recipe
	if err := ctx.ShouldBindJSON(&recipe); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := c.service.CreateRecipe(ownerID, recipe)
	if err != nil {
		respondServiceError(ctx, err, "Recipe not found")
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Replace a recipe and its ingredient lines
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param recipe body models.Recipe true "Recipe object"
// @Success 200 {object} models.Recipe
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/recipes/{id} [put]
func (c *recipeController) UpdateRecipe(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var recipe models.Recipe
	if err := ctx.ShouldBindJSON(&recipe); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	recipe.ID = ctx.Param("id")

	updated, err := c.service.UpdateRecipe(ownerID, recipe)
	if err != nil {
		respondServiceError(ctx, err, "Recipe not found")
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Delete a recipe and its ingredient lines
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/recipes/{id} [delete]
func (c *recipeController) DeleteRecipe(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteRecipe(ownerID, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Recipe not found")
		return
	}
	ctx.Status(http.StatusNoContent)
}

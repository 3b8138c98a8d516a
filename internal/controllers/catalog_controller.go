package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/services"
)

// CatalogController handles HTTP requests for the ingredient catalog
type CatalogController interface {
	ListEntries(ctx *gin.Context)
	CreateEntry(ctx *gin.Context)
	DeactivateEntry(ctx *gin.Context)
}

type catalogController struct {
	service services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(service services.CatalogService) CatalogController {
	return &catalogController{service: service}
}

// ListEntries godoc
// @Summary List catalog entries
// @Description Get the owner's active ingredient defaults, ordered by base name
// @Tags catalog
// @Produce json
// @Success 200 {array} models.IngredientCatalogEntry
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/catalog [get]
func (c *catalogController) ListEntries(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	entries, err := c.service.ListEntries(ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve catalog entries"})
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// CreateEntry godoc
// @Summary Create a catalog entry
// @Description Store default unit and category for an ingredient base name. The base name is normalized before storing.
// @Tags catalog
// @Accept json
// @Produce json
// @Param entry body models.IngredientCatalogEntry true "Catalog entry"
// @Success 201 {object} models.IngredientCatalogEntry
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/catalog [post]
func (c *catalogController) CreateEntry(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var entry models.IngredientCatalogEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := c.service.CreateEntry(ownerID, entry)
	if err != nil {
		respondServiceError(ctx, err, "Catalog entry not found")
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// DeactivateEntry godoc
// @Summary Deactivate a catalog entry
// @Description Soft-delete a catalog entry; existing recipe lines keep their values
// @Tags catalog
// @Produce json
// @Param id path string true "Catalog entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/catalog/{id} [delete]
func (c *catalogController) DeactivateEntry(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	if err := c.service.DeactivateEntry(ownerID, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Catalog entry not found")
		return
	}
	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/services"
)

// ManualItemRequest is the payload for adding a manual shopping item
type ManualItemRequest struct {
	WeekMonday  string   `json:"week_monday" binding:"required"`
	ItemName    string   `json:"item_name" binding:"required"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	IsRecurring bool     `json:"is_recurring"`
}

// CheckItemRequest is the payload for checking off a manual item
type CheckItemRequest struct {
	IsChecked bool `json:"is_checked"`
}

// ShoppingController handles HTTP requests for shopping lists
type ShoppingController interface {
	// GetList builds the aggregated shopping list of one plan week
	GetList(ctx *gin.Context)
	// AddManualItem stores a hand-entered item in a week's bucket
	AddManualItem(ctx *gin.Context)
	// UpdateManualItem toggles the checked flag of a manual item
	UpdateManualItem(ctx *gin.Context)
	// DeleteManualItem removes a manual item
	DeleteManualItem(ctx *gin.Context)
}

type shoppingController struct {
	service services.ShoppingService
}

// NewShoppingController creates a new instance of ShoppingController
func NewShoppingController(service services.ShoppingService) ShoppingController {
	return &shoppingController{service: service}
}

// GetList godoc
// @Summary Get the shopping list of a plan week
// @Description Aggregate the ingredients of one week of a saved plan, merged by normalized name and unit, plus the week's manual items
// @Tags shopping
// @Produce json
// @Param id path string true "Plan cycle ID"
// @Param week query int false "Week offset within the cycle (0-3)"
// @Success 200 {object} services.ShoppingList
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans/{id}/shopping [get]
func (c *shoppingController) GetList(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	week, err := strconv.Atoi(ctx.DefaultQuery("week", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week offset"})
		return
	}

	list, err := c.service.BuildList(ownerID, ctx.Param("id"), week)
	if err != nil {
		respondServiceError(ctx, err, "Plan not found")
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// AddManualItem godoc
// @Summary Add a manual shopping item
// @Tags shopping
// @Accept json
// @Produce json
// @Param item body ManualItemRequest true "Manual item"
// @Success 201 {object} models.ShoppingManualItem
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/shopping/items [post]
func (c *shoppingController) AddManualItem(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req ManualItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := c.service.AddManualItem(ownerID, req.WeekMonday, models.ShoppingManualItem{
		ItemName:    req.ItemName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		respondServiceError(ctx, err, "Shopping week not found")
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateManualItem godoc
// @Summary Check or uncheck a manual shopping item
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path string true "Manual item ID"
// @Param item body CheckItemRequest true "Checked flag"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/shopping/items/{id} [patch]
func (c *shoppingController) UpdateManualItem(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req CheckItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := c.service.UpdateManualItem(ownerID, ctx.Param("id"), req.IsChecked); err != nil {
		respondServiceError(ctx, err, "Manual item not found")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteManualItem godoc
// @Summary Delete a manual shopping item
// @Tags shopping
// @Produce json
// @Param id path string true "Manual item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/shopping/items/{id} [delete]
func (c *shoppingController) DeleteManualItem(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteManualItem(ownerID, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Manual item not found")
		return
	}
	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/middleware"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
)

// requireOwner reads the authenticated owner set by the JWT middleware.
// Returns false after writing the response when the context has no owner.
func requireOwner(ctx *gin.Context) (string, bool) {
	ownerID := middleware.OwnerID(ctx)
	if ownerID == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return ownerID, true
}

// respondServiceError maps service errors onto HTTP status codes: known
// validation sentinels become 400, missing records 404, the rest 500
func respondServiceError(ctx *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, models.ErrNameRequired),
		errors.Is(err, models.ErrInvalidServings),
		errors.Is(err, models.ErrInvalidMacros),
		errors.Is(err, models.ErrInvalidMealType),
		errors.Is(err, models.ErrInvalidBiometrics),
		errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidMonday),
		errors.Is(err, models.ErrInvalidWeekIndex):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

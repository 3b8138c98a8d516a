package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/nutrition"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/services"
)

// ProfileController handles HTTP requests related to household profiles
type ProfileController interface {
	GetAllProfiles(ctx *gin.Context)
	GetProfileByID(ctx *gin.Context)
	GetProfileTargets(ctx *gin.Context)
	CreateProfile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	DeleteProfile(ctx *gin.Context)
}

type profileController struct {
	service services.ProfileService
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(service services.ProfileService) ProfileController {
	return &profileController{service: service}
}

// GetAllProfiles godoc
// @Summary Get all profiles
// @Description Get every profile of the authenticated owner
// @Tags profiles
// @Produce json
// @Success 200 {array} models.Profile
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/profiles [get]
func (c *profileController) GetAllProfiles(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	profiles, err := c.service.GetAllProfiles(ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profiles"})
		return
	}
	ctx.JSON(http.StatusOK, profiles)
}

// GetProfileByID godoc
// @Summary Get profile by ID
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [get]
func (c *profileController) GetProfileByID(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	profile, err := c.service.GetProfileByID(ownerID, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Profile not found")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetProfileTargets godoc
// @Summary Get nutrition targets for a profile
// @Description Compute the daily nutrition targets derived from the profile biometrics. Returns 422 when biometrics are incomplete.
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} nutrition.Targets
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/profiles/{id}/targets [get]
func (c *profileController) GetProfileTargets(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	profile, err := c.service.GetProfileByID(ownerID, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "Profile not found")
		return
	}

	targets := nutrition.CalculateTargets(profile)
	if targets == nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Profile biometrics are incomplete"})
		return
	}
	ctx.JSON(http.StatusOK, targets)
}

// CreateProfile godoc
// @Summary Create a new profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile object"
// @Success 201 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/profiles [post]
func (c *profileController) CreateProfile(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var profile models.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := c.service.CreateProfile(ownerID, profile)
	if err != nil {
		respondServiceError(ctx, err, "Profile not found")
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateProfile godoc
// @Summary Update a profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body models.Profile true "Profile object"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [put]
func (c *profileController) UpdateProfile(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var profile models.Profile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	profile.ID = ctx.Param("id")

	updated, err := c.service.UpdateProfile(ownerID, profile)
	if err != nil {
		respondServiceError(ctx, err, "Profile not found")
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteProfile godoc
// @Summary Delete a profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/profiles/{id} [delete]
func (c *profileController) DeleteProfile(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteProfile(ownerID, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "Profile not found")
		return
	}
	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/planner"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/services"
)

// PlanRequest is the payload shared by the plan mutation endpoints
type PlanRequest struct {
	StartMonday string         `json:"start_monday" binding:"required"`
	Slots       []planner.Slot `json:"slots"`
	Seed        int64          `json:"seed"`
	WeekIndex   int            `json:"week_index"`
}

// PlanController handles HTTP requests related to plan cycles
type PlanController interface {
	// GetPlan loads the saved plan for a Monday, generating one when
	// nothing is saved yet
	GetPlan(ctx *gin.Context)
	// SavePlan persists the submitted slot sequence
	SavePlan(ctx *gin.Context)
	// Regenerate produces a brand new plan under a fresh seed
	Regenerate(ctx *gin.Context)
	// RegenerateWeek replaces one week of the submitted slots
	RegenerateWeek(ctx *gin.Context)
	// ListSavedPlans retrieves the owner's saved cycles
	ListSavedPlans(ctx *gin.Context)
	// WeeklyCoverage computes per-profile coverage for a saved week
	WeeklyCoverage(ctx *gin.Context)
	// DailyCoverage computes per-day coverage for one profile
	DailyCoverage(ctx *gin.Context)
}

type planController struct {
	plans    services.PlanService
	coverage services.CoverageService
}

// NewPlanController creates a new instance of PlanController
func NewPlanController(plans services.PlanService, coverage services.CoverageService) PlanController {
	return &planController{plans: plans, coverage: coverage}
}

// GetPlan godoc
// @Summary Get or generate a plan
// @Description Load the saved plan starting at the given Monday, with user edits applied. When no plan is saved a deterministic one is generated from the owner's recipe catalog.
// @Tags plans
// @Produce json
// @Param start_monday query string true "Cycle start date (Monday, YYYY-MM-DD)"
// @Param seed query int false "Generation seed"
// @Success 200 {object} services.PlanView
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans [get]
func (c *planController) GetPlan(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	startMonday := ctx.Query("start_monday")
	seed, _ := strconv.ParseInt(ctx.DefaultQuery("seed", "0"), 10, 64)

	view, err := c.plans.LoadOrGenerate(ownerID, startMonday, seed)
	if err != nil {
		respondServiceError(ctx, err, "Plan not found")
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SavePlan godoc
// @Summary Save a plan
// @Description Persist the slot sequence for a cycle, replacing any previously saved slots
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body PlanRequest true "Plan payload"
// @Success 200 {object} services.PlanView
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans [put]
func (c *planController) SavePlan(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	view, err := c.plans.SavePlan(ownerID, req.StartMonday, req.Slots)
	if err != nil {
		respondServiceError(ctx, err, "Plan not found")
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Regenerate godoc
// @Summary Regenerate a full plan
// @Description Generate a brand new slot sequence under the given seed, ignoring saved edits. Nothing is persisted until the plan is saved.
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body PlanRequest true "Plan payload"
// @Success 200 {object} services.PlanView
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans/regenerate [post]
func (c *planController) Regenerate(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	view, err := c.plans.FullRegenerate(ownerID, req.StartMonday, req.Seed)
	if err != nil {
		respondServiceError(ctx, err, "Plan not found")
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// RegenerateWeek godoc
// @Summary Regenerate one week of a plan
// @Description Replace the slots of a single week with a fresh generation, leaving every other slot untouched
// @Tags plans
// @Accept json
// @Produce json
// @Param plan body PlanRequest true "Plan payload with week_index"
// @Success 200 {object} services.PlanView
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans/regenerate-week [post]
func (c *planController) RegenerateWeek(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	var req PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	view, err := c.plans.RegenerateWeek(ownerID, req.StartMonday, req.Slots, req.Seed, req.WeekIndex)
	if err != nil {
		respondServiceError(ctx, err, "Plan not found")
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ListSavedPlans godoc
// @Summary List saved plans
// @Description Get the owner's saved plan cycles, newest first
// @Tags plans
// @Produce json
// @Success 200 {array} models.PlanCycle
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans/saved [get]
func (c *planController) ListSavedPlans(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	cycles, err := c.plans.ListSavedPlans(ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve saved plans"})
		return
	}
	ctx.JSON(http.StatusOK, cycles)
}

// WeeklyCoverage godoc
// @Summary Weekly nutrition coverage
// @Description Compute per-profile nutrition coverage for one week of a saved plan
// @Tags plans
// @Produce json
// @Param id path string true "Plan cycle ID"
// @Param week query int false "Week offset within the cycle (0-3)"
// @Success 200 {array} nutrition.ProfileWeekCoverage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans/{id}/coverage/weekly [get]
func (c *planController) WeeklyCoverage(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	week, err := strconv.Atoi(ctx.DefaultQuery("week", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week offset"})
		return
	}

	coverage, err := c.coverage.Weekly(ownerID, ctx.Param("id"), week)
	if err != nil {
		respondServiceError(ctx, err, "Plan not found")
		return
	}
	ctx.JSON(http.StatusOK, coverage)
}

// DailyCoverage godoc
// @Summary Daily nutrition coverage
// @Description Compute per-day nutrition coverage for one profile over one week of a saved plan
// @Tags plans
// @Produce json
// @Param id path string true "Plan cycle ID"
// @Param profile_id query string false "Profile ID (defaults to the first active profile)"
// @Param week query int false "Week offset within the cycle (0-3)"
// @Success 200 {array} nutrition.DayCoverage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/plans/{id}/coverage/daily [get]
func (c *planController) DailyCoverage(ctx *gin.Context) {
	ownerID, ok := requireOwner(ctx)
	if !ok {
		return
	}

	week, err := strconv.Atoi(ctx.DefaultQuery("week", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week offset"})
		return
	}

	coverage, err := c.coverage.Daily(ownerID, ctx.Param("id"), ctx.Query("profile_id"), week)
	if err != nil {
		respondServiceError(ctx, err, "Plan not found")
		return
	}
	ctx.JSON(http.StatusOK, coverage)
}

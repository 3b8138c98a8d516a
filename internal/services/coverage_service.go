package services

import (
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/nutrition"
)

// CoverageService computes nutrition coverage over persisted plan slots
type CoverageService interface {
	// Weekly computes per-profile coverage for one week of a saved plan
	Weekly(ownerID, cycleID string, weekOffset int) ([]nutrition.ProfileWeekCoverage, error)
	// Daily computes per-day coverage for one profile over one week
	Daily(ownerID, cycleID, profileID string, weekOffset int) ([]nutrition.DayCoverage, error)
}

type coverageService struct {
	db              *gorm.DB
	plans           PlanService
	profiles        ProfileService
	defaultServings int
}

// NewCoverageService creates a new instance of CoverageService
func NewCoverageService(db *gorm.DB, plans PlanService, profiles ProfileService, defaultServings int) CoverageService {
	if defaultServings <= 0 {
		defaultServings = 3
	}
	return &coverageService{db: db, plans: plans, profiles: profiles, defaultServings: defaultServings}
}

// loadCycleData fetches the cycle, its slots, the referenced recipes and the
// owner's active profiles in one pass
func (s *coverageService) loadCycleData(ownerID, cycleID string) (models.PlanCycle, []models.PlanSlot, map[string]models.Recipe, []models.Profile, error) {
	var cycle models.PlanCycle
	if err := s.db.Where("id = ? AND owner_id = ?", cycleID, ownerID).
		First(&cycle).Error; err != nil {
		return models.PlanCycle{}, nil, nil, nil, err
	}

	slots, err := s.plans.SlotsForCycle(ownerID, cycleID)
	if err != nil {
		return models.PlanCycle{}, nil, nil, nil, err
	}

	ids := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot.RecipeID != nil {
			ids = append(ids, *slot.RecipeID)
		}
	}
	recipes := make(map[string]models.Recipe, len(ids))
	if len(ids) > 0 {
		var rows []models.Recipe
		if err := s.db.Where("owner_id = ? AND id IN ?", ownerID, ids).
			Find(&rows).Error; err != nil {
			return models.PlanCycle{}, nil, nil, nil, err
		}
		for _, r := range rows {
			recipes[r.ID] = r
		}
	}

	profiles, err := s.profiles.ActiveProfiles(ownerID)
	if err != nil {
		return models.PlanCycle{}, nil, nil, nil, err
	}

	return cycle, slots, recipes, profiles, nil
}

func (s *coverageService) Weekly(ownerID, cycleID string, weekOffset int) ([]nutrition.ProfileWeekCoverage, error) {
	cycle, slots, recipes, profiles, err := s.loadCycleData(ownerID, cycleID)
	if err != nil {
		return nil, err
	}
	if weekOffset < 0 || weekOffset >= cycle.WeeksCount {
		return nil, models.ErrInvalidWeekIndex
	}
	return nutrition.WeeklyCoverage(slots, recipes, profiles, cycle.StartMonday, weekOffset, s.defaultServings), nil
}

func (s *coverageService) Daily(ownerID, cycleID, profileID string, weekOffset int) ([]nutrition.DayCoverage, error) {
	cycle, slots, recipes, profiles, err := s.loadCycleData(ownerID, cycleID)
	if err != nil {
		return nil, err
	}
	if weekOffset < 0 || weekOffset >= cycle.WeeksCount {
		return nil, models.ErrInvalidWeekIndex
	}
	return nutrition.DailyCoverage(slots, recipes, profiles, profileID, cycle.StartMonday, weekOffset, s.defaultServings), nil
}

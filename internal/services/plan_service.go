package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/planner"
)

// PlanView is a plan cycle as served to clients: the full slot sequence with
// any persisted edits already applied. CycleID is nil until the plan has
// been saved at least once.
type PlanView struct {
	CycleID     *string        `json:"cycle_id"`
	StartMonday string         `json:"start_monday"`
	WeeksCount  int            `json:"weeks_count"`
	Slots       []planner.Slot `json:"slots"`
}

// PlanService manages plan cycles and their slots
type PlanService interface {
	// LoadOrGenerate returns the saved plan for (owner, startMonday) with
	// edits merged in, or a freshly generated one when none is saved
	LoadOrGenerate(ownerID, startMonday string, seed int64) (PlanView, error)
	// SavePlan persists the slot sequence, replacing any prior slots of the
	// cycle in a single transaction
	SavePlan(ownerID, startMonday string, slots []planner.Slot) (PlanView, error)
	// FullRegenerate generates a brand new plan with the given seed,
	// ignoring saved slots
	FullRegenerate(ownerID, startMonday string, seed int64) (PlanView, error)
	// RegenerateWeek replaces a single week of the current slots with a
	// fresh generation under a new seed
	RegenerateWeek(ownerID, startMonday string, current []planner.Slot, seed int64, weekIndex int) (PlanView, error)
	// ListSavedPlans retrieves the owner's saved cycles, newest first
	ListSavedPlans(ownerID string) ([]models.PlanCycle, error)
	// SlotsForCycle retrieves the persisted slots of one saved cycle
	SlotsForCycle(ownerID, cycleID string) ([]models.PlanSlot, error)
}

type planService struct {
	db      *gorm.DB
	recipes RecipeService
	weeks   int
}

// NewPlanService creates a new instance of PlanService. weeks is the plan
// horizon in weeks, normally 4.
func NewPlanService(db *gorm.DB, recipes RecipeService, weeks int) PlanService {
	if weeks <= 0 {
		weeks = models.DefaultWeeksCount
	}
	return &planService{db: db, recipes: recipes, weeks: weeks}
}

func (s *planService) LoadOrGenerate(ownerID, startMonday string, seed int64) (PlanView, error) {
	if !planner.IsMonday(startMonday) {
		return PlanView{}, models.ErrInvalidMonday
	}

	catalog, err := s.recipes.CatalogSnapshot(ownerID)
	if err != nil {
		return PlanView{}, err
	}
	fresh := planner.Generate(catalog, startMonday, s.weeks, seed)

	var cycle models.PlanCycle
	err = s.db.Where("owner_id = ? AND start_monday = ?", ownerID, startMonday).
		First(&cycle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return PlanView{StartMonday: startMonday, WeeksCount: s.weeks, Slots: fresh}, nil
	}
	if err != nil {
		return PlanView{}, err
	}

	var persisted []models.PlanSlot
	if err := s.db.Where("plan_cycle_id = ?", cycle.ID).
		Find(&persisted).Error; err != nil {
		return PlanView{}, err
	}

	merged := planner.MergeWithPersisted(fresh, persisted)
	return PlanView{
		CycleID:     &cycle.ID,
		StartMonday: startMonday,
		WeeksCount:  cycle.WeeksCount,
		Slots:       merged,
	}, nil
}

func (s *planService) SavePlan(ownerID, startMonday string, slots []planner.Slot) (PlanView, error) {
	if !planner.IsMonday(startMonday) {
		return PlanView{}, models.ErrInvalidMonday
	}

	var cycle models.PlanCycle
	err := s.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("owner_id = ? AND start_monday = ?", ownerID, startMonday).
			First(&cycle).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			cycle = models.PlanCycle{
				ID:          uuid.NewString(),
				OwnerID:     ownerID,
				StartMonday: startMonday,
				WeeksCount:  s.weeks,
				Strategy:    "variety_first",
			}
			if createErr := tx.Create(&cycle).Error; createErr != nil {
				return createErr
			}
		} else if findErr != nil {
			return findErr
		}

		// Full replace: remove prior slots before inserting the new set so
		// a failed insert rolls back to the previous saved state
		if delErr := tx.Where("plan_cycle_id = ?", cycle.ID).
			Delete(&models.PlanSlot{}).Error; delErr != nil {
			return delErr
		}

		rows := make([]models.PlanSlot, 0, len(slots))
		for _, slot := range slots {
			rows = append(rows, models.PlanSlot{
				ID:               uuid.NewString(),
				PlanCycleID:      cycle.ID,
				SlotDate:         slot.SlotDate,
				SlotName:         slot.SlotName,
				Status:           slot.Status,
				RecipeID:         slot.RecipeID,
				ServingsOverride: slot.ServingsOverride,
			})
		}
		if len(rows) > 0 {
			if insErr := tx.Create(&rows).Error; insErr != nil {
				return insErr
			}
		}
		return nil
	})
	if err != nil {
		return PlanView{}, err
	}

	return PlanView{
		CycleID:     &cycle.ID,
		StartMonday: startMonday,
		WeeksCount:  cycle.WeeksCount,
		Slots:       slots,
	}, nil
}

func (s *planService) FullRegenerate(ownerID, startMonday string, seed int64) (PlanView, error) {
	if !planner.IsMonday(startMonday) {
		return PlanView{}, models.ErrInvalidMonday
	}

	catalog, err := s.recipes.CatalogSnapshot(ownerID)
	if err != nil {
		return PlanView{}, err
	}
	slots := planner.Generate(catalog, startMonday, s.weeks, seed)
	return PlanView{StartMonday: startMonday, WeeksCount: s.weeks, Slots: slots}, nil
}

func (s *planService) RegenerateWeek(ownerID, startMonday string, current []planner.Slot, seed int64, weekIndex int) (PlanView, error) {
	if !planner.IsMonday(startMonday) {
		return PlanView{}, models.ErrInvalidMonday
	}
	if weekIndex < 0 || weekIndex >= s.weeks {
		return PlanView{}, models.ErrInvalidWeekIndex
	}

	catalog, err := s.recipes.CatalogSnapshot(ownerID)
	if err != nil {
		return PlanView{}, err
	}
	slots := planner.RegenerateWeek(current, catalog, startMonday, s.weeks, seed, weekIndex)
	return PlanView{StartMonday: startMonday, WeeksCount: s.weeks, Slots: slots}, nil
}

func (s *planService) ListSavedPlans(ownerID string) ([]models.PlanCycle, error) {
	var cycles []models.PlanCycle
	if err := s.db.Where("owner_id = ?", ownerID).
		Order("start_monday DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (s *planService) SlotsForCycle(ownerID, cycleID string) ([]models.PlanSlot, error) {
	var cycle models.PlanCycle
	if err := s.db.Where("id = ? AND owner_id = ?", cycleID, ownerID).
		First(&cycle).Error; err != nil {
		return nil, err
	}

	var slots []models.PlanSlot
	if err := s.db.Where("plan_cycle_id = ?", cycleID).
		Order("slot_date ASC, slot_name ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

package services

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/normalize"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/planner"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/shopping"
)

// ShoppingList is the combined view of one week: automatic aggregation from
// the plan plus the hand-entered items
type ShoppingList struct {
	WeekMonday  string                      `json:"week_monday"`
	Items       []shopping.Item             `json:"items"`
	ManualItems []models.ShoppingManualItem `json:"manual_items"`
}

// ShoppingService builds shopping lists and manages manual items
type ShoppingService interface {
	// BuildList aggregates the ingredients of one plan week and attaches
	// the manual items of that calendar week
	BuildList(ownerID, cycleID string, weekOffset int) (ShoppingList, error)
	// EnsureWeek finds or creates the manual-item bucket for a Monday
	EnsureWeek(ownerID, weekMonday string) (models.ShoppingWeek, error)
	// ManualItems retrieves the manual items of a week, oldest first
	ManualItems(ownerID, weekMonday string) ([]models.ShoppingManualItem, error)
	// AddManualItem validates and stores a manual item in a week's bucket
	AddManualItem(ownerID, weekMonday string, item models.ShoppingManualItem) (models.ShoppingManualItem, error)
	// UpdateManualItem toggles the checked flag of a manual item
	UpdateManualItem(ownerID, itemID string, checked bool) error
	// DeleteManualItem removes a manual item after an ownership check
	DeleteManualItem(ownerID, itemID string) error
}

type shoppingService struct {
	db              *gorm.DB
	plans           PlanService
	defaultServings int
}

// NewShoppingService creates a new instance of ShoppingService
func NewShoppingService(db *gorm.DB, plans PlanService, defaultServings int) ShoppingService {
	if defaultServings <= 0 {
		defaultServings = 3
	}
	return &shoppingService{db: db, plans: plans, defaultServings: defaultServings}
}

func (s *shoppingService) BuildList(ownerID, cycleID string, weekOffset int) (ShoppingList, error) {
	var cycle models.PlanCycle
	if err := s.db.Where("id = ? AND owner_id = ?", cycleID, ownerID).
		First(&cycle).Error; err != nil {
		return ShoppingList{}, err
	}
	if weekOffset < 0 || weekOffset >= cycle.WeeksCount {
		return ShoppingList{}, models.ErrInvalidWeekIndex
	}

	slots, err := s.plans.SlotsForCycle(ownerID, cycleID)
	if err != nil {
		return ShoppingList{}, err
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
		if err := s.db.Preload("Ingredients").
			Where("owner_id = ? AND id IN ?", ownerID, ids).
			Find(&rows).Error; err != nil {
			return ShoppingList{}, err
		}
		for _, r := range rows {
			recipes[r.ID] = r
		}
	}

	items := shopping.Aggregate(slots, recipes, cycle.StartMonday, weekOffset, s.defaultServings)

	weekMonday := planner.AddDays(cycle.StartMonday, weekOffset*7)
	manual, err := s.ManualItems(ownerID, weekMonday)
	if err != nil {
		return ShoppingList{}, err
	}

	return ShoppingList{WeekMonday: weekMonday, Items: items, ManualItems: manual}, nil
}

func (s *shoppingService) EnsureWeek(ownerID, weekMonday string) (models.ShoppingWeek, error) {
	var week models.ShoppingWeek
	err := s.db.Where("owner_id = ? AND week_monday = ?", ownerID, weekMonday).
		First(&week).Error
	if err == nil {
		return week, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ShoppingWeek{}, err
	}

	week = models.ShoppingWeek{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		WeekMonday: weekMonday,
	}
	if err := s.db.Create(&week).Error; err != nil {
		return models.ShoppingWeek{}, err
	}
	return week, nil
}

func (s *shoppingService) ManualItems(ownerID, weekMonday string) ([]models.ShoppingManualItem, error) {
	var week models.ShoppingWeek
	err := s.db.Where("owner_id = ? AND week_monday = ?", ownerID, weekMonday).
		First(&week).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.ShoppingManualItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.ShoppingManualItem
	if err := s.db.Where("shopping_week_id = ?", week.ID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *shoppingService) AddManualItem(ownerID, weekMonday string, item models.ShoppingManualItem) (models.ShoppingManualItem, error) {
	item.ItemName = strings.TrimSpace(item.ItemName)
	if item.ItemName == "" {
		return models.ShoppingManualItem{}, models.ErrNameRequired
	}
	if item.Quantity != nil {
		q := *item.Quantity
		if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
			return models.ShoppingManualItem{}, models.ErrInvalidQuantity
		}
	}
	if item.Unit != nil {
		unit := normalize.Unit(*item.Unit)
		item.Unit = &unit
	}

	week, err := s.EnsureWeek(ownerID, weekMonday)
	if err != nil {
		return models.ShoppingManualItem{}, err
	}

	item.ID = uuid.NewString()
	item.ShoppingWeekID = week.ID
	item.IsChecked = false
	if err := s.db.Create(&item).Error; err != nil {
		return models.ShoppingManualItem{}, err
	}
	return item, nil
}

func (s *shoppingService) UpdateManualItem(ownerID, itemID string, checked bool) error {
	item, err := s.ownedItem(ownerID, itemID)
	if err != nil {
		return err
	}
	return s.db.Model(&item).Update("is_checked", checked).Error
}

func (s *shoppingService) DeleteManualItem(ownerID, itemID string) error {
	item, err := s.ownedItem(ownerID, itemID)
	if err != nil {
		return err
	}
	return s.db.Delete(&item).Error
}

// ownedItem loads a manual item and verifies it belongs to a week owned by
// ownerID
func (s *shoppingService) ownedItem(ownerID, itemID string) (models.ShoppingManualItem, error) {
	var item models.ShoppingManualItem
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		return models.ShoppingManualItem{}, err
	}

	var week models.ShoppingWeek
	if err := s.db.Where("id = ? AND owner_id = ?", item.ShoppingWeekID, ownerID).
		First(&week).Error; err != nil {
		return models.ShoppingManualItem{}, err
	}
	return item, nil
}

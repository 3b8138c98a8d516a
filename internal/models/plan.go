package models

import (
	"time"
)

// Slot status values for PlanSlot.Status
const (
	SlotStatusRecipe = "recipe"
	SlotStatusFixed  = "fixed"
	SlotStatusOut    = "out"
)

// DefaultWeeksCount is the fixed scheduling horizon of a plan cycle.
const DefaultWeeksCount = 4

// PlanCycle is a 4-week scheduling horizon starting on a Monday.
// Unique per (owner, start_monday).
type PlanCycle struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OwnerID     string    `gorm:"not null;uniqueIndex:idx_cycle_owner_monday" json:"owner_id"`
	StartMonday string    `gorm:"not null;uniqueIndex:idx_cycle_owner_monday" json:"start_monday"`
	WeeksCount  int       `gorm:"not null;default:4" json:"weeks_count"`
	Strategy    string    `gorm:"default:'variety_first'" json:"strategy"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlanSlot is one calendar-dated meal assignment within a plan cycle.
// Unique per (plan_cycle_id, slot_date, slot_name). RecipeID must be nil
// whenever Status is "out".
type PlanSlot struct {
	ID               string  `gorm:"primaryKey" json:"id"`
	PlanCycleID      string  `gorm:"not null;uniqueIndex:idx_slot_cycle_date_name" json:"plan_cycle_id"`
	SlotDate         string  `gorm:"not null;uniqueIndex:idx_slot_cycle_date_name" json:"slot_date"`
	SlotName         string  `gorm:"not null;uniqueIndex:idx_slot_cycle_date_name" json:"slot_name"`
	Status           string  `gorm:"not null" json:"status"`
	RecipeID         *string `json:"recipe_id"`
	ServingsOverride *int    `json:"servings_override"`
}

func (PlanCycle) TableName() string {
	return "plan_cycles"
}

func (PlanSlot) TableName() string {
	return "plan_slots"
}

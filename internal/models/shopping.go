package models

import (
	"time"
)

// ShoppingWeek is the per-owner bucket holding manual shopping items for one
// calendar week. Automatic aggregation never touches it.
type ShoppingWeek struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OwnerID     string    `gorm:"not null;uniqueIndex:idx_week_owner_monday" json:"owner_id"`
	WeekMonday  string    `gorm:"not null;uniqueIndex:idx_week_owner_monday" json:"week_monday"`
	PlanCycleID *string   `json:"plan_cycle_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShoppingManualItem is a hand-entered shopping list row.
type ShoppingManualItem struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	ShoppingWeekID string    `gorm:"index;not null" json:"shopping_week_id"`
	ItemName       string    `gorm:"not null" json:"item_name"`
	Quantity       *float64  `json:"quantity"`
	Unit           *string   `json:"unit"`
	IsRecurring    bool      `gorm:"default:false" json:"is_recurring"`
	IsChecked      bool      `gorm:"default:false" json:"is_checked"`
	CreatedAt      time.Time `json:"created_at"`
}

func (ShoppingWeek) TableName() string {
	return "shopping_weeks"
}

func (ShoppingManualItem) TableName() string {
	return "shopping_manual_items"
}

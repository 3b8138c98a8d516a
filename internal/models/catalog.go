package models

import (
	"time"
)

// IngredientCatalogEntry stores per-owner defaults for an ingredient base
// name. It only pre-fills new ingredient lines, never mutates existing ones.
type IngredientCatalogEntry struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	OwnerID         string    `gorm:"not null;uniqueIndex:idx_catalog_owner_base" json:"owner_id"`
	IngredientBase  string    `gorm:"not null;uniqueIndex:idx_catalog_owner_base" json:"ingredient_base"`
	DefaultUnit     string    `gorm:"not null;default:'g'" json:"default_unit"`
	DefaultCategory string    `gorm:"not null;default:'Ingrediente'" json:"default_category"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

func (IngredientCatalogEntry) TableName() string {
	return "ingredient_catalog"
}

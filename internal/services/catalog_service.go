package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/normalize"
)

// CatalogService manages per-owner ingredient defaults
type CatalogService interface {
	// ListEntries retrieves the active catalog entries for an owner
	ListEntries(ownerID string) ([]models.IngredientCatalogEntry, error)
	// CreateEntry adds a catalog entry, normalizing the ingredient base name
	CreateEntry(ownerID string, entry models.IngredientCatalogEntry) (models.IngredientCatalogEntry, error)
	// DeactivateEntry soft-deletes a catalog entry by ID
	DeactivateEntry(ownerID, id string) error
	// ResolveDefaults looks up the defaults for a normalized base name.
	// Returns nil when no active entry exists.
	ResolveDefaults(ownerID, ingredientBase string) (*models.IngredientCatalogEntry, error)
}

type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) ListEntries(ownerID string) ([]models.IngredientCatalogEntry, error) {
	var entries []models.IngredientCatalogEntry
	if err := s.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("ingredient_base ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *catalogService) CreateEntry(ownerID string, entry models.IngredientCatalogEntry) (models.IngredientCatalogEntry, error) {
	if strings.TrimSpace(entry.IngredientBase) == "" {
		return models.IngredientCatalogEntry{}, models.ErrNameRequired
	}
	base := normalize.IngredientName(entry.IngredientBase)

	entry.ID = uuid.NewString()
	entry.OwnerID = ownerID
	entry.IngredientBase = base
	entry.IsActive = true
	if entry.DefaultUnit == "" {
		entry.DefaultUnit = "g"
	} else {
		entry.DefaultUnit = normalize.Unit(entry.DefaultUnit)
	}
	if entry.DefaultCategory == "" {
		entry.DefaultCategory = "Ingrediente"
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return models.IngredientCatalogEntry{}, err
	}
	return entry, nil
}

func (s *catalogService) DeactivateEntry(ownerID, id string) error {
	result := s.db.Model(&models.IngredientCatalogEntry{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *catalogService) ResolveDefaults(ownerID, ingredientBase string) (*models.IngredientCatalogEntry, error) {
	var entry models.IngredientCatalogEntry
	err := s.db.Where("owner_id = ? AND ingredient_base = ? AND is_active = ?", ownerID, ingredientBase, true).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

package services

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
)

// ProfileService provides methods to interact with household profiles
type ProfileService interface {
	// GetAllProfiles retrieves every profile of the owner, active or not
	GetAllProfiles(ownerID string) ([]models.Profile, error)
	// ActiveProfiles retrieves the active profiles ordered by name
	ActiveProfiles(ownerID string) ([]models.Profile, error)
	// GetProfileByID retrieves a profile by its ID
	GetProfileByID(ownerID, id string) (models.Profile, error)
	// CreateProfile validates and stores a new profile
	CreateProfile(ownerID string, profile models.Profile) (models.Profile, error)
	// UpdateProfile updates an existing profile
	UpdateProfile(ownerID string, profile models.Profile) (models.Profile, error)
	// DeleteProfile removes a profile
	DeleteProfile(ownerID, id string) error
}

type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(db *gorm.DB) ProfileService {
	return &profileService{db: db}
}

func (s *profileService) GetAllProfiles(ownerID string) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *profileService) ActiveProfiles(ownerID string) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("name ASC").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *profileService) GetProfileByID(ownerID, id string) (models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).
		First(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (s *profileService) CreateProfile(ownerID string, profile models.Profile) (models.Profile, error) {
	if err := validateProfile(&profile); err != nil {
		return models.Profile{}, err
	}

	profile.ID = uuid.NewString()
	profile.OwnerID = ownerID
	profile.IsActive = true
	if err := s.db.Create(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ownerID string, profile models.Profile) (models.Profile, error) {
	if err := validateProfile(&profile); err != nil {
		return models.Profile{}, err
	}

	var existing models.Profile
	if err := s.db.Where("id = ? AND owner_id = ?", profile.ID, ownerID).
		First(&existing).Error; err != nil {
		return models.Profile{}, err
	}

	profile.OwnerID = ownerID
	profile.CreatedAt = existing.CreatedAt
	if err := s.db.Save(&profile).Error; err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (s *profileService) DeleteProfile(ownerID, id string) error {
	result := s.db.Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// validateProfile checks names, enumerations and biometric ranges
func validateProfile(profile *models.Profile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Name == "" {
		return models.ErrNameRequired
	}

	if profile.Sex == "" {
		profile.Sex = models.SexFemale
	}
	switch profile.Sex {
	case models.SexMale, models.SexFemale, models.SexOther:
	default:
		return models.ErrInvalidBiometrics
	}

	if profile.Goal == "" {
		profile.Goal = models.GoalMaintain
	}
	switch profile.Goal {
	case models.GoalMaintain, models.GoalLose, models.GoalGain:
	default:
		return models.ErrInvalidBiometrics
	}

	if profile.ActivityLevel == "" {
		profile.ActivityLevel = models.ActivityModerate
	}

	if profile.AgeYears < 0 ||
		profile.WeightKg < 0 || math.IsNaN(profile.WeightKg) || math.IsInf(profile.WeightKg, 0) ||
		profile.HeightCm < 0 || math.IsNaN(profile.HeightCm) || math.IsInf(profile.HeightCm, 0) {
		return models.ErrInvalidBiometrics
	}

	return nil
}

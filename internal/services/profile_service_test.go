package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
)

func TestCreateProfileDefaultsAndValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	created, err := svc.CreateProfile(testOwner, models.Profile{
		Name:     "Lucia",
		AgeYears: 34,
		WeightKg: 62,
		HeightCm: 168,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SexFemale, created.Sex)
	assert.Equal(t, models.GoalMaintain, created.Goal)
	assert.Equal(t, models.ActivityModerate, created.ActivityLevel)
	assert.True(t, created.IsActive)

	_, err = svc.CreateProfile(testOwner, models.Profile{Name: ""})
	assert.ErrorIs(t, err, models.ErrNameRequired)

	_, err = svc.CreateProfile(testOwner, models.Profile{Name: "Mal", WeightKg: -10})
	assert.ErrorIs(t, err, models.ErrInvalidBiometrics)

	_, err = svc.CreateProfile(testOwner, models.Profile{Name: "Mal", Sex: "robot"})
	assert.ErrorIs(t, err, models.ErrInvalidBiometrics)
}

func TestActiveProfilesExcludesDeactivated(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	lucia, err := svc.CreateProfile(testOwner, models.Profile{Name: "Lucia", WeightKg: 62, HeightCm: 168, AgeYears: 34})
	require.NoError(t, err)
	_, err = svc.CreateProfile(testOwner, models.Profile{Name: "Marcos", WeightKg: 80, HeightCm: 180, AgeYears: 36})
	require.NoError(t, err)

	lucia.IsActive = false
	_, err = svc.UpdateProfile(testOwner, lucia)
	require.NoError(t, err)

	active, err := svc.ActiveProfiles(testOwner)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Marcos", active[0].Name)

	all, err := svc.GetAllProfiles(testOwner)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteProfileChecksOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	created, err := svc.CreateProfile(testOwner, models.Profile{Name: "Lucia", WeightKg: 62, HeightCm: 168, AgeYears: 34})
	require.NoError(t, err)

	err = svc.DeleteProfile("6fa459ea-ee8a-3ca4-894e-db77e160355e", created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteProfile(testOwner, created.ID)
	require.NoError(t, err)

	_, err = svc.GetProfileByID(testOwner, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package models

import (
	"time"
)

// Sex values for Profile.Sex
const (
	SexMale   = "male"
	SexFemale = "female"
	SexOther  = "other"
)

// Goal values for Profile.Goal
const (
	GoalMaintain = "maintain"
	GoalLose     = "lose"
	GoalGain     = "gain"
)

// Activity level values for Profile.ActivityLevel
const (
	ActivitySedentary   = "sedentary"
	ActivityLight       = "light"
	ActivityModerate    = "moderate"
	ActivityVeryActive  = "very_active"
	ActivityExtraActive = "extra_active"
)

// Profile holds the biometric inputs used to derive daily nutrition targets.
type Profile struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	OwnerID       string    `gorm:"index;not null" json:"owner_id"`
	Name          string    `gorm:"not null" json:"name"`
	Sex           string    `gorm:"not null;default:'female'" json:"sex"`
	AgeYears      int       `json:"age_years"`
	WeightKg      float64   `json:"weight_kg"`
	HeightCm      float64   `json:"height_cm"`
	ActivityLevel string    `gorm:"not null;default:'moderate'" json:"activity_level"`
	Goal          string    `gorm:"not null;default:'maintain'" json:"goal"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

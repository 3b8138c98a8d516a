// Package nutrition derives daily macro targets from profile biometrics and
// aggregates plan slots into consumed-vs-target coverage.
package nutrition

import (
	"math"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
)

// Activity multipliers for the Mifflin-St Jeor TDEE estimate.
var activityFactors = map[string]float64{
	models.ActivitySedentary:   1.20,
	models.ActivityLight:       1.375,
	models.ActivityModerate:    1.55,
	models.ActivityVeryActive:  1.725,
	models.ActivityExtraActive: 1.90,
}

// Targets holds the derived daily targets for one profile.
type Targets struct {
	REE      float64 `json:"ree"`
	TDEE     float64 `json:"tdee"`
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

// CalculateTargets derives daily macro targets from a profile using the
// Mifflin-St Jeor equation with activity and goal adjustment. It returns nil
// when weight, height or age is missing or non-positive; a profile without
// targets is a valid, renderable state.
func CalculateTargets(profile models.Profile) *Targets {
	if profile.WeightKg <= 0 || profile.HeightCm <= 0 || profile.AgeYears <= 0 {
		return nil
	}

	factor, ok := activityFactors[profile.ActivityLevel]
	if !ok {
		factor = activityFactors[models.ActivityModerate]
	}

	var sexOffset float64
	switch profile.Sex {
	case models.SexMale:
		sexOffset = 5
	case models.SexFemale:
		sexOffset = -161
	default:
		sexOffset = -78
	}

	ree := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.AgeYears) + sexOffset
	tdee := ree * factor

	kcal := tdee
	proteinPerKg := 1.6
	switch profile.Goal {
	case models.GoalLose:
		kcal = tdee * 0.85
		proteinPerKg = 2.0
	case models.GoalGain:
		kcal = tdee * 1.10
		proteinPerKg = 1.8
	}

	proteinG := profile.WeightKg * proteinPerKg
	fatG := kcal * 0.30 / 9
	remainingKcal := math.Max(kcal-proteinG*4-fatG*9, 0)

	return &Targets{
		REE:      ree,
		TDEE:     tdee,
		Kcal:     kcal,
		ProteinG: proteinG,
		CarbsG:   remainingKcal / 4,
		FatG:     fatG,
		FiberG:   kcal / 1000 * 14,
	}
}

// Daily returns the targets as nutrient totals for a single day.
func (t *Targets) Daily() NutrientTotals {
	return NutrientTotals{
		Kcal:     t.Kcal,
		ProteinG: t.ProteinG,
		CarbsG:   t.CarbsG,
		FatG:     t.FatG,
		FiberG:   t.FiberG,
	}
}

// Weekly returns the daily targets scaled to a full calendar week.
func (t *Targets) Weekly() NutrientTotals {
	daily := t.Daily()
	return NutrientTotals{
		Kcal:     daily.Kcal * 7,
		ProteinG: daily.ProteinG * 7,
		CarbsG:   daily.CarbsG * 7,
		FatG:     daily.FatG * 7,
		FiberG:   daily.FiberG * 7,
	}
}

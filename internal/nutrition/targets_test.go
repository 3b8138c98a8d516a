package nutrition

import (
	"testing"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTargetsReferenceProfile(t *testing.T) {
	profile := models.Profile{
		Sex:           models.SexMale,
		AgeYears:      30,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	}

	targets := CalculateTargets(profile)
	require.NotNil(t, targets)

	assert.InDelta(t, 1648.75, targets.REE, 1e-6)
	assert.InDelta(t, 2555.5625, targets.TDEE, 1e-6)
	assert.InDelta(t, 2555.5625, targets.Kcal, 1e-6)
	assert.InDelta(t, 112.0, targets.ProteinG, 1e-6)
	assert.InDelta(t, 335.2234375, targets.CarbsG, 1e-6)
	assert.InDelta(t, 85.18541666666666, targets.FatG, 1e-6)
	assert.InDelta(t, 35.777875, targets.FiberG, 1e-6)
}

func TestCalculateTargetsGoalAdjustment(t *testing.T) {
	base := models.Profile{
		Sex:           models.SexFemale,
		AgeYears:      28,
		WeightKg:      60,
		HeightCm:      165,
		ActivityLevel: models.ActivityLight,
	}

	lose := base
	lose.Goal = models.GoalLose
	gain := base
	gain.Goal = models.GoalGain
	maintain := base
	maintain.Goal = models.GoalMaintain

	loseTargets := CalculateTargets(lose)
	gainTargets := CalculateTargets(gain)
	maintainTargets := CalculateTargets(maintain)
	require.NotNil(t, loseTargets)
	require.NotNil(t, gainTargets)
	require.NotNil(t, maintainTargets)

	assert.InDelta(t, maintainTargets.TDEE*0.85, loseTargets.Kcal, 1e-6)
	assert.InDelta(t, maintainTargets.TDEE*1.10, gainTargets.Kcal, 1e-6)
	assert.InDelta(t, 60*2.0, loseTargets.ProteinG, 1e-6)
	assert.InDelta(t, 60*1.8, gainTargets.ProteinG, 1e-6)
	assert.InDelta(t, 60*1.6, maintainTargets.ProteinG, 1e-6)
}

func TestCalculateTargetsSexOffsets(t *testing.T) {
	base := models.Profile{
		AgeYears:      40,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalMaintain,
	}

	male := base
	male.Sex = models.SexMale
	female := base
	female.Sex = models.SexFemale
	other := base
	other.Sex = models.SexOther

	maleREE := CalculateTargets(male).REE
	femaleREE := CalculateTargets(female).REE
	otherREE := CalculateTargets(other).REE

	assert.InDelta(t, 166.0, maleREE-femaleREE, 1e-6)
	assert.InDelta(t, 83.0, maleREE-otherREE, 1e-6)
}

func TestCalculateTargetsMissingBiometrics(t *testing.T) {
	testCases := []struct {
		name    string
		profile models.Profile
	}{
		{name: "missing weight", profile: models.Profile{HeightCm: 170, AgeYears: 30}},
		{name: "missing height", profile: models.Profile{WeightKg: 70, AgeYears: 30}},
		{name: "missing age", profile: models.Profile{WeightKg: 70, HeightCm: 170}},
		{name: "negative weight", profile: models.Profile{WeightKg: -1, HeightCm: 170, AgeYears: 30}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, CalculateTargets(tt.profile))
		})
	}
}

func TestCalculateTargetsUnknownActivityDefaultsToModerate(t *testing.T) {
	known := models.Profile{
		Sex: models.SexMale, AgeYears: 30, WeightKg: 70, HeightCm: 175,
		ActivityLevel: models.ActivityModerate, Goal: models.GoalMaintain,
	}
	unknown := known
	unknown.ActivityLevel = "couch_potato"

	assert.InDelta(t, CalculateTargets(known).TDEE, CalculateTargets(unknown).TDEE, 1e-6)
}

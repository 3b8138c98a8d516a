package planner

import (
	"testing"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMergeWithPersistedOverlaysEdits(t *testing.T) {
	catalog := testCatalog(plainPool(8))
	fresh := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 0)

	edited := fresh[0]
	persisted := []models.PlanSlot{
		{
			SlotDate:         edited.SlotDate,
			SlotName:         edited.SlotName,
			Status:           models.SlotStatusOut,
			RecipeID:         nil,
			ServingsOverride: nil,
		},
		{
			SlotDate:         fresh[1].SlotDate,
			SlotName:         fresh[1].SlotName,
			Status:           models.SlotStatusRecipe,
			RecipeID:         strPtr("pool-05"),
			ServingsOverride: intPtr(6),
		},
		// A persisted slot without a fresh counterpart is ignored.
		{
			SlotDate: "1999-01-01",
			SlotName: "mon_dinner",
			Status:   models.SlotStatusRecipe,
		},
	}

	merged := MergeWithPersisted(fresh, persisted)
	require.Len(t, merged, len(fresh))

	assert.Equal(t, models.SlotStatusOut, merged[0].Status)
	assert.Nil(t, merged[0].RecipeID)

	require.NotNil(t, merged[1].RecipeID)
	assert.Equal(t, "pool-05", *merged[1].RecipeID)
	require.NotNil(t, merged[1].ServingsOverride)
	assert.Equal(t, 6, *merged[1].ServingsOverride)

	// Unmatched fresh slots keep their generated values.
	assert.Equal(t, fresh[2:], merged[2:])
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog(plainPool(8))
	fresh := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 0)
	snapshot := append([]Slot{}, fresh...)

	MergeWithPersisted(fresh, []models.PlanSlot{
		{SlotDate: fresh[0].SlotDate, SlotName: fresh[0].SlotName, Status: models.SlotStatusOut},
	})

	assert.Equal(t, snapshot, fresh)
}

func TestRegenerateWeekReplacesOnlyTargetWeek(t *testing.T) {
	catalog := testCatalog(plainPool(8))
	current := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 1)

	// Simulate user edits on weeks 0 and 3.
	current[0].Status = models.SlotStatusOut
	current[0].RecipeID = nil
	last := len(current) - 1
	current[last].ServingsOverride = intPtr(5)

	regenerated := RegenerateWeek(current, catalog, testStartMonday, models.DefaultWeeksCount, 99, 2)
	require.Len(t, regenerated, len(current))

	freshAll := Generate(catalog, testStartMonday, models.DefaultWeeksCount, 99)
	freshByKey := make(map[string]Slot, len(freshAll))
	for _, slot := range freshAll {
		freshByKey[SlotKey(slot.SlotDate, slot.SlotName)] = slot
	}
	currentByKey := make(map[string]Slot, len(current))
	for _, slot := range current {
		currentByKey[SlotKey(slot.SlotDate, slot.SlotName)] = slot
	}

	for _, slot := range regenerated {
		key := SlotKey(slot.SlotDate, slot.SlotName)
		if WeekIndex(testStartMonday, slot.SlotDate) == 2 {
			assert.Equal(t, freshByKey[key], slot, "week 2 slot %s not regenerated", key)
		} else {
			assert.Equal(t, currentByKey[key], slot, "slot %s outside week 2 changed", key)
		}
	}
}

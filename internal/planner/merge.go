package planner

import (
	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
)

// SlotKey identifies a slot within a cycle.
func SlotKey(slotDate, slotName string) string {
	return slotDate + "_" + slotName
}

// MergeWithPersisted overlays persisted slot edits onto a freshly generated
// sequence. On an exact (date, name) key match the persisted status, recipe
// and servings override always win; fresh slots without a match are kept as
// generated.
func MergeWithPersisted(fresh []Slot, persisted []models.PlanSlot) []Slot {
	merged := make([]Slot, len(fresh))
	copy(merged, fresh)

	index := make(map[string]int, len(merged))
	for i, slot := range merged {
		index[SlotKey(slot.SlotDate, slot.SlotName)] = i
	}

	for _, saved := range persisted {
		i, ok := index[SlotKey(saved.SlotDate, saved.SlotName)]
		if !ok {
			continue
		}
		merged[i].Status = saved.Status
		merged[i].RecipeID = saved.RecipeID
		merged[i].ServingsOverride = saved.ServingsOverride
	}
	return merged
}

// RegenerateWeek reruns generation with a new seed and replaces only the
// slots whose computed week index equals weekIndex. Every other slot,
// including user edits, is returned untouched.
func RegenerateWeek(current []Slot, catalog Catalog, startMonday string, weeks int, seed int64, weekIndex int) []Slot {
	regenerated := Generate(catalog, startMonday, weeks, seed)
	byKey := make(map[string]Slot, len(regenerated))
	for _, slot := range regenerated {
		byKey[SlotKey(slot.SlotDate, slot.SlotName)] = slot
	}

	out := make([]Slot, 0, len(current))
	for _, slot := range current {
		if WeekIndex(startMonday, slot.SlotDate) != weekIndex {
			out = append(out, slot)
			continue
		}
		if replacement, ok := byKey[SlotKey(slot.SlotDate, slot.SlotName)]; ok {
			out = append(out, replacement)
		} else {
			out = append(out, slot)
		}
	}

	SortSlots(out)
	return out
}

package planner

import (
	"sort"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
)

// SlotDefinition describes one position of the fixed weekly template.
type SlotDefinition struct {
	SlotName      string `json:"slot_name"`
	Label         string `json:"label"`
	DayOffset     int    `json:"day_offset"`
	Kind          string `json:"kind"`
	DefaultStatus string `json:"default_status"`
}

// WeekTemplate is the fixed, ordered weekly slot template: dinners every
// day, plus the pinned Friday pizza and Saturday pasta lunch. It is static
// process-wide configuration, never derived data.
var WeekTemplate = []SlotDefinition{
	{SlotName: "mon_dinner", Label: "Lun cena", DayOffset: 0, Kind: models.MealTypePool, DefaultStatus: models.SlotStatusRecipe},
	{SlotName: "tue_dinner", Label: "Mar cena", DayOffset: 1, Kind: models.MealTypePool, DefaultStatus: models.SlotStatusRecipe},
	{SlotName: "wed_dinner", Label: "Mie cena", DayOffset: 2, Kind: models.MealTypePool, DefaultStatus: models.SlotStatusRecipe},
	{SlotName: "thu_dinner", Label: "Jue cena", DayOffset: 3, Kind: models.MealTypePool, DefaultStatus: models.SlotStatusRecipe},
	{SlotName: "fri_dinner_pizza", Label: "Vie cena (pizza)", DayOffset: 4, Kind: models.MealTypePizzaFixed, DefaultStatus: models.SlotStatusFixed},
	{SlotName: "sat_lunch_pasta", Label: "Sab comida (pasta)", DayOffset: 5, Kind: models.MealTypePastaFixed, DefaultStatus: models.SlotStatusFixed},
	{SlotName: "sat_dinner", Label: "Sab cena", DayOffset: 5, Kind: models.MealTypePool, DefaultStatus: models.SlotStatusRecipe},
	{SlotName: "sun_lunch", Label: "Dom comida", DayOffset: 6, Kind: models.MealTypePool, DefaultStatus: models.SlotStatusRecipe},
	{SlotName: "sun_dinner", Label: "Dom cena", DayOffset: 6, Kind: models.MealTypePool, DefaultStatus: models.SlotStatusRecipe},
}

var slotOrder = buildSlotOrder()

func buildSlotOrder() map[string]int {
	order := make(map[string]int, len(WeekTemplate))
	for i, def := range WeekTemplate {
		order[def.SlotName] = i
	}
	return order
}

// SlotLabel returns the display label for a template slot name, falling back
// to the name itself for unknown slots.
func SlotLabel(slotName string) string {
	for _, def := range WeekTemplate {
		if def.SlotName == slotName {
			return def.Label
		}
	}
	return slotName
}

// SortSlots orders slots by date, then by template position.
func SortSlots(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].SlotDate != slots[j].SlotDate {
			return slots[i].SlotDate < slots[j].SlotDate
		}
		return slotOrder[slots[i].SlotName] < slotOrder[slots[j].SlotName]
	})
}

package nutrition

import (
	"math"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
	"github.com/franciscosanchezn/gin-mealplan-api/internal/planner"
)

// Coverage status values, from under-target to over-target.
const (
	StatusLow    = "low"
	StatusMedium = "medium"
	StatusOK     = "ok"
	StatusHigh   = "high"
	StatusExcess = "excess"
)

// NutrientTotals accumulates the five tracked nutrients.
type NutrientTotals struct {
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

func (t *NutrientTotals) add(recipe models.Recipe, portions float64) {
	t.Kcal += recipe.Kcal * portions
	t.ProteinG += recipe.ProteinG * portions
	t.CarbsG += recipe.CarbsG * portions
	t.FatG += recipe.FatG * portions
	t.FiberG += recipe.FiberG * portions
}

// Sub returns target minus consumed for every nutrient. A positive value is
// a deficit, a negative one a surplus.
func (t NutrientTotals) Sub(consumed NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Kcal:     t.Kcal - consumed.Kcal,
		ProteinG: t.ProteinG - consumed.ProteinG,
		CarbsG:   t.CarbsG - consumed.CarbsG,
		FatG:     t.FatG - consumed.FatG,
		FiberG:   t.FiberG - consumed.FiberG,
	}
}

// SlotDetail is the per-slot contribution line of a daily breakdown.
type SlotDetail struct {
	Label      string  `json:"label"`
	RecipeName string  `json:"recipe_name"`
	Kcal       float64 `json:"kcal"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	FiberG     float64 `json:"fiber_g"`
}

// ProfileWeekCoverage is one row of the weekly per-profile totals view.
type ProfileWeekCoverage struct {
	Profile        models.Profile    `json:"profile"`
	Targets        *Targets          `json:"targets"`
	WeeklyTarget   *NutrientTotals   `json:"weekly_target"`
	Consumed       NutrientTotals    `json:"consumed"`
	Status         string            `json:"status"`
	NutrientStatus map[string]string `json:"nutrient_status"`
}

// DayCoverage is the daily breakdown for one profile and one calendar day.
type DayCoverage struct {
	Date            string          `json:"date"`
	Consumed        NutrientTotals  `json:"consumed"`
	Target          *NutrientTotals `json:"target"`
	Balance         *NutrientTotals `json:"balance"`
	Slots           []SlotDetail    `json:"slots"`
	Status          string          `json:"status"`
	CoveragePercent float64         `json:"coverage_percent"`
}

// CoverageStatus classifies a consumed/target ratio. Non-positive or
// non-finite ratios count as low.
func CoverageStatus(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return StatusLow
	}
	switch {
	case ratio < 0.70:
		return StatusLow
	case ratio < 0.90:
		return StatusMedium
	case ratio <= 1.10:
		return StatusOK
	case ratio <= 1.25:
		return StatusHigh
	default:
		return StatusExcess
	}
}

// NutrientStatus classifies one nutrient against its target. A missing,
// zero or non-finite target counts as low.
func NutrientStatus(consumed, target float64) string {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return StatusLow
	}
	return CoverageStatus(consumed / target)
}

// slotsInWeek keeps the slots of the selected calendar week that actually
// contribute nutrition: status is not "out" and a recipe is assigned.
func slotsInWeek(slots []models.PlanSlot, startMonday string, weekOffset int) []models.PlanSlot {
	kept := make([]models.PlanSlot, 0, len(slots))
	for _, slot := range slots {
		if planner.WeekIndex(startMonday, slot.SlotDate) != weekOffset {
			continue
		}
		if slot.Status == models.SlotStatusOut || slot.RecipeID == nil {
			continue
		}
		kept = append(kept, slot)
	}
	return kept
}

func activeProfiles(profiles []models.Profile) []models.Profile {
	active := make([]models.Profile, 0, len(profiles))
	for _, profile := range profiles {
		if profile.IsActive {
			active = append(active, profile)
		}
	}
	return active
}

// WeeklyCoverage computes consumed-vs-target totals for every active profile
// over one calendar week of a plan. Each slot contributes its recipe's
// per-serving macros times portionsPerPerson, where portionsPerPerson is the
// slot servings (override or default) divided by the active profile count.
func WeeklyCoverage(slots []models.PlanSlot, recipes map[string]models.Recipe, profiles []models.Profile, startMonday string, weekOffset int, defaultServings int) []ProfileWeekCoverage {
	active := activeProfiles(profiles)
	if len(active) == 0 {
		return nil
	}

	week := slotsInWeek(slots, startMonday, weekOffset)
	rows := make([]ProfileWeekCoverage, 0, len(active))
	for _, profile := range active {
		targets := CalculateTargets(profile)

		var consumed NutrientTotals
		for _, slot := range week {
			recipe, ok := recipes[*slot.RecipeID]
			if !ok {
				continue
			}
			servings := defaultServings
			if slot.ServingsOverride != nil {
				servings = *slot.ServingsOverride
			}
			consumed.add(recipe, float64(servings)/float64(len(active)))
		}

		row := ProfileWeekCoverage{
			Profile:  profile,
			Targets:  targets,
			Consumed: consumed,
			Status:   StatusLow,
		}
		if targets != nil {
			weekly := targets.Weekly()
			row.WeeklyTarget = &weekly
			row.Status = NutrientStatus(consumed.Kcal, weekly.Kcal)
			row.NutrientStatus = map[string]string{
				"kcal":      NutrientStatus(consumed.Kcal, weekly.Kcal),
				"protein_g": NutrientStatus(consumed.ProteinG, weekly.ProteinG),
				"carbs_g":   NutrientStatus(consumed.CarbsG, weekly.CarbsG),
				"fat_g":     NutrientStatus(consumed.FatG, weekly.FatG),
				"fiber_g":   NutrientStatus(consumed.FiberG, weekly.FiberG),
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// DailyCoverage computes the seven-day breakdown of one calendar week for a
// single profile. The selected profile must be active; when profileID does
// not match an active profile the first active one is used.
func DailyCoverage(slots []models.PlanSlot, recipes map[string]models.Recipe, profiles []models.Profile, profileID string, startMonday string, weekOffset int, defaultServings int) []DayCoverage {
	active := activeProfiles(profiles)
	if len(active) == 0 {
		return nil
	}

	selected := active[0]
	for _, profile := range active {
		if profile.ID == profileID {
			selected = profile
			break
		}
	}

	targets := CalculateTargets(selected)
	var dailyTarget *NutrientTotals
	if targets != nil {
		daily := targets.Daily()
		dailyTarget = &daily
	}

	week := slotsInWeek(slots, startMonday, weekOffset)
	byDate := make(map[string][]models.PlanSlot)
	for _, slot := range week {
		byDate[slot.SlotDate] = append(byDate[slot.SlotDate], slot)
	}

	weekMonday := planner.AddDays(startMonday, weekOffset*7)
	days := make([]DayCoverage, 0, 7)
	for offset := 0; offset < 7; offset++ {
		date := planner.AddDays(weekMonday, offset)

		day := DayCoverage{Date: date, Slots: []SlotDetail{}}
		for _, slot := range byDate[date] {
			recipe, ok := recipes[*slot.RecipeID]
			if !ok {
				continue
			}
			servings := defaultServings
			if slot.ServingsOverride != nil {
				servings = *slot.ServingsOverride
			}
			portions := float64(servings) / float64(len(active))

			detail := SlotDetail{
				Label:      planner.SlotLabel(slot.SlotName),
				RecipeName: recipe.Name,
				Kcal:       recipe.Kcal * portions,
				ProteinG:   recipe.ProteinG * portions,
				CarbsG:     recipe.CarbsG * portions,
				FatG:       recipe.FatG * portions,
				FiberG:     recipe.FiberG * portions,
			}
			day.Consumed.Kcal += detail.Kcal
			day.Consumed.ProteinG += detail.ProteinG
			day.Consumed.CarbsG += detail.CarbsG
			day.Consumed.FatG += detail.FatG
			day.Consumed.FiberG += detail.FiberG
			day.Slots = append(day.Slots, detail)
		}

		var ratio float64
		if dailyTarget != nil {
			day.Target = dailyTarget
			balance := dailyTarget.Sub(day.Consumed)
			day.Balance = &balance
			ratio = day.Consumed.Kcal / math.Max(dailyTarget.Kcal, 1)
		}
		day.Status = CoverageStatus(ratio)
		day.CoveragePercent = ratio * 100

		days = append(days, day)
	}
	return days
}

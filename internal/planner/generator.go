// Package planner implements the deterministic plan slot generator: it fills
// the fixed weekly template across a multi-week horizon with recipes under
// variety and dietary-safety constraints, with multi-tier constraint
// relaxation and fully deterministic tie-breaking.
package planner

import (
	"sort"

	"github.com/franciscosanchezn/gin-mealplan-api/internal/models"
)

// CooldownDays is the minimum day gap before a pool recipe may repeat.
const CooldownDays = 10

// Per-week caps on flagged assignments.
const (
	maxRisottoPerWeek = 1
	maxRicePerWeek    = 2
)

// Catalog is the immutable recipe snapshot the generator schedules from.
// Slices preserve catalog insertion order; the fallback pick for a fixed
// kind is index 0.
type Catalog struct {
	Pool  []models.Recipe
	Pizza []models.Recipe
	Pasta []models.Recipe
}

// NewCatalog splits recipes, already in catalog insertion order, by meal
// type.
func NewCatalog(recipes []models.Recipe) Catalog {
	var catalog Catalog
	for _, recipe := range recipes {
		switch recipe.MealType {
		case models.MealTypePizzaFixed:
			catalog.Pizza = append(catalog.Pizza, recipe)
		case models.MealTypePastaFixed:
			catalog.Pasta = append(catalog.Pasta, recipe)
		default:
			catalog.Pool = append(catalog.Pool, recipe)
		}
	}
	return catalog
}

// Slot is one generated calendar assignment. A nil RecipeID means no recipe
// could be assigned; that is a renderable state, not an error.
type Slot struct {
	SlotDate         string  `json:"slot_date"`
	SlotName         string  `json:"slot_name"`
	Label            string  `json:"label"`
	Kind             string  `json:"kind"`
	Status           string  `json:"status"`
	RecipeID         *string `json:"recipe_id"`
	ServingsOverride *int    `json:"servings_override"`
}

// weekState is the scheduling state reset at every week boundary.
type weekState struct {
	risottoCount int
	riceCount    int
	beefDates    map[string]bool
}

// schedulerState is the accumulator threaded through the whole horizon.
type schedulerState struct {
	useCount map[string]int
	lastUsed map[string]string
}

// Generate fills the weekly template across the horizon starting at
// startMonday. For a fixed (catalog, startMonday, weeks, seed) the output is
// identical across invocations.
func Generate(catalog Catalog, startMonday string, weeks int, seed int64) []Slot {
	state := &schedulerState{
		useCount: make(map[string]int),
		lastUsed: make(map[string]string),
	}

	generated := make([]Slot, 0, weeks*len(WeekTemplate))
	for week := 0; week < weeks; week++ {
		ws := weekState{beefDates: make(map[string]bool)}

		for _, def := range WeekTemplate {
			slotDate := AddDays(startMonday, week*7+def.DayOffset)
			previousDate := AddDays(slotDate, -1)

			var chosen *models.Recipe
			switch def.Kind {
			case models.MealTypePizzaFixed:
				if len(catalog.Pizza) > 0 {
					chosen = &catalog.Pizza[0]
				}
			case models.MealTypePastaFixed:
				if len(catalog.Pasta) > 0 {
					chosen = &catalog.Pasta[0]
				}
			default:
				chosen = state.pickPool(catalog.Pool, slotDate, previousDate, &ws, seed)
				if chosen != nil {
					state.useCount[chosen.ID]++
					state.lastUsed[chosen.ID] = slotDate
				}
			}

			// Week state tracks the chosen recipe regardless of kind.
			flags := RecipeFlags(chosen)
			if flags.IsRisotto {
				ws.risottoCount++
			}
			if flags.HasRice {
				ws.riceCount++
			}
			if flags.HasBeef {
				ws.beefDates[slotDate] = true
			}

			slot := Slot{
				SlotDate: slotDate,
				SlotName: def.SlotName,
				Label:    def.Label,
				Kind:     def.Kind,
				Status:   def.DefaultStatus,
			}
			if chosen != nil {
				id := chosen.ID
				slot.RecipeID = &id
			}
			generated = append(generated, slot)
		}
	}

	SortSlots(generated)
	return generated
}

// pickPool resolves a pool slot through cascading candidate tiers, most to
// least strict:
//
//	tier 1: cooldown-eligible AND weekly-safe
//	tier 2: weekly-safe only (cooldown dropped)
//	tier 3: cooldown-eligible only, or the entire pool
//
// The first non-empty tier wins; relaxation is graceful degradation for
// small catalogs, not an error.
func (s *schedulerState) pickPool(pool []models.Recipe, slotDate, previousDate string, ws *weekState, seed int64) *models.Recipe {
	if len(pool) == 0 {
		return nil
	}

	cooldownEligible := make([]*models.Recipe, 0, len(pool))
	for i := range pool {
		last, used := s.lastUsed[pool[i].ID]
		if !used || DaysBetween(last, slotDate) >= CooldownDays {
			cooldownEligible = append(cooldownEligible, &pool[i])
		}
	}

	weeklySafe := func(recipe *models.Recipe) bool {
		flags := RecipeFlags(recipe)
		if flags.IsRisotto && ws.risottoCount >= maxRisottoPerWeek {
			return false
		}
		if flags.HasRice && ws.riceCount >= maxRicePerWeek {
			return false
		}
		if flags.HasBeef && ws.beefDates[previousDate] {
			return false
		}
		return true
	}

	candidates := filterRecipes(cooldownEligible, weeklySafe)
	if len(candidates) == 0 {
		all := make([]*models.Recipe, 0, len(pool))
		for i := range pool {
			all = append(all, &pool[i])
		}
		candidates = filterRecipes(all, weeklySafe)
	}
	if len(candidates) == 0 {
		candidates = cooldownEligible
		if len(candidates) == 0 {
			for i := range pool {
				candidates = append(candidates, &pool[i])
			}
		}
	}

	// Total order: usage count, then last-used date (never-used sorts
	// first), then seeded hash, then name.
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if s.useCount[a.ID] != s.useCount[b.ID] {
			return s.useCount[a.ID] < s.useCount[b.ID]
		}
		if s.lastUsed[a.ID] != s.lastUsed[b.ID] {
			return s.lastUsed[a.ID] < s.lastUsed[b.ID]
		}
		aHash := slotHash(a.ID, slotDate, seed)
		bHash := slotHash(b.ID, slotDate, seed)
		if aHash != bHash {
			return aHash < bHash
		}
		return a.Name < b.Name
	})

	return candidates[0]
}

func filterRecipes(recipes []*models.Recipe, keep func(*models.Recipe) bool) []*models.Recipe {
	kept := make([]*models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if keep(recipe) {
			kept = append(kept, recipe)
		}
	}
	return kept
}

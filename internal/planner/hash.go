package planner

import (
	"fmt"
	"hash/fnv"
)

// slotHash is the deterministic tie-breaker of the candidate ordering:
// FNV-1a (32 bit) over "recipeID|slotDate|seed". Pure string-to-integer
// mapping with no external entropy, so test suites can recompute the
// expected order exactly.
func slotHash(recipeID, slotDate string, seed int64) uint32 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%d", recipeID, slotDate, seed)
	return h.Sum32()
}

// Package normalize canonicalizes free-text ingredient names and units into
// the stable keys used by the ingredient catalog and the shopping list
// aggregation.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var parenthetical = regexp.MustCompile(`\(.*?\)`)

// Size-and-cut descriptors and grammatical filler dropped during name
// normalization. Purely descriptive words, never ingredient identity.
var descriptorWords = map[string]struct{}{
	"cortado":  {},
	"cortada":  {},
	"cortados": {},
	"cortadas": {},
	"picado":   {},
	"picada":   {},
	"picados":  {},
	"picadas":  {},
	"pelado":   {},
	"pelada":   {},
	"pelados":  {},
	"peladas":  {},
	"dados":    {},
	"trozos":   {},
	"rodajas":  {},
	"grande":   {},
	"grandes":  {},
	"fino":     {},
	"fina":     {},
	"finos":    {},
	"finas":    {},
	"en":       {},
	"con":      {},
	"sin":      {},
	"y":        {},
	"al":       {},
	"la":       {},
	"el":       {},
	"los":      {},
	"las":      {},
}

var unitSynonyms = map[string]string{
	"gr":       "g",
	"gramo":    "g",
	"gramos":   "g",
	"kilo":     "kg",
	"kilos":    "kg",
	"unidad":   "unidad",
	"unidades": "unidad",
	"ud":       "unidad",
	"uds":      "unidad",
	"ccs":      "ml",
	"cc":       "ml",
}

// StripAccents removes diacritic marks, leaving the base characters intact.
// Invalid input is returned unchanged.
func StripAccents(value string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, value)
	if err != nil {
		return value
	}
	return out
}

// IngredientName canonicalizes a free-text ingredient name into the base
// form used for catalog lookups and aggregation keys. The function is total:
// it never fails, and empty or fully-filtered input falls back first to the
// pre-tokenization text and finally to the literal "ingrediente".
func IngredientName(raw string) string {
	base := strings.ToLower(StripAccents(raw))
	base = parenthetical.ReplaceAllString(base, " ")
	base = strings.TrimSpace(strings.SplitN(base, ",", 2)[0])

	tokens := strings.Fields(base)
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, skip := descriptorWords[token]; !skip {
			filtered = append(filtered, token)
		}
	}
	// Dropping descriptors must never erase the whole name.
	if len(filtered) == 0 {
		filtered = tokens
	}

	// Naive singularization of the leading token.
	if len(filtered) > 0 && len(filtered[0]) > 3 && strings.HasSuffix(filtered[0], "s") {
		filtered[0] = strings.TrimSuffix(filtered[0], "s")
	}

	if len(filtered) > 4 {
		filtered = filtered[:4]
	}

	if result := strings.TrimSpace(strings.Join(filtered, " ")); result != "" {
		return result
	}
	if base != "" {
		return base
	}
	return "ingrediente"
}

// Unit canonicalizes a unit string. Empty input maps to "unidad", known
// synonyms collapse to their canonical unit, anything else passes through
// unchanged.
func Unit(raw string) string {
	value := strings.TrimSpace(strings.ToLower(StripAccents(raw)))
	if value == "" {
		return "unidad"
	}
	if mapped, ok := unitSynonyms[value]; ok {
		return mapped
	}
	return value
}

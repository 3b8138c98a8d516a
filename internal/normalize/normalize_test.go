package normalize

import (
	"testing"
)

func TestIngredientName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "should lowercase and strip accents",
			input:    "Cebolla Morada",
			expected: "cebolla morada",
		},
		{
			name:     "should drop parenthetical notes",
			input:    "tomate (maduro)",
			expected: "tomate",
		},
		{
			name:     "should keep only text before first comma",
			input:    "pimiento rojo, lavado y seco",
			expected: "pimiento rojo",
		},
		{
			name:     "should drop descriptor words",
			input:    "cebolla cortada en dados",
			expected: "cebolla",
		},
		{
			name:     "should fall back to unfiltered tokens when all are descriptors",
			input:    "en la",
			expected: "en la",
		},
		{
			name:     "should singularize long leading token ending in s",
			input:    "calabacines",
			expected: "calabacine",
		},
		{
			name:     "should not singularize short tokens",
			input:    "gas natural",
			expected: "gas natural",
		},
		{
			name:     "should keep at most four tokens",
			input:    "salsa de tomate casera muy especial",
			expected: "salsa de tomate casera",
		},
		{
			name:     "should strip diacritics",
			input:    "Jamón ibérico",
			expected: "jamon iberico",
		},
		{
			name:     "should use placeholder for empty input",
			input:    "",
			expected: "ingrediente",
		},
		{
			name:     "should use placeholder when only parenthetical remains",
			input:    "(opcional)",
			expected: "ingrediente",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := IngredientName(tt.input)
			if result != tt.expected {
				t.Errorf("IngredientName(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty maps to unidad", input: "", expected: "unidad"},
		{name: "blank maps to unidad", input: "   ", expected: "unidad"},
		{name: "gr maps to g", input: "gr", expected: "g"},
		{name: "gramos maps to g", input: "Gramos", expected: "g"},
		{name: "kilo maps to kg", input: "kilo", expected: "kg"},
		{name: "ud maps to unidad", input: "ud", expected: "unidad"},
		{name: "uds maps to unidad", input: "uds", expected: "unidad"},
		{name: "cc maps to ml", input: "cc", expected: "ml"},
		{name: "unknown passes through", input: "taza", expected: "taza"},
		{name: "case and accents folded before lookup", input: " GR ", expected: "g"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result := Unit(tt.input)
			if result != tt.expected {
				t.Errorf("Unit(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIngredientNameIsDeterministic(t *testing.T) {
	input := "Pimientos verdes (frescos), cortados en trozos finos"
	first := IngredientName(input)
	for i := 0; i < 5; i++ {
		if got := IngredientName(input); got != first {
			t.Fatalf("IngredientName(%q) changed between calls: %q vs %q", input, first, got)
		}
	}
}

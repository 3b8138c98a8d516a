package models

import "errors"

// Validation sentinels raised before any mutation reaches the store.
// Callers keep their prior state when one of these is returned.
var (
	ErrNameRequired      = errors.New("name is required")
	ErrInvalidServings   = errors.New("servings must be a positive integer")
	ErrInvalidMacros     = errors.New("nutrition fields must be finite, non-negative numbers")
	ErrInvalidMealType   = errors.New("meal_type must be pool, pizza_fixed or pasta_fixed")
	ErrInvalidBiometrics = errors.New("age, weight and height must be positive numbers")
	ErrInvalidQuantity   = errors.New("quantity must be a positive number")
	ErrInvalidMonday     = errors.New("start date must be a Monday in YYYY-MM-DD format")
	ErrInvalidWeekIndex  = errors.New("week index is outside the plan horizon")
)

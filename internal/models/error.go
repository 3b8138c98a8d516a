package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain-specific errors
	ErrRecipeNotFound   = "RECIPE_NOT_FOUND"
	ErrRecipeInvalid    = "RECIPE_INVALID_DATA"
	ErrProfileNotFound  = "PROFILE_NOT_FOUND"
	ErrProfileInvalid   = "PROFILE_INVALID_DATA"
	ErrPlanNotFound     = "PLAN_NOT_FOUND"
	ErrPlanInvalid      = "PLAN_INVALID_DATA"
	ErrCatalogInvalid   = "CATALOG_INVALID_DATA"
	ErrShoppingNotFound = "SHOPPING_WEEK_NOT_FOUND"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

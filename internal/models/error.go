package models

import "fmt"

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
)

// Entity kinds used in NotFoundError. These are the names surfaced to API
// clients, so they stay stable even if the Go types are renamed.
const (
	KindPizzaType        = "PizzaType"
	KindPizzaFlavor      = "PizzaFlavor"
	KindPizzaExtra       = "PizzaExtra"
	KindPizzaCrust       = "PizzaCrust"
	KindBeverage         = "Beverage"
	KindBeverageCategory = "BeverageCategory"
	KindCustomer         = "Customer"
	KindOrder            = "Order"
	KindAddress          = "Address"
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

// NotFoundError reports that a referenced entity id does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// NewNotFound creates a NotFoundError for the given entity kind and id.
func NewNotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// ValidationError reports structurally invalid input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NewValidation creates a ValidationError with the given reason.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// ConflictError reports a uniqueness violation, e.g. a duplicate
// registration email.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// NewConflict creates a ConflictError with the given reason.
func NewConflict(reason string) error {
	return &ConflictError{Reason: reason}
}

package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by services and handlers. Handlers translate these
// to HTTP statuses; infrastructure failures stay generic 5xx.
var (
	ErrDuplicateIdentity  = errors.New("email or username already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("not authorized to perform this action")
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadySeller      = errors.New("user is already a seller")
	ErrDuplicateReview    = errors.New("review already exists for this gig")
	ErrStoreUnavailable   = errors.New("storage unavailable")
)

// ValidationError reports the first failing field of a request.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

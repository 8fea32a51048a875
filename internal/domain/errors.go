package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrActivityNotFound     = errors.New("activity not found")
)

var (
	ErrEmailTaken     = errors.New("a registration with this email already exists")
	ErrUserEmailTaken = errors.New("a user with this email already exists")
	ErrReferenceTaken = errors.New("payment reference already exists")
)

var (
	ErrValidation            = errors.New("validation error")
	ErrInvalidCategory       = errors.New("unknown registration type")
	ErrPaymentStatusRequired = errors.New("payment status is required")

	// ErrActivityUserUnknown rejects an activity write naming a user that
	// does not exist. Distinct from ErrUserNotFound: a bad reference in a
	// request body is the caller's mistake, not a missing resource.
	ErrActivityUserUnknown = errors.New("user not found")
)

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level detail for a rejected write. Either
// MissingFields or Details is populated, never both.
type ValidationError struct {
	MissingFields []string
	Details       []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
	}
	fields := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		fields = append(fields, d.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

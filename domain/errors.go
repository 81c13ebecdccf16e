package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Session errors
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNoProfile        = errors.New("no profile held")
)

// Local validation errors
var (
	ErrMissingField      = errors.New("required field missing")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrOTPIncomplete     = errors.New("otp code must be 6 digits")
	ErrResendThrottled   = errors.New("resend is still cooling down")
	ErrRefundCapExceeded = errors.New("amount exceeds eligible refund cap")
)

// Transport errors
var (
	ErrTimeout = errors.New("request timed out")
	ErrNetwork = errors.New("network error")
)

// Payment errors
var (
	ErrPaymentExecuteFailed  = errors.New("payment could not be completed, contact support")
	ErrPaymentAlreadyHandled = errors.New("payment already executed")
	ErrPaymentNotActive      = errors.New("no active payment session")
)

// FallbackErrorMessage is surfaced when no more specific message is available.
const FallbackErrorMessage = "An unexpected error occurred"

// APIError is a non-2xx backend response. Message carries the server's
// top-level message; Fields carries the per-field validation error map when
// the backend returned one.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if msg := e.UserMessage(); msg != "" {
		return msg
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// UserMessage resolves the message to surface: the server's top-level message
// first, then the first field error, then the generic fallback. Field keys
// are walked in sorted order so the choice is deterministic.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if msg := e.FirstFieldError(); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}

// FirstFieldError returns the first reported message across all fields, or
// empty when no field errors are present.
func (e *APIError) FirstFieldError() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msgs := e.Fields[k]; len(msgs) > 0 && msgs[0] != "" {
			return msgs[0]
		}
	}
	return ""
}

// FieldError returns the first message reported against a single field.
func (e *APIError) FieldError(field string) string {
	if msgs := e.Fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// ValidationError is a local, pre-network validation failure tied to a field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError builds a field-scoped local validation error.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// UserMessage translates any error from the flow controllers into the single
// string the presentation layer shows. Raw transport errors never pass
// through unchanged.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr.Err.Error()
	}
	switch {
	case errors.Is(err, ErrTimeout), errors.Is(err, ErrNetwork):
		return FallbackErrorMessage
	case errors.Is(err, ErrUnauthorized):
		return "Your session has expired. Please log in again."
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}

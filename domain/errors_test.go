package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_UserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "server message wins",
			err: &APIError{
				StatusCode: 422,
				Message:    "The phone number has already been taken.",
				Fields:     map[string][]string{"email": {"The email is invalid."}},
			},
			want: "The phone number has already been taken.",
		},
		{
			name: "first field error when no top-level message",
			err: &APIError{
				StatusCode: 422,
				Fields: map[string][]string{
					"phone_number": {"The phone number is required."},
					"email":        {"The email is invalid."},
				},
			},
			// Keys walked in sorted order, so "email" is chosen first.
			want: "The email is invalid.",
		},
		{
			name: "fallback when nothing usable",
			err:  &APIError{StatusCode: 500},
			want: FallbackErrorMessage,
		},
		{
			name: "fallback when field list is empty",
			err: &APIError{
				StatusCode: 422,
				Fields:     map[string][]string{"email": {}},
			},
			want: FallbackErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.UserMessage(); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_FieldError(t *testing.T) {
	err := &APIError{
		StatusCode: 422,
		Fields: map[string][]string{
			"phone_number": {"The phone number is required.", "The phone number is invalid."},
		},
	}

	if got := err.FieldError("phone_number"); got != "The phone number is required." {
		t.Errorf("FieldError(phone_number) = %q, want first reported message", got)
	}
	if got := err.FieldError("email"); got != "" {
		t.Errorf("FieldError(email) = %q, want empty", got)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("password", ErrPasswordTooShort)

	if !errors.Is(err, ErrPasswordTooShort) {
		t.Error("validation error must unwrap to its sentinel")
	}
	if err.Error() != "password: password must be at least 6 characters" {
		t.Errorf("Error() = %q", err.Error())
	}

	bare := NewValidationError("", ErrOTPIncomplete)
	if bare.Error() != ErrOTPIncomplete.Error() {
		t.Errorf("field-less Error() = %q", bare.Error())
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{
			name: "api error resolves through its own chain",
			err:  fmt.Errorf("login: %w", &APIError{StatusCode: 400, Message: "Invalid credentials"}),
			want: "Invalid credentials",
		},
		{
			name: "validation error surfaces the rule",
			err:  NewValidationError("confirm_password", ErrPasswordMismatch),
			want: ErrPasswordMismatch.Error(),
		},
		{
			name: "timeout is generic",
			err:  fmt.Errorf("request: %w", ErrTimeout),
			want: FallbackErrorMessage,
		},
		{
			name: "network failure is generic",
			err:  ErrNetwork,
			want: FallbackErrorMessage,
		},
		{
			name: "unauthorized prompts re-login",
			err:  ErrUnauthorized,
			want: "Your session has expired. Please log in again.",
		},
		{
			name: "plain error passes its message",
			err:  errors.New("something odd"),
			want: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

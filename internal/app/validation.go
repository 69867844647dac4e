package app

import (
	"fmt"
	"strings"

	"codingevents/internal/domain"
)

// Machine-readable failure codes attached to field errors.
const (
	CodeStructural        = "structural"
	CodeUsernameExists    = "username.alreadyexists"
	CodePasswordsMismatch = "passwords.mismatch"
	CodeUserInvalid       = "user.invalid"
	CodePasswordInvalid   = "password.invalid"
)

// FieldError is a single validation failure attached to one form field.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ValidationErrors is the error value returned by form-handling use cases.
// It is returned by value rather than accumulated through a shared mutable
// errors object.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Code)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByField returns the message for the given field, or "" if the field is clean.
func (e ValidationErrors) ByField(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func fieldErr(field, code, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Code: code, Message: message}}
}

// RegisterForm carries one registration attempt. Never persisted.
type RegisterForm struct {
	Username       string
	Password       string
	VerifyPassword string
}

// Validate performs structural checks independent of stored data.
func (f RegisterForm) Validate() ValidationErrors {
	if l := len(f.Username); l < 3 || l > 20 {
		return fieldErr("username", CodeStructural, "Username must be between 3 and 20 characters")
	}
	if l := len(f.Password); l < 5 || l > 30 {
		return fieldErr("password", CodeStructural, "Password must be between 5 and 30 characters")
	}
	if f.VerifyPassword == "" {
		return fieldErr("verifyPassword", CodeStructural, "Passwords do not match")
	}
	return nil
}

// LoginForm carries one login attempt. Never persisted.
type LoginForm struct {
	Username string
	Password string
}

// Validate performs structural checks independent of stored data.
func (f LoginForm) Validate() ValidationErrors {
	if f.Username == "" {
		return fieldErr("username", CodeStructural, "Username is required")
	}
	if f.Password == "" {
		return fieldErr("password", CodeStructural, "Password is required")
	}
	return nil
}

// EventForm carries one event creation attempt.
type EventForm struct {
	Name         string
	Description  string
	ContactEmail string
	Type         domain.EventType
}

// Validate performs structural checks on the event fields.
func (f EventForm) Validate() ValidationErrors {
	if l := len(f.Name); l < 3 || l > 50 {
		return fieldErr("name", CodeStructural, "Name must be between 3 and 50 characters")
	}
	if len(f.Description) > 500 {
		return fieldErr("description", CodeStructural, "Description too long")
	}
	if f.ContactEmail == "" || !looksLikeEmail(f.ContactEmail) {
		return fieldErr("contactEmail", CodeStructural, "Invalid email address")
	}
	if !f.Type.Valid() {
		return fieldErr("type", CodeStructural, "Unknown event type")
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t\n")
}

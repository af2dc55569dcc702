package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain outcomes. Handlers translate these into HTTP responses; raw
// storage errors must never reach a client.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError collects field-level problems so a single response can
// report every invalid field at once.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a message against a field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the error only when at least one field failed,
// avoiding a typed-nil escaping into an error interface.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// ValidationProblem is the 400 response body: problem-details style with
// per-field message lists.
type ValidationProblem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

func NewValidationProblem(fields map[string][]string) ValidationProblem {
	return ValidationProblem{
		Title:  "One or more validation errors occurred.",
		Status: 400,
		Errors: fields,
	}
}

// MessageResponse is the body for single-message outcomes (401, 500).
type MessageResponse struct {
	Message string `json:"message"`
}

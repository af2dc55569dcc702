package common

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Field length limits shared by requests and the schema.
const (
	MaxTitleLength      = 200
	MaxCallerNameLength = 100
	MaxEmailLength      = 320
	MaxNotesLength      = 2000
	MinPasswordLength   = 8
	MaxPasswordLength   = 100
	MaxDurationMinutes  = 1440
)

// NormalizeEmail trims and lowercases an address. Every lookup and every
// insert goes through this so casing variants map to one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmailSyntax reports whether the value is a plain addr-spec.
// Display-name forms ("Max <max@example.com>") are rejected.
func ValidEmailSyntax(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}

// RequireString checks a mandatory bounded string field. Limits count
// characters, not bytes, so multibyte input gets the full budget the
// schema's VARCHAR(n) allows.
func RequireString(ve *ValidationError, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, fmt.Sprintf("The %s field is required.", field))
		return
	}
	if utf8.RuneCountInString(value) > maxLen {
		ve.Add(field, fmt.Sprintf("The %s field must not exceed %d characters.", field, maxLen))
	}
}

// OptionalString checks an optional bounded string field.
func OptionalString(ve *ValidationError, field string, value *string, maxLen int) {
	if value == nil {
		return
	}
	if utf8.RuneCountInString(*value) > maxLen {
		ve.Add(field, fmt.Sprintf("The %s field must not exceed %d characters.", field, maxLen))
	}
}

// RequireEmail checks a mandatory email field (syntax and length).
func RequireEmail(ve *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, fmt.Sprintf("The %s field is required.", field))
		return
	}
	if utf8.RuneCountInString(value) > MaxEmailLength {
		ve.Add(field, fmt.Sprintf("The %s field must not exceed %d characters.", field, MaxEmailLength))
		return
	}
	if !ValidEmailSyntax(value) {
		ve.Add(field, fmt.Sprintf("The %s field is not a valid e-mail address.", field))
	}
}

// IntRange checks an inclusive integer range.
func IntRange(ve *ValidationError, field string, value, min, max int) {
	if value < min || value > max {
		ve.Add(field, fmt.Sprintf("The %s field must be between %d and %d.", field, min, max))
	}
}

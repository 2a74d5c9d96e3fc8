package application

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"clubhub/internal/domain"
)

// MaxCount bounds how many cards a single add/remove request may touch
const MaxCount = 100

// Account rules
const (
	MinUsernameLength = 3
	MaxUsernameLength = 11
	MinPasswordLength = 6
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateCount checks that a card count is within [1, MaxCount].
func ValidateCount(fieldName string, n int) error {
	if n < 1 || n > MaxCount {
		return &CountError{Field: formatFieldName(fieldName), Value: n, Max: MaxCount}
	}
	return nil
}

// ValidateSwipeDirection checks that d is a direction a card can be swiped in.
// The stack only swipes horizontally.
func ValidateSwipeDirection(d domain.Direction) error {
	if d != domain.DirectionLeft && d != domain.DirectionRight {
		return &ValidationError{
			Field:   "direction",
			Message: fmt.Sprintf("cannot swipe %s (expected left or right)", d),
		}
	}
	return nil
}

// ValidateCredentials checks a registration form. A mismatched
// confirmation is reported before any other rule.
func ValidateCredentials(username, password, confirm string) error {
	if password != confirm {
		return &ValidationError{
			Field:   "confirmPassword",
			Message: fmt.Sprintf("%s does not match password", formatFieldName("confirmPassword")),
		}
	}
	if err := ValidateRequired("username", username); err != nil {
		return err
	}

	switch n := utf8.RuneCountInString(username); {
	case n < MinUsernameLength:
		return &ValidationError{Field: "username", Message: fmt.Sprintf("username must be at least %d characters long", MinUsernameLength)}
	case n > MaxUsernameLength:
		return &ValidationError{Field: "username", Message: fmt.Sprintf("username can't be longer than %d characters", MaxUsernameLength)}
	case strings.ContainsFunc(username, unicode.IsSpace):
		return &ValidationError{Field: "username", Message: "username can't contain spaces"}
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters long", MinPasswordLength)}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "confirmPassword" -> "password confirmation")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"confirmPassword": "password confirmation",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

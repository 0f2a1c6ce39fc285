// Package validators holds input validation rules shared by the service
// layer.
package validators

import (
	"strings"
	"unicode/utf8"
)

// TodoTextValidator validates and normalises todo text: surrounding
// whitespace is trimmed, the result must be non-empty and at most Limit
// characters long.
type TodoTextValidator struct {
	// Limit is the maximum allowed text length in characters (runes).
	Limit int
}

// NewTodoTextValidator creates a validator with the given character limit.
func NewTodoTextValidator(limit int) *TodoTextValidator {
	return &TodoTextValidator{Limit: limit}
}

// Validate returns the trimmed text, or a sentinel rejection reason.
func (v *TodoTextValidator) Validate(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyTodoText
	}
	if utf8.RuneCountInString(trimmed) > v.Limit {
		return "", ErrTodoTextTooLong
	}

	return trimmed, nil
}

package validators

import "errors"

// Validation errors returned by [TodoTextValidator]. They are rejection
// reasons, not failures: the caller leaves the collection untouched and may
// surface the reason inline.
var (
	// ErrEmptyTodoText is returned when the text is empty after trimming.
	ErrEmptyTodoText = errors.New("todo text is empty")

	// ErrTodoTextTooLong is returned when the trimmed text exceeds the
	// configured maximum length.
	ErrTodoTextTooLong = errors.New("todo text exceeds maximum length")
)

package models

// Todo represents a single entry of a user's todo list.
// Todos are kept in insertion order; the slice itself is the persisted snapshot.
type Todo struct {
	// ID is the client-generated unique identifier of the todo.
	// Assigned once at creation and never reused.
	ID string `json:"id"`

	// Text is the trimmed todo description. Always non-empty and bounded
	// by the configured maximum length.
	Text string `json:"text"`

	// Completed marks whether the todo has been checked off.
	Completed bool `json:"completed"`
}

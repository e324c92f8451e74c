package domain

import "time"

// Status is the lifecycle state of a task. Exactly two values exist;
// the only transition is the toggle, which is its own inverse.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the two defined statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// Task is a user-owned to-do item. Every task has exactly one owner;
// all reads and writes are scoped by UserID.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Category    string
	Tags        []string
	DueDate     *time.Time
	Status      Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

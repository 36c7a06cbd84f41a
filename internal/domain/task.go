package domain

import "time"

// Task is the domain entity for a task record. Every task belongs to
// exactly one user; OwnerID is set at creation and never changes.
type Task struct {
	ID      int64
	OwnerID int64
	Title   string
	Body    string

	CreatedAt time.Time
	UpdatedAt *time.Time // nil until the first edit
}

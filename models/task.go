package models

import "time"

// Task represents a task in the to-do list.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CreateTaskRequest defines the payload for creating a task. Completed is a
// pointer so an explicit false and an absent field are distinguishable:
// absent defaults to false, explicit false passes through unchanged.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

// UpdateTaskRequest defines the payload for a partial update. Every field is
// a pointer: only fields present in the request are merged, so completed can
// be set back to false and description cleared to the empty string.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

package models

import "time"

// TaskPriority controls how a pending task is ordered in the list.
type TaskPriority string

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	TaskPriorityRegular TaskPriority = "regular"
	TaskPriorityUrgent  TaskPriority = "urgent"

	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a shared to-do item. The same shape is used locally and by the
// remote store.
type Task struct {
	// ID is the client-generated identifier; the remote store upserts by it.
	ID string `json:"id"`

	Title    string       `json:"title"`
	Priority TaskPriority `json:"priority"`
	Status   TaskStatus   `json:"status"`

	// CreatedBy and CompletedBy reference Owner.ID. Both are optional because
	// tasks may be created before any owner exists.
	CreatedBy   *string `json:"created_by"`
	CompletedBy *string `json:"completed_by"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TableName returns the name of the remote table associated with Task.
func (t Task) TableName() string {
	return "tasks"
}

// Valid reports whether the priority is one of the known values.
func (p TaskPriority) Valid() bool {
	return p == TaskPriorityRegular || p == TaskPriorityUrgent
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the workflow state of a task.
type TaskStatus string

// Allowed task statuses.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task field bounds.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// IsValid reports whether the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task represents a single to-do item owned by exactly one user.
// Every read and mutation must be scoped to the owning user's ID.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"-"` // Owner, never exposed in responses
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a Task bound to the given owner. Title and
// description are trimmed; an empty status defaults to todo.
// Both timestamps are set to the same instant.
func NewTask(userID uuid.UUID, title, description string, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusTodo
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the Task's fields against the entity rules.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if t.UserID == uuid.Nil {
		return NewValidationError("userId", "cannot be empty", ErrInvalidID)
	}

	titleLen := len([]rune(t.Title))
	if titleLen == 0 {
		return NewValidationError("title", "is required", nil)
	}
	if titleLen > MaxTitleLength {
		return NewValidationError("title", "must be at most 200 characters", nil)
	}

	if len([]rune(t.Description)) > MaxDescriptionLength {
		return NewValidationError("description", "must be at most 2000 characters", nil)
	}

	if !t.Status.IsValid() {
		return NewValidationError("status", "must be one of todo, in-progress, done", ErrInvalidStatus)
	}

	return nil
}

// TaskUpdate is a partial update of a task. Nil fields are left
// unchanged; set fields are trimmed and bounds-checked.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// IsEmpty reports whether the update carries no fields at all.
func (u *TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

// Validate checks every present field against the same bounds that
// apply on creation. An update with no fields is rejected.
func (u *TaskUpdate) Validate() error {
	if u.IsEmpty() {
		return NewValidationError("update", "must include at least one field", ErrEmptyUpdate)
	}

	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		titleLen := len([]rune(title))
		if titleLen == 0 {
			return NewValidationError("title", "is required", nil)
		}
		if titleLen > MaxTitleLength {
			return NewValidationError("title", "must be at most 200 characters", nil)
		}
	}

	if u.Description != nil {
		if len([]rune(strings.TrimSpace(*u.Description))) > MaxDescriptionLength {
			return NewValidationError("description", "must be at most 2000 characters", nil)
		}
	}

	if u.Status != nil && !u.Status.IsValid() {
		return NewValidationError("status", "must be one of todo, in-progress, done", ErrInvalidStatus)
	}

	return nil
}

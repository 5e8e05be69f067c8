package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskflow/taskflow-api/internal/domain"
)

// Query parameter defaults and bounds for task listing.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50

	// StatusFilterAll disables status filtering.
	StatusFilterAll = "all"

	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"
	SortByTitle     = "title"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// TaskQuery is a validated, bounded set of list parameters. It is
// produced by the API layer's query parsing; store implementations may
// assume every field already holds an allowed value.
type TaskQuery struct {
	Page      int    // ≥ 1
	Limit     int    // 1..MaxLimit
	Status    string // task status or StatusFilterAll
	Search    string // trimmed, ≤ 100 chars; matched as a literal substring of title
	SortBy    string // one of the SortBy constants
	SortOrder string // SortOrderAsc or SortOrderDesc
}

// DefaultTaskQuery returns a TaskQuery with all defaults applied.
func DefaultTaskQuery() TaskQuery {
	return TaskQuery{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		Status:    StatusFilterAll,
		SortBy:    SortByCreatedAt,
		SortOrder: SortOrderDesc,
	}
}

// Offset returns the number of records to skip for the query's page.
func (q TaskQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// TaskStore defines the interface for task persistence. Every read and
// mutation is scoped by the owner's user ID; a task that exists but
// belongs to someone else is indistinguishable from one that does not
// exist.
type TaskStore interface {
	// Create saves a new task. The task's UserID must already be bound
	// to the authenticated caller.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID, scoped to the owner.
	// Returns ErrTaskNotFound for missing and foreign-owned tasks alike.
	GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// Update applies a partial update to an owned task and returns the
	// updated row. The ownership check and the mutation are a single
	// statement; there is no window between them. The updated_at
	// timestamp is bumped on every call.
	// Returns ErrTaskNotFound for missing and foreign-owned tasks alike.
	Update(ctx context.Context, ownerID, taskID uuid.UUID, update *domain.TaskUpdate) (*domain.Task, error)

	// Delete removes an owned task. Atomic in the same sense as Update.
	// Returns ErrTaskNotFound for missing and foreign-owned tasks alike.
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error

	// List returns one page of the owner's tasks matching the query,
	// plus the total count of matching rows before pagination.
	List(ctx context.Context, ownerID uuid.UUID, query TaskQuery) ([]*domain.Task, int, error)
}

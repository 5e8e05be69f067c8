package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing. The default
// implementation keeps tasks in memory and mirrors the real store's
// semantics: owner scoping on every operation, literal substring
// search, whitelist sorting, and offset pagination.
type MockTaskStore struct {
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, ownerID, taskID uuid.UUID, update *domain.TaskUpdate) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, ownerID, taskID uuid.UUID) error
	ListFn    func(ctx context.Context, ownerID uuid.UUID, query store.TaskQuery) ([]*domain.Task, int, error)

	mu    sync.Mutex
	Tasks []*domain.Task // insertion order preserved

	Err error // when set, every defaulted method fails with it
}

// Ensure MockTaskStore implements store.TaskStore.
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{}
}

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tasks = append(m.Tasks, task)
	return nil
}

// GetByID implements the TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, taskID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if task := m.find(ownerID, taskID); task != nil {
		return task, nil
	}
	return nil, store.ErrTaskNotFound
}

// Update implements the TaskStore interface.
func (m *MockTaskStore) Update(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	update *domain.TaskUpdate,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, taskID, update)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task := m.find(ownerID, taskID)
	if task == nil {
		return nil, store.ErrTaskNotFound
	}

	if update.Title != nil {
		task.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		task.Description = strings.TrimSpace(*update.Description)
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	task.UpdatedAt = time.Now().UTC()
	return task, nil
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, taskID)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, task := range m.Tasks {
		if task.ID == taskID && task.UserID == ownerID {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// List implements the TaskStore interface.
func (m *MockTaskStore) List(
	ctx context.Context,
	ownerID uuid.UUID,
	query store.TaskQuery,
) ([]*domain.Task, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, query)
	}
	if m.Err != nil {
		return nil, 0, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*domain.Task
	search := strings.ToLower(strings.TrimSpace(query.Search))
	for _, task := range m.Tasks {
		if task.UserID != ownerID {
			continue
		}
		if query.Status != store.StatusFilterAll && query.Status != "" &&
			string(task.Status) != query.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(task.Title), search) {
			continue
		}
		matched = append(matched, task)
	}

	sortTasks(matched, query.SortBy, query.SortOrder)

	total := len(matched)
	offset := query.Offset()
	if offset > total {
		offset = total
	}
	end := offset + query.Limit
	if end > total {
		end = total
	}

	page := make([]*domain.Task, end-offset)
	copy(page, matched[offset:end])
	return page, total, nil
}

// find returns the owner's task by ID, or nil. Caller holds the lock.
func (m *MockTaskStore) find(ownerID, taskID uuid.UUID) *domain.Task {
	for _, task := range m.Tasks {
		if task.ID == taskID && task.UserID == ownerID {
			return task
		}
	}
	return nil
}

// sortTasks orders tasks by a single whitelisted key. The sort is
// stable, so ties keep insertion order.
func sortTasks(tasks []*domain.Task, sortBy, sortOrder string) {
	less := func(a, b *domain.Task) bool {
		switch sortBy {
		case store.SortByUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		case store.SortByTitle:
			return a.Title < b.Title
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if sortOrder == store.SortOrderAsc {
			return less(tasks[i], tasks[j])
		}
		return less(tasks[j], tasks[i])
	})
}

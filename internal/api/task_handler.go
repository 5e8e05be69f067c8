package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/platform/logger"
	"github.com/taskflow/taskflow-api/internal/store"
)

// TaskHandler handles the per-user task CRUD and listing endpoints.
// Every operation scopes to the authenticated owner; the owner ID is
// never read from request input.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: newValidator(),
	}
}

// List handles GET /api/tasks with filtering, search, sorting, and
// pagination.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	query, fieldErrs := parseTaskQuery(r)
	if fieldErrs != nil {
		shared.RespondWithFieldErrors(w, r, "Invalid query parameters", fieldErrs)
		return
	}

	tasks, total, err := h.taskStore.List(r.Context(), userID, query)
	if err != nil {
		respondWithMappedError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK,
		NewTaskListResponse(tasks, query.Page, query.Limit, total))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
		return
	}

	task, err := domain.NewTask(userID, req.Title, req.Description, domain.TaskStatus(req.Status))
	if err != nil {
		shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
			return
		}
		respondWithMappedError(w, r, err, "Failed to create task")
		return
	}

	log.Debug("task created", "task_id", task.ID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// Get handles GET /api/tasks/{id}. A task owned by someone else gets
// the same 404 as a task that does not exist.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), userID, taskID)
	if err != nil {
		respondWithMappedError(w, r, err, "Failed to load task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Patch handles PATCH /api/tasks/{id} with a partial update.
func (h *TaskHandler) Patch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
		return
	}

	update := &domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}

	if err := update.Validate(); err != nil {
		shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
		return
	}

	task, err := h.taskStore.Update(r.Context(), userID, taskID, update)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			shared.RespondWithFieldErrors(w, r, "Validation failed", validationFieldErrors(err))
			return
		}
		respondWithMappedError(w, r, err, "Failed to update task")
		return
	}

	log.Debug("task updated", "task_id", taskID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	taskID, ok := taskIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), userID, taskID); err != nil {
		respondWithMappedError(w, r, err, "Failed to delete task")
		return
	}

	log.Debug("task deleted", "task_id", taskID, "user_id", userID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

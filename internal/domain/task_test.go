package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTaskStatusIsValid(t *testing.T) {
	valid := []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("Expected status %q to be valid", s)
		}
	}

	invalid := []TaskStatus{"", "pending", "TODO", "in_progress", "complete"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("Expected status %q to be invalid", s)
		}
	}
}

func TestNewTask(t *testing.T) {
	ownerID := uuid.New()

	task, err := NewTask(ownerID, "Write report", "Quarterly numbers", TaskStatusInProgress)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil task ID")
	}
	if task.UserID != ownerID {
		t.Error("Expected task to be bound to the given owner")
	}
	if task.Status != TaskStatusInProgress {
		t.Errorf("Expected status %q, got %q", TaskStatusInProgress, task.Status)
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Error("Expected CreatedAt and UpdatedAt to be the same instant")
	}
}

func TestNewTaskDefaultsStatus(t *testing.T) {
	task, err := NewTask(uuid.New(), "Write report", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusTodo {
		t.Errorf("Expected empty status to default to todo, got %q", task.Status)
	}
}

func TestNewTaskTrims(t *testing.T) {
	task, err := NewTask(uuid.New(), "  Write report  ", "  details  ", TaskStatusTodo)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Title != "Write report" {
		t.Errorf("Expected trimmed title, got %q", task.Title)
	}
	if task.Description != "details" {
		t.Errorf("Expected trimmed description, got %q", task.Description)
	}
}

func TestNewTaskValidation(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name        string
		owner       uuid.UUID
		title       string
		description string
		status      TaskStatus
		wantField   string
	}{
		{"missing owner", uuid.Nil, "Write report", "", TaskStatusTodo, "userId"},
		{"empty title", ownerID, "", "", TaskStatusTodo, "title"},
		{"whitespace title", ownerID, "   ", "", TaskStatusTodo, "title"},
		{"title too long", ownerID, strings.Repeat("t", MaxTitleLength+1), "", TaskStatusTodo, "title"},
		{"description too long", ownerID, "Write report", strings.Repeat("d", MaxDescriptionLength+1), TaskStatusTodo, "description"},
		{"unknown status", ownerID, "Write report", "", "archived", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.owner, tt.title, tt.description, tt.status)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestNewTaskTitleAtBounds(t *testing.T) {
	if _, err := NewTask(uuid.New(), strings.Repeat("t", MaxTitleLength), "", TaskStatusTodo); err != nil {
		t.Errorf("Expected %d-character title to be accepted, got %v", MaxTitleLength, err)
	}
	if _, err := NewTask(uuid.New(), "x", strings.Repeat("d", MaxDescriptionLength), TaskStatusTodo); err != nil {
		t.Errorf("Expected %d-character description to be accepted, got %v", MaxDescriptionLength, err)
	}
}

func TestTaskUpdateValidate(t *testing.T) {
	title := "New title"
	longTitle := strings.Repeat("t", MaxTitleLength+1)
	emptyTitle := "   "
	description := "New description"
	status := TaskStatusDone
	badStatus := TaskStatus("archived")

	tests := []struct {
		name    string
		update  TaskUpdate
		wantErr error
	}{
		{"empty update rejected", TaskUpdate{}, ErrEmptyUpdate},
		{"title only", TaskUpdate{Title: &title}, nil},
		{"description only", TaskUpdate{Description: &description}, nil},
		{"status only", TaskUpdate{Status: &status}, nil},
		{"all fields", TaskUpdate{Title: &title, Description: &description, Status: &status}, nil},
		{"title too long", TaskUpdate{Title: &longTitle}, ErrValidation},
		{"title blank", TaskUpdate{Title: &emptyTitle}, ErrValidation},
		{"bad status", TaskUpdate{Status: &badStatus}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error wrapping %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTaskUpdateIsEmpty(t *testing.T) {
	title := "x"
	if (&TaskUpdate{Title: &title}).IsEmpty() {
		t.Error("Expected update with a field to be non-empty")
	}
	if !(&TaskUpdate{}).IsEmpty() {
		t.Error("Expected zero update to be empty")
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow-api/internal/domain"
	"github.com/taskflow/taskflow-api/internal/service/auth"
	"github.com/taskflow/taskflow-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid session", auth.ErrInvalidSession, http.StatusUnauthorized},
		{"missing session", auth.ErrMissingSession, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized operation", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"validation error", domain.NewValidationError("title", "is required", nil), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("disk full"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid email or password"},
		{"invalid session", auth.ErrInvalidSession, "Please log in to access this resource"},
		{"missing session", auth.ErrMissingSession, "Please log in to access this resource"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"email exists", store.ErrEmailExists, "An account with this email already exists"},
		{"validation", domain.NewValidationError("title", "is required", nil), "Validation failed"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid request data"},
		{"internal detail hidden", errors.New("pq: connection refused at 10.0.0.5"), "An unexpected error occurred"},
		{"nil", nil, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.want, got)
			if tt.err != nil {
				assert.NotContains(t, got, "10.0.0.5")
			}
		})
	}
}

func TestValidationFieldErrors(t *testing.T) {
	t.Parallel()

	// validator.ValidationErrors keyed by json tag names.
	v := newValidator()
	err := v.Struct(RegisterRequest{Name: "A", Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	fields := validationFieldErrors(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields["name"][0], "too short")
	assert.Contains(t, fields["email"][0], "not a valid email")

	// Domain validation errors carry their field through.
	fields = validationFieldErrors(domain.NewValidationError("title", "is required", nil))
	assert.Equal(t, map[string][]string{"title": {"is required"}}, fields)

	// Anything else degrades to a generic entry.
	fields = validationFieldErrors(errors.New("boom"))
	assert.Equal(t, map[string][]string{"request": {"is invalid"}}, fields)
}

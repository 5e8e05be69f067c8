package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestRespondWithErrorIncludesTraceID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	traceID := GetTraceID(req.Context())

	recorder := httptest.NewRecorder()
	RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Task not found", resp.Error)
	assert.Equal(t, traceID, resp.TraceID)
	assert.Nil(t, resp.Fields)
}

func TestRespondWithFieldErrors(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", nil)

	RespondWithFieldErrors(recorder, req, "Validation failed", map[string][]string{
		"title": {"is required"},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, []string{"is required"}, resp.Fields["title"])
}

func TestRespondWithErrorAndLogHidesInternalDetail(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/tasks", nil)

	internal := errors.New("pq: connection to postgres://app:hunter22@db failed")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Failed to list tasks", internal)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Failed to list tasks")
	assert.NotContains(t, body, "hunter22")
	assert.NotContains(t, body, "pq:")
}

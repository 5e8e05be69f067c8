package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskflow/taskflow-api/internal/api/shared"
)

func TestTraceAttachesTraceID(t *testing.T) {
	t.Parallel()

	var gotTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/tasks", nil)
	recorder := httptest.NewRecorder()
	Trace(next).ServeHTTP(recorder, req)

	assert.NotEmpty(t, gotTraceID)
	assert.Len(t, gotTraceID, 32)
}

func TestTraceGeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen[shared.GetTraceID(r.Context())] = true
	})

	handler := Trace(next)
	for i := 0; i < 10; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}

	assert.Len(t, seen, 10)
}

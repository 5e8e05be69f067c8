package api

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskflow/taskflow-api/internal/store"
)

func TestParseTaskQueryDefaults(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/api/tasks", nil)

	query, fields := parseTaskQuery(req)
	require.Nil(t, fields)

	assert.Equal(t, store.DefaultPage, query.Page)
	assert.Equal(t, store.DefaultLimit, query.Limit)
	assert.Equal(t, store.StatusFilterAll, query.Status)
	assert.Equal(t, "", query.Search)
	assert.Equal(t, store.SortByCreatedAt, query.SortBy)
	assert.Equal(t, store.SortOrderDesc, query.SortOrder)
}

func TestParseTaskQueryValidParameters(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET",
		"/api/tasks?page=3&limit=25&status=done&search=report&sortBy=title&sortOrder=asc", nil)

	query, fields := parseTaskQuery(req)
	require.Nil(t, fields)

	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 25, query.Limit)
	assert.Equal(t, "done", query.Status)
	assert.Equal(t, "report", query.Search)
	assert.Equal(t, store.SortByTitle, query.SortBy)
	assert.Equal(t, store.SortOrderAsc, query.SortOrder)
	assert.Equal(t, 50, query.Offset())
}

func TestParseTaskQueryInvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rawQuery  string
		wantField string
	}{
		{"page zero", "page=0", "page"},
		{"page negative", "page=-2", "page"},
		{"page not a number", "page=first", "page"},
		{"page empty", "page=", "page"},
		{"limit zero", "limit=0", "limit"},
		{"limit above cap", "limit=51", "limit"},
		{"limit not a number", "limit=ten", "limit"},
		{"unknown status", "status=archived", "status"},
		{"status wrong case", "status=Done", "status"},
		{"search too long", "search=" + strings.Repeat("x", 101), "search"},
		{"unknown sort key", "sortBy=priority", "sortBy"},
		{"sort key wrong case", "sortBy=createdat", "sortBy"},
		{"unknown sort order", "sortOrder=descending", "sortOrder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/tasks?"+tt.rawQuery, nil)

			query, fields := parseTaskQuery(req)
			require.NotNil(t, fields)
			assert.Contains(t, fields, tt.wantField)
			// Rejection is wholesale: the returned query is the zero
			// value, not a partially applied one.
			assert.Equal(t, store.TaskQuery{}, query)
		})
	}
}

func TestParseTaskQueryRejectsWholeQueryOnOneBadField(t *testing.T) {
	t.Parallel()

	// Valid page and limit travel with an invalid status; nothing is
	// applied.
	req := httptest.NewRequest("GET", "/api/tasks?page=2&limit=20&status=archived", nil)

	query, fields := parseTaskQuery(req)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "status")
	assert.NotContains(t, fields, "page")
	assert.NotContains(t, fields, "limit")
	assert.Equal(t, store.TaskQuery{}, query)
}

func TestParseTaskQueryCollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/api/tasks?page=zero&limit=999&sortOrder=sideways", nil)

	_, fields := parseTaskQuery(req)
	require.NotNil(t, fields)
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "page")
	assert.Contains(t, fields, "limit")
	assert.Contains(t, fields, "sortOrder")
}

func TestParseTaskQueryBounds(t *testing.T) {
	t.Parallel()

	// The documented bounds are inclusive.
	req := httptest.NewRequest("GET", "/api/tasks?page=1&limit=50", nil)
	query, fields := parseTaskQuery(req)
	require.Nil(t, fields)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, store.MaxLimit, query.Limit)

	// A 100-character search is accepted; trimming happens first.
	req = httptest.NewRequest("GET", "/api/tasks?search="+strings.Repeat("y", 100), nil)
	query, fields = parseTaskQuery(req)
	require.Nil(t, fields)
	assert.Len(t, query.Search, 100)
}

func TestParseTaskQueryTrimsSearch(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/api/tasks?search=%20%20report%20%20", nil)

	query, fields := parseTaskQuery(req)
	require.Nil(t, fields)
	assert.Equal(t, "report", query.Search)
}

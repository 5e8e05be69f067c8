package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskflow/taskflow-api/internal/store"
)

func TestSortColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sortBy string
		want   string
	}{
		{store.SortByCreatedAt, "created_at"},
		{store.SortByUpdatedAt, "updated_at"},
		{store.SortByTitle, "title"},
		// Anything outside the whitelist falls back rather than ending
		// up in the ORDER BY clause.
		{"", "created_at"},
		{"createdAt; DROP TABLE tasks", "created_at"},
		{"user_id", "created_at"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sortColumn(tt.sortBy), "sortBy %q", tt.sortBy)
	}
}

func TestSortDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ASC", sortDirection(store.SortOrderAsc))
	assert.Equal(t, "DESC", sortDirection(store.SortOrderDesc))
	assert.Equal(t, "DESC", sortDirection(""))
	assert.Equal(t, "DESC", sortDirection("ASC; --"))
}

func TestEscapeLikePattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "groceries", "groceries"},
		{"percent escaped", "100%", `100\%`},
		{"underscore escaped", "a_b", `a\_b`},
		{"backslash escaped", `a\b`, `a\\b`},
		{"wildcard only", "%", `\%`},
		{"mixed metacharacters", `%_\`, `\%\_\\`},
		{"escape then wildcard", `\%`, `\\\%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.input))
		})
	}
}

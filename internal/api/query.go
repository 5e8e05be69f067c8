package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/taskflow/taskflow-api/internal/store"
)

// maxSearchLength bounds the free-text search parameter.
const maxSearchLength = 100

// validSortKeys is the closed set of accepted sortBy values.
var validSortKeys = map[string]bool{
	store.SortByCreatedAt: true,
	store.SortByUpdatedAt: true,
	store.SortByTitle:     true,
}

// validStatusFilters is the closed set of accepted status filters.
var validStatusFilters = map[string]bool{
	"todo":                true,
	"in-progress":         true,
	"done":                true,
	store.StatusFilterAll: true,
}

// parseTaskQuery translates the request's query string into a bounded
// store.TaskQuery. Absent parameters take their defaults. Any invalid
// parameter rejects the whole query: the returned field-error map is
// non-nil and the query must not be used. Partial application of the
// valid subset is deliberately not supported.
func parseTaskQuery(r *http.Request) (store.TaskQuery, map[string][]string) {
	q := store.DefaultTaskQuery()
	fields := make(map[string][]string)
	values := r.URL.Query()

	if raw, ok := queryParam(values, "page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil {
			fields["page"] = append(fields["page"], "must be an integer")
		} else if page < 1 {
			fields["page"] = append(fields["page"], "must be at least 1")
		} else {
			q.Page = page
		}
	}

	if raw, ok := queryParam(values, "limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			fields["limit"] = append(fields["limit"], "must be an integer")
		} else if limit < 1 || limit > store.MaxLimit {
			fields["limit"] = append(fields["limit"], "must be between 1 and 50")
		} else {
			q.Limit = limit
		}
	}

	if raw, ok := queryParam(values, "status"); ok {
		if !validStatusFilters[raw] {
			fields["status"] = append(fields["status"], "must be one of: todo, in-progress, done, all")
		} else {
			q.Status = raw
		}
	}

	if raw, ok := queryParam(values, "search"); ok {
		search := strings.TrimSpace(raw)
		if len([]rune(search)) > maxSearchLength {
			fields["search"] = append(fields["search"], "must be at most 100 characters")
		} else {
			q.Search = search
		}
	}

	if raw, ok := queryParam(values, "sortBy"); ok {
		if !validSortKeys[raw] {
			fields["sortBy"] = append(fields["sortBy"], "must be one of: createdAt, updatedAt, title")
		} else {
			q.SortBy = raw
		}
	}

	if raw, ok := queryParam(values, "sortOrder"); ok {
		if raw != store.SortOrderAsc && raw != store.SortOrderDesc {
			fields["sortOrder"] = append(fields["sortOrder"], "must be asc or desc")
		} else {
			q.SortOrder = raw
		}
	}

	if len(fields) > 0 {
		return store.TaskQuery{}, fields
	}
	return q, nil
}

// queryParam reports whether the key is present in the query string,
// returning its first value. A present-but-empty value counts as
// present and is validated like any other input.
func queryParam(values map[string][]string, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

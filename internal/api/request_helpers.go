package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/service/auth"
	"github.com/taskflow/taskflow-api/internal/store"
)

// requireUserID extracts the authenticated user's ID from the request
// context. If the authentication middleware did not run (or failed),
// it writes a 401 and returns false; the handler must return without
// touching any store.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r,
			MapErrorToStatusCode(auth.ErrMissingSession),
			GetSafeErrorMessage(auth.ErrMissingSession))
		return uuid.Nil, false
	}
	return userID, true
}

// taskIDFromPath parses the {id} path parameter. A malformed ID gets
// the same 404 as a missing task, so probing with junk IDs reveals
// nothing about what exists.
func taskIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r,
			MapErrorToStatusCode(store.ErrTaskNotFound),
			GetSafeErrorMessage(store.ErrTaskNotFound))
		return uuid.Nil, false
	}
	return id, true
}

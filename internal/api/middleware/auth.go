package middleware

import (
	"net/http"

	"github.com/taskflow/taskflow-api/internal/api"
	"github.com/taskflow/taskflow-api/internal/api/shared"
	"github.com/taskflow/taskflow-api/internal/platform/logger"
	"github.com/taskflow/taskflow-api/internal/redact"
	"github.com/taskflow/taskflow-api/internal/service/auth"
)

// AuthMiddleware is the authorization gate for protected routes. It
// derives the current user from the session cookie alone; an absent,
// expired, or tampered token short-circuits with 401 before any
// handler or store runs. The response never says which check failed.
type AuthMiddleware struct {
	sessions      auth.SessionService
	sessionCookie *api.SessionCookie
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions auth.SessionService, sessionCookie *api.SessionCookie) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:      sessions,
		sessionCookie: sessionCookie,
	}
}

// Authenticate verifies the session cookie and adds the user's identity
// to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, err := m.sessionCookie.Read(r)
		if err != nil {
			shared.RespondWithError(w, r, api.MapErrorToStatusCode(err), api.GetSafeErrorMessage(err))
			return
		}

		claims, err := m.sessions.Verify(r.Context(), token)
		if err != nil {
			log.Debug("session verification failed", "error", redact.Error(err))
			shared.RespondWithError(w, r, api.MapErrorToStatusCode(err), api.GetSafeErrorMessage(err))
			return
		}

		ctx := shared.SetUserIdentity(r.Context(), claims.UserID, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

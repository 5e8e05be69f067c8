package api

import (
	"net/http"

	"github.com/taskflow/taskflow-api/internal/service/auth"
)

// SessionCookieName is the fixed name of the session cookie. The cookie
// is the only channel carrying the session; tokens are never read from
// headers, query strings, or bodies.
const SessionCookieName = "taskflow_token"

// SessionCookie binds session tokens to an HTTP cookie with the
// required security attributes.
type SessionCookie struct {
	secure bool
}

// NewSessionCookie creates the cookie transport. secure should be true
// in production so the cookie only travels over TLS.
func NewSessionCookie(secure bool) *SessionCookie {
	return &SessionCookie{secure: secure}
}

// Attach sets the session cookie on the response: HTTP-only, strict
// same-site, root path, with the session's 7-day lifetime.
func (c *SessionCookie) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear removes the session cookie from the client.
func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read extracts the session token from the request cookie.
// Returns auth.ErrMissingSession when the cookie is absent.
func (c *SessionCookie) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", auth.ErrMissingSession
	}
	return cookie.Value, nil
}

package middleware

import (
	"net/http"
	"net/url"

	"github.com/taskflow/taskflow-api/internal/api"
	"github.com/taskflow/taskflow-api/internal/service/auth"
)

// Page routes involved in session-based redirects.
const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	DashboardPath = "/dashboard"
)

// PageGuard applies route-level access control to the HTML pages,
// outside the JSON API: visitors without a valid session are bounced
// from protected pages to the login page with a redirect hint, and
// already-authenticated visitors are bounced from the login/register
// pages to the protected area.
type PageGuard struct {
	sessions      auth.SessionService
	sessionCookie *api.SessionCookie
}

// NewPageGuard creates a PageGuard with the given dependencies.
func NewPageGuard(sessions auth.SessionService, sessionCookie *api.SessionCookie) *PageGuard {
	return &PageGuard{
		sessions:      sessions,
		sessionCookie: sessionCookie,
	}
}

// hasSession reports whether the request carries a valid session cookie.
func (g *PageGuard) hasSession(r *http.Request) bool {
	token, err := g.sessionCookie.Read(r)
	if err != nil {
		return false
	}
	_, err = g.sessions.Verify(r.Context(), token)
	return err == nil
}

// RequireSession protects a page route: unauthenticated visits redirect
// to the login page carrying the originally requested path.
func (g *PageGuard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.hasSession(r) {
			target := LoginPath + "?redirect=" + url.QueryEscape(r.URL.Path)
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectAuthenticated sends visitors who already hold a valid session
// away from the login/register pages to the dashboard.
func (g *PageGuard) RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.hasSession(r) {
			http.Redirect(w, r, DashboardPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

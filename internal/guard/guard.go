// Package guard gates admin-only routes on the session role.
package guard

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"eventConsole/internal/models"
)

// LoginPath is where unauthorized requests are sent.
const LoginPath = "/admin/login"

// SessionReader is the slice of the session store the guard needs.
type SessionReader interface {
	Current() models.Session
	Subscribe(fn func())
}

// Guard caches the authorization verdict and recomputes it whenever the
// session store reports a change, so the per-request check is a single
// atomic load.
type Guard struct {
	log      *slog.Logger
	sessions SessionReader
	isAdmin  atomic.Bool
}

func New(log *slog.Logger, sessions SessionReader) *Guard {
	g := &Guard{
		log:      log,
		sessions: sessions,
	}

	g.Recompute()
	sessions.Subscribe(g.Recompute)

	return g
}

// Recompute re-evaluates the authorization predicate against the store.
func (g *Guard) Recompute() {
	g.isAdmin.Store(g.sessions.Current().IsAdmin())
}

// IsAuthorizedAdmin reports whether the current session may use admin routes.
func (g *Guard) IsAuthorizedAdmin() bool {
	return g.isAdmin.Load()
}

// RequireAdmin redirects unauthorized requests to the login route. The
// guarded handler never runs, so no upstream call is issued for them.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.IsAuthorizedAdmin() {
			g.log.Info("unauthorized request redirected",
				slog.String("path", r.URL.Path),
			)

			http.Redirect(w, r, LoginPath, http.StatusSeeOther)

			return
		}

		next.ServeHTTP(w, r)
	})
}

package server

import (
	"net/http"
	"time"

	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
	"github.com/lodgera/lodgera-portal/internal/token"
)

// timeNow is swapped out in tests that pin the clock.
var timeNow = time.Now

// requireRole gates a route subtree on a live session with the given role.
// The decision is re-derived on every request from the session cookie alone;
// nothing is cached between requests.
//
// No session sends the user to the login page. A session whose token has
// expired, or whose role does not match, is cleared first so the stale
// cookie cannot satisfy a later check.
func requireRole(sessions *session.Store, logger *common.Logger, role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := sessions.Get(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			if token.Expired(sess.AccessToken, timeNow()) {
				logger.Info().Int64("user", sess.UserID).Msg("session token expired, forcing re-login")
				_ = sessions.Clear(w, r)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			if sess.Role != role {
				logger.Warn().
					Int64("user", sess.UserID).
					Str("role", string(sess.Role)).
					Str("required", string(role)).
					Str("path", r.URL.Path).
					Msg("role mismatch on protected route")
				_ = sessions.Clear(w, r)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
	"github.com/lodgera/lodgera-portal/internal/token"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	logger   *common.Logger
	pages    *PageHandler
	sessions *session.Store
	api      *client.BookingClient
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(logger *common.Logger, pages *PageHandler, sessions *session.Store, api *client.BookingClient) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		pages:    pages,
		sessions: sessions,
		api:      api,
	}
}

// ShowLogin renders the login form. An already-authenticated user is sent
// straight to their home page.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.sessions.Get(r); ok && !token.Expired(sess.AccessToken, timeNow()) {
		http.Redirect(w, r, sess.HomePath(), http.StatusFound)
		return
	}

	h.pages.Render(w, r, "login.html", map[string]interface{}{"Page": "login"})
}

// HandleLogin exchanges submitted credentials for a session. On success the
// user lands on the home page their role maps to; every failure mode queues
// a notification and returns to the form.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.sessions.AddError(w, r, "Login Failed")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	userName := strings.TrimSpace(r.FormValue("userName"))
	password := r.FormValue("password")
	if userName == "" || password == "" {
		h.sessions.AddError(w, r, "Please provide both username and password.")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	result, err := h.api.Authenticate(r.Context(), userName, password)
	if err != nil {
		h.logger.Warn().Str("user", userName).Str("error", err.Error()).Msg("login failed")
		h.sessions.AddError(w, r, loginErrorMessage(err))
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	claims, err := token.Decode(result.AccessToken)
	if err != nil {
		h.logger.Warn().Str("user", userName).Str("error", err.Error()).Msg("unreadable access token")
		h.sessions.AddError(w, r, "Login Failed")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	sess := models.Session{
		Role:        models.Role(result.Role),
		AccessToken: result.AccessToken,
		UserID:      claims.UserID,
	}
	if err := h.sessions.Set(w, r, sess); err != nil {
		h.logger.Error().Str("error", err.Error()).Msg("failed to persist session")
		h.sessions.AddError(w, r, "Login Failed")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.logger.Info().Str("user", userName).Str("role", string(sess.Role)).Msg("login succeeded")
	http.Redirect(w, r, sess.HomePath(), http.StatusFound)
}

// HandleLogout clears the session and returns to the login page.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("failed to clear session on logout")
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

// loginErrorMessage maps an authentication failure onto the message the
// login form shows.
func loginErrorMessage(err error) string {
	switch {
	case client.IsNoServerResponse(err):
		return "No Server Response"
	case client.IsUnauthorized(err):
		return "Unauthorized Access"
	default:
		return "Login Failed"
	}
}

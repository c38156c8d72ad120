// Package session persists the authenticated principal across requests.
//
// The session is the only durable client-side state in the portal: one
// cookie-backed key holding a JSON object {role, accessToken, userId}.
// Every protected-route evaluation re-reads it fresh; nothing caches the
// authorization decision.
package session

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/lodgera/lodgera-portal/internal/models"
)

const (
	cookieName = "lodgera_session"
	flashName  = "lodgera_flash"

	// dataKey is the single durable key the session JSON lives under.
	dataKey = "user_data"

	flashErrorKey   = "_error"
	flashSuccessKey = "_success"
)

// Store reads and writes the portal session cookie.
type Store struct {
	cookies *sessions.CookieStore
}

// NewStore creates a session store signing cookies with the given secret.
// maxAge is the cookie lifetime in seconds.
func NewStore(secret string, maxAge int) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}
}

// Set persists the session. Subsequent reads, including on later requests,
// observe this value until it is cleared or expires.
func (s *Store) Set(w http.ResponseWriter, r *http.Request, sess models.Session) error {
	cookie, _ := s.cookies.New(r, cookieName)

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	cookie.Values[dataKey] = string(data)
	return cookie.Save(r, w)
}

// Get returns the current session, or false when absent. A missing cookie,
// a bad signature, or malformed JSON all fold into "absent" — an invalid
// session is treated identically to no session.
func (s *Store) Get(r *http.Request) (models.Session, bool) {
	cookie, err := s.cookies.Get(r, cookieName)
	if err != nil {
		return models.Session{}, false
	}

	raw, ok := cookie.Values[dataKey].(string)
	if !ok || raw == "" {
		return models.Session{}, false
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return models.Session{}, false
	}
	if sess.AccessToken == "" || sess.Role == "" {
		return models.Session{}, false
	}

	return sess, true
}

// Clear removes all persisted session data. Used on logout and when the
// guard detects an expired token.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	cookie, _ := s.cookies.Get(r, cookieName)
	delete(cookie.Values, dataKey)
	cookie.Options.MaxAge = -1
	return cookie.Save(r, w)
}

// AddError queues a transient error notification for the next rendered page.
func (s *Store) AddError(w http.ResponseWriter, r *http.Request, msg string) {
	s.addFlash(w, r, flashErrorKey, msg)
}

// AddSuccess queues a transient success notification for the next rendered page.
func (s *Store) AddSuccess(w http.ResponseWriter, r *http.Request, msg string) {
	s.addFlash(w, r, flashSuccessKey, msg)
}

func (s *Store) addFlash(w http.ResponseWriter, r *http.Request, key, msg string) {
	cookie, _ := s.cookies.Get(r, flashName)
	cookie.AddFlash(msg, key)
	_ = cookie.Save(r, w)
}

// Flashes drains queued notifications. Reading consumes them, so each
// notification renders exactly once.
func (s *Store) Flashes(w http.ResponseWriter, r *http.Request) (errors, successes []string) {
	cookie, err := s.cookies.Get(r, flashName)
	if err != nil {
		return nil, nil
	}

	for _, f := range cookie.Flashes(flashErrorKey) {
		if msg, ok := f.(string); ok {
			errors = append(errors, msg)
		}
	}
	for _, f := range cookie.Flashes(flashSuccessKey) {
		if msg, ok := f.(string); ok {
			successes = append(successes, msg)
		}
	}

	_ = cookie.Save(r, w)
	return errors, successes
}

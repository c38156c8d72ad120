package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/session"
)

func testToken(t *testing.T, userID int64, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newAuthFixture(t *testing.T, backendURL string) (*AuthHandler, *session.Store) {
	t.Helper()
	logger := common.NewSilentLogger()
	sessions := session.NewStore("auth-test-secret", 3600)
	pages := NewPageHandler(logger, sessions, false)
	api := client.NewBookingClient(backendURL, nil)
	return NewAuthHandler(logger, pages, sessions, api), sessions
}

func loginForm(userName, password string) *http.Request {
	form := url.Values{}
	form.Set("userName", userName)
	form.Set("password", password)
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleLogin_UserRole(t *testing.T) {
	accessToken := testToken(t, 42, time.Now().Add(time.Hour))
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"authentication": accessToken,
			"userType":       "User",
		})
	}))
	defer backend.Close()

	h, sessions := newAuthFixture(t, backend.URL)

	w := httptest.NewRecorder()
	h.HandleLogin(w, loginForm("alice", "pw"))

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("expected user to land on /, got %s", loc)
	}

	// The session must round-trip on a follow-up request.
	follow := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		follow.AddCookie(c)
	}
	sess, ok := sessions.Get(follow)
	if !ok {
		t.Fatal("expected a persisted session after login")
	}
	if sess.UserID != 42 {
		t.Errorf("expected userId 42 from token claims, got %d", sess.UserID)
	}
	if sess.AccessToken != accessToken {
		t.Error("expected the access token to be stored verbatim")
	}
}

func TestHandleLogin_AdminRole(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"authentication": testToken(t, 1, time.Now().Add(time.Hour)),
			"userType":       "Admin",
		})
	}))
	defer backend.Close()

	h, _ := newAuthFixture(t, backend.URL)

	w := httptest.NewRecorder()
	h.HandleLogin(w, loginForm("admin", "pw"))

	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Errorf("expected admin to land on /admin, got %s", loc)
	}
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	h, sessions := newAuthFixture(t, backend.URL)

	w := httptest.NewRecorder()
	h.HandleLogin(w, loginForm("alice", "wrong"))

	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected return to /login, got %s", loc)
	}

	// No session may be created, and the notification must be queued.
	follow := httptest.NewRequest("GET", "/login", nil)
	for _, c := range w.Result().Cookies() {
		follow.AddCookie(c)
	}
	if _, ok := sessions.Get(follow); ok {
		t.Error("no session should exist after failed login")
	}

	errs, _ := sessions.Flashes(httptest.NewRecorder(), follow)
	if len(errs) != 1 || errs[0] != "Unauthorized Access" {
		t.Errorf("expected [Unauthorized Access], got %v", errs)
	}
}

func TestHandleLogin_NoServerResponse(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused

	h, sessions := newAuthFixture(t, backend.URL)

	w := httptest.NewRecorder()
	h.HandleLogin(w, loginForm("alice", "pw"))

	follow := httptest.NewRequest("GET", "/login", nil)
	for _, c := range w.Result().Cookies() {
		follow.AddCookie(c)
	}
	errs, _ := sessions.Flashes(httptest.NewRecorder(), follow)
	if len(errs) != 1 || errs[0] != "No Server Response" {
		t.Errorf("expected [No Server Response], got %v", errs)
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	h, _ := newAuthFixture(t, "http://localhost:1")

	w := httptest.NewRecorder()
	h.HandleLogin(w, loginForm("", ""))

	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected return to /login, got %s", loc)
	}
}

func TestHandleLogout(t *testing.T) {
	h, sessions := newAuthFixture(t, "http://localhost:1")

	// Seed a session, then log out with its cookie attached.
	seedRec := httptest.NewRecorder()
	seedReq := httptest.NewRequest("GET", "/", nil)
	if err := sessions.Set(seedRec, seedReq, sessionFixture(t)); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	req := httptest.NewRequest("POST", "/logout", nil)
	for _, c := range seedRec.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.HandleLogout(w, req)

	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %s", loc)
	}

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "lodgera_session" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be cleared on logout")
	}
}

package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lodgera/lodgera-portal/internal/app"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/config"
	"github.com/lodgera/lodgera-portal/internal/models"
)

func newRoutedServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.Session.Secret = "routes-test-secret"
	cfg.API.URL = "http://localhost:1" // nothing listens; handlers surface "No Server Response"

	application, err := app.New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	return New(application)
}

func TestRoutes_UnauthenticatedRedirects(t *testing.T) {
	srv := newRoutedServer(t)

	paths := []string{"/", "/search", "/hotels/1", "/checkout", "/confirmation/BK-1", "/admin/cities"}
	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Errorf("%s: expected 302 without session, got %d", path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s: expected redirect to /login, got %s", path, loc)
		}
	}
}

func TestRoutes_LoginPagePublic(t *testing.T) {
	srv := newRoutedServer(t)

	req := httptest.NewRequest("GET", "/login", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for login page, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sign in") {
		t.Error("expected the login form to render")
	}
}

func TestRoutes_Health(t *testing.T) {
	srv := newRoutedServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status"`) {
		t.Errorf("expected health JSON, got %s", w.Body.String())
	}
}

func TestRoutes_APINotFound(t *testing.T) {
	srv := newRoutedServer(t)

	req := httptest.NewRequest("GET", "/api/nope", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON 404 for API routes, got %s", ct)
	}
}

func TestRoutes_AdminBlockedForUserRole(t *testing.T) {
	srv := newRoutedServer(t)

	sess := models.Session{
		Role:        models.RoleUser,
		AccessToken: signedToken(t, 7, time.Now().Add(time.Hour)),
		UserID:      7,
	}
	req := requestWithSession(t, srv.app.Sessions, sess, "/admin/cities")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %s", loc)
	}
}

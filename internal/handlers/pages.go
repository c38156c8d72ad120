package handlers

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// PageHandler renders HTML pages with Go templates. Every page receives the
// current session (for the header) and any queued flash notifications.
type PageHandler struct {
	logger    *common.Logger
	sessions  *session.Store
	templates *template.Template
	devMode   bool
}

// NewPageHandler creates a page handler loading templates from the pages directory.
func NewPageHandler(logger *common.Logger, sessions *session.Store, devMode bool) *PageHandler {
	pagesDir := FindPagesDir()

	funcs := template.FuncMap{
		"money":  common.FormatMoney,
		"guests": common.FormatGuests,
		"add":    func(a, b int) int { return a + b },
		"sub":    func(a, b int) int { return a - b },
	}

	templates := template.Must(template.New("").Funcs(funcs).ParseGlob(filepath.Join(pagesDir, "*.html")))
	template.Must(templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")))

	return &PageHandler{
		logger:    logger,
		sessions:  sessions,
		templates: templates,
		devMode:   devMode,
	}
}

// FindPagesDir locates the pages directory.
func FindPagesDir() string {
	dirs := []string{
		"./pages",
		"../pages",
		"../../pages",
		".",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// Render executes a page template with the shared chrome merged in: session
// state for the header and flash notifications, which are consumed here so
// each renders exactly once.
func (h *PageHandler) Render(w http.ResponseWriter, r *http.Request, templateName string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}

	sess, loggedIn := h.sessions.Get(r)

	// Queued flashes (from a previous redirect) merge with any notifications
	// the handler produced while building this page.
	errs, successes := h.sessions.Flashes(w, r)
	if extra, ok := data["FlashErrors"].([]string); ok {
		errs = append(errs, extra...)
	}
	if extra, ok := data["FlashSuccesses"].([]string); ok {
		successes = append(successes, extra...)
	}

	data["LoggedIn"] = loggedIn
	data["IsAdmin"] = loggedIn && sess.Role == models.RoleAdmin
	data["DevMode"] = h.devMode
	data["FlashErrors"] = errs
	data["FlashSuccesses"] = successes

	if err := h.templates.ExecuteTemplate(w, templateName, data); err != nil {
		if h.logger != nil {
			h.logger.Error().Str("template", templateName).Str("error", err.Error()).Msg("failed to render page")
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ServePage returns a handler rendering a static page template.
func (h *PageHandler) ServePage(templateName string, pageName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.Render(w, r, templateName, map[string]interface{}{"Page": pageName})
	}
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.Render(w, r, "notfound.html", map[string]interface{}{"Page": "notfound"})
}

// StaticFileHandler serves static files (CSS, JS, images).
func (h *PageHandler) StaticFileHandler(w http.ResponseWriter, r *http.Request) {
	pagesDir := FindPagesDir()
	staticDir := filepath.Join(pagesDir, "static")

	path := r.URL.Path[len("/static/"):]
	fullPath := filepath.Join(staticDir, path)

	// Security: prevent directory traversal
	absStaticDir, _ := filepath.Abs(staticDir)
	absFullPath, _ := filepath.Abs(fullPath)
	if len(absFullPath) < len(absStaticDir) || absFullPath[:len(absStaticDir)] != absStaticDir {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}

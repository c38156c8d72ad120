package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lodgera/lodgera-portal/internal/models"
)

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() chi.Router {
	r := chi.NewRouter()

	// Public routes
	r.Get("/login", s.app.AuthHandler.ShowLogin)
	r.With(s.rateLimitMiddleware).Post("/login", s.app.AuthHandler.HandleLogin)
	r.Post("/logout", s.app.AuthHandler.HandleLogout)
	r.Get("/logout", s.app.AuthHandler.HandleLogout)

	// Static files (CSS, JS, images)
	r.Get("/static/*", s.app.PageHandler.StaticFileHandler)

	// Storefront, user role required
	r.Group(func(r chi.Router) {
		r.Use(requireRole(s.app.Sessions, s.logger, models.RoleUser))

		r.Get("/", s.app.HomeHandler.ServeHTTP)
		r.Get("/search", s.app.SearchHandler.ServeHTTP)
		r.Get("/hotels/{id}", s.app.HotelHandler.ShowHotel)
		r.Post("/hotels/{id}/book", s.app.HotelHandler.HandleBook)
		r.Get("/checkout", s.app.CheckoutHandler.ShowCheckout)
		r.Post("/checkout", s.app.CheckoutHandler.HandleSubmit)
		r.Get("/confirmation/{number}", s.app.ConfirmationHandler.ServeHTTP)
	})

	// Admin console, admin role required
	r.Route("/admin", func(r chi.Router) {
		r.Use(requireRole(s.app.Sessions, s.logger, models.RoleAdmin))

		r.Get("/", s.app.AdminHandler.ShowHome)

		r.Get("/cities", s.app.AdminHandler.ShowCities)
		r.Post("/cities/create", s.app.AdminHandler.HandleCreateCity)
		r.Post("/cities/{id}/update", s.app.AdminHandler.HandleUpdateCity)
		r.Post("/cities/{id}/delete", s.app.AdminHandler.HandleDeleteCity)

		r.Get("/hotels", s.app.AdminHandler.ShowHotels)
		r.Post("/hotels/create", s.app.AdminHandler.HandleCreateHotel)
		r.Post("/hotels/{id}/update", s.app.AdminHandler.HandleUpdateHotel)
		r.Post("/hotels/{id}/delete", s.app.AdminHandler.HandleDeleteHotel)

		r.Get("/rooms", s.app.AdminHandler.ShowRooms)
		r.Post("/rooms/create", s.app.AdminHandler.HandleCreateRoom)
		r.Post("/rooms/{id}/update", s.app.AdminHandler.HandleUpdateRoom)
		r.Post("/rooms/{id}/delete", s.app.AdminHandler.HandleDeleteRoom)
	})

	// API routes
	r.Get("/api/health", s.app.HealthHandler.ServeHTTP)
	r.Get("/api/version", s.app.VersionHandler.ServeHTTP)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if len(req.URL.Path) >= 5 && req.URL.Path[:5] == "/api/" {
			s.handleAPINotFound(w, req)
			return
		}
		s.app.PageHandler.NotFound(w, req)
	})

	return r
}

// handleAPINotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}

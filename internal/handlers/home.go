package handlers

import (
	"net/http"

	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// HomeHandler renders the storefront home page: search bar, featured deals,
// the user's recently visited hotels, and trending destinations.
type HomeHandler struct {
	logger   *common.Logger
	pages    *PageHandler
	sessions *session.Store
	api      *client.BookingClient
}

// NewHomeHandler creates a new home page handler.
func NewHomeHandler(logger *common.Logger, pages *PageHandler, sessions *session.Store, api *client.BookingClient) *HomeHandler {
	return &HomeHandler{
		logger:   logger,
		pages:    pages,
		sessions: sessions,
		api:      api,
	}
}

// ServeHTTP renders the home page. Each section loads independently: a
// failed section renders empty with a notification rather than failing
// the whole page.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	ctx := r.Context()

	data := map[string]interface{}{"Page": "home"}
	var notices []string
	notify := func(err error, fallback string) {
		h.logger.Warn().Str("error", err.Error()).Msg("home section failed to load")
		msg := apiErrorMessage(err, fallback)
		for _, n := range notices {
			if n == msg {
				return
			}
		}
		notices = append(notices, msg)
	}

	deals, err := h.api.FeaturedDeals(ctx, sess.AccessToken)
	if err != nil {
		notify(err, "Failed to load featured deals.")
	}
	data["FeaturedDeals"] = deals

	recent, err := h.api.RecentHotels(ctx, sess.AccessToken, sess.UserID)
	if err != nil {
		notify(err, "Failed to load recently visited hotels.")
	}
	data["RecentHotels"] = recent

	trending, err := h.api.TrendingDestinations(ctx, sess.AccessToken)
	if err != nil {
		notify(err, "Failed to load trending destinations.")
	}
	data["TrendingDestinations"] = trending

	data["FlashErrors"] = notices
	h.pages.Render(w, r, "home.html", data)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// ConfirmationHandler renders the booking confirmation page.
type ConfirmationHandler struct {
	logger   *common.Logger
	pages    *PageHandler
	sessions *session.Store
	api      *client.BookingClient
}

// NewConfirmationHandler creates a new confirmation page handler.
func NewConfirmationHandler(logger *common.Logger, pages *PageHandler, sessions *session.Store, api *client.BookingClient) *ConfirmationHandler {
	return &ConfirmationHandler{
		logger:   logger,
		pages:    pages,
		sessions: sessions,
		api:      api,
	}
}

// bookingIDFromConfirmation extracts the record ID from a confirmation
// number of the form "BK-1001".
func bookingIDFromConfirmation(number string) string {
	parts := strings.SplitN(number, "-", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return number
}

// ServeHTTP looks the booking up by its confirmation number and renders it.
func (h *ConfirmationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		h.pages.NotFound(w, r)
		return
	}

	sess, _ := h.sessions.Get(r)

	conf, err := h.api.Booking(r.Context(), sess.AccessToken, bookingIDFromConfirmation(number))
	if err != nil {
		h.logger.Warn().Str("confirmation", number).Str("error", err.Error()).Msg("booking lookup failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to load booking details."))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.pages.Render(w, r, "confirmation.html", map[string]interface{}{
		"Page":               "confirmation",
		"Booking":            conf,
		"ConfirmationNumber": number,
	})
}

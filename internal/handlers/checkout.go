package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lodgera/lodgera-portal/internal/booking"
	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// CheckoutHandler renders the checkout page for the pending room selection
// and submits the booking.
type CheckoutHandler struct {
	logger   *common.Logger
	pages    *PageHandler
	sessions *session.Store
	api      *client.BookingClient
	drafts   *booking.DraftStore
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(logger *common.Logger, pages *PageHandler, sessions *session.Store, api *client.BookingClient, drafts *booking.DraftStore) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger,
		pages:    pages,
		sessions: sessions,
		api:      api,
		drafts:   drafts,
	}
}

// ShowCheckout renders the checkout form beside the pending selection.
// With no selection the page still renders, pointing back to search.
func (h *CheckoutHandler) ShowCheckout(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	draft, ok := h.drafts.Get(sess.UserID)

	h.pages.Render(w, r, "checkout.html", map[string]interface{}{
		"Page":     "checkout",
		"HasDraft": ok,
		"Draft":    draft,
	})
}

// HandleSubmit posts the booking to the API. The draft survives every
// failure so the user can retry; it is cleared only once the API confirms.
func (h *CheckoutHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)

	draft, ok := h.drafts.Get(sess.UserID)
	if !ok {
		h.sessions.AddError(w, r, "No room selected. Please pick a room first.")
		http.Redirect(w, r, "/search", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.sessions.AddError(w, r, "Booking failed. Please try again.")
		http.Redirect(w, r, "/checkout", http.StatusFound)
		return
	}

	customerName := strings.TrimSpace(r.FormValue("customerName"))
	paymentMethod := r.FormValue("paymentMethod")
	if customerName == "" || paymentMethod == "" {
		h.sessions.AddError(w, r, "Please provide your name and a payment method.")
		http.Redirect(w, r, "/checkout", http.StatusFound)
		return
	}

	req := models.BookingRequest{
		CustomerName:    customerName,
		HotelName:       draft.HotelName,
		RoomNumber:      strconv.Itoa(draft.RoomNumber),
		RoomType:        draft.RoomType,
		BookingDateTime: timeNow().Format(time.RFC3339),
		TotalCost:       draft.TotalCost,
		PaymentMethod:   paymentMethod,
	}

	conf, err := h.api.CreateBooking(r.Context(), sess.AccessToken, req)
	if err != nil {
		h.logger.Warn().Int64("user", sess.UserID).Str("error", err.Error()).Msg("booking submission failed")
		h.sessions.AddError(w, r, bookingErrorMessage(err))
		http.Redirect(w, r, "/checkout", http.StatusFound)
		return
	}

	h.drafts.Clear(sess.UserID)
	h.logger.Info().
		Int64("user", sess.UserID).
		Str("confirmation", conf.ConfirmationNumber).
		Msg("booking confirmed")

	h.sessions.AddSuccess(w, r, "Successfully Booked!")
	http.Redirect(w, r, "/confirmation/"+conf.ConfirmationNumber, http.StatusFound)
}

func bookingErrorMessage(err error) string {
	if client.IsBookingDeclined(err) {
		return "Booking declined. Please try again."
	}
	return apiErrorMessage(err, "Booking failed. Please try again.")
}

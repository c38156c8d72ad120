package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lodgera/lodgera-portal/internal/booking"
	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// HotelHandler renders the hotel page (details, gallery, reviews, available
// rooms) and captures the room selection that starts a booking.
type HotelHandler struct {
	logger   *common.Logger
	pages    *PageHandler
	sessions *session.Store
	api      *client.BookingClient
	drafts   *booking.DraftStore
}

// NewHotelHandler creates a new hotel page handler.
func NewHotelHandler(logger *common.Logger, pages *PageHandler, sessions *session.Store, api *client.BookingClient, drafts *booking.DraftStore) *HotelHandler {
	return &HotelHandler{
		logger:   logger,
		pages:    pages,
		sessions: sessions,
		api:      api,
		drafts:   drafts,
	}
}

// ShowHotel renders the hotel page. The availability window comes from the
// search that led here, defaulting to tonight for one night.
func (h *HotelHandler) ShowHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.pages.NotFound(w, r)
		return
	}

	sess, _ := h.sessions.Get(r)
	ctx := r.Context()

	now := timeNow()
	checkIn := r.URL.Query().Get("checkInDate")
	if checkIn == "" {
		checkIn = now.Format("2006-01-02")
	}
	checkOut := r.URL.Query().Get("checkOutDate")
	if checkOut == "" {
		checkOut = now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	details, err := h.api.Hotel(ctx, sess.AccessToken, hotelID)
	if err != nil {
		h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("hotel details failed to load")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to load hotel details."))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	data := map[string]interface{}{
		"Page":         "hotel",
		"HotelID":      hotelID,
		"Hotel":        details,
		"CheckInDate":  checkIn,
		"CheckOutDate": checkOut,
		"Adults":       intParam(r, "adults", 2),
		"Children":     intParam(r, "children", 0),
	}
	var notices []string

	gallery, err := h.api.HotelGallery(ctx, sess.AccessToken, hotelID)
	if err != nil {
		h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("gallery failed to load")
		notices = append(notices, apiErrorMessage(err, "Failed to load hotel gallery."))
	}
	data["Gallery"] = gallery

	reviews, err := h.api.HotelReviews(ctx, sess.AccessToken, hotelID)
	if err != nil {
		h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("reviews failed to load")
		notices = append(notices, apiErrorMessage(err, "Failed to load reviews."))
	}
	data["Reviews"] = reviews

	rooms, err := h.api.AvailableRooms(ctx, sess.AccessToken, hotelID, checkIn, checkOut)
	if err != nil {
		h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("available rooms failed to load")
		notices = append(notices, apiErrorMessage(err, "Failed to load available rooms."))
	}
	data["Rooms"] = rooms

	data["FlashErrors"] = notices
	h.pages.Render(w, r, "hotel.html", data)
}

// HandleBook records the submitted room selection as the user's pending
// booking and moves them to checkout. Any prior selection is replaced.
func (h *HotelHandler) HandleBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	sess, _ := h.sessions.Get(r)

	roomNumber, _ := strconv.Atoi(r.FormValue("roomNumber"))
	adults, _ := strconv.Atoi(r.FormValue("adults"))
	children, _ := strconv.Atoi(r.FormValue("children"))
	totalCost, _ := strconv.ParseFloat(r.FormValue("totalCost"), 64)

	sel := models.RoomSelection{
		HotelName:    r.FormValue("hotelName"),
		RoomNumber:   roomNumber,
		RoomType:     r.FormValue("roomType"),
		RoomPhotoURL: r.FormValue("roomPhotoUrl"),
		CheckInDate:  r.FormValue("checkInDate"),
		CheckOutDate: r.FormValue("checkOutDate"),
		Adults:       adults,
		Children:     children,
		TotalCost:    totalCost,
	}

	h.drafts.Set(sess.UserID, sel)
	h.logger.Info().Int64("user", sess.UserID).Str("hotel", sel.HotelName).Msg("room selection recorded")

	http.Redirect(w, r, "/checkout", http.StatusFound)
}

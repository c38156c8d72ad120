package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// defaultPageSize matches the grid page size the admin console starts with.
const defaultPageSize = 10

// AdminHandler serves the admin console: searchable, paginated grids over
// cities, hotels and rooms with create/update/delete forms.
type AdminHandler struct {
	logger   *common.Logger
	pages    *PageHandler
	sessions *session.Store
	api      *client.BookingClient
}

// NewAdminHandler creates a new admin console handler.
func NewAdminHandler(logger *common.Logger, pages *PageHandler, sessions *session.Store, api *client.BookingClient) *AdminHandler {
	return &AdminHandler{
		logger:   logger,
		pages:    pages,
		sessions: sessions,
		api:      api,
	}
}

// ShowHome sends the admin to the first grid.
func (h *AdminHandler) ShowHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/cities", http.StatusFound)
}

// gridQuery reads the shared search/pagination values for the admin grids.
func gridQuery(r *http.Request) models.PageQuery {
	return models.PageQuery{
		Name:        r.URL.Query().Get("name"),
		SearchQuery: r.URL.Query().Get("searchQuery"),
		PageNumber:  intParam(r, "pageNumber", 1),
		PageSize:    intParam(r, "pageSize", defaultPageSize),
	}
}

// pathID parses the numeric id route parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// formID parses a numeric id form field.
func formID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.FormValue(name), 10, 64)
	return id, err == nil && id > 0
}

// ShowCities renders the city grid.
func (h *AdminHandler) ShowCities(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	q := gridQuery(r)

	data := map[string]interface{}{"Page": "admin-cities", "Query": q}
	var notices []string

	cities, err := h.api.Cities(r.Context(), sess.AccessToken, q)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("city grid failed to load")
		notices = append(notices, apiErrorMessage(err, "Failed to load cities."))
	}
	data["Cities"] = cities

	data["FlashErrors"] = notices
	h.pages.Render(w, r, "admin_cities.html", data)
}

// HandleCreateCity creates a city from the grid form.
func (h *AdminHandler) HandleCreateCity(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/cities", http.StatusFound)
		return
	}

	city := models.City{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	if _, err := h.api.CreateCity(r.Context(), sess.AccessToken, city); err != nil {
		h.logger.Warn().Str("city", city.Name).Str("error", err.Error()).Msg("city create failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to create city."))
	} else {
		h.sessions.AddSuccess(w, r, "City created.")
	}

	http.Redirect(w, r, "/admin/cities", http.StatusFound)
}

// HandleUpdateCity updates a city from the grid form.
func (h *AdminHandler) HandleUpdateCity(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	cityID, ok := pathID(r, "id")
	if !ok || r.ParseForm() != nil {
		http.Redirect(w, r, "/admin/cities", http.StatusFound)
		return
	}

	city := models.City{
		ID:          cityID,
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	if err := h.api.UpdateCity(r.Context(), sess.AccessToken, cityID, city); err != nil {
		h.logger.Warn().Int64("city", cityID).Str("error", err.Error()).Msg("city update failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to update city."))
	} else {
		h.sessions.AddSuccess(w, r, "City updated.")
	}

	http.Redirect(w, r, "/admin/cities", http.StatusFound)
}

// HandleDeleteCity deletes a city.
func (h *AdminHandler) HandleDeleteCity(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	cityID, ok := pathID(r, "id")
	if !ok {
		http.Redirect(w, r, "/admin/cities", http.StatusFound)
		return
	}

	if err := h.api.DeleteCity(r.Context(), sess.AccessToken, cityID); err != nil {
		h.logger.Warn().Int64("city", cityID).Str("error", err.Error()).Msg("city delete failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to delete city."))
	} else {
		h.sessions.AddSuccess(w, r, "City deleted.")
	}

	http.Redirect(w, r, "/admin/cities", http.StatusFound)
}

// ShowHotels renders the hotel grid. Cities load alongside to populate the
// create form's city selector.
func (h *AdminHandler) ShowHotels(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	q := gridQuery(r)

	data := map[string]interface{}{"Page": "admin-hotels", "Query": q}
	var notices []string

	hotels, err := h.api.Hotels(r.Context(), sess.AccessToken, q)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("hotel grid failed to load")
		notices = append(notices, apiErrorMessage(err, "Failed to load hotels."))
	}
	data["Hotels"] = hotels

	cities, err := h.api.Cities(r.Context(), sess.AccessToken, models.PageQuery{})
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("city selector failed to load")
	}
	data["Cities"] = cities

	data["FlashErrors"] = notices
	h.pages.Render(w, r, "admin_hotels.html", data)
}

// hotelFromForm reads the shared hotel form fields.
func hotelFromForm(r *http.Request) models.Hotel {
	hotelType, _ := strconv.Atoi(r.FormValue("hotelType"))
	starRating, _ := strconv.Atoi(r.FormValue("starRating"))
	latitude, _ := strconv.ParseFloat(r.FormValue("latitude"), 64)
	longitude, _ := strconv.ParseFloat(r.FormValue("longitude"), 64)

	return models.Hotel{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		HotelType:   hotelType,
		StarRating:  starRating,
		Latitude:    latitude,
		Longitude:   longitude,
	}
}

// HandleCreateHotel creates a hotel under its selected city.
func (h *AdminHandler) HandleCreateHotel(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/hotels", http.StatusFound)
		return
	}

	cityID, ok := formID(r, "cityId")
	if !ok {
		h.sessions.AddError(w, r, "Please select a city for the hotel.")
		http.Redirect(w, r, "/admin/hotels", http.StatusFound)
		return
	}

	hotel := hotelFromForm(r)
	if _, err := h.api.CreateHotel(r.Context(), sess.AccessToken, cityID, hotel); err != nil {
		h.logger.Warn().Str("hotel", hotel.Name).Str("error", err.Error()).Msg("hotel create failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to create hotel."))
	} else {
		h.sessions.AddSuccess(w, r, "Hotel created.")
	}

	http.Redirect(w, r, "/admin/hotels", http.StatusFound)
}

// HandleUpdateHotel updates a hotel.
func (h *AdminHandler) HandleUpdateHotel(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	hotelID, ok := pathID(r, "id")
	if !ok || r.ParseForm() != nil {
		http.Redirect(w, r, "/admin/hotels", http.StatusFound)
		return
	}

	hotel := hotelFromForm(r)
	hotel.ID = hotelID

	if err := h.api.UpdateHotel(r.Context(), sess.AccessToken, hotelID, hotel); err != nil {
		h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("hotel update failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to update hotel."))
	} else {
		h.sessions.AddSuccess(w, r, "Hotel updated.")
	}

	http.Redirect(w, r, "/admin/hotels", http.StatusFound)
}

// HandleDeleteHotel deletes a hotel. The API nests hotel deletion under the
// owning city, so when the form does not carry the city the record is
// looked up first.
func (h *AdminHandler) HandleDeleteHotel(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	hotelID, ok := pathID(r, "id")
	if !ok || r.ParseForm() != nil {
		http.Redirect(w, r, "/admin/hotels", http.StatusFound)
		return
	}

	cityID, ok := formID(r, "cityId")
	if !ok {
		var err error
		cityID, err = h.api.HotelCity(r.Context(), sess.AccessToken, hotelID)
		if err != nil {
			h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("hotel city lookup failed")
			h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to delete hotel."))
			http.Redirect(w, r, "/admin/hotels", http.StatusFound)
			return
		}
	}

	if err := h.api.DeleteHotel(r.Context(), sess.AccessToken, cityID, hotelID); err != nil {
		h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("hotel delete failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to delete hotel."))
	} else {
		h.sessions.AddSuccess(w, r, "Hotel deleted.")
	}

	http.Redirect(w, r, "/admin/hotels", http.StatusFound)
}

// ShowRooms renders the room grid. Hotels load alongside to populate the
// create form's hotel selector.
func (h *AdminHandler) ShowRooms(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	q := gridQuery(r)

	data := map[string]interface{}{"Page": "admin-rooms", "Query": q}
	var notices []string

	rooms, err := h.api.Rooms(r.Context(), sess.AccessToken, q)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("room grid failed to load")
		notices = append(notices, apiErrorMessage(err, "Failed to load rooms."))
	}
	data["Rooms"] = rooms

	hotels, err := h.api.Hotels(r.Context(), sess.AccessToken, models.PageQuery{})
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("hotel selector failed to load")
	}
	data["Hotels"] = hotels

	data["FlashErrors"] = notices
	h.pages.Render(w, r, "admin_rooms.html", data)
}

// HandleCreateRoom creates a room under its selected hotel.
func (h *AdminHandler) HandleCreateRoom(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/rooms", http.StatusFound)
		return
	}

	hotelID, ok := formID(r, "hotelId")
	if !ok {
		h.sessions.AddError(w, r, "Please select a hotel for the room.")
		http.Redirect(w, r, "/admin/rooms", http.StatusFound)
		return
	}

	room := models.AdminRoom{
		RoomNumber: r.FormValue("roomNumber"),
		Cost:       r.FormValue("cost"),
	}

	if _, err := h.api.CreateRoom(r.Context(), sess.AccessToken, hotelID, room); err != nil {
		h.logger.Warn().Int64("hotel", hotelID).Str("error", err.Error()).Msg("room create failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to create room."))
	} else {
		h.sessions.AddSuccess(w, r, "Room created.")
	}

	http.Redirect(w, r, "/admin/rooms", http.StatusFound)
}

// HandleUpdateRoom updates a room.
func (h *AdminHandler) HandleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	roomID, ok := pathID(r, "id")
	if !ok || r.ParseForm() != nil {
		http.Redirect(w, r, "/admin/rooms", http.StatusFound)
		return
	}

	room := models.AdminRoom{
		ID:         roomID,
		RoomNumber: r.FormValue("roomNumber"),
		Cost:       r.FormValue("cost"),
	}

	if err := h.api.UpdateRoom(r.Context(), sess.AccessToken, roomID, room); err != nil {
		h.logger.Warn().Int64("room", roomID).Str("error", err.Error()).Msg("room update failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to update room."))
	} else {
		h.sessions.AddSuccess(w, r, "Room updated.")
	}

	http.Redirect(w, r, "/admin/rooms", http.StatusFound)
}

// HandleDeleteRoom deletes a room from its hotel.
func (h *AdminHandler) HandleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	roomID, ok := pathID(r, "id")
	if !ok || r.ParseForm() != nil {
		http.Redirect(w, r, "/admin/rooms", http.StatusFound)
		return
	}

	hotelID, ok := formID(r, "hotelId")
	if !ok {
		h.sessions.AddError(w, r, "Failed to delete room.")
		http.Redirect(w, r, "/admin/rooms", http.StatusFound)
		return
	}

	if err := h.api.DeleteRoom(r.Context(), sess.AccessToken, hotelID, roomID); err != nil {
		h.logger.Warn().Int64("room", roomID).Str("error", err.Error()).Msg("room delete failed")
		h.sessions.AddError(w, r, apiErrorMessage(err, "Failed to delete room."))
	} else {
		h.sessions.AddSuccess(w, r, "Room deleted.")
	}

	http.Redirect(w, r, "/admin/rooms", http.StatusFound)
}

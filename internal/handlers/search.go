package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
)

// SearchHandler renders the search results page with its filter sidebar.
type SearchHandler struct {
	logger   *common.Logger
	pages    *PageHandler
	sessions *session.Store
	api      *client.BookingClient
}

// NewSearchHandler creates a new search page handler.
func NewSearchHandler(logger *common.Logger, pages *PageHandler, sessions *session.Store, api *client.BookingClient) *SearchHandler {
	return &SearchHandler{
		logger:   logger,
		pages:    pages,
		sessions: sessions,
		api:      api,
	}
}

// Sidebar option sets. Room types match the inventory's fixed set; star
// ratings below three are not offered as a filter.
var (
	roomTypeOptions = []string{"Double", "King Suite", "Standard", "Cabin", "Ocean View"}
	starRateOptions = []int{3, 4, 5}
)

// queryFromRequest reads the search form values, filling the same defaults
// the search bar starts with: tonight for one night, two adults, one room.
func queryFromRequest(r *http.Request, now time.Time) models.SearchQuery {
	q := models.SearchQuery{
		City:          r.URL.Query().Get("city"),
		CheckInDate:   r.URL.Query().Get("checkInDate"),
		CheckOutDate:  r.URL.Query().Get("checkOutDate"),
		Adults:        intParam(r, "adults", 2),
		Children:      intParam(r, "children", 0),
		NumberOfRooms: intParam(r, "rooms", 1),
		Sort:          r.URL.Query().Get("sort"),
	}

	if q.CheckInDate == "" {
		q.CheckInDate = now.Format("2006-01-02")
	}
	if q.CheckOutDate == "" {
		q.CheckOutDate = now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	return q
}

func intParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func floatParam(r *http.Request, name string) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ResultFilter carries the sidebar filters. They narrow the fetched results
// after the API call; the search query itself is untouched, so clearing the
// filters re-renders the full result set without a new search.
type ResultFilter struct {
	PriceMin  float64
	PriceMax  float64
	Amenities []string
	RoomType  string
	StarRate  int
}

func filterFromRequest(r *http.Request) ResultFilter {
	f := ResultFilter{
		PriceMin: floatParam(r, "priceMin"),
		PriceMax: floatParam(r, "priceMax"),
		RoomType: r.URL.Query().Get("roomType"),
		StarRate: intParam(r, "starRate", 0),
	}
	for _, name := range r.URL.Query()["amenity"] {
		if name != "" {
			f.Amenities = append(f.Amenities, name)
		}
	}
	return f
}

// Active reports whether any sidebar filter is set.
func (f ResultFilter) Active() bool {
	return f.PriceMax > 0 || len(f.Amenities) > 0 || f.RoomType != "" || f.StarRate > 0
}

// AmenitySelected reports whether the named amenity is checked. Used when
// re-rendering the sidebar.
func (f ResultFilter) AmenitySelected(name string) bool {
	for _, a := range f.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// Matches applies the filter predicates to one result row. The price range
// is inclusive and applies only when a maximum is set; every selected
// amenity must be present on the hotel; room type and star rating match
// exactly.
func (f ResultFilter) Matches(hotel models.SearchResult) bool {
	if f.PriceMax > 0 && (hotel.RoomPrice < f.PriceMin || hotel.RoomPrice > f.PriceMax) {
		return false
	}
	for _, want := range f.Amenities {
		found := false
		for _, a := range hotel.Amenities {
			if a.Name == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.RoomType != "" && hotel.RoomType != f.RoomType {
		return false
	}
	if f.StarRate > 0 && hotel.StarRating != f.StarRate {
		return false
	}
	return true
}

func filterResults(results []models.SearchResult, f ResultFilter) []models.SearchResult {
	if !f.Active() {
		return results
	}
	filtered := make([]models.SearchResult, 0, len(results))
	for _, hotel := range results {
		if f.Matches(hotel) {
			filtered = append(filtered, hotel)
		}
	}
	return filtered
}

// ServeHTTP runs the search, narrows the results with the sidebar filters,
// and renders the page. The amenity list loads alongside; its failure is
// notified but does not block the results.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.sessions.Get(r)
	ctx := r.Context()
	q := queryFromRequest(r, timeNow())
	filter := filterFromRequest(r)

	data := map[string]interface{}{
		"Page":            "search",
		"Query":           q,
		"Filter":          filter,
		"StarOptions":     starRateOptions,
		"RoomTypeOptions": roomTypeOptions,
	}
	var notices []string

	results, err := h.api.Search(ctx, sess.AccessToken, q)
	if err != nil {
		h.logger.Warn().Str("city", q.City).Str("error", err.Error()).Msg("search failed")
		notices = append(notices, apiErrorMessage(err, "Couldn't fetch Search Results"))
	}
	data["Results"] = filterResults(results, filter)

	amenities, err := h.api.Amenities(ctx, sess.AccessToken)
	if err != nil {
		h.logger.Warn().Str("error", err.Error()).Msg("amenity list failed to load")
		notices = append(notices, apiErrorMessage(err, "Couldn't fetch Amenities"))
	}
	data["Amenities"] = amenities

	data["FlashErrors"] = notices
	h.pages.Render(w, r, "search.html", data)
}

// Package client is the typed REST client for the external booking API.
// All business logic (inventory, pricing, availability, authentication)
// lives behind these endpoints; the portal only renders what they return.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lodgera/lodgera-portal/internal/cache"
	"github.com/lodgera/lodgera-portal/internal/models"
)

// BookingClient communicates with the booking API.
type BookingClient struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.ResponseCache
}

// NewBookingClient creates a new client targeting the given API base URL.
// The cache is optional; when nil, every call goes to the API.
func NewBookingClient(baseURL string, responseCache *cache.ResponseCache) *BookingClient {
	return &BookingClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      responseCache,
	}
}

// AuthResult is the response of the authentication endpoint.
type AuthResult struct {
	AccessToken string `json:"authentication"`
	Role        string `json:"userType"`
}

// Authenticate exchanges credentials for a bearer token and role.
// POST /api/auth/authenticate {userName, password}.
func (c *BookingClient) Authenticate(ctx context.Context, userName, password string) (*AuthResult, error) {
	body := map[string]string{
		"userName": userName,
		"password": password,
	}

	var result AuthResult
	if err := c.send(ctx, http.MethodPost, "", "/api/auth/authenticate", body, &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, &APIError{StatusCode: http.StatusOK, Body: "response missing authentication token"}
	}

	return &result, nil
}

// FeaturedDeals fetches the discounted hotels for the home page.
// GET /api/home/featured-deals. Shared across users, cached.
func (c *BookingClient) FeaturedDeals(ctx context.Context, token string) ([]models.FeaturedDeal, error) {
	var deals []models.FeaturedDeal
	if err := c.getCached(ctx, token, 0, "/api/home/featured-deals", &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

// TrendingDestinations fetches the highlighted cities for the home page.
// GET /api/home/destinations/trending. Shared across users, cached.
func (c *BookingClient) TrendingDestinations(ctx context.Context, token string) ([]models.TrendingDestination, error) {
	var dests []models.TrendingDestination
	if err := c.getCached(ctx, token, 0, "/api/home/destinations/trending", &dests); err != nil {
		return nil, err
	}
	return dests, nil
}

// RecentHotels fetches the user's recently visited hotels.
// GET /api/home/users/{id}/recent-hotels. Cached per user.
func (c *BookingClient) RecentHotels(ctx context.Context, token string, userID int64) ([]models.RecentHotel, error) {
	path := fmt.Sprintf("/api/home/users/%d/recent-hotels", userID)
	var hotels []models.RecentHotel
	if err := c.getCached(ctx, token, userID, path, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// Search runs the home search. GET /api/home/search.
func (c *BookingClient) Search(ctx context.Context, token string, q models.SearchQuery) ([]models.SearchResult, error) {
	params := url.Values{}
	if q.City != "" {
		params.Set("city", q.City)
	}
	if q.CheckInDate != "" {
		params.Set("checkInDate", q.CheckInDate)
	}
	if q.CheckOutDate != "" {
		params.Set("checkOutDate", q.CheckOutDate)
	}
	if q.Adults > 0 {
		params.Set("adults", strconv.Itoa(q.Adults))
	}
	if q.Children > 0 {
		params.Set("children", strconv.Itoa(q.Children))
	}
	if q.NumberOfRooms > 0 {
		params.Set("numberOfRooms", strconv.Itoa(q.NumberOfRooms))
	}
	if q.StarRate > 0 {
		params.Set("starRate", strconv.Itoa(q.StarRate))
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	path := "/api/home/search"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var results []models.SearchResult
	if err := c.get(ctx, token, path, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Amenities fetches the filterable amenity list for the search page.
// GET /api/search-results/amenities. Shared across users, cached.
func (c *BookingClient) Amenities(ctx context.Context, token string) ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := c.getCached(ctx, token, 0, "/api/search-results/amenities", &amenities); err != nil {
		return nil, err
	}
	return amenities, nil
}

// Hotel fetches the expanded hotel record for the hotel page.
// GET /api/hotels/{id}?includeRooms=true.
func (c *BookingClient) Hotel(ctx context.Context, token string, hotelID int64) (*models.HotelDetails, error) {
	path := fmt.Sprintf("/api/hotels/%d?includeRooms=true", hotelID)
	var details models.HotelDetails
	if err := c.get(ctx, token, path, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// HotelGallery fetches the hotel's picture gallery.
// GET /api/hotels/{id}/gallery.
func (c *BookingClient) HotelGallery(ctx context.Context, token string, hotelID int64) ([]models.HotelPhoto, error) {
	var photos []models.HotelPhoto
	if err := c.get(ctx, token, fmt.Sprintf("/api/hotels/%d/gallery", hotelID), &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// HotelReviews fetches the hotel's customer reviews.
// GET /api/hotels/{id}/reviews.
func (c *BookingClient) HotelReviews(ctx context.Context, token string, hotelID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, token, fmt.Sprintf("/api/hotels/%d/reviews", hotelID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// AvailableRooms fetches rooms bookable in the given date window.
// GET /api/hotels/{id}/available-rooms.
func (c *BookingClient) AvailableRooms(ctx context.Context, token string, hotelID int64, checkIn, checkOut string) ([]models.Room, error) {
	params := url.Values{}
	params.Set("checkInDate", checkIn)
	params.Set("checkOutDate", checkOut)
	path := fmt.Sprintf("/api/hotels/%d/available-rooms?%s", hotelID, params.Encode())

	var rooms []models.Room
	if err := c.get(ctx, token, path, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// ErrBookingDeclined is returned when the API accepted the request but did
// not confirm the booking (wrong status code or a non-Confirmed status).
var errBookingDeclined = &APIError{StatusCode: http.StatusOK, Body: "booking not confirmed"}

// CreateBooking submits a booking. POST /api/bookings. The booking counts
// as placed only on a 201 response whose bookingStatus is "Confirmed".
func (c *BookingClient) CreateBooking(ctx context.Context, token string, req models.BookingRequest) (*models.BookingConfirmation, error) {
	body, status, err := c.fetch(ctx, http.MethodPost, token, "/api/bookings", req)
	if err != nil {
		return nil, err
	}

	var confirmation models.BookingConfirmation
	if err := json.Unmarshal(body, &confirmation); err != nil {
		return nil, &APIError{StatusCode: status, Body: "unexpected response body shape"}
	}
	if status != http.StatusCreated || confirmation.BookingStatus != "Confirmed" {
		return nil, errBookingDeclined
	}

	return &confirmation, nil
}

// IsBookingDeclined reports whether err marks an unconfirmed booking.
func IsBookingDeclined(err error) bool {
	return err == errBookingDeclined
}

// Booking fetches a booking record for the confirmation page.
// GET /api/bookings/{id}.
func (c *BookingClient) Booking(ctx context.Context, token string, bookingID string) (*models.BookingConfirmation, error) {
	var confirmation models.BookingConfirmation
	if err := c.get(ctx, token, "/api/bookings/"+url.PathEscape(bookingID), &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *BookingClient) get(ctx context.Context, token, path string, out any) error {
	return c.send(ctx, http.MethodGet, token, path, nil, out)
}

// getCached is get with a read-through response cache keyed by user.
func (c *BookingClient) getCached(ctx context.Context, token string, userID int64, path string, out any) error {
	if c.cache == nil {
		return c.get(ctx, token, path, out)
	}

	key := cache.MakeKey(userID, http.MethodGet, path)
	if body, ok := c.cache.Get(key); ok {
		return json.Unmarshal(body, out)
	}

	body, _, err := c.fetch(ctx, http.MethodGet, token, path, nil)
	if err != nil {
		return err
	}

	c.cache.Set(key, body)
	return json.Unmarshal(body, out)
}

// send issues a request with an optional JSON body and decodes the response.
func (c *BookingClient) send(ctx context.Context, method, token, path string, body, out any) error {
	respBody, status, err := c.fetch(ctx, method, token, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{StatusCode: status, Body: "unexpected response body shape"}
	}
	return nil
}

// fetch performs the HTTP round trip and maps failures onto the three
// user-facing categories. A non-empty token is attached as a bearer header.
// Any 2xx response counts as success.
func (c *BookingClient) fetch(ctx context.Context, method, token, path string, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNoServerResponse, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNoServerResponse, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, resp.StatusCode, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, resp.StatusCode, nil
}

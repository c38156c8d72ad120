package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lodgera/lodgera-portal/internal/models"
)

// Admin console operations: searchable, paginated grids over cities, hotels
// and rooms, with create/update/delete posting straight back to the API.
// Mutations invalidate the relevant cached list prefix so the next render
// is fresh.

// pageParams encodes the shared name/searchQuery/pageNumber/pageSize filter.
func pageParams(q models.PageQuery) string {
	params := url.Values{}
	if q.Name != "" {
		params.Set("name", q.Name)
	}
	if q.SearchQuery != "" {
		params.Set("searchQuery", q.SearchQuery)
	}
	if q.PageNumber > 0 {
		params.Set("pageNumber", strconv.Itoa(q.PageNumber))
	}
	if q.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

func (c *BookingClient) invalidate(prefix string) {
	if c.cache != nil {
		c.cache.InvalidatePrefix(prefix)
	}
}

// Cities lists cities. GET /api/cities. Cached (shared across admins)
// until a city mutation evicts it.
func (c *BookingClient) Cities(ctx context.Context, token string, q models.PageQuery) ([]models.City, error) {
	var cities []models.City
	if err := c.getCached(ctx, token, 0, "/api/cities"+pageParams(q), &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// CreateCity creates a city. POST /api/cities.
func (c *BookingClient) CreateCity(ctx context.Context, token string, city models.City) (*models.City, error) {
	var created models.City
	if err := c.send(ctx, http.MethodPost, token, "/api/cities", city, &created); err != nil {
		return nil, err
	}
	c.invalidate("/api/cities")
	return &created, nil
}

// UpdateCity updates a city. PUT /api/cities/{id}.
func (c *BookingClient) UpdateCity(ctx context.Context, token string, cityID int64, city models.City) error {
	path := fmt.Sprintf("/api/cities/%d", cityID)
	if err := c.send(ctx, http.MethodPut, token, path, city, nil); err != nil {
		return err
	}
	c.invalidate("/api/cities")
	return nil
}

// DeleteCity deletes a city. DELETE /api/cities/{id}.
func (c *BookingClient) DeleteCity(ctx context.Context, token string, cityID int64) error {
	path := fmt.Sprintf("/api/cities/%d", cityID)
	if err := c.send(ctx, http.MethodDelete, token, path, nil, nil); err != nil {
		return err
	}
	c.invalidate("/api/cities")
	return nil
}

// Hotels lists hotels. GET /api/hotels. Cached like Cities.
func (c *BookingClient) Hotels(ctx context.Context, token string, q models.PageQuery) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := c.getCached(ctx, token, 0, "/api/hotels"+pageParams(q), &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

// CreateHotel creates a hotel under its city. POST /api/cities/{cityId}/hotels.
func (c *BookingClient) CreateHotel(ctx context.Context, token string, cityID int64, hotel models.Hotel) (*models.Hotel, error) {
	path := fmt.Sprintf("/api/cities/%d/hotels", cityID)
	var created models.Hotel
	if err := c.send(ctx, http.MethodPost, token, path, hotel, &created); err != nil {
		return nil, err
	}
	c.invalidate("/api/hotels")
	return &created, nil
}

// UpdateHotel updates a hotel. PUT /api/hotels/{id}.
func (c *BookingClient) UpdateHotel(ctx context.Context, token string, hotelID int64, hotel models.Hotel) error {
	path := fmt.Sprintf("/api/hotels/%d", hotelID)
	if err := c.send(ctx, http.MethodPut, token, path, hotel, nil); err != nil {
		return err
	}
	c.invalidate("/api/hotels")
	return nil
}

// DeleteHotel deletes a hotel from its city.
// DELETE /api/cities/{cityId}/hotels/{hotelId}.
func (c *BookingClient) DeleteHotel(ctx context.Context, token string, cityID, hotelID int64) error {
	path := fmt.Sprintf("/api/cities/%d/hotels/%d", cityID, hotelID)
	if err := c.send(ctx, http.MethodDelete, token, path, nil, nil); err != nil {
		return err
	}
	c.invalidate("/api/hotels")
	return nil
}

// HotelCity resolves the owning city of a hotel, needed for deletes because
// the API only exposes hotel deletion nested under the city resource.
// GET /api/hotels/{id}.
func (c *BookingClient) HotelCity(ctx context.Context, token string, hotelID int64) (int64, error) {
	var hotel models.Hotel
	if err := c.get(ctx, token, fmt.Sprintf("/api/hotels/%d", hotelID), &hotel); err != nil {
		return 0, err
	}
	return hotel.CityID, nil
}

// Rooms lists rooms for the admin grid. GET /api/rooms. Cached like Cities.
func (c *BookingClient) Rooms(ctx context.Context, token string, q models.PageQuery) ([]models.AdminRoom, error) {
	var rooms []models.AdminRoom
	if err := c.getCached(ctx, token, 0, "/api/rooms"+pageParams(q), &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// CreateRoom creates a room under its hotel. POST /api/hotels/{hotelId}/rooms.
func (c *BookingClient) CreateRoom(ctx context.Context, token string, hotelID int64, room models.AdminRoom) (*models.AdminRoom, error) {
	path := fmt.Sprintf("/api/hotels/%d/rooms", hotelID)
	var created models.AdminRoom
	if err := c.send(ctx, http.MethodPost, token, path, room, &created); err != nil {
		return nil, err
	}
	c.invalidate("/api/rooms")
	return &created, nil
}

// UpdateRoom updates a room. PUT /api/rooms/{id}.
func (c *BookingClient) UpdateRoom(ctx context.Context, token string, roomID int64, room models.AdminRoom) error {
	path := fmt.Sprintf("/api/rooms/%d", roomID)
	if err := c.send(ctx, http.MethodPut, token, path, room, nil); err != nil {
		return err
	}
	c.invalidate("/api/rooms")
	return nil
}

// DeleteRoom deletes a room from its hotel.
// DELETE /api/hotels/{hotelId}/rooms/{roomId}.
func (c *BookingClient) DeleteRoom(ctx context.Context, token string, hotelID, roomID int64) error {
	path := fmt.Sprintf("/api/hotels/%d/rooms/%d", hotelID, roomID)
	if err := c.send(ctx, http.MethodDelete, token, path, nil, nil); err != nil {
		return err
	}
	c.invalidate("/api/rooms")
	return nil
}

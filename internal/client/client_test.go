package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodgera/lodgera-portal/internal/cache"
	"github.com/lodgera/lodgera-portal/internal/models"
)

func TestAuthenticate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/authenticate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds["userName"])
		require.Equal(t, "pw", creds["password"])

		json.NewEncoder(w).Encode(map[string]string{
			"authentication": "h.p.s",
			"userType":       "User",
		})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	result, err := c.Authenticate(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "h.p.s", result.AccessToken)
	assert.Equal(t, "User", result.Role)
}

func TestAuthenticate_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	_, err := c.Authenticate(context.Background(), "alice", "wrong")
	assert.True(t, IsUnauthorized(err), "expected unauthorized, got %v", err)
}

func TestAuthenticate_NoServerResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use: connection refused

	c := NewBookingClient(srv.URL, nil)
	_, err := c.Authenticate(context.Background(), "alice", "pw")
	assert.True(t, IsNoServerResponse(err), "expected no-server-response, got %v", err)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"userType": "User"})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	_, err := c.Authenticate(context.Background(), "alice", "pw")
	assert.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.False(t, IsNoServerResponse(err))
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	_, err := c.FeaturedDeals(context.Background(), "my-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestSearch_QueryParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/home/search", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]models.SearchResult{{HotelID: 1, HotelName: "Plaza"}})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	results, err := c.Search(context.Background(), "tok", models.SearchQuery{
		City:         "Ramallah",
		CheckInDate:  "2025-06-05",
		CheckOutDate: "2025-06-06",
		Adults:       2,
		Children:     1,
		StarRate:     4,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Plaza", results[0].HotelName)

	assert.Equal(t, []string{"Ramallah"}, gotQuery["city"])
	assert.Equal(t, []string{"2025-06-05"}, gotQuery["checkInDate"])
	assert.Equal(t, []string{"2"}, gotQuery["adults"])
	assert.Equal(t, []string{"1"}, gotQuery["children"])
	assert.Equal(t, []string{"4"}, gotQuery["starRate"])
}

func TestAvailableRooms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/hotels/3/available-rooms", r.URL.Path)
		require.Equal(t, "2025-06-05", r.URL.Query().Get("checkInDate"))
		require.Equal(t, "2025-06-06", r.URL.Query().Get("checkOutDate"))
		json.NewEncoder(w).Encode([]models.Room{{RoomNumber: 101, RoomType: "Double", Price: 120}})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	rooms, err := c.AvailableRooms(context.Background(), "tok", 3, "2025-06-05", "2025-06-06")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 101, rooms[0].RoomNumber)
}

func TestCreateBooking_Confirmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)

		var req models.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Alice Smith", req.CustomerName)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.BookingConfirmation{
			BookingStatus:      "Confirmed",
			ConfirmationNumber: "BK-1001",
		})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	conf, err := c.CreateBooking(context.Background(), "tok", models.BookingRequest{CustomerName: "Alice Smith"})
	require.NoError(t, err)
	assert.Equal(t, "BK-1001", conf.ConfirmationNumber)
}

func TestCreateBooking_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.BookingConfirmation{BookingStatus: "Pending"})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	_, err := c.CreateBooking(context.Background(), "tok", models.BookingRequest{})
	assert.True(t, IsBookingDeclined(err), "expected declined, got %v", err)
}

func TestCreateBooking_WrongStatusCodeIsDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.BookingConfirmation{BookingStatus: "Confirmed"})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	_, err := c.CreateBooking(context.Background(), "tok", models.BookingRequest{})
	assert.True(t, IsBookingDeclined(err), "200 with Confirmed must still decline, got %v", err)
}

func TestGenericFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	_, err := c.Cities(context.Background(), "tok", models.PageQuery{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestCachedGET_SecondCallServedFromCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode([]models.Amenity{{Name: "WiFi"}})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, cache.New(time.Minute, 16))

	for i := 0; i < 2; i++ {
		amenities, err := c.Amenities(context.Background(), "tok")
		require.NoError(t, err)
		require.Len(t, amenities, 1)
		assert.Equal(t, "WiFi", amenities[0].Name)
	}

	assert.Equal(t, 1, calls, "second call should be served from cache")
}

func TestMutationInvalidatesCachedList(t *testing.T) {
	listCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			listCalls++
			json.NewEncoder(w).Encode([]models.City{{ID: 1, Name: "Jericho"}})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.City{ID: 2, Name: "Nablus"})
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, cache.New(time.Minute, 16))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.Cities(ctx, "tok", models.PageQuery{})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, listCalls, "second list should be served from cache")

	created, err := c.CreateCity(ctx, "tok", models.City{Name: "Nablus"})
	require.NoError(t, err)
	assert.Equal(t, "Nablus", created.Name)

	_, err = c.Cities(ctx, "tok", models.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls, "create must evict the cached city list")
}

func TestCRUDPaths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewBookingClient(srv.URL, nil)
	ctx := context.Background()

	require.NoError(t, c.UpdateCity(ctx, "tok", 5, models.City{Name: "Haifa"}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/cities/5", gotPath)

	require.NoError(t, c.DeleteHotel(ctx, "tok", 2, 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/cities/2/hotels/9", gotPath)

	require.NoError(t, c.DeleteRoom(ctx, "tok", 4, 17))
	assert.Equal(t, "/api/hotels/4/rooms/17", gotPath)

	require.NoError(t, c.UpdateRoom(ctx, "tok", 17, models.AdminRoom{RoomNumber: "101", Cost: "120"}))
	assert.Equal(t, "/api/rooms/17", gotPath)
}

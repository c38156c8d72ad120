package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lodgera/lodgera-portal/internal/booking"
	"github.com/lodgera/lodgera-portal/internal/client"
	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
	"github.com/lodgera/lodgera-portal/internal/session"
)

func sessionFixture(t *testing.T) models.Session {
	t.Helper()
	return models.Session{
		Role:        models.RoleUser,
		AccessToken: testToken(t, 42, time.Now().Add(time.Hour)),
		UserID:      42,
	}
}

func draftFixture() models.RoomSelection {
	return models.RoomSelection{
		HotelName:    "Plaza Hotel",
		RoomNumber:   101,
		RoomType:     "Double",
		CheckInDate:  "2025-06-05",
		CheckOutDate: "2025-06-06",
		Adults:       2,
		Children:     0,
		TotalCost:    180,
	}
}

type checkoutFixture struct {
	handler  *CheckoutHandler
	sessions *session.Store
	drafts   *booking.DraftStore
}

func newCheckoutFixture(t *testing.T, backendURL string) *checkoutFixture {
	t.Helper()
	logger := common.NewSilentLogger()
	sessions := session.NewStore("checkout-test-secret", 3600)
	pages := NewPageHandler(logger, sessions, false)
	drafts := booking.NewDraftStore()
	api := client.NewBookingClient(backendURL, nil)
	return &checkoutFixture{
		handler:  NewCheckoutHandler(logger, pages, sessions, api, drafts),
		sessions: sessions,
		drafts:   drafts,
	}
}

// authedRequest builds a request carrying a valid user session cookie.
func (f *checkoutFixture) authedRequest(t *testing.T, method, path string, form url.Values) *http.Request {
	t.Helper()

	seedRec := httptest.NewRecorder()
	seedReq := httptest.NewRequest("GET", "/", nil)
	if err := f.sessions.Set(seedRec, seedReq, sessionFixture(t)); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range seedRec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func checkoutForm() url.Values {
	form := url.Values{}
	form.Set("customerName", "Alice Smith")
	form.Set("paymentMethod", "Credit Card")
	return form
}

func TestShowCheckout_WithDraft(t *testing.T) {
	f := newCheckoutFixture(t, "http://localhost:1")
	f.drafts.Set(42, draftFixture())

	w := httptest.NewRecorder()
	f.handler.ShowCheckout(w, f.authedRequest(t, "GET", "/checkout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Plaza Hotel") {
		t.Error("expected the draft hotel name on the page")
	}
	if !strings.Contains(body, "June 5, 2025") {
		t.Error("expected the normalized check-in date on the page")
	}
}

func TestShowCheckout_WithoutDraft(t *testing.T) {
	f := newCheckoutFixture(t, "http://localhost:1")

	w := httptest.NewRecorder()
	f.handler.ShowCheckout(w, f.authedRequest(t, "GET", "/checkout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no room selected") {
		t.Error("expected the empty-checkout fallback")
	}
}

func TestHandleSubmit_ConfirmedClearsDraft(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.BookingRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.CustomerName != "Alice Smith" {
			t.Errorf("expected customerName from form, got %q", req.CustomerName)
		}
		if req.HotelName != "Plaza Hotel" {
			t.Errorf("expected hotelName from draft, got %q", req.HotelName)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.BookingConfirmation{
			BookingStatus:      "Confirmed",
			ConfirmationNumber: "BK-1001",
		})
	}))
	defer backend.Close()

	f := newCheckoutFixture(t, backend.URL)
	f.drafts.Set(42, draftFixture())

	w := httptest.NewRecorder()
	f.handler.HandleSubmit(w, f.authedRequest(t, "POST", "/checkout", checkoutForm()))

	if loc := w.Header().Get("Location"); loc != "/confirmation/BK-1001" {
		t.Errorf("expected redirect to the confirmation page, got %s", loc)
	}
	if _, ok := f.drafts.Get(42); ok {
		t.Error("expected the draft to be cleared after a confirmed booking")
	}
}

func TestHandleSubmit_DeclinedKeepsDraft(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.BookingConfirmation{BookingStatus: "Pending"})
	}))
	defer backend.Close()

	f := newCheckoutFixture(t, backend.URL)
	f.drafts.Set(42, draftFixture())

	req := f.authedRequest(t, "POST", "/checkout", checkoutForm())
	w := httptest.NewRecorder()
	f.handler.HandleSubmit(w, req)

	if loc := w.Header().Get("Location"); loc != "/checkout" {
		t.Errorf("expected return to /checkout, got %s", loc)
	}
	if _, ok := f.drafts.Get(42); !ok {
		t.Error("expected the draft to survive a declined booking")
	}

	follow := httptest.NewRequest("GET", "/checkout", nil)
	for _, c := range w.Result().Cookies() {
		follow.AddCookie(c)
	}
	errs, _ := f.sessions.Flashes(httptest.NewRecorder(), follow)
	if len(errs) != 1 || errs[0] != "Booking declined. Please try again." {
		t.Errorf("expected the declined notification, got %v", errs)
	}
}

func TestHandleSubmit_NoServerResponseKeepsDraft(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	f := newCheckoutFixture(t, backend.URL)
	f.drafts.Set(42, draftFixture())

	w := httptest.NewRecorder()
	f.handler.HandleSubmit(w, f.authedRequest(t, "POST", "/checkout", checkoutForm()))

	if _, ok := f.drafts.Get(42); !ok {
		t.Error("expected the draft to survive a transport failure")
	}
}

func TestHandleSubmit_NoDraft(t *testing.T) {
	f := newCheckoutFixture(t, "http://localhost:1")

	w := httptest.NewRecorder()
	f.handler.HandleSubmit(w, f.authedRequest(t, "POST", "/checkout", checkoutForm()))

	if loc := w.Header().Get("Location"); loc != "/search" {
		t.Errorf("expected redirect to /search without a draft, got %s", loc)
	}
}

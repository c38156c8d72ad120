// Package booking carries a single pending room selection from wherever it
// is chosen (search results, hotel page) to the checkout view, without a
// round trip to the booking API.
package booking

import (
	"sync"

	"github.com/lodgera/lodgera-portal/internal/common"
	"github.com/lodgera/lodgera-portal/internal/models"
)

// DraftStore holds at most one in-progress room selection per user.
// A user can only be mid-booking for one room at a time, so setting a new
// selection discards the old one unconditionally. The store performs no I/O.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[int64]models.BookingDraft
}

// NewDraftStore creates an empty draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[int64]models.BookingDraft),
	}
}

// Set records the user's room selection, normalizing the raw check-in and
// check-out dates into long display form ("June 5, 2025"). Any prior draft
// for the user is replaced wholesale, never merged.
func (s *DraftStore) Set(userID int64, sel models.RoomSelection) {
	draft := models.BookingDraft{
		HotelName:    sel.HotelName,
		RoomNumber:   sel.RoomNumber,
		RoomType:     sel.RoomType,
		RoomPhotoURL: sel.RoomPhotoURL,
		CheckInDate:  common.FormatLongDate(sel.CheckInDate),
		CheckOutDate: common.FormatLongDate(sel.CheckOutDate),
		Adults:       sel.Adults,
		Children:     sel.Children,
		TotalCost:    sel.TotalCost,
	}

	s.mu.Lock()
	s.drafts[userID] = draft
	s.mu.Unlock()
}

// Get returns the user's current draft, or false when none exists.
// An abandoned checkout leaves the draft intact, so returning to the
// checkout page still shows it.
func (s *DraftStore) Get(userID int64) (models.BookingDraft, bool) {
	s.mu.RLock()
	draft, ok := s.drafts[userID]
	s.mu.RUnlock()
	return draft, ok
}

// Clear empties the user's slot. Called once a booking submission is
// confirmed by the booking API.
func (s *DraftStore) Clear(userID int64) {
	s.mu.Lock()
	delete(s.drafts, userID)
	s.mu.Unlock()
}

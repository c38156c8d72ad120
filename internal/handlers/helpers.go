package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lodgera/lodgera-portal/internal/client"
)

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// timeNow is swapped out in tests that pin the clock.
var timeNow = time.Now

// apiErrorMessage maps a failed API call onto the notification shown to the
// user. Transport failures and rejected tokens share fixed wording; anything
// else falls back to the operation-specific message.
func apiErrorMessage(err error, fallback string) string {
	switch {
	case client.IsNoServerResponse(err):
		return "No Server Response"
	case client.IsUnauthorized(err):
		return "Unauthorized Access"
	default:
		return fallback
	}
}

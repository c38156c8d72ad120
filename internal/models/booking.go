package models

// RoomSelection is the raw room choice captured when a user picks a room
// to book, before display normalization. Dates are raw ISO strings as
// received from the search form or the booking API.
type RoomSelection struct {
	HotelName    string  `json:"hotelName"`
	RoomNumber   int     `json:"roomNumber"`
	RoomType     string  `json:"roomType"`
	RoomPhotoURL string  `json:"roomPhotoUrl"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Adults       int     `json:"adults"`
	Children     int     `json:"children"`
	TotalCost    float64 `json:"totalCost"`
}

// BookingDraft is the single pending room selection handed from the
// selection views to the checkout view. Check-in/check-out are already
// formatted for display ("June 5, 2025").
type BookingDraft struct {
	HotelName    string
	RoomNumber   int
	RoomType     string
	RoomPhotoURL string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Children     int
	TotalCost    float64
}

// BookingRequest is the payload submitted to the booking API at checkout.
type BookingRequest struct {
	CustomerName    string  `json:"customerName"`
	HotelName       string  `json:"hotelName"`
	RoomNumber      string  `json:"roomNumber"`
	RoomType        string  `json:"roomType"`
	BookingDateTime string  `json:"bookingDateTime"`
	TotalCost       float64 `json:"totalCost"`
	PaymentMethod   string  `json:"paymentMethod"`
}

// BookingConfirmation is the booking record returned by the booking API,
// rendered on the confirmation page.
type BookingConfirmation struct {
	CustomerName       string  `json:"customerName"`
	HotelName          string  `json:"hotelName"`
	RoomNumber         string  `json:"roomNumber"`
	RoomType           string  `json:"roomType"`
	BookingDate        string  `json:"bookingDate"`
	TotalCost          float64 `json:"totalCost"`
	PaymentMethod      string  `json:"paymentMethod"`
	BookingStatus      string  `json:"bookingStatus"`
	ConfirmationNumber string  `json:"confirmationNumber"`
}

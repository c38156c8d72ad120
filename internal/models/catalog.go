package models

// Records fetched from and submitted to the booking API. The portal does
// not validate or transform their business semantics beyond presence checks.

// City is a bookable destination managed through the admin console.
type City struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Hotel is a property record managed through the admin console.
type Hotel struct {
	ID          int64   `json:"id"`
	CityID      int64   `json:"cityId,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	HotelType   int     `json:"hotelType"`
	StarRating  int     `json:"starRating"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// HotelDetails is the expanded hotel record shown on the hotel page.
type HotelDetails struct {
	HotelName      string    `json:"hotelName"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	StarRating     int       `json:"starRating"`
	AvailableRooms int       `json:"availableRooms"`
	ImageURL       string    `json:"imageUrl"`
	Amenities      []Amenity `json:"amenities"`
}

// HotelPhoto is one gallery image for a hotel.
type HotelPhoto struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Room is an individual bookable room.
type Room struct {
	RoomID             int64     `json:"roomId"`
	RoomNumber         int       `json:"roomNumber"`
	RoomPhotoURL       string    `json:"roomPhotoUrl"`
	RoomType           string    `json:"roomType"`
	CapacityOfAdults   int       `json:"capacityOfAdults"`
	CapacityOfChildren int       `json:"capacityOfChildren"`
	Amenities          []Amenity `json:"roomAmenities"`
	Price              float64   `json:"price"`
	Availability       bool      `json:"availability"`
}

// AdminRoom is the flat room record used by the admin rooms grid.
type AdminRoom struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotelId,omitempty"`
	RoomNumber string `json:"roomNumber"`
	Cost       string `json:"cost"`
}

// Amenity describes a hotel or room feature.
type Amenity struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Review is a customer review shown on the hotel page.
type Review struct {
	ReviewID     int64   `json:"reviewId"`
	CustomerName string  `json:"customerName"`
	Rating       float64 `json:"rating"`
	Description  string  `json:"description"`
}

// SearchResult is one hotel row returned by the home search.
type SearchResult struct {
	HotelID      int64     `json:"hotelId"`
	HotelName    string    `json:"hotelName"`
	StarRating   int       `json:"starRating"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RoomPrice    float64   `json:"roomPrice"`
	RoomType     string    `json:"roomType"`
	CityName     string    `json:"cityName"`
	RoomPhotoURL string    `json:"roomPhotoUrl"`
	Discount     float64   `json:"discount"`
	Amenities    []Amenity `json:"amenities"`
}

// FeaturedDeal is one discounted hotel highlighted on the home page.
type FeaturedDeal struct {
	HotelID           int64   `json:"hotelId"`
	HotelName         string  `json:"hotelName"`
	CityName          string  `json:"cityName"`
	RoomPhotoURL      string  `json:"roomPhotoUrl"`
	OriginalRoomPrice float64 `json:"originalRoomPrice"`
	FinalPrice        float64 `json:"finalPrice"`
	HotelStarRating   int     `json:"hotelStarRating"`
	Discount          float64 `json:"discount"`
}

// TrendingDestination is one city highlighted on the home page.
type TrendingDestination struct {
	CityID       int64  `json:"cityId"`
	CityName     string `json:"cityName"`
	CountryName  string `json:"countryName"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// RecentHotel is one recently-visited hotel shown on the home page.
type RecentHotel struct {
	HotelID         int64   `json:"hotelId"`
	HotelName       string  `json:"hotelName"`
	StarRating      int     `json:"starRating"`
	VisitDate       string  `json:"visitDate"`
	CityName        string  `json:"cityName"`
	ThumbnailURL    string  `json:"thumbnailUrl"`
	PriceLowerBound float64 `json:"priceLowerBound"`
	PriceUpperBound float64 `json:"priceUpperBound"`
}

// PageQuery carries page-number/page-size pagination plus the free-text
// filters the admin grids send to the list endpoints.
type PageQuery struct {
	Name        string
	SearchQuery string
	PageNumber  int
	PageSize    int
}

// SearchQuery carries the home search parameters.
type SearchQuery struct {
	City          string
	CheckInDate   string
	CheckOutDate  string
	Adults        int
	Children      int
	NumberOfRooms int
	StarRate      int
	Sort          string
}

package domain

// Store represents a physical retail location
type Store struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Retailer    string      `json:"retailer"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	ZipCode     string      `json:"zipCode"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	Phone       string      `json:"phone,omitempty"`
	Hours       string      `json:"hours,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	Distance    float64     `json:"distance"` // miles, rounded to 1 decimal
	DistanceUnit string     `json:"distanceUnit"`
}

// Coordinates is a geographic point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StoreSearchResponse is the result of a nearby-store query
type StoreSearchResponse struct {
	Stores       []Store `json:"stores"`
	TotalResults int     `json:"totalResults"`
}

// AvailabilityRecord reports stock of one product at one store
type AvailabilityRecord struct {
	StoreID     string `json:"storeId"`
	InStock     bool   `json:"inStock"`
	Quantity    int    `json:"quantity"`
	LastUpdated string `json:"lastUpdated"`
}

// AvailabilityResponse wraps per-store availability records
type AvailabilityResponse struct {
	Availability []AvailabilityRecord `json:"availability"`
}

// PlaceSummary is a vendor nearby-search result
type PlaceSummary struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
}

// PlaceDetails is a vendor place-details result
type PlaceDetails struct {
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Geometry         PlaceGeometry `json:"geometry"`
	PhoneNumber      string        `json:"formatted_phone_number"`
	OpeningHours     *PlaceHours   `json:"opening_hours"`
	Rating           float64       `json:"rating"`
	Website          string        `json:"website"`
}

// PlaceGeometry holds the vendor location of a place
type PlaceGeometry struct {
	Location Coordinates `json:"location"`
}

// PlaceHours carries vendor opening hours text
type PlaceHours struct {
	WeekdayText []string `json:"weekday_text"`
}

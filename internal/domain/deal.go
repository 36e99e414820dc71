package domain

import "time"

// LastMinuteDeal is a deeply discounted near-term departure shown on the
// promotional deals surface. Deals are synthesized or sourced outside the
// search path and are informational until searched for properly.
type LastMinuteDeal struct {
	ID              string    `json:"id"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	DestinationCity string    `json:"destinationCity"`
	Airline         string    `json:"airline"`
	FlightNumber    string    `json:"flightNumber"`
	DepartureTime   time.Time `json:"departureTime"`
	ArrivalTime     time.Time `json:"arrivalTime"`

	// Price is the discounted fare; OriginalPrice the fare it is cut from
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`

	// Discount is the percentage off (e.g. 58 for 58%)
	Discount int `json:"discount"`

	Duration DurationInfo `json:"duration"`
	Stops    int          `json:"stops"`

	// SeatsLeft is the remaining seats at the deal price
	SeatsLeft int `json:"seatsLeft"`
}

// MistakeFare is a suspected airline pricing error on the promotional
// surface. Mistake fares expire quickly and may be withdrawn by the
// carrier at any time.
type MistakeFare struct {
	ID              string `json:"id"`
	Origin          string `json:"origin"`
	OriginCity      string `json:"originCity"`
	Destination     string `json:"destination"`
	DestinationCity string `json:"destinationCity"`

	NormalPrice  float64 `json:"normalPrice"`
	MistakePrice float64 `json:"mistakePrice"`

	// Discount is the percentage off the normal price
	Discount int `json:"discount"`

	Airline       string `json:"airline"`
	DepartureDate string `json:"departureDate"`

	// ExpiresIn is a human-readable validity window (e.g. "2 hours")
	ExpiresIn string `json:"expiresIn"`

	// Verified marks fares confirmed still bookable at publish time
	Verified bool `json:"verified"`

	BookingClass string `json:"bookingClass"`
}

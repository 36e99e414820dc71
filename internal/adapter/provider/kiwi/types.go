package kiwi

import "encoding/json"

// searchResponse is the Tequila /v2/search response envelope.
type searchResponse struct {
	Data     []itinerary `json:"data"`
	Currency string      `json:"currency"`
}

type itinerary struct {
	ID                 string             `json:"id"`
	FlyFrom            string             `json:"flyFrom"`
	FlyTo              string             `json:"flyTo"`
	CityFrom           string             `json:"cityFrom"`
	CityTo             string             `json:"cityTo"`
	Airlines           []string           `json:"airlines"`
	Route              []routeSegment     `json:"route"`
	Duration           durationInfo       `json:"duration"`
	Price              float64            `json:"price"`
	BagsPrice          map[string]float64 `json:"bags_price"`
	Baglimit           json.RawMessage    `json:"baglimit"`
	Availability       availability       `json:"availability"`
	LocalDeparture     string             `json:"local_departure"`
	LocalArrival       string             `json:"local_arrival"`
	VirtualInterlining bool               `json:"virtual_interlining"`
	TechnicalStops     int                `json:"technical_stops"`
	DeepLink           string             `json:"deep_link"`
}

type routeSegment struct {
	Airline        string `json:"airline"`
	FlightNo       int    `json:"flight_no"`
	FlyFrom        string `json:"flyFrom"`
	FlyTo          string `json:"flyTo"`
	LocalDeparture string `json:"local_departure"`
	LocalArrival   string `json:"local_arrival"`
	Return         int    `json:"return"`
}

// durationInfo carries slice durations in seconds.
type durationInfo struct {
	Departure int `json:"departure"`
	Return    int `json:"return"`
	Total     int `json:"total"`
}

type availability struct {
	Seats *int `json:"seats"`
}

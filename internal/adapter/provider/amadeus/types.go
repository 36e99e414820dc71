package amadeus

// tokenResponse is the OAuth2 client-credentials token response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// searchResponse is the flight-offers search response envelope.
type searchResponse struct {
	Data         []flightOffer `json:"data"`
	Dictionaries dictionaries  `json:"dictionaries"`
}

type dictionaries struct {
	Carriers map[string]string `json:"carriers"`
}

type flightOffer struct {
	ID                       string      `json:"id"`
	Itineraries              []itinerary `json:"itineraries"`
	Price                    offerPrice  `json:"price"`
	ValidatingAirlineCodes   []string    `json:"validatingAirlineCodes"`
	NumberOfBookableSeats    int         `json:"numberOfBookableSeats"`
	InstantTicketingRequired bool        `json:"instantTicketingRequired"`
}

type itinerary struct {
	Duration string    `json:"duration"`
	Segments []segment `json:"segments"`
}

type segment struct {
	Departure     segmentPoint `json:"departure"`
	Arrival       segmentPoint `json:"arrival"`
	CarrierCode   string       `json:"carrierCode"`
	Number        string       `json:"number"`
	Duration      string       `json:"duration"`
	NumberOfStops int          `json:"numberOfStops"`
}

type segmentPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

type offerPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

// apiError is the error envelope returned by the Amadeus API.
type apiError struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

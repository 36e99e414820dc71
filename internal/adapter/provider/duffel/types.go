package duffel

// dataEnvelope wraps every Duffel request and response body.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// offerRequestBody is the payload for POST /air/offer_requests.
type offerRequestBody struct {
	Slices     []sliceRequest     `json:"slices"`
	Passengers []passengerRequest `json:"passengers"`
	CabinClass string             `json:"cabin_class,omitempty"`
}

type sliceRequest struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
}

type passengerRequest struct {
	Type string `json:"type"`
}

// offerRequestResponse is the body of a created offer request.
type offerRequestResponse struct {
	ID     string  `json:"id"`
	Offers []offer `json:"offers"`
}

type offer struct {
	ID                string             `json:"id"`
	TotalAmount       string             `json:"total_amount"`
	TotalCurrency     string             `json:"total_currency"`
	Slices            []offerSlice       `json:"slices"`
	AvailableServices []availableService `json:"available_services"`
	Owner             carrier            `json:"owner"`
	ExpiresAt         string             `json:"expires_at"`
	LiveMode          bool               `json:"live_mode"`
}

type offerSlice struct {
	Duration string         `json:"duration"`
	Segments []offerSegment `json:"segments"`
}

type offerSegment struct {
	Origin                       airport `json:"origin"`
	Destination                  airport `json:"destination"`
	DepartingAt                  string  `json:"departing_at"`
	ArrivingAt                   string  `json:"arriving_at"`
	MarketingCarrier             carrier `json:"marketing_carrier"`
	MarketingCarrierFlightNumber string  `json:"marketing_carrier_flight_number"`
	Duration                     string  `json:"duration"`
}

type airport struct {
	IataCode string `json:"iata_code"`
}

type carrier struct {
	Name     string `json:"name"`
	IataCode string `json:"iata_code"`
}

type availableService struct {
	Type        string          `json:"type"`
	TotalAmount string          `json:"total_amount"`
	Metadata    serviceMetadata `json:"metadata"`
}

type serviceMetadata struct {
	Type string `json:"type"`
}

// orderBody is the payload for POST /air/orders.
type orderBody struct {
	SelectedOffers []string         `json:"selected_offers"`
	Passengers     []orderPassenger `json:"passengers"`
	Type           string           `json:"type"`
}

type orderPassenger struct {
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	BornOn      string `json:"born_on,omitempty"`
	Type        string `json:"type"`
}

// orderResponse is the body of a created order.
type orderResponse struct {
	ID               string `json:"id"`
	BookingReference string `json:"booking_reference"`
	TotalAmount      string `json:"total_amount"`
	TotalCurrency    string `json:"total_currency"`
	LiveMode         bool   `json:"live_mode"`
}

// apiError is Duffel's error envelope.
type apiError struct {
	Errors []struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"errors"`
}

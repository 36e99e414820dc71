package gemini

// generateRequest is the generateContent request body.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature"`
}

// generateResponse is the generateContent response body.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// aiOffer is the JSON shape the model is instructed to produce for
// flight suggestions.
type aiOffer struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
	DurationMin   int     `json:"durationMinutes"`
	Stops         int     `json:"stops"`
	CarryOnFee    float64 `json:"carryOnFee"`
	CheckedBagFee float64 `json:"checkedBagFee"`
}

// aiEstimate is the JSON shape for per-date price estimates.
type aiEstimate struct {
	Date  string   `json:"date"`
	Price *float64 `json:"price"`
}

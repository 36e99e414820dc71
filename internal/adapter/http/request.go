package http

import (
	"strings"

	"github.com/farebird/farebird-api/internal/domain"
)

// SearchFlightsRequest is the request body for the flight search endpoint.
// It combines the search parameters with the ranking options to apply to
// the merged result set.
type SearchFlightsRequest struct {
	Origin        string `json:"origin" example:"JFK"`
	Destination   string `json:"destination" example:"LHR"`
	DepartureDate string `json:"departureDate" example:"2026-03-15"`
	ReturnDate    string `json:"returnDate,omitempty" example:"2026-03-22"`
	TripType      string `json:"tripType,omitempty" example:"oneWay"`
	Adults        int    `json:"adults,omitempty" example:"1"`
	Children      int    `json:"children,omitempty" example:"0"`
	Infants       int    `json:"infants,omitempty" example:"0"`
	CabinClass    string `json:"cabinClass,omitempty" example:"economy"`

	SortBy            string `json:"sortBy,omitempty" example:"best"`
	MaxStops          *int   `json:"maxStops,omitempty" example:"2"`
	IncludeCarryOn    bool   `json:"includeCarryOn,omitempty"`
	IncludeCheckedBag bool   `json:"includeCheckedBag,omitempty"`
}

// ToSearchRequest converts the DTO to the domain search request. Field
// validation happens in the domain, not here.
func (r *SearchFlightsRequest) ToSearchRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Origin:        strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(r.Destination)),
		DepartureDate: strings.TrimSpace(r.DepartureDate),
		ReturnDate:    strings.TrimSpace(r.ReturnDate),
		TripType:      domain.TripType(r.TripType),
		Adults:        r.Adults,
		Children:      r.Children,
		Infants:       r.Infants,
		CabinClass:    domain.CabinClass(r.CabinClass),
	}
}

// ToRankingOptions converts the ranking fields to domain options. An
// absent maxStops means no stops filter.
func (r *SearchFlightsRequest) ToRankingOptions() domain.RankingOptions {
	opts := domain.DefaultRankingOptions()
	opts.SortBy = domain.ParseSortOption(r.SortBy)
	if r.MaxStops != nil {
		opts.MaxStops = *r.MaxStops
	}
	opts.IncludeCarryOn = r.IncludeCarryOn
	opts.IncludeCheckedBag = r.IncludeCheckedBag
	return opts
}

// PriceMatrixRequest is the request body for the flexible-date price
// matrix endpoint.
type PriceMatrixRequest struct {
	Origin        string `json:"origin" example:"JFK"`
	Destination   string `json:"destination" example:"LHR"`
	DepartureDate string `json:"departureDate" example:"2026-03-15"`
	Adults        int    `json:"adults,omitempty" example:"1"`
	CabinClass    string `json:"cabinClass,omitempty" example:"economy"`
}

// ToSearchRequest converts the DTO to a one-way domain search request;
// matrix probes never carry a return slice.
func (r *PriceMatrixRequest) ToSearchRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Origin:        strings.ToUpper(strings.TrimSpace(r.Origin)),
		Destination:   strings.ToUpper(strings.TrimSpace(r.Destination)),
		DepartureDate: strings.TrimSpace(r.DepartureDate),
		TripType:      domain.TripOneWay,
		Adults:        r.Adults,
		CabinClass:    domain.CabinClass(r.CabinClass),
	}
}

// CreateOrderRequest is the request body for booking an offer.
type CreateOrderRequest struct {
	// Provider names the adapter that issued the offer; defaults to duffel,
	// the only bookable source
	Provider string `json:"provider,omitempty" example:"duffel"`

	// ProviderRef is the opaque offer reference returned by search
	ProviderRef string `json:"providerRef" example:"off_0000AEdGRghtfEHJ1aZbxo"`

	Passengers []OrderPassengerRequest `json:"passengers"`
}

// OrderPassengerRequest is one traveler on an order.
type OrderPassengerRequest struct {
	GivenName  string `json:"givenName" example:"Amelia"`
	FamilyName string `json:"familyName" example:"Earhart"`
	Email      string `json:"email,omitempty" example:"amelia@example.com"`
	Phone      string `json:"phone,omitempty" example:"+14155550100"`
	BornOn     string `json:"bornOn,omitempty" example:"1990-07-24"`
	Type       string `json:"type,omitempty" example:"adult"`
}

// ToPassengers converts the passenger DTOs to their domain form,
// defaulting the traveler type to adult.
func (r *CreateOrderRequest) ToPassengers() []domain.OrderPassenger {
	passengers := make([]domain.OrderPassenger, 0, len(r.Passengers))
	for _, p := range r.Passengers {
		passengerType := p.Type
		if passengerType == "" {
			passengerType = "adult"
		}
		passengers = append(passengers, domain.OrderPassenger{
			GivenName:  strings.TrimSpace(p.GivenName),
			FamilyName: strings.TrimSpace(p.FamilyName),
			Email:      strings.TrimSpace(p.Email),
			Phone:      strings.TrimSpace(p.Phone),
			BornOn:     p.BornOn,
			Type:       passengerType,
		})
	}
	return passengers
}

// ParseQueryRequest is the request body for the natural-language query
// endpoint.
type ParseQueryRequest struct {
	Query string `json:"query" example:"flights from new york to london next week"`
}

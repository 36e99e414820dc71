package domain

import (
	"fmt"
	"regexp"
	"time"
)

// TripType distinguishes one-way from round-trip searches.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "oneWay"
	TripRoundTrip TripType = "roundTrip"
)

// CabinClass is the requested travel class.
type CabinClass string

// Supported cabin classes.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premiumEconomy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// SearchRequest defines the parameters for one logical flight search.
// One request fans out to every enabled provider adapter.
type SearchRequest struct {
	// Origin is the IATA code of the departure airport (e.g. "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g. "LHR")
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the optional return date in YYYY-MM-DD format;
	// required when TripType is roundTrip
	ReturnDate string `json:"returnDate,omitempty"`

	// TripType defaults to oneWay
	TripType TripType `json:"tripType,omitempty"`

	// Passenger counts. Infants must not exceed adults.
	Adults   int `json:"adults"`
	Children int `json:"children,omitempty"`
	Infants  int `json:"infants,omitempty"`

	// CabinClass defaults to economy
	CabinClass CabinClass `json:"cabinClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var validCabinClasses = map[CabinClass]bool{
	CabinEconomy:        true,
	CabinPremiumEconomy: true,
	CabinBusiness:       true,
	CabinFirst:          true,
}

// Validate checks if the search request is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchRequest) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
	}

	switch s.TripType {
	case TripOneWay, TripRoundTrip, "":
	default:
		return fmt.Errorf("%w: tripType must be oneWay or roundTrip, got %q", ErrInvalidRequest, s.TripType)
	}

	if s.TripType == TripRoundTrip {
		if s.ReturnDate == "" {
			return fmt.Errorf("%w: returnDate is required for round trips", ErrInvalidRequest)
		}
	}
	if s.ReturnDate != "" {
		if !dateRegex.MatchString(s.ReturnDate) {
			return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.ReturnDate)
		}
		ret, err := time.Parse("2006-01-02", s.ReturnDate)
		if err != nil {
			return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, s.ReturnDate)
		}
		dep, _ := time.Parse("2006-01-02", s.DepartureDate)
		if ret.Before(dep) {
			return fmt.Errorf("%w: returnDate must not be before departureDate", ErrInvalidRequest)
		}
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Adults+s.Children+s.Infants > 9 {
		return fmt.Errorf("%w: total passengers cannot exceed 9", ErrInvalidRequest)
	}
	if s.Children < 0 || s.Infants < 0 {
		return fmt.Errorf("%w: passenger counts cannot be negative", ErrInvalidRequest)
	}
	if s.Infants > s.Adults {
		return fmt.Errorf("%w: infants cannot exceed adults", ErrInvalidRequest)
	}

	if s.CabinClass != "" && !validCabinClasses[s.CabinClass] {
		return fmt.Errorf("%w: cabinClass must be one of: economy, premiumEconomy, business, first; got %q", ErrInvalidRequest, s.CabinClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchRequest) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.TripType == "" {
		s.TripType = TripOneWay
	}
	if s.TripType == TripOneWay {
		s.ReturnDate = ""
	}
	if s.CabinClass == "" {
		s.CabinClass = CabinEconomy
	}
}

// Passengers returns the total seat-occupying passenger count.
func (s *SearchRequest) Passengers() int {
	return s.Adults + s.Children
}

// RoundTrip reports whether the request asks for a return slice.
func (s *SearchRequest) RoundTrip() bool {
	return s.TripType == TripRoundTrip && s.ReturnDate != ""
}

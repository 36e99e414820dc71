// Package domain contains the core business entities and rules for the
// flight metasearch system. These entities are provider-agnostic and form
// the foundation upon which all other components are built.
package domain

import (
	"fmt"
	"time"
)

// Offer represents a single priced, potentially bookable flight itinerary
// returned by one provider for one search. It is the canonical normalized
// form every provider adapter translates into.
type Offer struct {
	// ID is unique within a single search response only. It is regenerated
	// on every aggregation and must not be treated as stable across searches.
	ID string `json:"id"`

	// Airline is a display identifier: a full carrier name or an IATA code,
	// depending on what the source supplies. It is not normalized further.
	Airline string `json:"airline"`

	// FlightNumber is the marketing flight number (e.g. "BA178")
	FlightNumber string `json:"flightNumber"`

	// Origin and Destination are 3-letter IATA airport codes
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// DepartureTime and ArrivalTime preserve the source's local time
	// representation, including its zone offset. They are never converted
	// to UTC by this layer.
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`

	// Price is the total payable for the whole passenger count at search
	// time, never per passenger. For round trips it already includes the
	// return slice.
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`

	// Duration covers the outbound slice only
	Duration DurationInfo `json:"duration"`

	// Stops is the number of intermediate segments on the outbound slice
	Stops int `json:"stops"`

	// Tags carries provenance and marketing labels ("duffel", "Cheapest",
	// "Virtual Interline"). Informational only.
	Tags []string `json:"tags,omitempty"`

	// BaggageFees is nil when the source gave no baggage pricing; nil means
	// unknown, not free.
	BaggageFees *BaggageFees `json:"baggageFees,omitempty"`

	// ReturnFlight describes the return slice of a round trip. The offer's
	// Price already covers it.
	ReturnFlight *ReturnSlice `json:"returnFlight,omitempty"`

	// ProviderRef is an opaque pointer back into the originating provider's
	// offer-by-ID endpoint. A non-empty value signals the offer supports
	// live repricing and booking; empty means informational only.
	ProviderRef string `json:"providerRef,omitempty"`
}

// Bookable reports whether the offer can be refreshed and purchased at its
// origin provider.
func (o *Offer) Bookable() bool {
	return o.ProviderRef != ""
}

// DedupKey returns the cross-provider identity of the offer: same flight
// number at the same departure instant means the same flight, whichever
// provider reported it.
func (o *Offer) DedupKey() string {
	return o.FlightNumber + "|" + o.DepartureTime.Format(time.RFC3339)
}

// HasTag reports whether the offer carries the given tag.
func (o *Offer) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// BaggageFees holds optional ancillary bag costs in the offer's currency.
type BaggageFees struct {
	// CarryOn is the add-on cost for one cabin bag
	CarryOn float64 `json:"carryOn"`

	// CheckedBag is the add-on cost for one checked bag
	CheckedBag float64 `json:"checkedBag"`

	// Estimated marks fees the adapter could not read from the source and
	// filled in from route-typical values instead. Estimates are never
	// presented as authoritative.
	Estimated bool `json:"estimated,omitempty"`
}

// ReturnSlice is the partial description of a round trip's return leg.
type ReturnSlice struct {
	Airline       string       `json:"airline"`
	FlightNumber  string       `json:"flightNumber"`
	DepartureTime time.Time    `json:"departureTime"`
	ArrivalTime   time.Time    `json:"arrivalTime"`
	Duration      DurationInfo `json:"duration"`
	Stops         int          `json:"stops"`
}

// DurationInfo carries a slice duration both as machine-usable minutes and
// in the "Xh Ym" display form the UI renders.
type DurationInfo struct {
	// TotalMinutes is the total scheduled travel time in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is the human-readable form (e.g. "2h 30m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = fmt.Sprintf("%dh %dm", hours, mins)
	case hours > 0:
		formatted = fmt.Sprintf("%dh", hours)
	default:
		formatted = fmt.Sprintf("%dm", mins)
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}

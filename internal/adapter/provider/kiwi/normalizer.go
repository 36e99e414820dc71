package kiwi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/farebird/farebird-api/internal/domain"
)

// TagVirtualInterline marks itineraries combining carriers without a
// formal interline agreement; missed connections are the passenger's risk.
const TagVirtualInterline = "Virtual Interline"

// normalize converts Tequila itineraries to domain offers.
func normalize(resp *searchResponse) []domain.Offer {
	offers := make([]domain.Offer, 0, len(resp.Data))
	for _, it := range resp.Data {
		offer, err := normalizeItinerary(it, resp.Currency)
		if err != nil {
			continue
		}
		offers = append(offers, offer)
	}
	return offers
}

// normalizeItinerary converts a single Tequila itinerary.
func normalizeItinerary(it itinerary, currency string) (domain.Offer, error) {
	outbound := outboundSegments(it.Route)
	if len(outbound) == 0 {
		return domain.Offer{}, fmt.Errorf("itinerary %s has no outbound route", it.ID)
	}

	departure, err := parseDateTime(it.LocalDeparture)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("parse departure time: %w", err)
	}
	arrival, err := parseDateTime(lastArrival(outbound))
	if err != nil {
		return domain.Offer{}, fmt.Errorf("parse arrival time: %w", err)
	}

	if currency == "" {
		currency = "USD"
	}

	offer := domain.Offer{
		ID:            uuid.New().String(),
		Airline:       airlineName(it),
		FlightNumber:  flightNumber(outbound[0]),
		Origin:        it.FlyFrom,
		Destination:   it.FlyTo,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Price:         it.Price,
		Currency:      currency,
		Duration:      domain.NewDurationInfo(it.Duration.Departure / 60),
		Stops:         len(outbound) - 1,
		BaggageFees:   baggageFees(it.BagsPrice),
	}

	if it.VirtualInterlining {
		offer.Tags = append(offer.Tags, TagVirtualInterline)
	}

	if ret := returnSegments(it.Route); len(ret) > 0 {
		if slice, err := normalizeReturn(it, ret); err == nil {
			offer.ReturnFlight = slice
		}
	}

	return offer, nil
}

func normalizeReturn(it itinerary, segments []routeSegment) (*domain.ReturnSlice, error) {
	departure, err := parseDateTime(segments[0].LocalDeparture)
	if err != nil {
		return nil, err
	}
	arrival, err := parseDateTime(segments[len(segments)-1].LocalArrival)
	if err != nil {
		return nil, err
	}

	return &domain.ReturnSlice{
		Airline:       segments[0].Airline,
		FlightNumber:  flightNumber(segments[0]),
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      domain.NewDurationInfo(it.Duration.Return / 60),
		Stops:         len(segments) - 1,
	}, nil
}

// baggageFees maps Tequila's bags_price table. Key "hand" is the cabin
// bag; key "1" prices the first checked bag.
func baggageFees(bagsPrice map[string]float64) *domain.BaggageFees {
	if len(bagsPrice) == 0 {
		return nil
	}
	fees := &domain.BaggageFees{}
	if hand, ok := bagsPrice["hand"]; ok {
		fees.CarryOn = hand
	}
	if first, ok := bagsPrice["1"]; ok {
		fees.CheckedBag = first
	}
	return fees
}

func outboundSegments(route []routeSegment) []routeSegment {
	var out []routeSegment
	for _, seg := range route {
		if seg.Return == 0 {
			out = append(out, seg)
		}
	}
	return out
}

func returnSegments(route []routeSegment) []routeSegment {
	var out []routeSegment
	for _, seg := range route {
		if seg.Return == 1 {
			out = append(out, seg)
		}
	}
	return out
}

func lastArrival(segments []routeSegment) string {
	return segments[len(segments)-1].LocalArrival
}

func flightNumber(seg routeSegment) string {
	return seg.Airline + strconv.Itoa(seg.FlightNo)
}

func airlineName(it itinerary) string {
	if len(it.Airlines) > 0 {
		return it.Airlines[0]
	}
	if len(it.Route) > 0 {
		return it.Route[0].Airline
	}
	return ""
}

// parseDateTime parses Tequila's local timestamps, which use a trailing
// ".000Z" even for local times.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04:05.000Z", value)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

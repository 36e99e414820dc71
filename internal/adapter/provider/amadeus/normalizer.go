package amadeus

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/farebird/farebird-api/internal/domain"
)

// estimatedCheckedBagFee is a route-typical checked-bag cost used when the
// source fare carries no ancillary pricing.
const estimatedCheckedBagFee = 35

// isoDurationRegex matches ISO 8601 durations like "PT2H30M".
var isoDurationRegex = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// normalize converts a flight-offers response to domain offers. Offers
// that cannot be normalized are skipped.
func normalize(resp *searchResponse) []domain.Offer {
	offers := make([]domain.Offer, 0, len(resp.Data))
	for _, fo := range resp.Data {
		offer, err := normalizeOffer(fo, resp.Dictionaries.Carriers)
		if err != nil {
			continue
		}
		offers = append(offers, offer)
	}
	return offers
}

// normalizeOffer converts a single Amadeus offer to a domain Offer.
func normalizeOffer(fo flightOffer, carriers map[string]string) (domain.Offer, error) {
	if len(fo.Itineraries) == 0 || len(fo.Itineraries[0].Segments) == 0 {
		return domain.Offer{}, fmt.Errorf("offer %s has no segments", fo.ID)
	}

	outbound := fo.Itineraries[0]
	first := outbound.Segments[0]
	last := outbound.Segments[len(outbound.Segments)-1]

	departure, err := parseDateTime(first.Departure.At)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("parse departure time: %w", err)
	}
	arrival, err := parseDateTime(last.Arrival.At)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("parse arrival time: %w", err)
	}

	price, err := parsePrice(fo.Price)
	if err != nil {
		return domain.Offer{}, err
	}

	offer := domain.Offer{
		ID:            uuid.New().String(),
		Airline:       carrierName(first.CarrierCode, carriers),
		FlightNumber:  first.CarrierCode + first.Number,
		Origin:        first.Departure.IataCode,
		Destination:   last.Arrival.IataCode,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Price:         price,
		Currency:      fo.Price.Currency,
		Duration:      domain.NewDurationInfo(parseISODuration(outbound.Duration)),
		Stops:         len(outbound.Segments) - 1,
		// GDS fares rarely expose ancillary bag pricing, so a
		// route-typical estimate is attached instead.
		BaggageFees: &domain.BaggageFees{
			CarryOn:    0,
			CheckedBag: estimatedCheckedBagFee,
			Estimated:  true,
		},
	}

	if len(fo.Itineraries) > 1 && len(fo.Itineraries[1].Segments) > 0 {
		if ret, err := normalizeReturn(fo.Itineraries[1], carriers); err == nil {
			offer.ReturnFlight = ret
		}
	}

	return offer, nil
}

// normalizeReturn converts the second itinerary of a round-trip offer.
func normalizeReturn(it itinerary, carriers map[string]string) (*domain.ReturnSlice, error) {
	first := it.Segments[0]
	last := it.Segments[len(it.Segments)-1]

	departure, err := parseDateTime(first.Departure.At)
	if err != nil {
		return nil, err
	}
	arrival, err := parseDateTime(last.Arrival.At)
	if err != nil {
		return nil, err
	}

	return &domain.ReturnSlice{
		Airline:       carrierName(first.CarrierCode, carriers),
		FlightNumber:  first.CarrierCode + first.Number,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      domain.NewDurationInfo(parseISODuration(it.Duration)),
		Stops:         len(it.Segments) - 1,
	}, nil
}

// parseDateTime parses Amadeus local datetimes, with and without offset.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

// parsePrice prefers grandTotal over total.
func parsePrice(p offerPrice) (float64, error) {
	raw := p.GrandTotal
	if raw == "" {
		raw = p.Total
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse price %q", raw)
	}
	return price, nil
}

// parseISODuration converts an ISO 8601 duration to minutes. Unparsable
// durations yield zero.
func parseISODuration(value string) int {
	matches := isoDurationRegex.FindStringSubmatch(value)
	if matches == nil {
		return 0
	}
	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	return hours*60 + minutes
}

// carrierName resolves a carrier code via the response dictionary,
// falling back to the code itself.
func carrierName(code string, carriers map[string]string) string {
	if name, ok := carriers[code]; ok && name != "" {
		return name
	}
	return code
}

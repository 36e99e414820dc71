package duffel

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/farebird/farebird-api/internal/domain"
)

var isoDurationRegex = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?`)

// normalize converts Duffel offers to domain offers, skipping any that
// cannot be normalized.
func normalize(offers []offer) []domain.Offer {
	result := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		normalized, err := normalizeOffer(o)
		if err != nil {
			continue
		}
		result = append(result, normalized)
	}
	return result
}

// normalizeOffer converts a single Duffel offer. The offer's Duffel ID is
// preserved as the providerRef so it can be refreshed and booked later.
func normalizeOffer(o offer) (domain.Offer, error) {
	if len(o.Slices) == 0 || len(o.Slices[0].Segments) == 0 {
		return domain.Offer{}, fmt.Errorf("offer %s has no segments", o.ID)
	}

	outbound := o.Slices[0]
	first := outbound.Segments[0]
	last := outbound.Segments[len(outbound.Segments)-1]

	departure, err := parseDateTime(first.DepartingAt)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("parse departure time: %w", err)
	}
	arrival, err := parseDateTime(last.ArrivingAt)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("parse arrival time: %w", err)
	}

	result := domain.Offer{
		ID:            uuid.New().String(),
		Airline:       airlineName(first.MarketingCarrier, o.Owner),
		FlightNumber:  first.MarketingCarrier.IataCode + first.MarketingCarrierFlightNumber,
		Origin:        first.Origin.IataCode,
		Destination:   last.Destination.IataCode,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Price:         parseAmount(o.TotalAmount),
		Currency:      o.TotalCurrency,
		Duration:      domain.NewDurationInfo(sliceDuration(outbound)),
		Stops:         len(outbound.Segments) - 1,
		BaggageFees:   baggageFees(o.AvailableServices),
		ProviderRef:   o.ID,
	}

	if len(o.Slices) > 1 && len(o.Slices[1].Segments) > 0 {
		if ret, err := normalizeReturn(o.Slices[1]); err == nil {
			result.ReturnFlight = ret
		}
	}

	return result, nil
}

func normalizeReturn(s offerSlice) (*domain.ReturnSlice, error) {
	first := s.Segments[0]
	last := s.Segments[len(s.Segments)-1]

	departure, err := parseDateTime(first.DepartingAt)
	if err != nil {
		return nil, err
	}
	arrival, err := parseDateTime(last.ArrivingAt)
	if err != nil {
		return nil, err
	}

	return &domain.ReturnSlice{
		Airline:       first.MarketingCarrier.Name,
		FlightNumber:  first.MarketingCarrier.IataCode + first.MarketingCarrierFlightNumber,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      domain.NewDurationInfo(sliceDuration(s)),
		Stops:         len(s.Segments) - 1,
	}, nil
}

// baggageFees extracts bag pricing from the offer's available services.
// Returns nil when no baggage services are present, meaning unknown.
func baggageFees(services []availableService) *domain.BaggageFees {
	var fees *domain.BaggageFees
	for _, svc := range services {
		if svc.Type != "baggage" {
			continue
		}
		if fees == nil {
			fees = &domain.BaggageFees{}
		}
		switch svc.Metadata.Type {
		case "carry_on":
			fees.CarryOn = parseAmount(svc.TotalAmount)
		case "checked":
			fees.CheckedBag = parseAmount(svc.TotalAmount)
		}
	}
	return fees
}

// sliceDuration prefers the slice-level duration, falling back to the sum
// of segment durations.
func sliceDuration(s offerSlice) int {
	if minutes := parseISODuration(s.Duration); minutes > 0 {
		return minutes
	}
	total := 0
	for _, seg := range s.Segments {
		total += parseISODuration(seg.Duration)
	}
	return total
}

// parseDateTime parses Duffel local datetimes, with and without offset.
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

// parseISODuration converts ISO 8601 durations like "P1DT2H30M" to minutes.
func parseISODuration(value string) int {
	matches := isoDurationRegex.FindStringSubmatch(value)
	if matches == nil {
		return 0
	}
	days, _ := strconv.Atoi(matches[1])
	hours, _ := strconv.Atoi(matches[2])
	minutes, _ := strconv.Atoi(matches[3])
	return days*24*60 + hours*60 + minutes
}

// parseAmount converts Duffel's decimal strings to float64.
func parseAmount(value string) float64 {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return amount
}

// airlineName prefers the marketing carrier's name, then the offer owner.
func airlineName(marketing, owner carrier) string {
	if marketing.Name != "" {
		return marketing.Name
	}
	if owner.Name != "" {
		return owner.Name
	}
	return marketing.IataCode
}

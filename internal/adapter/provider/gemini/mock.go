package gemini

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/farebird/farebird-api/internal/domain"
)

// mockAirlines is the carrier pool the synthetic generator draws from.
var mockAirlines = []struct {
	code string
	name string
}{
	{"BA", "British Airways"},
	{"AA", "American Airlines"},
	{"DL", "Delta Air Lines"},
	{"UA", "United Airlines"},
	{"LH", "Lufthansa"},
	{"AF", "Air France"},
	{"KL", "KLM"},
	{"IB", "Iberia"},
}

// routeSeed derives a stable seed so the same route and date always
// produce the same synthetic offers.
func routeSeed(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{'|'})
	}
	return int64(h.Sum64())
}

// mockOffers synthesizes a plausible result set for the route. Output is
// deterministic for a given request.
func mockOffers(req domain.SearchRequest) []domain.Offer {
	rng := rand.New(rand.NewSource(routeSeed(req.Origin, req.Destination, req.DepartureDate)))

	day, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		day = time.Now().AddDate(0, 0, 14)
	}

	count := 4 + rng.Intn(3)
	basePrice := 120 + rng.Float64()*500
	baseDuration := 90 + rng.Intn(540)

	offers := make([]domain.Offer, 0, count)
	for i := 0; i < count; i++ {
		airline := mockAirlines[rng.Intn(len(mockAirlines))]
		stops := rng.Intn(3)
		duration := baseDuration + stops*75 + rng.Intn(60)
		departure := day.Add(time.Duration(6+rng.Intn(14)) * time.Hour).Add(time.Duration(rng.Intn(12)*5) * time.Minute)

		offer := domain.Offer{
			ID:            uuid.New().String(),
			Airline:       airline.name,
			FlightNumber:  fmt.Sprintf("%s%d", airline.code, 100+rng.Intn(900)),
			Origin:        req.Origin,
			Destination:   req.Destination,
			DepartureTime: departure,
			ArrivalTime:   departure.Add(time.Duration(duration) * time.Minute),
			Price:         roundPrice(basePrice * (0.85 + rng.Float64()*0.5)),
			Currency:      "USD",
			Duration:      domain.NewDurationInfo(duration),
			Stops:         stops,
			BaggageFees: &domain.BaggageFees{
				CarryOn:    float64(10 + rng.Intn(25)),
				CheckedBag: float64(25 + rng.Intn(40)),
				Estimated:  true,
			},
		}

		if req.RoundTrip() {
			retDay, err := time.Parse("2006-01-02", req.ReturnDate)
			if err == nil {
				retDep := retDay.Add(time.Duration(7+rng.Intn(12)) * time.Hour)
				offer.ReturnFlight = &domain.ReturnSlice{
					Airline:       airline.name,
					FlightNumber:  fmt.Sprintf("%s%d", airline.code, 100+rng.Intn(900)),
					DepartureTime: retDep,
					ArrivalTime:   retDep.Add(time.Duration(duration) * time.Minute),
					Duration:      domain.NewDurationInfo(duration),
					Stops:         stops,
				}
				offer.Price = roundPrice(offer.Price * 1.8)
			}
		}

		offers = append(offers, offer)
	}

	return offers
}

// mockEstimates synthesizes per-date price points around a stable route
// base price. Roughly one date in seven comes back without an estimate.
func mockEstimates(req domain.SearchRequest, dates []string) []domain.PriceMatrixCell {
	seed := routeSeed(req.Origin, req.Destination)
	base := 150 + float64((seed%400+400)%400)

	cells := make([]domain.PriceMatrixCell, 0, len(dates))
	for _, date := range dates {
		rng := rand.New(rand.NewSource(routeSeed(req.Origin, req.Destination, date)))
		if rng.Intn(7) == 0 {
			cells = append(cells, domain.PriceMatrixCell{Date: date})
			continue
		}
		price := roundPrice(base * (0.8 + rng.Float64()*0.45))
		cells = append(cells, domain.PriceMatrixCell{Date: date, Price: &price})
	}
	return cells
}

// mockDestinations backs the promotional surfaces.
var mockDestinations = []struct {
	code string
	city string
}{
	{"BCN", "Barcelona"},
	{"LIS", "Lisbon"},
	{"FCO", "Rome"},
	{"ATH", "Athens"},
	{"PRG", "Prague"},
	{"DXB", "Dubai"},
	{"CUN", "Cancun"},
	{"BKK", "Bangkok"},
}

// mockLastMinuteDeals synthesizes departures within the next 72 hours at
// heavy discounts. Deterministic per origin and day.
func mockLastMinuteDeals(origin string, now time.Time) []domain.LastMinuteDeal {
	rng := rand.New(rand.NewSource(routeSeed(origin, now.Format("2006-01-02"), "last-minute")))

	count := 4 + rng.Intn(3)
	deals := make([]domain.LastMinuteDeal, 0, count)
	for i := 0; i < count; i++ {
		dest := mockDestinations[rng.Intn(len(mockDestinations))]
		airline := mockAirlines[rng.Intn(len(mockAirlines))]
		discount := 40 + rng.Intn(40)
		original := 180 + rng.Float64()*600
		duration := 90 + rng.Intn(420)
		departure := now.Add(time.Duration(6+rng.Intn(66)) * time.Hour).Truncate(time.Minute)

		deals = append(deals, domain.LastMinuteDeal{
			ID:              uuid.New().String(),
			Origin:          origin,
			Destination:     dest.code,
			DestinationCity: dest.city,
			Airline:         airline.name,
			FlightNumber:    fmt.Sprintf("%s%d", airline.code, 100+rng.Intn(900)),
			DepartureTime:   departure,
			ArrivalTime:     departure.Add(time.Duration(duration) * time.Minute),
			Price:           roundPrice(original * float64(100-discount) / 100),
			OriginalPrice:   roundPrice(original),
			Discount:        discount,
			Duration:        domain.NewDurationInfo(duration),
			Stops:           rng.Intn(2),
			SeatsLeft:       1 + rng.Intn(8),
		})
	}
	return deals
}

// mockMistakeFares synthesizes suspected pricing errors. Deterministic
// per day.
func mockMistakeFares(now time.Time) []domain.MistakeFare {
	rng := rand.New(rand.NewSource(routeSeed(now.Format("2006-01-02"), "mistake-fares")))

	origins := []struct {
		code string
		city string
	}{
		{"JFK", "New York"},
		{"LAX", "Los Angeles"},
		{"LHR", "London"},
		{"CDG", "Paris"},
	}
	classes := []string{"Economy", "Premium Economy", "Business"}
	windows := []string{"2 hours", "6 hours", "12 hours", "1 day"}

	count := 3 + rng.Intn(3)
	fares := make([]domain.MistakeFare, 0, count)
	for i := 0; i < count; i++ {
		origin := origins[rng.Intn(len(origins))]
		dest := mockDestinations[rng.Intn(len(mockDestinations))]
		airline := mockAirlines[rng.Intn(len(mockAirlines))]
		normal := 600 + rng.Float64()*2400
		discount := 70 + rng.Intn(25)

		fares = append(fares, domain.MistakeFare{
			ID:              uuid.New().String(),
			Origin:          origin.code,
			OriginCity:      origin.city,
			Destination:     dest.code,
			DestinationCity: dest.city,
			NormalPrice:     roundPrice(normal),
			MistakePrice:    roundPrice(normal * float64(100-discount) / 100),
			Discount:        discount,
			Airline:         airline.name,
			DepartureDate:   now.AddDate(0, 0, 7+rng.Intn(60)).Format("2006-01-02"),
			ExpiresIn:       windows[rng.Intn(len(windows))],
			Verified:        rng.Intn(3) > 0,
			BookingClass:    classes[rng.Intn(len(classes))],
		})
	}
	return fares
}

// roundPrice truncates to cents.
func roundPrice(p float64) float64 {
	return float64(int(p*100)) / 100
}

package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/timeutil"
)

// cityAirports maps lowercase city names to their primary airport code.
var cityAirports = map[string]string{
	"new york":      "JFK",
	"nyc":           "JFK",
	"los angeles":   "LAX",
	"la":            "LAX",
	"san francisco": "SFO",
	"chicago":       "ORD",
	"miami":         "MIA",
	"boston":        "BOS",
	"seattle":       "SEA",
	"washington":    "IAD",
	"london":        "LHR",
	"paris":         "CDG",
	"amsterdam":     "AMS",
	"frankfurt":     "FRA",
	"madrid":        "MAD",
	"barcelona":     "BCN",
	"rome":          "FCO",
	"milan":         "MXP",
	"lisbon":        "LIS",
	"dublin":        "DUB",
	"athens":        "ATH",
	"prague":        "PRG",
	"vienna":        "VIE",
	"berlin":        "BER",
	"munich":        "MUC",
	"zurich":        "ZRH",
	"istanbul":      "IST",
	"dubai":         "DXB",
	"singapore":     "SIN",
	"tokyo":         "NRT",
	"hong kong":     "HKG",
	"bangkok":       "BKK",
	"sydney":        "SYD",
	"toronto":       "YYZ",
	"mexico city":   "MEX",
	"sao paulo":     "GRU",
}

var (
	routeRegex      = regexp.MustCompile(`(?i)(?:from\s+)?([a-z .]+?|[A-Z]{3})\s+to\s+([a-z .]+?|[A-Z]{3})(?:\s+(?:on|in|next|tomorrow|for|round|return|this)|\s*$|,)`)
	codeRegex       = regexp.MustCompile(`\b([A-Z]{3})\b`)
	dateRegex       = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	monthDayRegex   = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})\b`)
	inDaysRegex     = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+days?\b`)
	passengersRegex = regexp.MustCompile(`(?i)\bfor\s+(\d+)\s+(?:people|persons|passengers|adults|travellers|travelers)\b`)
	roundTripRegex  = regexp.MustCompile(`(?i)\b(round\s*trip|return|and\s+back)\b`)
)

var monthNumbers = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

// QueryParser turns free-text queries like "flights from new york to
// london next week for 2 people" into structured search requests.
type QueryParser struct {
	clock timeutil.Clock
}

// NewQueryParser creates a QueryParser. A nil clock uses the system clock.
func NewQueryParser(clock timeutil.Clock) *QueryParser {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &QueryParser{clock: clock}
}

// Parse extracts a SearchRequest from the query. The route is mandatory;
// all other fields default (date two weeks out, one adult, one way).
func (p *QueryParser) Parse(query string) (domain.SearchRequest, error) {
	req := domain.SearchRequest{Adults: 1, TripType: domain.TripOneWay}

	origin, destination, ok := p.parseRoute(query)
	if !ok {
		return req, fmt.Errorf("%w: could not find an origin and destination in %q", domain.ErrInvalidRequest, query)
	}
	req.Origin = origin
	req.Destination = destination

	req.DepartureDate = p.parseDate(query)

	if m := passengersRegex.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 9 {
			req.Adults = n
		}
	}

	if roundTripRegex.MatchString(query) {
		req.TripType = domain.TripRoundTrip
		dep, _ := time.Parse("2006-01-02", req.DepartureDate)
		req.ReturnDate = dep.AddDate(0, 0, 7).Format("2006-01-02")
	}

	req.SetDefaults()
	return req, nil
}

// parseRoute finds the origin and destination as city names or IATA codes.
func (p *QueryParser) parseRoute(query string) (string, string, bool) {
	if m := routeRegex.FindStringSubmatch(query); m != nil {
		origin, ok1 := resolvePlace(m[1])
		destination, ok2 := resolvePlace(m[2])
		if ok1 && ok2 {
			return origin, destination, true
		}
	}

	// Fall back to the first two bare IATA codes.
	codes := codeRegex.FindAllString(query, 2)
	if len(codes) == 2 {
		return codes[0], codes[1], true
	}
	return "", "", false
}

// parseDate resolves the travel date; without any hint the search goes
// two weeks out.
func (p *QueryParser) parseDate(query string) string {
	now := p.clock.Now()

	if m := dateRegex.FindStringSubmatch(query); m != nil {
		return m[1]
	}
	if m := monthDayRegex.FindStringSubmatch(query); m != nil {
		month := monthNumbers[strings.ToLower(m[1])]
		day, _ := strconv.Atoi(m[2])
		candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
		if candidate.Before(now) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate.Format("2006-01-02")
	}
	if m := inDaysRegex.FindStringSubmatch(query); m != nil {
		days, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, days).Format("2006-01-02")
	}

	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7).Format("2006-01-02")
	case strings.Contains(lower, "next month"):
		return now.AddDate(0, 1, 0).Format("2006-01-02")
	case strings.Contains(lower, "this weekend"):
		daysToSaturday := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
		if daysToSaturday == 0 {
			daysToSaturday = 7
		}
		return now.AddDate(0, 0, daysToSaturday).Format("2006-01-02")
	}

	return now.AddDate(0, 0, 14).Format("2006-01-02")
}

// resolvePlace maps a city name or IATA code to an airport code.
func resolvePlace(place string) (string, bool) {
	place = strings.TrimSpace(place)
	if iataRegex.MatchString(place) {
		return place, true
	}
	if code, ok := cityAirports[strings.ToLower(place)]; ok {
		return code, true
	}
	// Queries like "flights from new york" leave a leading verb attached.
	words := strings.Fields(strings.ToLower(place))
	for i := 1; i < len(words); i++ {
		if code, ok := cityAirports[strings.Join(words[i:], " ")]; ok {
			return code, true
		}
	}
	return "", false
}

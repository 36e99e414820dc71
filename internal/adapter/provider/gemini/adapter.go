// Package gemini implements an AI-backed provider of last resort. When
// every real source comes back empty the aggregator falls through to this
// adapter, which asks a Gemini model for plausible offers. Without an API
// key, or when the model fails, a deterministic synthetic generator takes
// over so the surface never goes blank.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
	"github.com/farebird/farebird-api/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the AI provider.
const ProviderName = "gemini"

// Config holds the Gemini adapter configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Adapter implements domain.OfferProvider and domain.PriceEstimator, plus
// the promotional deal surfaces. Search never returns an error: any model
// failure degrades to the synthetic generator.
type Adapter struct {
	cfg    Config
	client *client
	log    *logger.Logger
	clock  timeutil.Clock
}

// NewAdapter creates a Gemini adapter.
func NewAdapter(cfg Config, httpClient *http.Client, log *logger.Logger, clock timeutil.Clock) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	log = log.WithProvider(ProviderName)
	return &Adapter{
		cfg:    cfg,
		client: newClient(cfg, httpClient, log),
		log:    log,
		clock:  clock,
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Enabled always reports true: the synthetic generator needs no
// credentials, so the fallback of last resort is never unavailable.
func (a *Adapter) Enabled() bool {
	return true
}

// Search produces AI-generated offers for the route. It degrades to the
// synthetic generator instead of failing.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
	if a.cfg.APIKey == "" {
		return mockOffers(req), nil
	}

	var aiOffers []aiOffer
	if err := a.client.generateJSON(ctx, offersPrompt(req), &aiOffers); err != nil {
		a.log.Warn().Err(err).Msg("model call failed, using synthetic offers")
		return mockOffers(req), nil
	}

	offers := make([]domain.Offer, 0, len(aiOffers))
	for _, ao := range aiOffers {
		offer, err := convertAIOffer(ao, req)
		if err != nil {
			continue
		}
		offers = append(offers, offer)
	}
	if len(offers) == 0 {
		return mockOffers(req), nil
	}
	return offers, nil
}

// EstimatePrices returns one price point per date for the flexible-date
// matrix, falling back to synthetic estimates.
func (a *Adapter) EstimatePrices(ctx context.Context, req domain.SearchRequest, dates []string) ([]domain.PriceMatrixCell, error) {
	if a.cfg.APIKey == "" {
		return mockEstimates(req, dates), nil
	}

	var estimates []aiEstimate
	if err := a.client.generateJSON(ctx, estimatesPrompt(req, dates), &estimates); err != nil {
		a.log.Warn().Err(err).Msg("model call failed, using synthetic estimates")
		return mockEstimates(req, dates), nil
	}

	byDate := make(map[string]*float64, len(estimates))
	for _, e := range estimates {
		byDate[e.Date] = e.Price
	}

	cells := make([]domain.PriceMatrixCell, 0, len(dates))
	for _, date := range dates {
		cells = append(cells, domain.PriceMatrixCell{Date: date, Price: byDate[date]})
	}
	return cells, nil
}

// LastMinuteDeals returns discounted near-term departures from the origin.
func (a *Adapter) LastMinuteDeals(ctx context.Context, origin string) ([]domain.LastMinuteDeal, error) {
	now := a.clock.Now()
	if a.cfg.APIKey == "" {
		return mockLastMinuteDeals(origin, now), nil
	}

	var deals []domain.LastMinuteDeal
	if err := a.client.generateJSON(ctx, lastMinutePrompt(origin, now), &deals); err != nil {
		a.log.Warn().Err(err).Msg("model call failed, using synthetic deals")
		return mockLastMinuteDeals(origin, now), nil
	}
	for i := range deals {
		if deals[i].ID == "" {
			deals[i].ID = uuid.New().String()
		}
	}
	return deals, nil
}

// MistakeFares returns suspected airline pricing errors.
func (a *Adapter) MistakeFares(ctx context.Context) ([]domain.MistakeFare, error) {
	now := a.clock.Now()
	if a.cfg.APIKey == "" {
		return mockMistakeFares(now), nil
	}

	var fares []domain.MistakeFare
	if err := a.client.generateJSON(ctx, mistakeFaresPrompt(now), &fares); err != nil {
		a.log.Warn().Err(err).Msg("model call failed, using synthetic fares")
		return mockMistakeFares(now), nil
	}
	for i := range fares {
		if fares[i].ID == "" {
			fares[i].ID = uuid.New().String()
		}
	}
	return fares, nil
}

// convertAIOffer validates and converts a model-produced offer.
func convertAIOffer(ao aiOffer, req domain.SearchRequest) (domain.Offer, error) {
	departure, err := parseDateTime(ao.DepartureTime)
	if err != nil {
		return domain.Offer{}, err
	}
	arrival, err := parseDateTime(ao.ArrivalTime)
	if err != nil {
		return domain.Offer{}, err
	}
	if ao.Price <= 0 || ao.Airline == "" || ao.FlightNumber == "" {
		return domain.Offer{}, fmt.Errorf("incomplete offer from model")
	}

	return domain.Offer{
		ID:            uuid.New().String(),
		Airline:       ao.Airline,
		FlightNumber:  ao.FlightNumber,
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Price:         ao.Price,
		Currency:      "USD",
		Duration:      domain.NewDurationInfo(ao.DurationMin),
		Stops:         ao.Stops,
		BaggageFees: &domain.BaggageFees{
			CarryOn:    ao.CarryOnFee,
			CheckedBag: ao.CheckedBagFee,
			Estimated:  true,
		},
	}, nil
}

func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

func offersPrompt(req domain.SearchRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate realistic flight offers from %s to %s departing %s", req.Origin, req.Destination, req.DepartureDate)
	if req.RoundTrip() {
		fmt.Fprintf(&b, " returning %s", req.ReturnDate)
	}
	fmt.Fprintf(&b, " for %d passenger(s), %s class. ", req.Passengers(), req.CabinClass)
	b.WriteString("Respond with a JSON array of 4-6 objects with fields: airline, flightNumber, departureTime (ISO 8601), arrivalTime (ISO 8601), price (number, USD, total for all passengers), durationMinutes (integer), stops (integer), carryOnFee (number), checkedBagFee (number). Use real airlines that fly this route and plausible market prices.")
	return b.String()
}

func estimatesPrompt(req domain.SearchRequest, dates []string) string {
	return fmt.Sprintf(
		"Estimate the cheapest one-way economy fare in USD from %s to %s for each of these dates: %s. Respond with a JSON array of objects with fields: date (YYYY-MM-DD), price (number or null when you cannot estimate). Include every listed date exactly once.",
		req.Origin, req.Destination, strings.Join(dates, ", "))
}

func lastMinutePrompt(origin string, now time.Time) string {
	return fmt.Sprintf(
		"Today is %s. Generate 4-6 realistic last-minute flight deals departing %s within the next 72 hours. Respond with a JSON array of objects with fields: origin, destination, destinationCity, airline, flightNumber, departureTime (ISO 8601), arrivalTime (ISO 8601), price (number, USD), originalPrice (number), discount (integer percent), duration {totalMinutes, formatted}, stops, seatsLeft.",
		now.Format("2006-01-02"), origin)
}

func mistakeFaresPrompt(now time.Time) string {
	return fmt.Sprintf(
		"Today is %s. Generate 3-5 plausible airline mistake fares. Respond with a JSON array of objects with fields: origin, originCity, destination, destinationCity, normalPrice (number, USD), mistakePrice (number), discount (integer percent), airline, departureDate (YYYY-MM-DD), expiresIn (human readable), verified (boolean), bookingClass.",
		now.Format("2006-01-02"))
}

var (
	_ domain.OfferProvider  = (*Adapter)(nil)
	_ domain.PriceEstimator = (*Adapter)(nil)
)

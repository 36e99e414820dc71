// Package mock provides test doubles for the flight aggregation system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/farebird/farebird-api/internal/domain"
)

// Provider is a configurable mock implementation of domain.OfferProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type Provider struct {
	name      string
	enabled   bool
	offers    []domain.Offer
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is enabled and configured using the builder methods.
func NewProvider(name string) *Provider {
	return &Provider{
		name:    name,
		enabled: true,
	}
}

// WithOffers configures the provider to return the given offers.
func (p *Provider) WithOffers(offers []domain.Offer) *Provider {
	p.offers = offers
	return p
}

// WithError configures the provider to return the given error.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// Disabled configures the provider to report itself as not configured.
func (p *Provider) Disabled() *Provider {
	p.enabled = false
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Enabled implements domain.OfferProvider.Enabled.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// Search implements domain.OfferProvider.Search. It respects context
// cancellation, applies the configured delay, and returns the configured
// offers or error.
func (p *Provider) Search(ctx context.Context, _ domain.SearchRequest) ([]domain.Offer, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.offers, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

var _ domain.OfferProvider = (*Provider)(nil)

// SampleOffers returns a slice of sample offers for testing. Each offer
// has all required fields populated with realistic values; flight numbers
// are unique per provider and index so offers never collide on dedup.
func SampleOffers(provider string, count int) []domain.Offer {
	offers := make([]domain.Offer, count)

	baseTime := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departure := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(7*time.Hour + 30*time.Minute)

		offers[i] = domain.Offer{
			ID:            fmt.Sprintf("%s-offer-%d", provider, i),
			Airline:       providerAirline(provider),
			FlightNumber:  fmt.Sprintf("%s%d", providerAirlineCode(provider), 100+i),
			Origin:        "JFK",
			Destination:   "LHR",
			DepartureTime: departure,
			ArrivalTime:   arrival,
			Price:         420 + float64(i*35),
			Currency:      "USD",
			Duration:      domain.NewDurationInfo(450),
			Stops:         i % 2,
		}
	}

	return offers
}

func providerAirline(provider string) string {
	switch provider {
	case "amadeus":
		return "British Airways"
	case "duffel":
		return "American Airlines"
	case "kiwi":
		return "Norse Atlantic"
	default:
		return "Test Airways"
	}
}

func providerAirlineCode(provider string) string {
	switch provider {
	case "amadeus":
		return "BA"
	case "duffel":
		return "AA"
	case "kiwi":
		return "N0"
	default:
		return "TA"
	}
}

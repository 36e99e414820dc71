package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// OfferProvider is the contract every upstream flight source implements.
// Adapters translate their provider's wire format into Offers and surface
// failures as ProviderError values; they never panic across this boundary.
type OfferProvider interface {
	// Name returns the provider's unique identifier (e.g. "amadeus").
	Name() string

	// Enabled reports whether the provider is configured and worth calling.
	// It is synchronous and side-effect-free, typically a credential check.
	Enabled() bool

	// Search queries the provider for offers matching the request.
	Search(ctx context.Context, req SearchRequest) ([]Offer, error)
}

// OfferRefresher re-fetches a single live offer by its providerRef before
// purchase, reconfirming price and availability.
type OfferRefresher interface {
	// RefreshOffer resolves a providerRef to the current state of that
	// offer. Returns ErrOfferNotFound when the offer has expired.
	RefreshOffer(ctx context.Context, providerRef string) (*Offer, error)
}

// OrderCreator turns a refreshed offer into a booking at its origin
// provider. Order semantics beyond the reference are the provider's concern.
type OrderCreator interface {
	// CreateOrder books the offer identified by providerRef for the given
	// passengers and returns the provider's booking reference.
	CreateOrder(ctx context.Context, providerRef string, passengers []OrderPassenger) (*Order, error)
}

// OrderPassenger carries the traveler details a booking requires.
type OrderPassenger struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	BornOn     string `json:"bornOn,omitempty"`
	Type       string `json:"type"`
}

// Order is the provider's confirmation of a created booking.
type Order struct {
	ID               string  `json:"id"`
	BookingReference string  `json:"bookingReference"`
	TotalAmount      float64 `json:"totalAmount"`
	Currency         string  `json:"currency"`
	LiveMode         bool    `json:"liveMode"`
}

// PriceEstimator supplies one price point per date for the flexible-date
// matrix. A nil price for a date means no estimate is available.
type PriceEstimator interface {
	// EstimatePrices returns one estimate per requested date, in the same
	// order as dates. Individual dates may carry a nil price.
	EstimatePrices(ctx context.Context, req SearchRequest, dates []string) ([]PriceMatrixCell, error)
}

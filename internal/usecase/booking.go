package usecase

import (
	"context"
	"fmt"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
)

// BookingUseCase resolves providerRefs back to their originating provider
// for live repricing and order creation.
type BookingUseCase interface {
	// RefreshOffer re-fetches the current state of a bookable offer.
	RefreshOffer(ctx context.Context, provider, providerRef string) (*domain.Offer, error)

	// CreateOrder books a refreshed offer for the given passengers.
	CreateOrder(ctx context.Context, provider, providerRef string, passengers []domain.OrderPassenger) (*domain.Order, error)
}

// bookingUseCase routes ref operations through per-provider registries.
type bookingUseCase struct {
	refreshers map[string]domain.OfferRefresher
	creators   map[string]domain.OrderCreator
	log        *logger.Logger
}

// NewBookingUseCase creates a BookingUseCase over the given registries.
func NewBookingUseCase(refreshers map[string]domain.OfferRefresher, creators map[string]domain.OrderCreator, log *logger.Logger) BookingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &bookingUseCase{refreshers: refreshers, creators: creators, log: log}
}

// RefreshOffer implements BookingUseCase.
func (uc *bookingUseCase) RefreshOffer(ctx context.Context, provider, providerRef string) (*domain.Offer, error) {
	if providerRef == "" {
		return nil, fmt.Errorf("%w: providerRef is required", domain.ErrInvalidRequest)
	}
	refresher, ok := uc.refreshers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q does not support offer refresh", domain.ErrUnknownProvider, provider)
	}

	offer, err := refresher.RefreshOffer(ctx, providerRef)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("provider", provider).Str("ref", providerRef).
		Float64("price", offer.Price).Msg("offer refreshed")
	return offer, nil
}

// CreateOrder implements BookingUseCase.
func (uc *bookingUseCase) CreateOrder(ctx context.Context, provider, providerRef string, passengers []domain.OrderPassenger) (*domain.Order, error) {
	if providerRef == "" {
		return nil, fmt.Errorf("%w: providerRef is required", domain.ErrInvalidRequest)
	}
	if len(passengers) == 0 {
		return nil, fmt.Errorf("%w: at least one passenger is required", domain.ErrInvalidRequest)
	}
	for _, p := range passengers {
		if p.GivenName == "" || p.FamilyName == "" {
			return nil, fmt.Errorf("%w: passenger names are required", domain.ErrInvalidRequest)
		}
	}

	creator, ok := uc.creators[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q does not support order creation", domain.ErrUnknownProvider, provider)
	}

	order, err := creator.CreateOrder(ctx, providerRef, passengers)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("provider", provider).Str("booking_reference", order.BookingReference).
		Msg("order created")
	return order, nil
}

var _ BookingUseCase = (*bookingUseCase)(nil)

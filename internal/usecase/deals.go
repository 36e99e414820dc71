package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
)

// DealSource supplies the promotional deal surfaces.
type DealSource interface {
	LastMinuteDeals(ctx context.Context, origin string) ([]domain.LastMinuteDeal, error)
	MistakeFares(ctx context.Context) ([]domain.MistakeFare, error)
}

// DealsUseCase exposes the promotional surfaces to the HTTP layer.
type DealsUseCase interface {
	// LastMinute returns discounted near-term departures from origin.
	// A positive maxPrice caps the deal price; zero means no cap.
	LastMinute(ctx context.Context, origin string, maxPrice float64) ([]domain.LastMinuteDeal, error)

	// MistakeFares returns suspected airline pricing errors.
	MistakeFares(ctx context.Context) ([]domain.MistakeFare, error)
}

var iataRegex = regexp.MustCompile(`^[A-Z]{3}$`)

type dealsUseCase struct {
	source DealSource
	log    *logger.Logger
}

// NewDealsUseCase creates a DealsUseCase over the given source.
func NewDealsUseCase(source DealSource, log *logger.Logger) DealsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &dealsUseCase{source: source, log: log}
}

// LastMinute implements DealsUseCase.
func (uc *dealsUseCase) LastMinute(ctx context.Context, origin string, maxPrice float64) ([]domain.LastMinuteDeal, error) {
	if !iataRegex.MatchString(origin) {
		return nil, fmt.Errorf("%w: origin must be a 3-letter IATA code, got %q", domain.ErrInvalidRequest, origin)
	}
	if maxPrice < 0 {
		return nil, fmt.Errorf("%w: maxPrice cannot be negative", domain.ErrInvalidRequest)
	}

	deals, err := uc.source.LastMinuteDeals(ctx, origin)
	if err != nil {
		return nil, err
	}

	if maxPrice > 0 {
		capped := deals[:0]
		for _, deal := range deals {
			if deal.Price <= maxPrice {
				capped = append(capped, deal)
			}
		}
		deals = capped
	}

	uc.log.Debug().Str("origin", origin).Int("deals", len(deals)).Msg("last-minute deals fetched")
	return deals, nil
}

// MistakeFares implements DealsUseCase.
func (uc *dealsUseCase) MistakeFares(ctx context.Context) ([]domain.MistakeFare, error) {
	return uc.source.MistakeFares(ctx)
}

var _ DealsUseCase = (*dealsUseCase)(nil)

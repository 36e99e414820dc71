// Package usecase contains the application services: offer aggregation,
// ranking, the flexible-date price matrix, booking and the promotional
// deal surfaces.
package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
)

// Default timeout values.
const (
	DefaultGlobalTimeout   = 20 * time.Second
	DefaultProviderTimeout = 12 * time.Second
)

// SearchUseCase aggregates offers from every enabled provider, falling
// back to the AI provider when no real source produces anything.
type SearchUseCase interface {
	// Search fans out to all enabled providers, merges and dedups their
	// offers, then ranks them per opts.
	Search(ctx context.Context, req domain.SearchRequest, opts domain.RankingOptions) (*domain.SearchResult, error)
}

// searchUseCase implements SearchUseCase with the scatter-gather pattern.
// The providers slice order is the explicit dedup-precedence order.
type searchUseCase struct {
	providers       []domain.OfferProvider
	fallback        domain.OfferProvider
	globalTimeout   time.Duration
	providerTimeout time.Duration
	log             *logger.Logger
}

// Config contains the timeout configuration for the use case.
type Config struct {
	GlobalTimeout   time.Duration
	ProviderTimeout time.Duration
}

// DefaultConfig returns the default timeout configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout:   DefaultGlobalTimeout,
		ProviderTimeout: DefaultProviderTimeout,
	}
}

// NewSearchUseCase creates a SearchUseCase. The order of providers is the
// priority order used when deduplicating: earlier providers win ties.
// fallback is the AI provider invoked only when every real provider comes
// back empty; it may be nil.
func NewSearchUseCase(providers []domain.OfferProvider, fallback domain.OfferProvider, config *Config, log *logger.Logger) SearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &searchUseCase{
		providers:       providers,
		fallback:        fallback,
		globalTimeout:   cfg.GlobalTimeout,
		providerTimeout: cfg.ProviderTimeout,
		log:             log,
	}
}

// Search implements SearchUseCase.
func (uc *searchUseCase) Search(ctx context.Context, req domain.SearchRequest, opts domain.RankingOptions) (*domain.SearchResult, error) {
	start := time.Now()

	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.globalTimeout)
	defer cancel()

	active := uc.enabledProviders()
	results := uc.scatter(ctx, active, req)

	// Merge in registration order so dedup precedence stays deterministic
	// regardless of which provider finished first.
	seen := make(map[string]bool)
	var merged []domain.Offer
	var queried, failed []string
	contributed := 0

	for i, result := range results {
		provider := active[i].Name()
		queried = append(queried, provider)

		if result.Err != nil {
			failed = append(failed, provider)
			uc.log.Warn().Err(result.Err).Str("provider", provider).
				Int64("duration_ms", result.DurationMs).Msg("provider failed")
			continue
		}
		if len(result.Offers) > 0 {
			contributed++
		}
		for _, offer := range result.Offers {
			offer.Tags = append(offer.Tags, provider)
			key := offer.DedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, offer)
		}
	}

	source := domain.SourceNone
	switch {
	case contributed == 1:
		source = domain.SourceReal
	case contributed > 1:
		source = domain.SourceMixed
	}

	if len(merged) == 0 && uc.fallback != nil {
		merged = uc.fallbackOffers(ctx, req)
		source = domain.SourceAI
		queried = append(queried, uc.fallback.Name())
	}

	ranked := Rank(merged, opts)

	return &domain.SearchResult{
		Source: source,
		Offers: ranked,
		Metadata: domain.SearchMetadata{
			TotalResults:     len(ranked),
			ProvidersQueried: queried,
			ProvidersFailed:  failed,
			SearchTimeMs:     time.Since(start).Milliseconds(),
			SortBy:           domain.ParseSortOption(string(opts.SortBy)),
		},
	}, nil
}

// enabledProviders filters the registered providers by Enabled, keeping
// registration order.
func (uc *searchUseCase) enabledProviders() []domain.OfferProvider {
	active := make([]domain.OfferProvider, 0, len(uc.providers))
	for _, p := range uc.providers {
		if p.Enabled() {
			active = append(active, p)
		}
	}
	return active
}

// scatter queries all providers concurrently. The returned slice is
// indexed by provider position, not completion order.
func (uc *searchUseCase) scatter(ctx context.Context, providers []domain.OfferProvider, req domain.SearchRequest) []domain.ProviderResult {
	results := make([]domain.ProviderResult, len(providers))

	var wg sync.WaitGroup
	for i, provider := range providers {
		wg.Add(1)
		go func(idx int, p domain.OfferProvider) {
			defer wg.Done()
			results[idx] = uc.queryProvider(ctx, p, req)
		}(i, provider)
	}
	wg.Wait()

	return results
}

// queryProvider queries a single provider with its own timeout and panic
// recovery, so one misbehaving adapter cannot take down the search.
func (uc *searchUseCase) queryProvider(ctx context.Context, provider domain.OfferProvider, req domain.SearchRequest) (result domain.ProviderResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.providerTimeout)
	defer cancel()

	start := time.Now()
	result.Provider = provider.Name()

	defer func() {
		result.DurationMs = time.Since(start).Milliseconds()
		if r := recover(); r != nil {
			result.Offers = nil
			result.Err = domain.NewProviderError(result.Provider, fmt.Errorf("provider panic: %v", r))
		}
	}()

	offers, err := provider.Search(ctx, req)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		err = domain.NewProviderTimeoutError(result.Provider)
	}

	result.Offers = offers
	result.Err = err
	return result
}

// fallbackOffers asks the AI provider for offers, tagging each with its
// provenance. The fallback itself failing yields an empty list, never an
// error: "no flights found" is a valid terminal state.
func (uc *searchUseCase) fallbackOffers(ctx context.Context, req domain.SearchRequest) []domain.Offer {
	offers, err := uc.fallback.Search(ctx, req)
	if err != nil {
		uc.log.Warn().Err(err).Str("provider", uc.fallback.Name()).Msg("fallback provider failed")
		return nil
	}
	for i := range offers {
		offers[i].Tags = append(offers[i].Tags, uc.fallback.Name())
	}
	return offers
}

var _ SearchUseCase = (*searchUseCase)(nil)

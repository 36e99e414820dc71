// Package kiwi implements the OfferProvider interface for the Kiwi.com
// Tequila search API, which specializes in budget carriers and virtually
// interlined itineraries.
package kiwi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
	"github.com/farebird/farebird-api/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Kiwi provider.
const ProviderName = "kiwi"

// maxResults caps the number of itineraries requested per search.
const maxResults = 20

// Config holds the Kiwi adapter configuration.
type Config struct {
	APIKey  string
	BaseURL string
}

// Adapter implements the Tequila-backed provider.
type Adapter struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
	retryCfg   retry.Config
}

// NewAdapter creates a Kiwi adapter.
func NewAdapter(cfg Config, httpClient *http.Client, log *logger.Logger) *Adapter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		cfg:        cfg,
		httpClient: httpClient,
		log:        log.WithProvider(ProviderName),
		retryCfg:   retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Enabled reports whether an API key is configured.
func (a *Adapter) Enabled() bool {
	return a.cfg.APIKey != ""
}

// Search queries the Tequila search endpoint. Tequila expects dates in
// DD/MM/YYYY format.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
	departure, err := tequilaDate(req.DepartureDate)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	query := url.Values{}
	query.Set("fly_from", req.Origin)
	query.Set("fly_to", req.Destination)
	query.Set("date_from", departure)
	query.Set("date_to", departure)
	query.Set("adults", strconv.Itoa(req.Adults))
	if req.Children > 0 {
		query.Set("children", strconv.Itoa(req.Children))
	}
	if req.Infants > 0 {
		query.Set("infants", strconv.Itoa(req.Infants))
	}
	if req.RoundTrip() {
		ret, err := tequilaDate(req.ReturnDate)
		if err != nil {
			return nil, domain.NewProviderError(ProviderName, err)
		}
		query.Set("return_from", ret)
		query.Set("return_to", ret)
	}
	if cabin := selectedCabin(req.CabinClass); cabin != "" {
		query.Set("selected_cabins", cabin)
	}
	query.Set("curr", "USD")
	query.Set("limit", strconv.Itoa(maxResults))

	endpoint := a.cfg.BaseURL + "/v2/search?" + query.Encode()

	resp, err := retry.DoWithResult(ctx, func() (*searchResponse, error) {
		return a.doSearch(ctx, endpoint)
	}, a.retryCfg)
	if err != nil {
		return nil, wrapProviderError(err)
	}

	offers := normalize(resp)
	a.log.Debug().Int("offers", len(offers)).Msg("search completed")
	return offers, nil
}

func (a *Adapter) doSearch(ctx context.Context, endpoint string) (*searchResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	httpReq.Header.Set("apikey", a.cfg.APIKey)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("kiwi returned status %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, retry.NewPermanent(err)
		}
		return nil, err
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decode search response: %w", err))
	}
	return &result, nil
}

// wrapProviderError tags errors with the provider name.
func wrapProviderError(err error) error {
	if err == nil {
		return nil
	}
	if err == context.DeadlineExceeded {
		return domain.NewProviderTimeoutError(ProviderName)
	}
	if retry.IsPermanent(err) {
		return domain.NewProviderError(ProviderName, err)
	}
	return domain.NewRetryableProviderError(ProviderName, err)
}

// tequilaDate converts YYYY-MM-DD to the DD/MM/YYYY format Tequila expects.
func tequilaDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.Format("02/01/2006"), nil
}

// selectedCabin maps the domain cabin class to Tequila cabin codes.
func selectedCabin(class domain.CabinClass) string {
	switch class {
	case domain.CabinEconomy:
		return "M"
	case domain.CabinPremiumEconomy:
		return "W"
	case domain.CabinBusiness:
		return "C"
	case domain.CabinFirst:
		return "F"
	default:
		return ""
	}
}

var _ domain.OfferProvider = (*Adapter)(nil)

// Package amadeus implements the OfferProvider interface for the Amadeus
// Self-Service flight-offers API.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
	"github.com/farebird/farebird-api/internal/infrastructure/retry"
	"github.com/farebird/farebird-api/internal/infrastructure/timeutil"
)

// ProviderName is the unique identifier for the Amadeus provider.
const ProviderName = "amadeus"

// tokenSafetyMargin is subtracted from the token lifetime so we never
// send a request with a token that expires mid-flight.
const tokenSafetyMargin = 60 * time.Second

// maxResults caps the number of offers requested per search.
const maxResults = 20

// Config holds the Amadeus adapter configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

// Adapter implements domain.OfferProvider backed by the Amadeus API.
// Access tokens are cached per adapter instance and refreshed lazily.
type Adapter struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
	clock      timeutil.Clock
	retryCfg   retry.Config

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewAdapter creates an Amadeus adapter. A nil httpClient falls back to a
// default client with a sane timeout.
func NewAdapter(cfg Config, httpClient *http.Client, log *logger.Logger, clock timeutil.Clock) *Adapter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logger.Nop()
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Adapter{
		cfg:        cfg,
		httpClient: httpClient,
		log:        log.WithProvider(ProviderName),
		clock:      clock,
		retryCfg:   retry.ProviderConfig.WithRetryIf(retry.SkipPermanent),
	}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Enabled reports whether the adapter has credentials configured.
func (a *Adapter) Enabled() bool {
	return a.cfg.ClientID != "" && a.cfg.ClientSecret != ""
}

// Search queries the Amadeus flight-offers endpoint and returns
// normalized offers.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
	token, err := a.token(ctx)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	query := url.Values{}
	query.Set("originLocationCode", req.Origin)
	query.Set("destinationLocationCode", req.Destination)
	query.Set("departureDate", req.DepartureDate)
	query.Set("adults", strconv.Itoa(req.Adults))
	if req.Children > 0 {
		query.Set("children", strconv.Itoa(req.Children))
	}
	if req.Infants > 0 {
		query.Set("infants", strconv.Itoa(req.Infants))
	}
	if req.RoundTrip() {
		query.Set("returnDate", req.ReturnDate)
	}
	if class := travelClass(req.CabinClass); class != "" {
		query.Set("travelClass", class)
	}
	query.Set("currencyCode", "USD")
	query.Set("max", strconv.Itoa(maxResults))

	endpoint := a.cfg.BaseURL + "/v2/shopping/flight-offers?" + query.Encode()

	resp, err := retry.DoWithResult(ctx, func() (*searchResponse, error) {
		return a.doSearch(ctx, endpoint, token)
	}, a.retryCfg)
	if err != nil {
		return nil, wrapProviderError(err)
	}

	offers := normalize(resp)
	a.log.Debug().Int("offers", len(offers)).Msg("search completed")
	return offers, nil
}

func (a *Adapter) doSearch(ctx context.Context, endpoint, token string) (*searchResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, retry.NewPermanent(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("decode search response: %w", err))
	}
	return &result, nil
}

// token returns a valid access token, requesting a new one when the
// cached token is missing or within the safety margin of expiry.
func (a *Adapter) token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.accessToken != "" && a.clock.Now().Before(a.tokenExpiry) {
		return a.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.cfg.ClientID)
	form.Set("client_secret", a.cfg.ClientSecret)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		a.cfg.BaseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, body)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	a.accessToken = token.AccessToken
	a.tokenExpiry = a.clock.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenSafetyMargin)
	a.log.Debug().Time("expiry", a.tokenExpiry).Msg("access token refreshed")

	return a.accessToken, nil
}

// statusError converts a non-200 response into an error, marking client
// errors as permanent so they are not retried.
func statusError(resp *http.Response) error {
	var apiErr apiError
	detail := ""
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Errors) > 0 {
		detail = ": " + apiErr.Errors[0].Title
	}

	err := fmt.Errorf("amadeus returned status %d%s", resp.StatusCode, detail)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return retry.NewPermanent(err)
	}
	return err
}

// wrapProviderError tags errors with the provider name, classifying
// timeouts and retryable failures.
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

// travelClass maps the domain cabin class to Amadeus travelClass values.
func travelClass(class domain.CabinClass) string {
	switch class {
	case domain.CabinEconomy:
		return "ECONOMY"
	case domain.CabinPremiumEconomy:
		return "PREMIUM_ECONOMY"
	case domain.CabinBusiness:
		return "BUSINESS"
	case domain.CabinFirst:
		return "FIRST"
	default:
		return ""
	}
}

var _ domain.OfferProvider = (*Adapter)(nil)

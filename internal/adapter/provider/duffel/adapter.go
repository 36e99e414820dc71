// Package duffel implements the OfferProvider, OfferRefresher and
// OrderCreator interfaces for the Duffel marketplace API. Duffel is the
// only source whose offers carry a providerRef and can be booked.
package duffel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
	"github.com/farebird/farebird-api/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Duffel provider.
const ProviderName = "duffel"

// apiVersion pins the Duffel-Version header.
const apiVersion = "v2"

// Config holds the Duffel adapter configuration.
type Config struct {
	APIToken string
	BaseURL  string
}

// Adapter implements the Duffel-backed provider.
type Adapter struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
	retryCfg   retry.Config
}

// NewAdapter creates a Duffel adapter.
func NewAdapter(cfg Config, httpClient *http.Client, log *logger.Logger) *Adapter {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
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

// Enabled reports whether an API token is configured.
func (a *Adapter) Enabled() bool {
	return a.cfg.APIToken != ""
}

// Search creates an offer request and returns the offers Duffel produced
// for it.
func (a *Adapter) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
	body := offerRequestBody{
		Slices: []sliceRequest{
			{Origin: req.Origin, Destination: req.Destination, DepartureDate: req.DepartureDate},
		},
		Passengers: buildPassengers(req),
		CabinClass: cabinClass(req.CabinClass),
	}
	if req.RoundTrip() {
		body.Slices = append(body.Slices, sliceRequest{
			Origin:        req.Destination,
			Destination:   req.Origin,
			DepartureDate: req.ReturnDate,
		})
	}

	resp, err := retry.DoWithResult(ctx, func() (*offerRequestResponse, error) {
		var out offerRequestResponse
		err := a.do(ctx, http.MethodPost, "/air/offer_requests?return_offers=true", body, &out)
		return &out, err
	}, a.retryCfg)
	if err != nil {
		return nil, wrapProviderError(err)
	}

	offers := normalize(resp.Offers)
	a.log.Debug().Int("offers", len(offers)).Str("offer_request", resp.ID).Msg("search completed")
	return offers, nil
}

// RefreshOffer re-fetches a single offer by its Duffel ID, reconfirming
// price and availability before booking.
func (a *Adapter) RefreshOffer(ctx context.Context, providerRef string) (*domain.Offer, error) {
	resp, err := retry.DoWithResult(ctx, func() (*offer, error) {
		var out offer
		err := a.do(ctx, http.MethodGet, "/air/offers/"+providerRef+"?return_available_services=true", nil, &out)
		return &out, err
	}, a.retryCfg)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, providerRef)
		}
		return nil, wrapProviderError(err)
	}

	normalized, err := normalizeOffer(*resp)
	if err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}
	return &normalized, nil
}

// CreateOrder books the offer identified by providerRef.
func (a *Adapter) CreateOrder(ctx context.Context, providerRef string, passengers []domain.OrderPassenger) (*domain.Order, error) {
	body := orderBody{
		SelectedOffers: []string{providerRef},
		Passengers:     buildOrderPassengers(passengers),
		Type:           "instant",
	}

	var out orderResponse
	// Order creation is never retried: a timeout may still have created
	// the order upstream.
	if err := a.do(ctx, http.MethodPost, "/air/orders", body, &out); err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, providerRef)
		}
		return nil, wrapProviderError(err)
	}

	return &domain.Order{
		ID:               out.ID,
		BookingReference: out.BookingReference,
		TotalAmount:      parseAmount(out.TotalAmount),
		Currency:         out.TotalCurrency,
		LiveMode:         out.LiveMode,
	}, nil
}

// do issues a Duffel API call, wrapping payloads in the data envelope.
func (a *Adapter) do(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Buffer
	if payload != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(dataEnvelope[any]{Data: payload}); err != nil {
			return retry.NewPermanent(err)
		}
	} else {
		body = bytes.NewBuffer(nil)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, a.cfg.BaseURL+path, body)
	if err != nil {
		return retry.NewPermanent(err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+a.cfg.APIToken)
	httpReq.Header.Set("Duffel-Version", apiVersion)
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp)
	}

	var envelope dataEnvelope[json.RawMessage]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return retry.NewPermanent(fmt.Errorf("decode response: %w", err))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return retry.NewPermanent(fmt.Errorf("decode response data: %w", err))
	}
	return nil
}

// notFoundError marks a 404 from Duffel so callers can map it to
// domain.ErrOfferNotFound.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func isNotFound(err error) bool {
	var nf *notFoundError
	return errors.As(err, &nf)
}

// statusError converts non-2xx responses, marking client errors permanent.
func statusError(resp *http.Response) error {
	var apiErr apiError
	detail := ""
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.Errors) > 0 {
		detail = ": " + apiErr.Errors[0].Title
	}

	msg := fmt.Sprintf("duffel returned status %d%s", resp.StatusCode, detail)
	if resp.StatusCode == http.StatusNotFound {
		return retry.NewPermanent(&notFoundError{msg: msg})
	}
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return retry.NewPermanent(fmt.Errorf("%s", msg))
	}
	return fmt.Errorf("%s", msg)
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

// buildPassengers expands the request counts into Duffel passenger specs.
func buildPassengers(req domain.SearchRequest) []passengerRequest {
	passengers := make([]passengerRequest, 0, req.Adults+req.Children+req.Infants)
	for i := 0; i < req.Adults; i++ {
		passengers = append(passengers, passengerRequest{Type: "adult"})
	}
	for i := 0; i < req.Children; i++ {
		passengers = append(passengers, passengerRequest{Type: "child"})
	}
	for i := 0; i < req.Infants; i++ {
		passengers = append(passengers, passengerRequest{Type: "infant_without_seat"})
	}
	return passengers
}

func buildOrderPassengers(passengers []domain.OrderPassenger) []orderPassenger {
	out := make([]orderPassenger, 0, len(passengers))
	for _, p := range passengers {
		typ := p.Type
		if typ == "" {
			typ = "adult"
		}
		out = append(out, orderPassenger{
			GivenName:   p.GivenName,
			FamilyName:  p.FamilyName,
			Email:       p.Email,
			PhoneNumber: p.Phone,
			BornOn:      p.BornOn,
			Type:        typ,
		})
	}
	return out
}

// cabinClass maps the domain cabin class to Duffel's values.
func cabinClass(class domain.CabinClass) string {
	switch class {
	case domain.CabinEconomy:
		return "economy"
	case domain.CabinPremiumEconomy:
		return "premium_economy"
	case domain.CabinBusiness:
		return "business"
	case domain.CabinFirst:
		return "first"
	default:
		return ""
	}
}

var (
	_ domain.OfferProvider  = (*Adapter)(nil)
	_ domain.OfferRefresher = (*Adapter)(nil)
	_ domain.OrderCreator   = (*Adapter)(nil)
)

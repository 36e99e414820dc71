// Package http exposes the flight search API over HTTP using echo.
package http

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/farebird/farebird-api/internal/adapter/http/middleware"
	"github.com/farebird/farebird-api/internal/adapter/http/response"
	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
	"github.com/farebird/farebird-api/internal/usecase"
)

// defaultBookingProvider is used when a booking request names no provider.
// Offers from other sources are not bookable through the API.
const defaultBookingProvider = "duffel"

// Handler wires the HTTP endpoints to the use cases.
type Handler struct {
	search  usecase.SearchUseCase
	matrix  usecase.MatrixUseCase
	booking usecase.BookingUseCase
	deals   usecase.DealsUseCase
	parser  *usecase.QueryParser
	log     *logger.Logger
}

// NewHandler creates a Handler over the given use cases.
func NewHandler(
	search usecase.SearchUseCase,
	matrix usecase.MatrixUseCase,
	booking usecase.BookingUseCase,
	deals usecase.DealsUseCase,
	parser *usecase.QueryParser,
	log *logger.Logger,
) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		search:  search,
		matrix:  matrix,
		booking: booking,
		deals:   deals,
		parser:  parser,
		log:     log,
	}
}

// SearchFlights handles flight search requests.
//
//	@Summary		Search flights
//	@Description	Searches all enabled providers concurrently, merges and ranks the results
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SearchFlightsRequest	true	"Search parameters"
//	@Success		200		{object}	response.Response{data=domain.SearchResult}
//	@Failure		400		{object}	response.Response
//	@Failure		500		{object}	response.Response
//	@Router			/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.search.Search(c.Request().Context(), req.ToSearchRequest(), req.ToRankingOptions())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// PriceMatrix handles flexible-date price matrix requests.
//
//	@Summary		Flexible-date price matrix
//	@Description	Returns one price cell per date for departure date ± 3 days
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PriceMatrixRequest	true	"Matrix parameters"
//	@Success		200		{object}	response.Response{data=[]domain.PriceMatrixCell}
//	@Failure		400		{object}	response.Response
//	@Failure		500		{object}	response.Response
//	@Router			/flights/matrix [post]
func (h *Handler) PriceMatrix(c echo.Context) error {
	var req PriceMatrixRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	cells, err := h.matrix.BuildMatrix(c.Request().Context(), req.ToSearchRequest())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, cells)
}

// GetOffer refreshes a previously returned offer by its provider reference.
//
//	@Summary		Refresh an offer
//	@Description	Re-fetches the live price and availability of an offer
//	@Tags			offers
//	@Produce		json
//	@Param			id			path		string	true	"Provider offer reference"
//	@Param			provider	query		string	false	"Provider name"	default(duffel)
//	@Success		200			{object}	response.Response{data=domain.Offer}
//	@Failure		404			{object}	response.Response
//	@Router			/offers/{id} [get]
func (h *Handler) GetOffer(c echo.Context) error {
	providerRef := c.Param("id")
	provider := c.QueryParam("provider")
	if provider == "" {
		provider = defaultBookingProvider
	}

	offer, err := h.booking.RefreshOffer(c.Request().Context(), provider, providerRef)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, offer)
}

// CreateOrder books an offer.
//
//	@Summary		Create an order
//	@Description	Books the given offer for the listed passengers
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order parameters"
//	@Success		201		{object}	response.Response{data=domain.Order}
//	@Failure		400		{object}	response.Response
//	@Failure		404		{object}	response.Response
//	@Router			/orders [post]
func (h *Handler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	provider := req.Provider
	if provider == "" {
		provider = defaultBookingProvider
	}

	order, err := h.booking.CreateOrder(c.Request().Context(), provider, req.ProviderRef, req.ToPassengers())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, order)
}

// LastMinuteDeals lists discounted departures within the next three days.
//
//	@Summary		Last-minute deals
//	@Description	Lists heavily discounted flights departing within 72 hours of the given origin
//	@Tags			deals
//	@Produce		json
//	@Param			origin		query		string	true	"Origin IATA code"
//	@Param			maxPrice	query		number	false	"Maximum deal price"
//	@Success		200			{object}	response.Response{data=[]domain.LastMinuteDeal}
//	@Failure		400			{object}	response.Response
//	@Router			/deals/last-minute [get]
func (h *Handler) LastMinuteDeals(c echo.Context) error {
	origin := strings.ToUpper(strings.TrimSpace(c.QueryParam("origin")))

	var maxPrice float64
	if raw := c.QueryParam("maxPrice"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "maxPrice must be a number")
		}
		maxPrice = parsed
	}

	deals, err := h.deals.LastMinute(c.Request().Context(), origin, maxPrice)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, deals)
}

// MistakeFares lists suspected pricing-error fares.
//
//	@Summary		Mistake fares
//	@Description	Lists fares priced far below the usual level for their route
//	@Tags			deals
//	@Produce		json
//	@Success		200	{object}	response.Response{data=[]domain.MistakeFare}
//	@Router			/deals/mistake-fares [get]
func (h *Handler) MistakeFares(c echo.Context) error {
	fares, err := h.deals.MistakeFares(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, fares)
}

// ParseQuery converts a natural-language flight query into structured
// search parameters.
//
//	@Summary		Parse a natural-language query
//	@Description	Extracts origin, destination, date and passengers from free text
//	@Tags			flights
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ParseQueryRequest	true	"Free-text query"
//	@Success		200		{object}	response.Response{data=domain.SearchRequest}
//	@Failure		400		{object}	response.Response
//	@Router			/search/parse [post]
func (h *Handler) ParseQuery(c echo.Context) error {
	var req ParseQueryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	parsed, err := h.parser.Parse(req.Query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, parsed)
}

// Health reports service liveness.
//
//	@Summary		Health check
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	response.HealthStatus
//	@Router			/health [get]
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c, "farebird-api", "1.0.0")
}

// handleError maps domain errors to HTTP responses. Provider failures
// never reach this point for searches; the aggregator absorbs them.
func (h *Handler) handleError(c echo.Context, err error) error {
	requestID := middleware.GetRequestID(c)

	switch {
	case domain.IsInvalidRequest(err):
		h.log.Warn().Str("request_id", requestID).Err(err).Msg("Invalid request")
		return response.BadRequest(c, invalidRequestMessage(err))

	case domain.IsOfferNotFound(err):
		h.log.Warn().Str("request_id", requestID).Err(err).Msg("Offer not found")
		return response.NotFound(c, "The offer no longer exists or has expired")

	case errors.Is(err, domain.ErrUnknownProvider):
		h.log.Warn().Str("request_id", requestID).Err(err).Msg("Unknown provider")
		return response.NotFound(c, "No provider with that name is registered")

	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		h.log.Error().Str("request_id", requestID).Err(err).Msg("Request timed out")
		return response.GatewayTimeout(c)

	default:
		var provErr *domain.ProviderError
		if errors.As(err, &provErr) {
			h.log.Error().Str("request_id", requestID).Str("provider", provErr.Provider).Err(err).Msg("Provider failure")
			return response.ServiceUnavailable(c, "The flight provider is temporarily unavailable")
		}

		h.log.Error().Str("request_id", requestID).Err(err).Msg("Unhandled error")
		return response.InternalServerError(c)
	}
}

// invalidRequestMessage strips the sentinel prefix so the client sees only
// the human-readable part.
func invalidRequestMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return msg[idx+2:]
	}
	return msg
}

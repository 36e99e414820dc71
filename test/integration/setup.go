// Package integration exercises the full stack from HTTP request to
// aggregated response, using configurable mock providers in place of the
// real upstream APIs.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	apihttp "github.com/farebird/farebird-api/internal/adapter/http"
	"github.com/farebird/farebird-api/internal/adapter/http/response"
	"github.com/farebird/farebird-api/internal/adapter/provider/gemini"
	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/timeutil"
	"github.com/farebird/farebird-api/internal/usecase"
)

// TestServer wraps an echo instance wired exactly like the production
// server, minus the listeners.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer builds the full handler stack over the given providers
// and optional AI fallback.
func NewTestServer(providers []domain.OfferProvider, fallback domain.OfferProvider) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	searchUC := CreateSearchUseCase(providers, fallback)

	geminiAdapter := gemini.NewAdapter(gemini.Config{}, nil, nil, timeutil.NewRealClock())
	matrixUC := usecase.NewMatrixUseCase(searchUC, geminiAdapter, nil)
	bookingUC := usecase.NewBookingUseCase(nil, nil, nil)
	dealsUC := usecase.NewDealsUseCase(geminiAdapter, nil)
	parser := usecase.NewQueryParser(timeutil.NewRealClock())

	handler := apihttp.NewHandler(searchUC, matrixUC, bookingUC, dealsUC, parser, nil)
	apihttp.RegisterRoutes(e, handler)

	return &TestServer{Echo: e}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request against the server.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// ParseSearchResult decodes the response envelope into a SearchResult.
func (r *Response) ParseSearchResult() (*domain.SearchResult, error) {
	var envelope struct {
		Success bool                `json:"success"`
		Data    domain.SearchResult `json:"data"`
	}
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// ParseError decodes the response envelope's error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var envelope response.Response
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return nil, err
	}
	return envelope.Error, nil
}

// SearchRequestBody is the JSON body posted to the search endpoint.
type SearchRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	Adults        int    `json:"adults,omitempty"`
	SortBy        string `json:"sortBy,omitempty"`
	MaxStops      *int   `json:"maxStops,omitempty"`
}

// DefaultSearchRequest returns a valid search body for a future date.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: FutureDate(),
		Adults:        1,
	}
}

// CreateSearchUseCase builds a search use case with short test timeouts.
func CreateSearchUseCase(providers []domain.OfferProvider, fallback domain.OfferProvider) usecase.SearchUseCase {
	return CreateSearchUseCaseWithConfig(providers, fallback, &usecase.Config{
		GlobalTimeout:   2 * time.Second,
		ProviderTimeout: 1 * time.Second,
	})
}

// CreateSearchUseCaseWithConfig builds a search use case with the given
// timeout configuration.
func CreateSearchUseCaseWithConfig(providers []domain.OfferProvider, fallback domain.OfferProvider, config *usecase.Config) usecase.SearchUseCase {
	return usecase.NewSearchUseCase(providers, fallback, config, nil)
}

// FutureDate returns a search date three weeks out in YYYY-MM-DD format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 21).Format("2006-01-02")
}

// DefaultDomainRequest returns a valid domain-level search request.
func DefaultDomainRequest() domain.SearchRequest {
	return domain.SearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: FutureDate(),
		Adults:        1,
	}
}

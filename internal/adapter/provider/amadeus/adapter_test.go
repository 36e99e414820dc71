package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/retry"
	"github.com/farebird/farebird-api/internal/infrastructure/timeutil"
)

const searchResponseJSON = `{
	"data": [
		{
			"id": "1",
			"itineraries": [
				{
					"duration": "PT8H15M",
					"segments": [
						{
							"departure": {"iataCode": "JFK", "at": "2025-12-15T18:30:00"},
							"arrival": {"iataCode": "LHR", "at": "2025-12-16T06:45:00"},
							"carrierCode": "BA",
							"number": "178"
						}
					]
				}
			],
			"price": {"currency": "USD", "total": "610.00", "grandTotal": "645.30"}
		},
		{
			"id": "2",
			"itineraries": [
				{
					"duration": "PT11H5M",
					"segments": [
						{
							"departure": {"iataCode": "JFK", "at": "2025-12-15T14:00:00"},
							"arrival": {"iataCode": "KEF", "at": "2025-12-15T23:30:00"},
							"carrierCode": "FI",
							"number": "614"
						},
						{
							"departure": {"iataCode": "KEF", "at": "2025-12-16T00:50:00"},
							"arrival": {"iataCode": "LHR", "at": "2025-12-16T04:05:00"},
							"carrierCode": "FI",
							"number": "450"
						}
					]
				}
			],
			"price": {"currency": "USD", "grandTotal": "489.00"}
		}
	],
	"dictionaries": {"carriers": {"BA": "BRITISH AIRWAYS", "FI": "ICELANDAIR"}}
}`

// newTestServer serves a token endpoint and a canned search response,
// counting the requests to each.
func newTestServer(t *testing.T, searchJSON string, tokenCount, searchCount *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/security/oauth2/token":
			atomic.AddInt32(tokenCount, 1)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token": "tok-abc", "token_type": "Bearer", "expires_in": 1799}`))
		case "/v2/shopping/flight-offers":
			atomic.AddInt32(searchCount, 1)
			assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(searchJSON))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func testConfig(baseURL string) Config {
	return Config{ClientID: "id", ClientSecret: "secret", BaseURL: baseURL}
}

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter(Config{}, nil, nil, nil)
	assert.Equal(t, "amadeus", adapter.Name())
}

func TestAdapter_Enabled(t *testing.T) {
	assert.False(t, NewAdapter(Config{}, nil, nil, nil).Enabled())
	assert.False(t, NewAdapter(Config{ClientID: "id"}, nil, nil, nil).Enabled())
	assert.True(t, NewAdapter(Config{ClientID: "id", ClientSecret: "s"}, nil, nil, nil).Enabled())
}

func TestAdapter_Search(t *testing.T) {
	var tokenCount, searchCount int32
	server := newTestServer(t, searchResponseJSON, &tokenCount, &searchCount)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)

	offers, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-12-15",
		Adults:        1,
	})
	require.NoError(t, err)
	require.Len(t, offers, 2)

	direct := offers[0]
	assert.Equal(t, "BRITISH AIRWAYS", direct.Airline)
	assert.Equal(t, "BA178", direct.FlightNumber)
	assert.Equal(t, "JFK", direct.Origin)
	assert.Equal(t, "LHR", direct.Destination)
	assert.Equal(t, 645.30, direct.Price)
	assert.Equal(t, "USD", direct.Currency)
	assert.Equal(t, 495, direct.Duration.TotalMinutes)
	assert.Equal(t, "8h 15m", direct.Duration.Formatted)
	assert.Equal(t, 0, direct.Stops)
	assert.False(t, direct.Bookable())
	require.NotNil(t, direct.BaggageFees)
	assert.True(t, direct.BaggageFees.Estimated)
	assert.Equal(t, float64(estimatedCheckedBagFee), direct.BaggageFees.CheckedBag)

	connecting := offers[1]
	assert.Equal(t, "ICELANDAIR", connecting.Airline)
	assert.Equal(t, "FI614", connecting.FlightNumber)
	assert.Equal(t, 1, connecting.Stops)
	assert.Equal(t, 489.00, connecting.Price)
}

func TestAdapter_Search_RoundTrip(t *testing.T) {
	const roundTripJSON = `{
		"data": [{
			"id": "1",
			"itineraries": [
				{
					"duration": "PT8H15M",
					"segments": [{
						"departure": {"iataCode": "JFK", "at": "2025-12-15T18:30:00"},
						"arrival": {"iataCode": "LHR", "at": "2025-12-16T06:45:00"},
						"carrierCode": "BA", "number": "178"
					}]
				},
				{
					"duration": "PT8H40M",
					"segments": [{
						"departure": {"iataCode": "LHR", "at": "2025-12-22T11:00:00"},
						"arrival": {"iataCode": "JFK", "at": "2025-12-22T14:40:00"},
						"carrierCode": "BA", "number": "179"
					}]
				}
			],
			"price": {"currency": "USD", "grandTotal": "1024.00"}
		}]
	}`

	var tokenCount, searchCount int32
	server := newTestServer(t, roundTripJSON, &tokenCount, &searchCount)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)

	offers, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureDate: "2025-12-15",
		ReturnDate:    "2025-12-22",
		TripType:      domain.TripRoundTrip,
		Adults:        1,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	ret := offers[0].ReturnFlight
	require.NotNil(t, ret)
	assert.Equal(t, "BA179", ret.FlightNumber)
	assert.Equal(t, 520, ret.Duration.TotalMinutes)
	assert.Equal(t, 0, ret.Stops)
	assert.Equal(t, 1024.00, offers[0].Price)
}

func TestAdapter_Search_SkipsMalformedOffers(t *testing.T) {
	const partiallyBrokenJSON = `{
		"data": [
			{"id": "broken", "itineraries": [], "price": {"currency": "USD", "grandTotal": "100"}},
			{
				"id": "ok",
				"itineraries": [{
					"duration": "PT2H",
					"segments": [{
						"departure": {"iataCode": "AMS", "at": "2025-12-15T08:00:00"},
						"arrival": {"iataCode": "FCO", "at": "2025-12-15T10:00:00"},
						"carrierCode": "KL", "number": "1597"
					}]
				}],
				"price": {"currency": "USD", "grandTotal": "130.00"}
			}
		]
	}`

	var tokenCount, searchCount int32
	server := newTestServer(t, partiallyBrokenJSON, &tokenCount, &searchCount)
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)

	offers, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin: "AMS", Destination: "FCO", DepartureDate: "2025-12-15", Adults: 1,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "KL1597", offers[0].FlightNumber)
}

func TestAdapter_TokenCaching(t *testing.T) {
	var tokenCount, searchCount int32
	server := newTestServer(t, searchResponseJSON, &tokenCount, &searchCount)
	defer server.Close()

	clock := timeutil.NewMockClock(time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC))
	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, clock)

	req := domain.SearchRequest{Origin: "JFK", Destination: "LHR", DepartureDate: "2025-12-15", Adults: 1}

	_, err := adapter.Search(context.Background(), req)
	require.NoError(t, err)
	_, err = adapter.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int32(1), tokenCount, "token should be cached across searches")
	assert.Equal(t, int32(2), searchCount)

	// Still within the token lifetime minus the safety margin.
	clock.Advance(1799*time.Second - tokenSafetyMargin - time.Second)
	_, err = adapter.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCount)

	// Crossing into the safety margin forces a refresh.
	clock.Advance(2 * time.Second)
	_, err = adapter.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int32(2), tokenCount)
}

func TestAdapter_Search_ClientErrorNotRetried(t *testing.T) {
	var searchCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/security/oauth2/token" {
			w.Write([]byte(`{"access_token": "tok-abc", "expires_in": 1799}`))
			return
		}
		atomic.AddInt32(&searchCount, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": [{"status": 400, "title": "INVALID FORMAT"}]}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)

	_, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin: "JFK", Destination: "LHR", DepartureDate: "2025-12-15", Adults: 1,
	})
	require.Error(t, err)
	assert.Equal(t, int32(1), searchCount, "client errors must not be retried")

	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "amadeus", provErr.Provider)
	assert.False(t, provErr.Retryable)
	assert.Contains(t, err.Error(), "INVALID FORMAT")
}

func TestAdapter_Search_ServerErrorRetried(t *testing.T) {
	var searchCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/security/oauth2/token" {
			w.Write([]byte(`{"access_token": "tok-abc", "expires_in": 1799}`))
			return
		}
		atomic.AddInt32(&searchCount, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)
	adapter.retryCfg = retry.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		RetryIf:      retry.SkipPermanent,
	}

	_, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin: "JFK", Destination: "LHR", DepartureDate: "2025-12-15", Adults: 1,
	})
	require.Error(t, err)
	assert.Equal(t, int32(3), searchCount, "server errors should be retried")

	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.True(t, provErr.Retryable)
}

func TestAdapter_Search_TokenFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid_client"}`))
	}))
	defer server.Close()

	adapter := NewAdapter(testConfig(server.URL), server.Client(), nil, nil)

	_, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin: "JFK", Destination: "LHR", DepartureDate: "2025-12-15", Adults: 1,
	})
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "amadeus", provErr.Provider)
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"PT8H15M", 495},
		{"PT2H", 120},
		{"PT45M", 45},
		{"PT0M", 0},
		{"8h 15m", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseISODuration(tt.input), "input %q", tt.input)
	}
}

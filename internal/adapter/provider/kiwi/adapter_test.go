package kiwi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farebird/farebird-api/internal/domain"
)

const searchResponseJSON = `{
	"currency": "USD",
	"data": [
		{
			"id": "0f91a7a84e4d2f82_0",
			"flyFrom": "STN",
			"flyTo": "BGY",
			"cityFrom": "London",
			"cityTo": "Milan",
			"airlines": ["FR"],
			"price": 38,
			"bags_price": {"hand": 12.5, "1": 27.99},
			"duration": {"departure": 7800, "return": 0, "total": 7800},
			"local_departure": "2025-12-15T06:25:00.000Z",
			"local_arrival": "2025-12-15T09:35:00.000Z",
			"virtual_interlining": false,
			"route": [
				{
					"airline": "FR",
					"flight_no": 2153,
					"flyFrom": "STN",
					"flyTo": "BGY",
					"local_departure": "2025-12-15T06:25:00.000Z",
					"local_arrival": "2025-12-15T09:35:00.000Z",
					"return": 0
				}
			]
		},
		{
			"id": "1a2b3c4d5e6f_0",
			"flyFrom": "STN",
			"flyTo": "BGY",
			"airlines": ["W6", "U2"],
			"price": 52,
			"bags_price": {"1": 31.00},
			"duration": {"departure": 21600, "return": 0, "total": 21600},
			"local_departure": "2025-12-15T08:10:00.000Z",
			"local_arrival": "2025-12-15T14:10:00.000Z",
			"virtual_interlining": true,
			"route": [
				{
					"airline": "W6",
					"flight_no": 2202,
					"flyFrom": "STN",
					"flyTo": "BUD",
					"local_departure": "2025-12-15T08:10:00.000Z",
					"local_arrival": "2025-12-15T11:40:00.000Z",
					"return": 0
				},
				{
					"airline": "U2",
					"flight_no": 4477,
					"flyFrom": "BUD",
					"flyTo": "BGY",
					"local_departure": "2025-12-15T12:45:00.000Z",
					"local_arrival": "2025-12-15T14:10:00.000Z",
					"return": 0
				}
			]
		}
	]
}`

func TestAdapter_Name(t *testing.T) {
	adapter := NewAdapter(Config{}, nil, nil)
	assert.Equal(t, "kiwi", adapter.Name())
}

func TestAdapter_Enabled(t *testing.T) {
	assert.False(t, NewAdapter(Config{}, nil, nil).Enabled())
	assert.True(t, NewAdapter(Config{APIKey: "key"}, nil, nil).Enabled())
}

func TestAdapter_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/search", r.URL.Path)
		assert.Equal(t, "tequila-key", r.Header.Get("apikey"))

		query := r.URL.Query()
		assert.Equal(t, "STN", query.Get("fly_from"))
		assert.Equal(t, "BGY", query.Get("fly_to"))
		assert.Equal(t, "15/12/2025", query.Get("date_from"), "dates must be DD/MM/YYYY")
		assert.Equal(t, "15/12/2025", query.Get("date_to"))
		assert.Equal(t, "1", query.Get("adults"))
		assert.Equal(t, "M", query.Get("selected_cabins"))
		assert.Equal(t, "USD", query.Get("curr"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchResponseJSON))
	}))
	defer server.Close()

	adapter := NewAdapter(Config{APIKey: "tequila-key", BaseURL: server.URL}, server.Client(), nil)

	offers, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin:        "STN",
		Destination:   "BGY",
		DepartureDate: "2025-12-15",
		Adults:        1,
		CabinClass:    domain.CabinEconomy,
	})
	require.NoError(t, err)
	require.Len(t, offers, 2)

	ryanair := offers[0]
	assert.Equal(t, "FR", ryanair.Airline)
	assert.Equal(t, "FR2153", ryanair.FlightNumber)
	assert.Equal(t, "STN", ryanair.Origin)
	assert.Equal(t, "BGY", ryanair.Destination)
	assert.Equal(t, 38.0, ryanair.Price)
	assert.Equal(t, "USD", ryanair.Currency)
	assert.Equal(t, 130, ryanair.Duration.TotalMinutes, "seconds must convert to minutes")
	assert.Equal(t, "2h 10m", ryanair.Duration.Formatted)
	assert.Equal(t, 0, ryanair.Stops)
	assert.False(t, ryanair.Bookable())
	require.NotNil(t, ryanair.BaggageFees)
	assert.Equal(t, 12.5, ryanair.BaggageFees.CarryOn)
	assert.Equal(t, 27.99, ryanair.BaggageFees.CheckedBag)
	assert.False(t, ryanair.HasTag(TagVirtualInterline))

	interlined := offers[1]
	assert.Equal(t, "W62202", interlined.FlightNumber)
	assert.Equal(t, 1, interlined.Stops)
	assert.Equal(t, 360, interlined.Duration.TotalMinutes)
	assert.True(t, interlined.HasTag(TagVirtualInterline))
}

func TestAdapter_Search_RoundTrip(t *testing.T) {
	const roundTripJSON = `{
		"currency": "USD",
		"data": [{
			"id": "rt_1",
			"flyFrom": "STN",
			"flyTo": "BGY",
			"airlines": ["FR"],
			"price": 84,
			"duration": {"departure": 7800, "return": 7500, "total": 15300},
			"local_departure": "2025-12-15T06:25:00.000Z",
			"local_arrival": "2025-12-15T09:35:00.000Z",
			"route": [
				{
					"airline": "FR", "flight_no": 2153, "flyFrom": "STN", "flyTo": "BGY",
					"local_departure": "2025-12-15T06:25:00.000Z",
					"local_arrival": "2025-12-15T09:35:00.000Z",
					"return": 0
				},
				{
					"airline": "FR", "flight_no": 2154, "flyFrom": "BGY", "flyTo": "STN",
					"local_departure": "2025-12-22T10:20:00.000Z",
					"local_arrival": "2025-12-22T11:25:00.000Z",
					"return": 1
				}
			]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "22/12/2025", query.Get("return_from"))
		assert.Equal(t, "22/12/2025", query.Get("return_to"))
		w.Write([]byte(roundTripJSON))
	}))
	defer server.Close()

	adapter := NewAdapter(Config{APIKey: "key", BaseURL: server.URL}, server.Client(), nil)

	offers, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin:        "STN",
		Destination:   "BGY",
		DepartureDate: "2025-12-15",
		ReturnDate:    "2025-12-22",
		TripType:      domain.TripRoundTrip,
		Adults:        1,
	})
	require.NoError(t, err)
	require.Len(t, offers, 1)

	ret := offers[0].ReturnFlight
	require.NotNil(t, ret)
	assert.Equal(t, "FR2154", ret.FlightNumber)
	assert.Equal(t, 125, ret.Duration.TotalMinutes)
	assert.Equal(t, 0, ret.Stops)
	assert.Equal(t, 84.0, offers[0].Price)
}

func TestAdapter_Search_InvalidDate(t *testing.T) {
	adapter := NewAdapter(Config{APIKey: "key", BaseURL: "http://unused"}, nil, nil)

	_, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin: "STN", Destination: "BGY", DepartureDate: "15-12-2025", Adults: 1,
	})
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "kiwi", provErr.Provider)
}

func TestAdapter_Search_Unauthorized(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	adapter := NewAdapter(Config{APIKey: "bad", BaseURL: server.URL}, server.Client(), nil)

	_, err := adapter.Search(context.Background(), domain.SearchRequest{
		Origin: "STN", Destination: "BGY", DepartureDate: "2025-12-15", Adults: 1,
	})
	require.Error(t, err)
	assert.Equal(t, 1, requests, "auth errors must not be retried")
}

func TestTequilaDate(t *testing.T) {
	got, err := tequilaDate("2025-01-03")
	require.NoError(t, err)
	assert.Equal(t, "03/01/2025", got)

	_, err = tequilaDate("not-a-date")
	assert.Error(t, err)
}

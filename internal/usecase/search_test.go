package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/farebird/farebird-api/internal/domain"
)

var testReq = domain.SearchRequest{
	Origin:        "JFK",
	Destination:   "LHR",
	DepartureDate: "2025-12-15",
	Adults:        1,
}

func testOffer(flightNumber string, departure time.Time, price float64) domain.Offer {
	return domain.Offer{
		ID:            "id-" + flightNumber,
		Airline:       "Test Air",
		FlightNumber:  flightNumber,
		Origin:        "JFK",
		Destination:   "LHR",
		DepartureTime: departure,
		ArrivalTime:   departure.Add(8 * time.Hour),
		Price:         price,
		Currency:      "USD",
		Duration:      domain.NewDurationInfo(480),
	}
}

func stubProvider(ctrl *gomock.Controller, name string, enabled bool, offers []domain.Offer, err error) *domain.MockOfferProvider {
	p := domain.NewMockOfferProvider(ctrl)
	p.EXPECT().Name().Return(name).AnyTimes()
	p.EXPECT().Enabled().Return(enabled).AnyTimes()
	p.EXPECT().Search(gomock.Any(), gomock.Any()).Return(offers, err).AnyTimes()
	return p
}

func TestSearch_SingleProviderIsReal(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	gds := stubProvider(ctrl, "amadeus", true, []domain.Offer{
		testOffer("UA100", departure, 520),
		testOffer("BA178", departure.Add(2*time.Hour), 610),
	}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{gds}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.SourceReal, result.Source)
	assert.Len(t, result.Offers, 2)
	assert.Equal(t, 2, result.Metadata.TotalResults)
	assert.Equal(t, []string{"amadeus"}, result.Metadata.ProvidersQueried)
	assert.Empty(t, result.Metadata.ProvidersFailed)
	assert.Equal(t, domain.SortBest, result.Metadata.SortBy)
}

func TestSearch_MultipleContributorsAreMixed(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	first := stubProvider(ctrl, "amadeus", true, []domain.Offer{testOffer("UA100", departure, 520)}, nil)
	second := stubProvider(ctrl, "kiwi", true, []domain.Offer{testOffer("FR21", departure.Add(time.Hour), 95)}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{first, second}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMixed, result.Source)
	assert.Len(t, result.Offers, 2)
}

func TestSearch_DedupKeepsHigherPriorityProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	fromFirst := testOffer("BA178", departure, 645)
	fromSecond := testOffer("BA178", departure, 589)
	fromSecond.ProviderRef = "off_duffel_ba178"

	first := stubProvider(ctrl, "amadeus", true, []domain.Offer{fromFirst}, nil)
	second := stubProvider(ctrl, "duffel", true, []domain.Offer{fromSecond}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{first, second}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)

	require.Len(t, result.Offers, 1, "same flight at the same instant must dedup to one offer")
	kept := result.Offers[0]
	assert.Equal(t, 645.0, kept.Price, "the earlier-registered provider wins")
	assert.True(t, kept.HasTag("amadeus"))
	assert.False(t, kept.HasTag("duffel"))
}

func TestSearch_DedupOrderIndependentOfCompletionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	slow := domain.NewMockOfferProvider(ctrl)
	slow.EXPECT().Name().Return("amadeus").AnyTimes()
	slow.EXPECT().Enabled().Return(true).AnyTimes()
	slow.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
			time.Sleep(30 * time.Millisecond)
			return []domain.Offer{testOffer("BA178", departure, 645)}, nil
		}).AnyTimes()

	fast := stubProvider(ctrl, "duffel", true, []domain.Offer{testOffer("BA178", departure, 589)}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{slow, fast}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, 645.0, result.Offers[0].Price,
		"registration order, not completion order, decides dedup precedence")
}

func TestSearch_ProviderFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	failing := stubProvider(ctrl, "amadeus", true, nil,
		domain.NewProviderUnavailableError("amadeus"))
	healthy := stubProvider(ctrl, "duffel", true, []domain.Offer{testOffer("DL44", departure, 530)}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{failing, healthy}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err, "one provider failing must not fail the search")

	assert.Len(t, result.Offers, 1)
	assert.Equal(t, domain.SourceReal, result.Source)
	assert.Equal(t, []string{"amadeus"}, result.Metadata.ProvidersFailed)
	assert.ElementsMatch(t, []string{"amadeus", "duffel"}, result.Metadata.ProvidersQueried)
}

func TestSearch_ProviderPanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	panicking := domain.NewMockOfferProvider(ctrl)
	panicking.EXPECT().Name().Return("amadeus").AnyTimes()
	panicking.EXPECT().Enabled().Return(true).AnyTimes()
	panicking.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
			panic("boom")
		}).AnyTimes()

	healthy := stubProvider(ctrl, "duffel", true, []domain.Offer{testOffer("DL44", departure, 530)}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{panicking, healthy}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)
	assert.Len(t, result.Offers, 1)
	assert.Equal(t, []string{"amadeus"}, result.Metadata.ProvidersFailed)
}

func TestSearch_AllEmptyTriggersAIFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 9, 0, 0, 0, time.UTC)

	empty := stubProvider(ctrl, "amadeus", true, nil, nil)
	failing := stubProvider(ctrl, "kiwi", true, nil, domain.NewProviderTimeoutError("kiwi"))
	fallback := stubProvider(ctrl, "gemini", true, []domain.Offer{
		testOffer("AI101", departure, 410),
		testOffer("AI202", departure.Add(3*time.Hour), 385),
	}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{empty, failing}, fallback, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.SourceAI, result.Source)
	require.NotEmpty(t, result.Offers)
	for _, o := range result.Offers {
		assert.Greater(t, o.Price, 0.0)
		assert.True(t, o.HasTag("gemini"))
	}
	assert.Contains(t, result.Metadata.ProvidersQueried, "gemini")
}

func TestSearch_RealResultsSuppressFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 9, 0, 0, 0, time.UTC)

	real := stubProvider(ctrl, "amadeus", true, []domain.Offer{testOffer("UA100", departure, 520)}, nil)

	fallback := domain.NewMockOfferProvider(ctrl)
	fallback.EXPECT().Name().Return("gemini").AnyTimes()
	// No Search expectation: calling the fallback would fail the test.

	uc := NewSearchUseCase([]domain.OfferProvider{real}, fallback, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceReal, result.Source)
	assert.Len(t, result.Offers, 1)
}

func TestSearch_TotalFailureYieldsEmptyResultNotError(t *testing.T) {
	ctrl := gomock.NewController(t)

	failing := stubProvider(ctrl, "amadeus", true, nil, domain.NewProviderUnavailableError("amadeus"))
	fallback := stubProvider(ctrl, "gemini", true, nil, errors.New("model unavailable"))

	uc := NewSearchUseCase([]domain.OfferProvider{failing}, fallback, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err, "total failure surfaces as an empty result, never an error")
	assert.Empty(t, result.Offers)
}

func TestSearch_TotalFailureWithoutFallbackLabelsSourceNone(t *testing.T) {
	ctrl := gomock.NewController(t)

	failing := stubProvider(ctrl, "amadeus", true, nil, domain.NewProviderUnavailableError("amadeus"))
	empty := stubProvider(ctrl, "kiwi", true, nil, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{failing, empty}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Offers)
	assert.Equal(t, domain.SourceNone, result.Source, "an empty set with no contributors is not real data")
}

func TestSearch_DisabledProvidersAreSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	disabled := domain.NewMockOfferProvider(ctrl)
	disabled.EXPECT().Name().Return("amadeus").AnyTimes()
	disabled.EXPECT().Enabled().Return(false).AnyTimes()
	// No Search expectation: a disabled provider must never be called.

	marketplace := stubProvider(ctrl, "duffel", true, []domain.Offer{
		func() domain.Offer {
			o := testOffer("DL44", departure, 530)
			o.ProviderRef = "off_dl44"
			return o
		}(),
	}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{disabled, marketplace}, nil, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)

	require.Len(t, result.Offers, 1)
	assert.Equal(t, "off_dl44", result.Offers[0].ProviderRef, "providerRef must survive aggregation")
	assert.Equal(t, []string{"duffel"}, result.Metadata.ProvidersQueried)
}

func TestSearch_EveryProviderDisabledFallsBackToAI(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	disabledNames := []string{"amadeus", "duffel", "kiwi"}
	providers := make([]domain.OfferProvider, 0, len(disabledNames))
	for _, name := range disabledNames {
		p := domain.NewMockOfferProvider(ctrl)
		p.EXPECT().Name().Return(name).AnyTimes()
		p.EXPECT().Enabled().Return(false).AnyTimes()
		providers = append(providers, p)
	}

	fallback := stubProvider(ctrl, "gemini", true, []domain.Offer{
		testOffer("AI101", departure, 340),
		testOffer("AI202", departure.Add(3*time.Hour), 410),
	}, nil)

	uc := NewSearchUseCase(providers, fallback, nil, nil)

	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)

	assert.Equal(t, domain.SourceAI, result.Source)
	require.NotEmpty(t, result.Offers)
	for _, o := range result.Offers {
		assert.Greater(t, o.Price, 0.0)
	}
}

func TestSearch_InvalidRequestRejected(t *testing.T) {
	uc := NewSearchUseCase(nil, nil, nil, nil)

	_, err := uc.Search(context.Background(), domain.SearchRequest{
		Origin: "JFK", Destination: "JFK", DepartureDate: "2025-12-15", Adults: 1,
	}, domain.DefaultRankingOptions())

	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestSearch_SlowProviderTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC)

	hanging := domain.NewMockOfferProvider(ctrl)
	hanging.EXPECT().Name().Return("amadeus").AnyTimes()
	hanging.EXPECT().Enabled().Return(true).AnyTimes()
	hanging.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req domain.SearchRequest) ([]domain.Offer, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).AnyTimes()

	healthy := stubProvider(ctrl, "duffel", true, []domain.Offer{testOffer("DL44", departure, 530)}, nil)

	uc := NewSearchUseCase([]domain.OfferProvider{hanging, healthy}, nil, &Config{
		GlobalTimeout:   500 * time.Millisecond,
		ProviderTimeout: 50 * time.Millisecond,
	}, nil)

	start := time.Now()
	result, err := uc.Search(context.Background(), testReq, domain.DefaultRankingOptions())
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 400*time.Millisecond, "search must not wait out the hanging provider")
	assert.Len(t, result.Offers, 1)
	assert.Equal(t, []string{"amadeus"}, result.Metadata.ProvidersFailed)
}

func TestSearch_AppliesRankingOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	departure := time.Date(2025, 12, 15, 9, 0, 0, 0, time.UTC)

	direct := testOffer("AA1", departure, 700)
	direct.Stops = 0
	oneStop := testOffer("AA2", departure, 400)
	oneStop.Stops = 1
	twoStops := testOffer("AA3", departure, 250)
	twoStops.Stops = 2

	provider := stubProvider(ctrl, "amadeus", true, []domain.Offer{direct, oneStop, twoStops}, nil)
	uc := NewSearchUseCase([]domain.OfferProvider{provider}, nil, nil, nil)

	opts := domain.DefaultRankingOptions()
	opts.SortBy = domain.SortCheapest
	opts.MaxStops = 0

	result, err := uc.Search(context.Background(), testReq, opts)
	require.NoError(t, err)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, "AA1", result.Offers[0].FlightNumber)
}

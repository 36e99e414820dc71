package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/farebird/farebird-api/internal/domain"
	"github.com/farebird/farebird-api/internal/infrastructure/logger"
)

// matrixRadius is the number of days shown on each side of the searched
// date. The matrix always has 2*matrixRadius+1 cells.
const matrixRadius = 3

// MatrixUseCase builds the flexible-date price strip around a search.
type MatrixUseCase interface {
	// BuildMatrix returns exactly seven cells covering departure date -3
	// to +3 days. Dates without any price estimate carry a nil price.
	BuildMatrix(ctx context.Context, req domain.SearchRequest) ([]domain.PriceMatrixCell, error)
}

// matrixUseCase resolves each date against the real providers first and
// fills the remaining holes from the AI estimator.
type matrixUseCase struct {
	searcher  SearchUseCase
	estimator domain.PriceEstimator
	log       *logger.Logger
}

// NewMatrixUseCase creates a MatrixUseCase. estimator may be nil, in
// which case dates without real data stay empty.
func NewMatrixUseCase(searcher SearchUseCase, estimator domain.PriceEstimator, log *logger.Logger) MatrixUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &matrixUseCase{searcher: searcher, estimator: estimator, log: log}
}

// BuildMatrix implements MatrixUseCase.
func (uc *matrixUseCase) BuildMatrix(ctx context.Context, req domain.SearchRequest) ([]domain.PriceMatrixCell, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	center, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, domain.WrapInvalidRequest("departureDate is not a valid date: %s", req.DepartureDate)
	}

	dates := make([]string, 0, 2*matrixRadius+1)
	for offset := -matrixRadius; offset <= matrixRadius; offset++ {
		dates = append(dates, center.AddDate(0, 0, offset).Format("2006-01-02"))
	}

	cells := make([]domain.PriceMatrixCell, len(dates))

	// One cheapest-fare probe per date, all in flight together. A date's
	// probe failing only leaves that cell empty.
	var wg sync.WaitGroup
	for i, date := range dates {
		wg.Add(1)
		go func(idx int, date string) {
			defer wg.Done()
			cells[idx] = domain.PriceMatrixCell{Date: date, Price: uc.realPrice(ctx, req, date)}
		}(i, date)
	}
	wg.Wait()

	uc.fillFromEstimator(ctx, req, cells)

	for i := range cells {
		cells[i].Selected = cells[i].Date == req.DepartureDate
	}
	return cells, nil
}

// realPrice returns the cheapest real-data fare for the date, or nil when
// no real provider produced one.
func (uc *matrixUseCase) realPrice(ctx context.Context, req domain.SearchRequest, date string) *float64 {
	probe := req
	probe.DepartureDate = date
	probe.ReturnDate = ""
	probe.TripType = domain.TripOneWay

	opts := domain.DefaultRankingOptions()
	opts.SortBy = domain.SortCheapest

	result, err := uc.searcher.Search(ctx, probe, opts)
	if err != nil {
		uc.log.Debug().Err(err).Str("date", date).Msg("matrix probe failed")
		return nil
	}
	// AI-sourced probes are ignored here so the estimator supplies a
	// consistent fallback for every empty date.
	if result.Source == domain.SourceAI || len(result.Offers) == 0 {
		return nil
	}
	price := result.Offers[0].Price
	return &price
}

// fillFromEstimator resolves still-empty cells through the AI estimator.
// Estimator failure leaves the cells empty rather than failing the matrix.
func (uc *matrixUseCase) fillFromEstimator(ctx context.Context, req domain.SearchRequest, cells []domain.PriceMatrixCell) {
	if uc.estimator == nil {
		return
	}

	var missing []string
	for _, cell := range cells {
		if cell.Price == nil {
			missing = append(missing, cell.Date)
		}
	}
	if len(missing) == 0 {
		return
	}

	estimates, err := uc.estimator.EstimatePrices(ctx, req, missing)
	if err != nil {
		uc.log.Warn().Err(err).Msg("price estimator failed")
		return
	}

	byDate := make(map[string]*float64, len(estimates))
	for _, e := range estimates {
		byDate[e.Date] = e.Price
	}
	for i := range cells {
		if cells[i].Price == nil {
			cells[i].Price = byDate[cells[i].Date]
		}
	}
}

var _ MatrixUseCase = (*matrixUseCase)(nil)

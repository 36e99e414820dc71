package usecase

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/farebird/farebird-api/internal/domain"
)

// formattedDurationRegex matches display durations like "8h 15m", "2h"
// or "45m".
var formattedDurationRegex = regexp.MustCompile(`^(?:(\d+)h)?\s*(?:(\d+)m)?$`)

// Rank filters and sorts offers per the given options. It is pure: the
// input slice is never mutated, so the engine can re-run on every
// UI-driven sort or filter change without re-fetching.
func Rank(offers []domain.Offer, opts domain.RankingOptions) []domain.Offer {
	filtered := filterByStops(offers, opts.MaxStops)

	result := make([]domain.Offer, len(filtered))
	copy(result, filtered)

	switch opts.SortBy {
	case domain.SortCheapest:
		sort.SliceStable(result, func(i, j int) bool {
			return opts.RealCost(&result[i]) < opts.RealCost(&result[j])
		})
	case domain.SortFastest:
		sort.SliceStable(result, func(i, j int) bool {
			return durationMinutes(result[i].Duration) < durationMinutes(result[j].Duration)
		})
	case domain.SortBest:
		fallthrough
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return bestScore(&result[i], opts) < bestScore(&result[j], opts)
		})
	}

	return result
}

// filterByStops drops offers with more stops than allowed. MaxStops at or
// above MaxStopsUnlimited means no filtering.
func filterByStops(offers []domain.Offer, maxStops int) []domain.Offer {
	if maxStops >= domain.MaxStopsUnlimited {
		return offers
	}
	result := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		if o.Stops <= maxStops {
			result = append(result, o)
		}
	}
	return result
}

// bestScore blends price and speed: real cost plus half a currency unit
// per minute of travel. Lower is better.
func bestScore(o *domain.Offer, opts domain.RankingOptions) float64 {
	return opts.RealCost(o) + 0.5*durationMinutes(o.Duration)
}

// durationMinutes resolves an offer's duration to minutes, parsing the
// display form when the minute count is missing. Offers whose duration
// cannot be determined sort last.
func durationMinutes(d domain.DurationInfo) float64 {
	if d.TotalMinutes > 0 {
		return float64(d.TotalMinutes)
	}
	if minutes, ok := parseFormattedDuration(d.Formatted); ok {
		return float64(minutes)
	}
	return math.Inf(1)
}

// parseFormattedDuration parses "Xh Ym" display durations.
func parseFormattedDuration(formatted string) (int, bool) {
	if formatted == "" {
		return 0, false
	}
	matches := formattedDurationRegex.FindStringSubmatch(formatted)
	if matches == nil || (matches[1] == "" && matches[2] == "") {
		return 0, false
	}
	hours, _ := strconv.Atoi(matches[1])
	minutes, _ := strconv.Atoi(matches[2])
	return hours*60 + minutes, true
}

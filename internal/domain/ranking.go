package domain

// SortOption defines the available sort modes for flight results.
type SortOption string

// Available sort options.
const (
	// SortCheapest orders by real cost ascending
	SortCheapest SortOption = "cheapest"

	// SortFastest orders by outbound duration ascending
	SortFastest SortOption = "fastest"

	// SortBest orders by a blend of real cost and duration (default)
	SortBest SortOption = "best"
)

// IsValid checks if the sort option is a valid value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortCheapest, SortFastest, SortBest:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Returns SortBest when the string is empty or unknown.
func ParseSortOption(s string) SortOption {
	option := SortOption(s)
	if option.IsValid() {
		return option
	}
	return SortBest
}

// MaxStopsUnlimited disables the stops filter.
const MaxStopsUnlimited = 2

// RankingOptions selects the sort mode and filters applied to an offer
// set. They affect ranking only; the fetched data never changes, so the
// UI can re-rank without a new fetch.
type RankingOptions struct {
	// SortBy selects the comparator (default: best)
	SortBy SortOption `json:"sortBy,omitempty"`

	// MaxStops filters offers with more outbound stops: 0 keeps direct
	// flights only, 1 keeps at most one stop, 2 disables the filter
	MaxStops int `json:"maxStops"`

	// IncludeCarryOn folds carry-on bag fees into the ranking cost
	IncludeCarryOn bool `json:"includeCarryOn,omitempty"`

	// IncludeCheckedBag folds checked bag fees into the ranking cost
	IncludeCheckedBag bool `json:"includeCheckedBag,omitempty"`
}

// DefaultRankingOptions returns the options the UI starts from: best-value
// sort, no stops filter, bare fares.
func DefaultRankingOptions() RankingOptions {
	return RankingOptions{
		SortBy:   SortBest,
		MaxStops: MaxStopsUnlimited,
	}
}

// RealCost is the price a traveler actually pays once the selected baggage
// toggles are on: the fare plus each included fee. Unknown fees count as
// zero. This is the only cost ranking may compare once a baggage flag is
// set.
func (opts RankingOptions) RealCost(o *Offer) float64 {
	cost := o.Price
	if o.BaggageFees == nil {
		return cost
	}
	if opts.IncludeCarryOn {
		cost += o.BaggageFees.CarryOn
	}
	if opts.IncludeCheckedBag {
		cost += o.BaggageFees.CheckedBag
	}
	return cost
}

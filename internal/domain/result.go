package domain

// ResultSource labels where an aggregated offer set came from.
type ResultSource string

// Possible offer-set provenances.
const (
	// SourceReal means exactly one real-data provider contributed offers.
	SourceReal ResultSource = "real"

	// SourceMixed means two or more real-data providers contributed.
	SourceMixed ResultSource = "mixed"

	// SourceAI means every real provider came up empty and the offers were
	// synthesized by the AI fallback (or its deterministic mock).
	SourceAI ResultSource = "ai"

	// SourceNone means no provider contributed any offers and no fallback
	// ran; the offer set is empty.
	SourceNone ResultSource = "none"
)

// SearchResult is the aggregated, deduplicated outcome of one search.
type SearchResult struct {
	// Source labels the provenance of the offer set
	Source ResultSource `json:"source"`

	// Offers is the merged, deduplicated offer list. Empty means
	// "no flights found", never an error condition.
	Offers []Offer `json:"offers"`

	// Metadata describes how the aggregation went
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata is the observable record of the fan-out: which providers
// were asked, which failed, and how long the whole search took. It is the
// inspectable form of errors the aggregator swallowed.
type SearchMetadata struct {
	// TotalResults is the number of offers after deduplication
	TotalResults int `json:"totalResults"`

	// ProvidersQueried lists the enabled providers that were invoked,
	// in priority order
	ProvidersQueried []string `json:"providersQueried"`

	// ProvidersFailed lists providers whose call errored or timed out
	ProvidersFailed []string `json:"providersFailed,omitempty"`

	// SearchTimeMs is the total aggregation wall time in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`

	// SortBy is the sort mode that produced the offer ordering, so the
	// client can label the top result accordingly
	SortBy SortOption `json:"sortBy"`
}

// ProviderResult is the internal per-provider outcome collected by the
// aggregator before merging.
type ProviderResult struct {
	// Provider is the name of the provider
	Provider string

	// Offers contains the offers returned by this provider
	Offers []Offer

	// Err is set if the provider query failed
	Err error

	// DurationMs is how long the provider query took
	DurationMs int64
}

// Success reports whether the provider query succeeded.
func (pr *ProviderResult) Success() bool {
	return pr.Err == nil
}

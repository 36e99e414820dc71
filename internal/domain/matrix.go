package domain

// PriceMatrixCell is one date column of the flexible-date price strip the
// UI renders around the searched date.
type PriceMatrixCell struct {
	// Date in YYYY-MM-DD format
	Date string `json:"date"`

	// Price is the cheapest estimate for the date; nil means no estimate
	// is available and the cell renders as non-selectable
	Price *float64 `json:"price"`

	// Selected marks the cell matching the active search date. Exactly one
	// cell in a matrix is selected; choosing another cell means issuing a
	// brand-new search for that date, not mutating the matrix.
	Selected bool `json:"selected"`
}

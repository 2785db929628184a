package domain

import "github.com/shopspring/decimal"

// CategorySummaryEntry is one line of the upstream category ranking.
// The order received is the ranking order.
type CategorySummaryEntry struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// CategoryStyle is the presentation token pair for a category
type CategoryStyle struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// DefaultDisplayCategories is how many ranked categories are charted by default
const DefaultDisplayCategories = 5

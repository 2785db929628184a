package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MonthBucket is the (year, month) grouping key shared by the aggregators.
// Month is zero-based (0 = January).
type MonthBucket struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Key returns the sortable "YYYY-MM" form with a one-based month
func (b MonthBucket) Key() string {
	return fmt.Sprintf("%04d-%02d", b.Year, b.Month+1)
}

// Before orders buckets chronologically
func (b MonthBucket) Before(other MonthBucket) bool {
	if b.Year != other.Year {
		return b.Year < other.Year
	}
	return b.Month < other.Month
}

// MonthlyRow holds the totals of one month
type MonthlyRow struct {
	Key       string          `json:"key"`
	Year      int             `json:"year"`
	Month     int             `json:"monthNum"`
	Label     string          `json:"month"`
	LongLabel string          `json:"monthFull"`
	Spent     decimal.Decimal `json:"spent"`
	Received  decimal.Decimal `json:"received"`
	Balance   decimal.Decimal `json:"balance"`
	Count     int             `json:"count"`
}

// Bucket returns the row's grouping key
func (r MonthlyRow) Bucket() MonthBucket {
	return MonthBucket{Year: r.Year, Month: r.Month}
}

// CategoryMonthlyRow holds per-category spending of one month.
// Values is sparse: a missing category means zero.
type CategoryMonthlyRow struct {
	Key    string                     `json:"key"`
	Year   int                        `json:"year"`
	Month  int                        `json:"monthNum"`
	Label  string                     `json:"month"`
	Values map[string]decimal.Decimal `json:"values"`
}

// Bucket returns the row's grouping key
func (r CategoryMonthlyRow) Bucket() MonthBucket {
	return MonthBucket{Year: r.Year, Month: r.Month}
}

// CategoryMonthlyResult is the month×category pivot with its axes
type CategoryMonthlyResult struct {
	Rows       []CategoryMonthlyRow `json:"rows"`
	Categories []string             `json:"categories"`
	Months     []string             `json:"months"`
}

// MonthlyStats contains the averages over monthly rows
type MonthlyStats struct {
	MonthCount  int             `json:"monthCount"`
	AvgSpent    decimal.Decimal `json:"avgSpent"`
	AvgReceived decimal.Decimal `json:"avgReceived"`
}

package domain

import "github.com/shopspring/decimal"

// StatementHeader carries the upstream totals shown in the summary cards
type StatementHeader struct {
	BankDetected      string          `json:"bankDetected"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	TotalReceived     decimal.Decimal `json:"totalReceived"`
}

// DashboardView is everything the presentation layer renders for one
// statement and one filter state
type DashboardView struct {
	Header            StatementHeader        `json:"header"`
	Filters           FilterSummary          `json:"filters"`
	DateRange         DateRange              `json:"dateRange"`
	FilteredCount     int                    `json:"filteredCount"`
	Monthly           []MonthlyRow           `json:"monthly"`
	Stats             MonthlyStats           `json:"stats"`
	CategoryMonthly   CategoryMonthlyResult  `json:"categoryMonthly"`
	CategorySummary   []CategorySummaryEntry `json:"categorySummary"`
	DisplayCategories []string               `json:"displayCategories"`
	Transactions      PaginatedTransactions  `json:"transactions"`
}

package domain

import "github.com/shopspring/decimal"

// Statement is the payload produced by the categorization backend after a
// successful upload. Header totals are passed through as received.
type Statement struct {
	Success           bool                   `json:"success"`
	BankDetected      string                 `json:"bank_detected"`
	TotalTransactions int                    `json:"total_transactions"`
	TotalSpent        decimal.Decimal        `json:"total_spent"`
	TotalReceived     decimal.Decimal        `json:"total_received"`
	Transactions      []Transaction          `json:"transactions"`
	CategorySummary   []CategorySummaryEntry `json:"category_summary"`
}

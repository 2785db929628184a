package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to transactions the categorizer left blank
const DefaultCategory = "Outros"

type TransactionType string

const (
	TransactionTypeAll      TransactionType = "all"
	TransactionTypeExpenses TransactionType = "expenses"
	TransactionTypeIncome   TransactionType = "income"
)

// IsValid reports whether t is one of the known transaction types.
// The empty value is accepted and behaves like TransactionTypeAll.
func (t TransactionType) IsValid() bool {
	switch t {
	case "", TransactionTypeAll, TransactionTypeExpenses, TransactionTypeIncome:
		return true
	}
	return false
}

// Transaction is a single categorized statement line.
// Positive amounts are expenses, negative amounts are income.
type Transaction struct {
	Date       string          `json:"date"`
	Title      string          `json:"title"`
	Category   string          `json:"category,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Confidence string          `json:"confidence,omitempty"`
}

// CategoryOrDefault returns the category, falling back to DefaultCategory
func (t Transaction) CategoryOrDefault() string {
	if t.Category == "" {
		return DefaultCategory
	}
	return t.Category
}

// IsExpense reports whether money was spent (amount > 0)
func (t Transaction) IsExpense() bool {
	return t.Amount.IsPositive()
}

// IsIncome reports whether money was received (amount < 0)
func (t Transaction) IsIncome() bool {
	return t.Amount.IsNegative()
}

// AbsAmount returns the unsigned amount
func (t Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

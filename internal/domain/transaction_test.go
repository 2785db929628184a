package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionTypeConstants(t *testing.T) {
	tests := []struct {
		name     string
		txType   TransactionType
		expected string
	}{
		{"all type", TransactionTypeAll, "all"},
		{"expenses type", TransactionTypeExpenses, "expenses"},
		{"income type", TransactionTypeIncome, "income"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.txType) != tt.expected {
				t.Errorf("TransactionType constant %s = %s, want %s", tt.name, tt.txType, tt.expected)
			}
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		txType TransactionType
		want   bool
	}{
		{"", true},
		{TransactionTypeAll, true},
		{TransactionTypeExpenses, true},
		{TransactionTypeIncome, true},
		{"expense", false},
		{"INCOME", false},
	}

	for _, tt := range tests {
		if got := tt.txType.IsValid(); got != tt.want {
			t.Errorf("TransactionType(%q).IsValid() = %v, want %v", tt.txType, got, tt.want)
		}
	}
}

func TestTransaction_CategoryOrDefault(t *testing.T) {
	tx := Transaction{Category: "Transporte"}
	if got := tx.CategoryOrDefault(); got != "Transporte" {
		t.Errorf("CategoryOrDefault() = %q, want %q", got, "Transporte")
	}

	empty := Transaction{}
	if got := empty.CategoryOrDefault(); got != DefaultCategory {
		t.Errorf("CategoryOrDefault() = %q, want %q", got, DefaultCategory)
	}
}

func TestTransaction_SignConvention(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		wantExpense bool
		wantIncome  bool
	}{
		{"positive is expense", decimal.NewFromInt(100), true, false},
		{"negative is income", decimal.NewFromInt(-50), false, true},
		{"zero is neither", decimal.Zero, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{Amount: tt.amount}
			if tx.IsExpense() != tt.wantExpense {
				t.Errorf("IsExpense() = %v, want %v", tx.IsExpense(), tt.wantExpense)
			}
			if tx.IsIncome() != tt.wantIncome {
				t.Errorf("IsIncome() = %v, want %v", tx.IsIncome(), tt.wantIncome)
			}
		})
	}
}

func TestMonthBucket_KeyAndOrder(t *testing.T) {
	jan := MonthBucket{Year: 2024, Month: 0}
	dec := MonthBucket{Year: 2023, Month: 11}
	feb := MonthBucket{Year: 2024, Month: 1}

	if jan.Key() != "2024-01" {
		t.Errorf("Key() = %q, want %q", jan.Key(), "2024-01")
	}
	if dec.Key() != "2023-12" {
		t.Errorf("Key() = %q, want %q", dec.Key(), "2023-12")
	}
	if !dec.Before(jan) || !jan.Before(feb) {
		t.Error("expected Dec/23 < Jan/24 < Feb/24")
	}
	if jan.Before(jan) {
		t.Error("a bucket must not sort before itself")
	}
}

func TestFilterCriteria_ActiveFilterCount(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		want     int
	}{
		{"default criteria", DefaultFilterCriteria(), 0},
		{"zero value", FilterCriteria{}, 0},
		{"date range counts once", FilterCriteria{StartDate: "2024-01-01", EndDate: "2024-01-31"}, 1},
		{"value range counts once", FilterCriteria{MinValue: "10", MaxValue: "20"}, 1},
		{"blank value bound ignored", FilterCriteria{MinValue: "  "}, 0},
		{"type all is inactive", FilterCriteria{TransactionType: TransactionTypeAll}, 0},
		{
			"everything",
			FilterCriteria{
				StartDate:          "2024-01-01",
				SearchText:         "uber",
				MaxValue:           "100",
				SelectedCategories: []string{"Transporte"},
				TransactionType:    TransactionTypeIncome,
			},
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.ActiveFilterCount(); got != tt.want {
				t.Errorf("ActiveFilterCount() = %d, want %d", got, tt.want)
			}
			if got := tt.criteria.HasActiveFilters(); got != (tt.want > 0) {
				t.Errorf("HasActiveFilters() = %v, want %v", got, tt.want > 0)
			}
		})
	}
}

package domain

import "strings"

// FilterCriteria is the user-driven predicate set applied to a statement.
// Every field left at its zero value disables the matching predicate.
type FilterCriteria struct {
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
	SearchText         string          `json:"searchText"`
	MinValue           string          `json:"minValue"`
	MaxValue           string          `json:"maxValue"`
	SelectedCategories []string        `json:"selectedCategories"`
	TransactionType    TransactionType `json:"transactionType"`
}

// DefaultFilterCriteria returns the cleared criteria
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SelectedCategories: []string{},
		TransactionType:    TransactionTypeAll,
	}
}

// Type returns the transaction type, treating empty as all
func (c FilterCriteria) Type() TransactionType {
	if c.TransactionType == "" {
		return TransactionTypeAll
	}
	return c.TransactionType
}

// ActiveFilterCount counts filter groups in use. The date range and the
// value range each count once.
func (c FilterCriteria) ActiveFilterCount() int {
	count := 0
	if c.StartDate != "" || c.EndDate != "" {
		count++
	}
	if c.SearchText != "" {
		count++
	}
	if strings.TrimSpace(c.MinValue) != "" || strings.TrimSpace(c.MaxValue) != "" {
		count++
	}
	if len(c.SelectedCategories) > 0 {
		count++
	}
	if c.Type() != TransactionTypeAll {
		count++
	}
	return count
}

// HasActiveFilters reports whether any predicate is enabled
func (c FilterCriteria) HasActiveFilters() bool {
	return c.ActiveFilterCount() > 0
}

// FilterSummary is the read-only presentation state derived from criteria
type FilterSummary struct {
	ActiveCount int  `json:"activeFilters"`
	HasActive   bool `json:"hasActiveFilters"`
}

// DateRange is the earliest and latest canonical date of a statement.
// Both are empty when no date could be parsed.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

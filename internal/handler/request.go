package handler

import (
	"strings"

	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/service"
	"github.com/luci18530/GastX/internal/util"
)

// FilterCriteriaRequest represents the filter panel state in request bodies
type FilterCriteriaRequest struct {
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	SearchText         string   `json:"searchText"`
	MinValue           string   `json:"minValue"`
	MaxValue           string   `json:"maxValue"`
	SelectedCategories []string `json:"selectedCategories"`
	TransactionType    string   `json:"transactionType"`
}

// toCriteria validates the request and converts it to domain criteria.
// Bounds the filter engine would silently skip are rejected here.
func (r FilterCriteriaRequest) toCriteria() (domain.FilterCriteria, []ValidationError) {
	var errs []ValidationError

	for _, bound := range []struct{ field, value string }{
		{"filters.startDate", r.StartDate},
		{"filters.endDate", r.EndDate},
	} {
		if strings.TrimSpace(bound.value) == "" {
			continue
		}
		if _, err := util.NormalizeDate(bound.value); err != nil {
			errs = append(errs, ValidationError{Field: bound.field, Message: "Must be YYYY-MM-DD or DD/MM/YYYY"})
		}
	}

	for _, bound := range []struct{ field, value string }{
		{"filters.minValue", r.MinValue},
		{"filters.maxValue", r.MaxValue},
	} {
		if strings.TrimSpace(bound.value) == "" {
			continue
		}
		if _, ok := service.ParseAmountBound(bound.value); !ok {
			errs = append(errs, ValidationError{Field: bound.field, Message: "Must be a valid decimal number"})
		}
	}

	txType := domain.TransactionType(r.TransactionType)
	if !txType.IsValid() {
		errs = append(errs, ValidationError{Field: "filters.transactionType", Message: "Must be one of: all, expenses, income"})
	}

	selected := r.SelectedCategories
	if selected == nil {
		selected = []string{}
	}

	return domain.FilterCriteria{
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		SearchText:         r.SearchText,
		MinValue:           r.MinValue,
		MaxValue:           r.MaxValue,
		SelectedCategories: selected,
		TransactionType:    txType,
	}, errs
}

func validatePaging(page, pageSize int) []ValidationError {
	var errs []ValidationError
	if page < 0 {
		errs = append(errs, ValidationError{Field: "page", Message: "Must not be negative"})
	}
	if pageSize < 0 {
		errs = append(errs, ValidationError{Field: "pageSize", Message: "Must not be negative"})
	}
	return errs
}

package service

import (
	"strings"

	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// FilterService applies user filter criteria to a statement's transactions
type FilterService struct{}

// NewFilterService creates a new FilterService
func NewFilterService() *FilterService {
	return &FilterService{}
}

// transactionPredicate reports whether a transaction survives one criterion
type transactionPredicate func(t domain.Transaction) bool

// Apply returns the transactions matching every active criterion, in input
// order. Criteria left empty do not filter anything.
func (s *FilterService) Apply(transactions []domain.Transaction, criteria domain.FilterCriteria) []domain.Transaction {
	predicates := s.predicates(criteria)

	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if matchesAll(t, predicates) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Describe derives the presentation state of the criteria
func (s *FilterService) Describe(criteria domain.FilterCriteria) domain.FilterSummary {
	return domain.FilterSummary{
		ActiveCount: criteria.ActiveFilterCount(),
		HasActive:   criteria.HasActiveFilters(),
	}
}

// DateRange returns the earliest and latest parseable dates, canonicalized
func (s *FilterService) DateRange(transactions []domain.Transaction) domain.DateRange {
	var r domain.DateRange
	for _, t := range transactions {
		d, err := util.NormalizeDate(t.Date)
		if err != nil {
			continue
		}
		if r.Min == "" || d < r.Min {
			r.Min = d
		}
		if r.Max == "" || d > r.Max {
			r.Max = d
		}
	}
	return r
}

// predicates builds the active predicate chain in the fixed order:
// start date, end date, search text, min value, max value, categories, type.
func (s *FilterService) predicates(c domain.FilterCriteria) []transactionPredicate {
	var chain []transactionPredicate

	if start, ok := parseDateBound(c.StartDate, "startDate"); ok {
		chain = append(chain, func(t domain.Transaction) bool {
			d, err := util.NormalizeDate(t.Date)
			return err == nil && d >= start
		})
	}
	if end, ok := parseDateBound(c.EndDate, "endDate"); ok {
		chain = append(chain, func(t domain.Transaction) bool {
			d, err := util.NormalizeDate(t.Date)
			return err == nil && d <= end
		})
	}

	if c.SearchText != "" {
		search := strings.ToLower(c.SearchText)
		chain = append(chain, func(t domain.Transaction) bool {
			return strings.Contains(strings.ToLower(t.Title), search)
		})
	}

	if minValue, ok := ParseAmountBound(c.MinValue); ok {
		chain = append(chain, func(t domain.Transaction) bool {
			return t.Amount.Abs().GreaterThanOrEqual(minValue)
		})
	}
	if maxValue, ok := ParseAmountBound(c.MaxValue); ok {
		chain = append(chain, func(t domain.Transaction) bool {
			return t.Amount.Abs().LessThanOrEqual(maxValue)
		})
	}

	if len(c.SelectedCategories) > 0 {
		selected := make(map[string]struct{}, len(c.SelectedCategories))
		for _, category := range c.SelectedCategories {
			selected[category] = struct{}{}
		}
		chain = append(chain, func(t domain.Transaction) bool {
			_, ok := selected[t.CategoryOrDefault()]
			return ok
		})
	}

	switch c.Type() {
	case domain.TransactionTypeExpenses:
		chain = append(chain, domain.Transaction.IsExpense)
	case domain.TransactionTypeIncome:
		chain = append(chain, domain.Transaction.IsIncome)
	}

	return chain
}

func matchesAll(t domain.Transaction, predicates []transactionPredicate) bool {
	for _, p := range predicates {
		if !p(t) {
			return false
		}
	}
	return true
}

// parseDateBound canonicalizes a date bound. Empty or unparseable bounds
// disable the predicate.
func parseDateBound(bound, field string) (string, bool) {
	bound = strings.TrimSpace(bound)
	if bound == "" {
		return "", false
	}
	normalized, err := util.NormalizeDate(bound)
	if err != nil {
		log.Debug().Err(err).Str("field", field).Msg("Ignoring unparseable date bound")
		return "", false
	}
	return normalized, true
}

// ParseAmountBound parses a user-typed value bound. Both "." and "," are
// accepted as the decimal separator. Empty or malformed input returns false.
func ParseAmountBound(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	if !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

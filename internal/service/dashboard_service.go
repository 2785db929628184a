package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/luci18530/GastX/internal/cache"
	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// DashboardInput is one statement plus the current view state
type DashboardInput struct {
	Statement          domain.Statement      `json:"statement"`
	Criteria           domain.FilterCriteria `json:"filters"`
	Page               int                   `json:"page"`
	PageSize           int                   `json:"pageSize"`
	SelectedCategories []string              `json:"selectedCategories"`
	ShowAll            bool                  `json:"showAll"`
}

// DashboardService assembles the full dashboard view of a statement
type DashboardService struct {
	aggregationService *AggregationService
	filterService      *FilterService
	categoryService    *CategoryService
	defaultPageSize    int

	// memo is optional; nil disables memoization
	memo  *cache.LRU[*domain.DashboardView]
	group singleflight.Group
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	aggregationService *AggregationService,
	filterService *FilterService,
	categoryService *CategoryService,
	defaultPageSize int,
	memo *cache.LRU[*domain.DashboardView],
) *DashboardService {
	return &DashboardService{
		aggregationService: aggregationService,
		filterService:      filterService,
		categoryService:    categoryService,
		defaultPageSize:    util.ClampPageSize(defaultPageSize),
		memo:               memo,
	}
}

// Build filters the statement, re-aggregates it and pages the result.
// The returned view may be shared with other callers and must not be modified.
func (s *DashboardService) Build(ctx context.Context, input DashboardInput) (*domain.DashboardView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !input.Criteria.TransactionType.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, input.Criteria.TransactionType)
	}
	if input.PageSize == 0 {
		input.PageSize = s.defaultPageSize
	}

	if s.memo == nil {
		return s.compute(input), nil
	}

	key, err := memoKey(input)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to derive dashboard memo key, computing without cache")
		return s.compute(input), nil
	}

	if view, ok := s.memo.Get(key); ok {
		return view, nil
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		view := s.compute(input)
		s.memo.Set(key, view)
		return view, nil
	})
	return v.(*domain.DashboardView), nil
}

func (s *DashboardService) compute(input DashboardInput) *domain.DashboardView {
	stmt := input.Statement

	filtered := s.filterService.Apply(stmt.Transactions, input.Criteria)
	monthly := s.aggregationService.MonthlyTotals(filtered)

	view := &domain.DashboardView{
		Header: domain.StatementHeader{
			BankDetected:      stmt.BankDetected,
			TotalTransactions: stmt.TotalTransactions,
			TotalSpent:        stmt.TotalSpent,
			TotalReceived:     stmt.TotalReceived,
		},
		Filters:           s.filterService.Describe(input.Criteria),
		DateRange:         s.filterService.DateRange(stmt.Transactions),
		FilteredCount:     len(filtered),
		Monthly:           monthly,
		Stats:             s.aggregationService.Summarize(monthly),
		CategoryMonthly:   s.aggregationService.CategoryMonthly(filtered),
		CategorySummary:   stmt.CategorySummary,
		DisplayCategories: s.categoryService.DisplayCategories(stmt.CategorySummary, input.SelectedCategories, input.ShowAll),
		Transactions:      util.Paginate(filtered, input.Page, input.PageSize),
	}

	log.Debug().
		Int("transactions", len(stmt.Transactions)).
		Int("filtered", len(filtered)).
		Int("months", len(monthly)).
		Msg("Dashboard view computed")

	return view
}

func memoKey(input DashboardInput) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

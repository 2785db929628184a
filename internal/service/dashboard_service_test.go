package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/luci18530/GastX/internal/cache"
	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/testutil"
	"github.com/luci18530/GastX/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardService(memo *cache.LRU[*domain.DashboardView]) *DashboardService {
	return NewDashboardService(
		NewAggregationService(util.PortugueseMonthNames),
		NewFilterService(),
		NewCategoryService(),
		domain.DefaultPageSize,
		memo,
	)
}

func TestDashboardService_Build(t *testing.T) {
	svc := newDashboardService(nil)

	view, err := svc.Build(context.Background(), DashboardInput{
		Statement: testutil.SampleStatement(),
		Criteria:  domain.DefaultFilterCriteria(),
		ShowAll:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Nubank", view.Header.BankDetected)
	assert.Equal(t, "130.00", view.Header.TotalSpent.StringFixed(2))
	assert.Equal(t, 3, view.FilteredCount)
	assert.Len(t, view.Monthly, 2)
	assert.Equal(t, "65.00", view.Stats.AvgSpent.StringFixed(2))
	assert.Equal(t, []string{"Transporte"}, view.CategoryMonthly.Categories)
	assert.Equal(t, []string{"Transporte"}, view.DisplayCategories)
	assert.Equal(t, domain.DateRange{Min: "2024-01-15", Max: "2024-02-01"}, view.DateRange)
	assert.False(t, view.Filters.HasActive)
	assert.Equal(t, 1, view.Transactions.Page)
	assert.Equal(t, domain.DefaultPageSize, view.Transactions.PageSize)
	assert.Len(t, view.Transactions.Items, 3)
}

func TestDashboardService_Build_AppliesFiltersBeforeAggregating(t *testing.T) {
	svc := newDashboardService(nil)

	view, err := svc.Build(context.Background(), DashboardInput{
		Statement: testutil.SampleStatement(),
		Criteria:  domain.FilterCriteria{TransactionType: domain.TransactionTypeIncome},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, view.FilteredCount)
	require.Len(t, view.Monthly, 1)
	assert.Equal(t, "50.00", view.Monthly[0].Received.StringFixed(2))
	assert.Empty(t, view.CategoryMonthly.Rows)
	assert.Equal(t, domain.FilterSummary{ActiveCount: 1, HasActive: true}, view.Filters)
	// the date range always describes the whole statement
	assert.Equal(t, "2024-01-15", view.DateRange.Min)
}

func TestDashboardService_Build_Pagination(t *testing.T) {
	svc := newDashboardService(nil)
	stmt := domain.Statement{Transactions: testutil.TransactionsOfSize(45)}

	view, err := svc.Build(context.Background(), DashboardInput{Statement: stmt, Page: 9, PageSize: 20})

	require.NoError(t, err)
	assert.Equal(t, 3, view.Transactions.Page)
	assert.Equal(t, 3, view.Transactions.TotalPages)
	assert.Len(t, view.Transactions.Items, 5)
	assert.Equal(t, []int{1, 2, 3}, view.Transactions.PageWindow)
}

func TestDashboardService_Build_InvalidTransactionType(t *testing.T) {
	svc := newDashboardService(nil)

	_, err := svc.Build(context.Background(), DashboardInput{
		Criteria: domain.FilterCriteria{TransactionType: "refunds"},
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidTransactionType))
}

func TestDashboardService_Build_CancelledContext(t *testing.T) {
	svc := newDashboardService(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Build(ctx, DashboardInput{Statement: testutil.SampleStatement()})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDashboardService_Build_MemoizedEqualsFresh(t *testing.T) {
	memo := cache.NewLRU[*domain.DashboardView](16, time.Minute)
	memoized := newDashboardService(memo)
	fresh := newDashboardService(nil)

	input := DashboardInput{
		Statement: testutil.SampleStatement(),
		Criteria:  domain.FilterCriteria{SearchText: "uber"},
		ShowAll:   true,
	}

	first, err := memoized.Build(context.Background(), input)
	require.NoError(t, err)
	second, err := memoized.Build(context.Background(), input)
	require.NoError(t, err)
	expected, err := fresh.Build(context.Background(), input)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, expected, first)
	assert.Equal(t, 1, memo.Len())

	input.Criteria.SearchText = "shell"
	other, err := memoized.Build(context.Background(), input)
	require.NoError(t, err)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, memo.Len())
}

func TestDashboardService_Build_ConcurrentCallers(t *testing.T) {
	memo := cache.NewLRU[*domain.DashboardView](16, time.Minute)
	svc := newDashboardService(memo)
	input := DashboardInput{Statement: domain.Statement{Transactions: testutil.TransactionsOfSize(500)}}

	var wg sync.WaitGroup
	views := make([]*domain.DashboardView, 8)
	for i := range views {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			view, err := svc.Build(context.Background(), input)
			assert.NoError(t, err)
			views[i] = view
		}(i)
	}
	wg.Wait()

	for _, view := range views {
		require.NotNil(t, view)
		assert.Equal(t, 500, view.FilteredCount)
		assert.Len(t, view.Monthly, 12)
	}
	assert.Equal(t, 1, memo.Len())
}

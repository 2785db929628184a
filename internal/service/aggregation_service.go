package service

import (
	"sort"

	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// AggregationService re-aggregates a statement into monthly series and
// month×category pivots. All methods are pure and safe for concurrent use.
type AggregationService struct {
	monthNames util.MonthNames
}

// NewAggregationService creates a new AggregationService labelling months with the given table
func NewAggregationService(monthNames util.MonthNames) *AggregationService {
	return &AggregationService{
		monthNames: monthNames,
	}
}

type monthlyAccumulator struct {
	bucket   domain.MonthBucket
	spent    decimal.Decimal
	received decimal.Decimal
	count    int
}

// MonthlyTotals folds transactions into one row per month, oldest first.
// Positive amounts add to spent; everything else (zero included) adds its
// absolute value to received. Unparseable dates are skipped.
func (s *AggregationService) MonthlyTotals(transactions []domain.Transaction) []domain.MonthlyRow {
	buckets := make(map[domain.MonthBucket]*monthlyAccumulator)

	for _, t := range transactions {
		bucket, err := util.BucketOf(t.Date)
		if err != nil {
			log.Debug().Err(err).Str("date", t.Date).Str("title", t.Title).Msg("Skipping transaction with unparseable date")
			continue
		}

		acc, ok := buckets[bucket]
		if !ok {
			acc = &monthlyAccumulator{bucket: bucket, spent: decimal.Zero, received: decimal.Zero}
			buckets[bucket] = acc
		}

		if t.Amount.IsPositive() {
			acc.spent = acc.spent.Add(t.Amount)
		} else {
			acc.received = acc.received.Add(t.Amount.Abs())
		}
		acc.count++
	}

	ordered := sortedBuckets(buckets)
	rows := make([]domain.MonthlyRow, 0, len(ordered))
	for _, bucket := range ordered {
		acc := buckets[bucket]
		spent := acc.spent.Round(2)
		received := acc.received.Round(2)
		rows = append(rows, domain.MonthlyRow{
			Key:       bucket.Key(),
			Year:      bucket.Year,
			Month:     bucket.Month,
			Label:     s.monthNames.ShortLabel(bucket),
			LongLabel: s.monthNames.LongLabel(bucket),
			Spent:     spent,
			Received:  received,
			Balance:   received.Sub(spent),
			Count:     acc.count,
		})
	}

	return rows
}

// CategoryMonthly pivots expenses (amount > 0) into one row per month with a
// value per category. Income never appears in this view.
func (s *AggregationService) CategoryMonthly(transactions []domain.Transaction) domain.CategoryMonthlyResult {
	buckets := make(map[domain.MonthBucket]map[string]decimal.Decimal)
	categories := make(map[string]struct{})

	for _, t := range transactions {
		if !t.Amount.IsPositive() {
			continue
		}

		bucket, err := util.BucketOf(t.Date)
		if err != nil {
			log.Debug().Err(err).Str("date", t.Date).Str("title", t.Title).Msg("Skipping transaction with unparseable date")
			continue
		}

		cells, ok := buckets[bucket]
		if !ok {
			cells = make(map[string]decimal.Decimal)
			buckets[bucket] = cells
		}

		category := t.CategoryOrDefault()
		categories[category] = struct{}{}
		cells[category] = cells[category].Add(t.Amount)
	}

	ordered := sortedBuckets(buckets)
	result := domain.CategoryMonthlyResult{
		Rows:       make([]domain.CategoryMonthlyRow, 0, len(ordered)),
		Categories: make([]string, 0, len(categories)),
		Months:     make([]string, 0, len(ordered)),
	}

	for _, bucket := range ordered {
		values := make(map[string]decimal.Decimal, len(buckets[bucket]))
		for category, total := range buckets[bucket] {
			values[category] = total.Round(2)
		}

		label := s.monthNames.ShortLabel(bucket)
		result.Rows = append(result.Rows, domain.CategoryMonthlyRow{
			Key:    bucket.Key(),
			Year:   bucket.Year,
			Month:  bucket.Month,
			Label:  label,
			Values: values,
		})
		result.Months = append(result.Months, label)
	}

	for category := range categories {
		result.Categories = append(result.Categories, category)
	}
	sort.Strings(result.Categories)

	return result
}

// Summarize averages spent and received over the monthly rows.
// An empty input yields zero averages.
func (s *AggregationService) Summarize(rows []domain.MonthlyRow) domain.MonthlyStats {
	if len(rows) == 0 {
		return domain.MonthlyStats{
			AvgSpent:    decimal.Zero,
			AvgReceived: decimal.Zero,
		}
	}

	totalSpent := decimal.Zero
	totalReceived := decimal.Zero
	for _, row := range rows {
		totalSpent = totalSpent.Add(row.Spent)
		totalReceived = totalReceived.Add(row.Received)
	}

	n := decimal.NewFromInt(int64(len(rows)))
	return domain.MonthlyStats{
		MonthCount:  len(rows),
		AvgSpent:    totalSpent.Div(n).Round(2),
		AvgReceived: totalReceived.Div(n).Round(2),
	}
}

func sortedBuckets[V any](buckets map[domain.MonthBucket]V) []domain.MonthBucket {
	ordered := make([]domain.MonthBucket, 0, len(buckets))
	for bucket := range buckets {
		ordered = append(ordered, bucket)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Before(ordered[j])
	})
	return ordered
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/luci18530/GastX/internal/domain"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation = "https://gastx.app/errors/validation"
	ErrorTypeInternal   = "https://gastx.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	Date       string `json:"date"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Confidence string `json:"confidence,omitempty"`
}

// MonthlyRowResponse represents one month of totals
type MonthlyRowResponse struct {
	Key       string `json:"key"`
	Year      int    `json:"year"`
	MonthNum  int    `json:"monthNum"`
	Month     string `json:"month"`
	MonthFull string `json:"monthFull"`
	Spent     string `json:"spent"`
	Received  string `json:"received"`
	Balance   string `json:"balance"`
	Count     int    `json:"count"`
}

// StatsResponse represents the monthly averages
type StatsResponse struct {
	MonthCount  int    `json:"monthCount"`
	AvgSpent    string `json:"avgSpent"`
	AvgReceived string `json:"avgReceived"`
}

// CategorySummaryResponse represents one ranked category
type CategorySummaryResponse struct {
	Category   string `json:"category"`
	Total      string `json:"total"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// CategoryMonthlyResponse is the month × category pivot. Each row holds the
// short month label under "month" and one amount per category present.
type CategoryMonthlyResponse struct {
	Rows       []map[string]string `json:"rows"`
	Categories []string            `json:"categories"`
	Months     []string            `json:"months"`
}

// PageResponse represents a page of transactions
type PageResponse struct {
	Data       []TransactionResponse `json:"data"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalItems int                   `json:"totalItems"`
	TotalPages int                   `json:"totalPages"`
	PageWindow []int                 `json:"pageWindow"`
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		Date:       tx.Date,
		Title:      tx.Title,
		Category:   tx.Category,
		Amount:     tx.Amount.StringFixed(2),
		Confidence: tx.Confidence,
	}
}

func toTransactionResponses(transactions []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		out[i] = toTransactionResponse(tx)
	}
	return out
}

func toMonthlyRowResponses(rows []domain.MonthlyRow) []MonthlyRowResponse {
	out := make([]MonthlyRowResponse, len(rows))
	for i, row := range rows {
		out[i] = MonthlyRowResponse{
			Key:       row.Key,
			Year:      row.Year,
			MonthNum:  row.Month,
			Month:     row.Label,
			MonthFull: row.LongLabel,
			Spent:     row.Spent.StringFixed(2),
			Received:  row.Received.StringFixed(2),
			Balance:   row.Balance.StringFixed(2),
			Count:     row.Count,
		}
	}
	return out
}

func toStatsResponse(stats domain.MonthlyStats) StatsResponse {
	return StatsResponse{
		MonthCount:  stats.MonthCount,
		AvgSpent:    stats.AvgSpent.StringFixed(2),
		AvgReceived: stats.AvgReceived.StringFixed(2),
	}
}

func toCategorySummaryResponses(summary []domain.CategorySummaryEntry) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, len(summary))
	for i, entry := range summary {
		out[i] = CategorySummaryResponse{
			Category:   entry.Category,
			Total:      entry.Total.StringFixed(2),
			Count:      entry.Count,
			Percentage: entry.Percentage.StringFixed(2),
		}
	}
	return out
}

func toCategoryMonthlyResponse(result domain.CategoryMonthlyResult) CategoryMonthlyResponse {
	rows := make([]map[string]string, len(result.Rows))
	for i, row := range result.Rows {
		flat := make(map[string]string, len(row.Values)+2)
		flat["key"] = row.Key
		flat["month"] = row.Label
		for category, value := range row.Values {
			flat[category] = value.StringFixed(2)
		}
		rows[i] = flat
	}

	categories := result.Categories
	if categories == nil {
		categories = []string{}
	}
	months := result.Months
	if months == nil {
		months = []string{}
	}

	return CategoryMonthlyResponse{
		Rows:       rows,
		Categories: categories,
		Months:     months,
	}
}

func toPageResponse(page domain.PaginatedTransactions) PageResponse {
	return PageResponse{
		Data:       toTransactionResponses(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		PageWindow: page.PageWindow,
	}
}

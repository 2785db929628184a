package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/service"
)

// AnalyticsHandler exposes the month aggregations of a transaction list
type AnalyticsHandler struct {
	aggregationService *service.AggregationService
	categoryService    *service.CategoryService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(aggregationService *service.AggregationService, categoryService *service.CategoryService) *AnalyticsHandler {
	return &AnalyticsHandler{
		aggregationService: aggregationService,
		categoryService:    categoryService,
	}
}

// MonthlyRequest represents the monthly analytics request body
type MonthlyRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// MonthlyResponse represents the monthly analytics response
type MonthlyResponse struct {
	Months []MonthlyRowResponse `json:"months"`
	Stats  StatsResponse        `json:"stats"`
}

// CategoriesRequest represents the category evolution request body
type CategoriesRequest struct {
	Transactions       []domain.Transaction          `json:"transactions"`
	CategorySummary    []domain.CategorySummaryEntry `json:"categorySummary"`
	SelectedCategories []string                      `json:"selectedCategories"`
	ShowAll            *bool                         `json:"showAll,omitempty"`
}

// CategoriesResponse represents the category evolution response
type CategoriesResponse struct {
	CategoryMonthlyResponse
	DisplayCategories []string `json:"displayCategories"`
}

// Monthly godoc
// @Summary Monthly totals
// @Description Spent, received and count per calendar month, with monthly averages
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body MonthlyRequest true "Transactions"
// @Success 200 {object} MonthlyResponse
// @Failure 400 {object} ProblemDetails
// @Router /analytics/monthly [post]
func (h *AnalyticsHandler) Monthly(c echo.Context) error {
	var req MonthlyRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	rows := h.aggregationService.MonthlyTotals(req.Transactions)
	stats := h.aggregationService.Summarize(rows)

	return c.JSON(http.StatusOK, MonthlyResponse{
		Months: toMonthlyRowResponses(rows),
		Stats:  toStatsResponse(stats),
	})
}

// Categories godoc
// @Summary Category evolution
// @Description Expense totals per month and category, with the categories to chart
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body CategoriesRequest true "Transactions and category selection"
// @Success 200 {object} CategoriesResponse
// @Failure 400 {object} ProblemDetails
// @Router /analytics/categories [post]
func (h *AnalyticsHandler) Categories(c echo.Context) error {
	var req CategoriesRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	showAll := true
	if req.ShowAll != nil {
		showAll = *req.ShowAll
	}

	result := h.aggregationService.CategoryMonthly(req.Transactions)
	display := h.categoryService.DisplayCategories(req.CategorySummary, req.SelectedCategories, showAll)

	return c.JSON(http.StatusOK, CategoriesResponse{
		CategoryMonthlyResponse: toCategoryMonthlyResponse(result),
		DisplayCategories:       display,
	})
}

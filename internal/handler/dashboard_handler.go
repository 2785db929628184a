package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/service"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// DashboardRequest represents the build dashboard request body
type DashboardRequest struct {
	Statement          domain.Statement      `json:"statement"`
	Filters            FilterCriteriaRequest `json:"filters"`
	Page               int                   `json:"page"`
	PageSize           int                   `json:"pageSize"`
	SelectedCategories []string              `json:"selectedCategories"`
	ShowAll            *bool                 `json:"showAll,omitempty"`
}

// StatementHeaderResponse represents the statement summary cards
type StatementHeaderResponse struct {
	BankDetected      string `json:"bankDetected"`
	TotalTransactions int    `json:"totalTransactions"`
	TotalSpent        string `json:"totalSpent"`
	TotalReceived     string `json:"totalReceived"`
}

// DashboardResponse represents the full dashboard API response
type DashboardResponse struct {
	Header            StatementHeaderResponse   `json:"header"`
	ActiveFilters     int                       `json:"activeFilters"`
	HasActiveFilters  bool                      `json:"hasActiveFilters"`
	DateRange         domain.DateRange          `json:"dateRange"`
	FilteredCount     int                       `json:"filteredCount"`
	Monthly           []MonthlyRowResponse      `json:"monthly"`
	Stats             StatsResponse             `json:"stats"`
	CategoryMonthly   CategoryMonthlyResponse   `json:"categoryMonthly"`
	CategorySummary   []CategorySummaryResponse `json:"categorySummary"`
	DisplayCategories []string                  `json:"displayCategories"`
	Transactions      PageResponse              `json:"transactions"`
}

// Build godoc
// @Summary Build the dashboard
// @Description Filter a statement, re-aggregate it and return one page of transactions
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body DashboardRequest true "Statement and view state"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ProblemDetails
// @Router /dashboard [post]
func (h *DashboardHandler) Build(c echo.Context) error {
	var req DashboardRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	criteria, errs := req.Filters.toCriteria()
	errs = append(errs, validatePaging(req.Page, req.PageSize)...)
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	showAll := true
	if req.ShowAll != nil {
		showAll = *req.ShowAll
	}

	view, err := h.dashboardService.Build(c.Request().Context(), service.DashboardInput{
		Statement:          req.Statement,
		Criteria:           criteria,
		Page:               req.Page,
		PageSize:           req.PageSize,
		SelectedCategories: req.SelectedCategories,
		ShowAll:            showAll,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransactionType) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "filters.transactionType", Message: "Must be one of: all, expenses, income"},
			})
		}
		if errors.Is(err, context.Canceled) {
			log.Debug().Msg("Dashboard request cancelled")
			return err
		}
		log.Error().Err(err).Int("transactions", len(req.Statement.Transactions)).Msg("Failed to build dashboard")
		return NewInternalError(c, "Failed to build dashboard")
	}

	return c.JSON(http.StatusOK, toDashboardResponse(view))
}

func toDashboardResponse(view *domain.DashboardView) DashboardResponse {
	displayCategories := view.DisplayCategories
	if displayCategories == nil {
		displayCategories = []string{}
	}

	return DashboardResponse{
		Header: StatementHeaderResponse{
			BankDetected:      view.Header.BankDetected,
			TotalTransactions: view.Header.TotalTransactions,
			TotalSpent:        view.Header.TotalSpent.StringFixed(2),
			TotalReceived:     view.Header.TotalReceived.StringFixed(2),
		},
		ActiveFilters:     view.Filters.ActiveCount,
		HasActiveFilters:  view.Filters.HasActive,
		DateRange:         view.DateRange,
		FilteredCount:     view.FilteredCount,
		Monthly:           toMonthlyRowResponses(view.Monthly),
		Stats:             toStatsResponse(view.Stats),
		CategoryMonthly:   toCategoryMonthlyResponse(view.CategoryMonthly),
		CategorySummary:   toCategorySummaryResponses(view.CategorySummary),
		DisplayCategories: displayCategories,
		Transactions:      toPageResponse(view.Transactions),
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/service"
	"github.com/luci18530/GastX/internal/util"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles filtering and paging of transaction lists
type TransactionHandler struct {
	filterService *service.FilterService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(filterService *service.FilterService) *TransactionHandler {
	return &TransactionHandler{
		filterService: filterService,
	}
}

// FilterRequest represents the filter transactions request body
type FilterRequest struct {
	Transactions []domain.Transaction  `json:"transactions"`
	Filters      FilterCriteriaRequest `json:"filters"`
}

// FilterResponse represents the filtered transactions response
type FilterResponse struct {
	Transactions     []TransactionResponse `json:"transactions"`
	ActiveFilters    int                   `json:"activeFilters"`
	HasActiveFilters bool                  `json:"hasActiveFilters"`
	DateRange        domain.DateRange      `json:"dateRange"`
}

// PageRequest represents the paginate transactions request body
type PageRequest struct {
	Transactions []domain.Transaction `json:"transactions"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"pageSize"`
}

// Filter godoc
// @Summary Filter transactions
// @Description Apply the filter panel predicates to a transaction list, preserving order
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body FilterRequest true "Transactions and filters"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions/filter [post]
func (h *TransactionHandler) Filter(c echo.Context) error {
	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	criteria, errs := req.Filters.toCriteria()
	if len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	filtered := h.filterService.Apply(req.Transactions, criteria)
	summary := h.filterService.Describe(criteria)

	log.Debug().
		Int("transactions", len(req.Transactions)).
		Int("filtered", len(filtered)).
		Int("active_filters", summary.ActiveCount).
		Msg("Transactions filtered")

	return c.JSON(http.StatusOK, FilterResponse{
		Transactions:     toTransactionResponses(filtered),
		ActiveFilters:    summary.ActiveCount,
		HasActiveFilters: summary.HasActive,
		DateRange:        h.filterService.DateRange(req.Transactions),
	})
}

// Page godoc
// @Summary Paginate transactions
// @Description Return one 1-indexed page; out of range pages are clamped
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body PageRequest true "Transactions and page"
// @Success 200 {object} PageResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions/page [post]
func (h *TransactionHandler) Page(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if errs := validatePaging(req.Page, req.PageSize); len(errs) > 0 {
		return NewValidationError(c, "Validation failed", errs)
	}

	page := util.Paginate(req.Transactions, req.Page, req.PageSize)
	return c.JSON(http.StatusOK, toPageResponse(page))
}

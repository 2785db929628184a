package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/service"
	"github.com/luci18530/GastX/internal/testutil"
	"github.com/luci18530/GastX/internal/util"
)

func newTestDashboardService() *service.DashboardService {
	return service.NewDashboardService(
		service.NewAggregationService(util.PortugueseMonthNames),
		service.NewFilterService(),
		service.NewCategoryService(),
		domain.DefaultPageSize,
		nil,
	)
}

// newJSONContext builds an echo context for a POST with a JSON body
func newJSONContext(e *echo.Echo, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var payload string
	switch b := body.(type) {
	case string:
		payload = b
	default:
		data, _ := json.Marshal(b)
		payload = string(data)
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBuildDashboard_Success(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(newTestDashboardService())

	c, rec := newJSONContext(e, "/api/v1/dashboard", map[string]interface{}{
		"statement": testutil.SampleStatement(),
	})

	if err := handler.Build(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Header.BankDetected != "Nubank" {
		t.Errorf("Expected bank 'Nubank', got %s", response.Header.BankDetected)
	}
	if response.Header.TotalSpent != "130.00" {
		t.Errorf("Expected total spent '130.00', got %s", response.Header.TotalSpent)
	}
	if len(response.Monthly) != 2 {
		t.Fatalf("Expected 2 months, got %d", len(response.Monthly))
	}
	if response.Monthly[0].Month != "Jan/24" || response.Monthly[0].Spent != "100.00" || response.Monthly[0].Received != "50.00" {
		t.Errorf("Unexpected January row: %+v", response.Monthly[0])
	}
	if response.Stats.AvgSpent != "65.00" {
		t.Errorf("Expected avg spent '65.00', got %s", response.Stats.AvgSpent)
	}
	if len(response.DisplayCategories) != 1 || response.DisplayCategories[0] != "Transporte" {
		t.Errorf("Expected display categories [Transporte], got %v", response.DisplayCategories)
	}
	if response.CategoryMonthly.Rows[1]["Transporte"] != "30.00" {
		t.Errorf("Expected February Transporte '30.00', got %v", response.CategoryMonthly.Rows[1])
	}
	if response.Transactions.Page != 1 || response.Transactions.PageSize != domain.DefaultPageSize {
		t.Errorf("Unexpected paging: page %d size %d", response.Transactions.Page, response.Transactions.PageSize)
	}
	if response.HasActiveFilters {
		t.Error("Expected no active filters")
	}
}

func TestBuildDashboard_WithFilters(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(newTestDashboardService())

	c, rec := newJSONContext(e, "/api/v1/dashboard", map[string]interface{}{
		"statement": testutil.SampleStatement(),
		"filters":   map[string]interface{}{"transactionType": "expenses", "minValue": "50"},
	})

	if err := handler.Build(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response DashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.FilteredCount != 1 {
		t.Errorf("Expected 1 filtered transaction, got %d", response.FilteredCount)
	}
	if response.ActiveFilters != 2 {
		t.Errorf("Expected 2 active filters, got %d", response.ActiveFilters)
	}
	if response.DateRange.Min != "2024-01-15" || response.DateRange.Max != "2024-02-01" {
		t.Errorf("Unexpected date range: %+v", response.DateRange)
	}
}

func TestBuildDashboard_InvalidBody(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(newTestDashboardService())

	c, rec := newJSONContext(e, "/api/v1/dashboard", `{"statement":`)

	if err := handler.Build(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestBuildDashboard_ValidationErrors(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(newTestDashboardService())

	c, rec := newJSONContext(e, "/api/v1/dashboard", map[string]interface{}{
		"statement": testutil.SampleStatement(),
		"filters": map[string]interface{}{
			"startDate":       "yesterday",
			"maxValue":        "lots",
			"transactionType": "refunds",
		},
		"page": -1,
	})

	if err := handler.Build(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	fields := make(map[string]bool)
	for _, ve := range problem.Errors {
		fields[ve.Field] = true
	}
	for _, field := range []string{"filters.startDate", "filters.maxValue", "filters.transactionType", "page"} {
		if !fields[field] {
			t.Errorf("Expected validation error for %s, got %+v", field, problem.Errors)
		}
	}
	if problem.Type != ErrorTypeValidation || problem.Instance != "/api/v1/dashboard" {
		t.Errorf("Unexpected problem details: %+v", problem)
	}
}

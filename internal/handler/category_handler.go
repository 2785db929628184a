package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/luci18530/GastX/internal/domain"
	"github.com/luci18530/GastX/internal/service"
)

// CategoryHandler serves category presentation data
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CategoryStylesResponse lists the known category styles and the fallback
type CategoryStylesResponse struct {
	Styles   []domain.CategoryStyle `json:"styles"`
	Fallback domain.CategoryStyle   `json:"fallback"`
}

// GetStyles handles GET /api/v1/categories/styles
func (h *CategoryHandler) GetStyles(c echo.Context) error {
	return c.JSON(http.StatusOK, CategoryStylesResponse{
		Styles:   h.categoryService.Styles(),
		Fallback: service.FallbackCategoryStyle,
	})
}

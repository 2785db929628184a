package service

import (
	"github.com/luci18530/GastX/internal/domain"
)

// FallbackCategoryStyle is used for categories the style map does not know
var FallbackCategoryStyle = domain.CategoryStyle{Color: "#64748b", Icon: "📦"}

// knownCategoryStyles follows the categorizer's category list, in its order
var knownCategoryStyles = []domain.CategoryStyle{
	{Category: "Transporte", Color: "#f97316", Icon: "🚗"},
	{Category: "Alimentação", Color: "#eab308", Icon: "🍔"},
	{Category: "Saúde", Color: "#22c55e", Icon: "💊"},
	{Category: "Beleza/Cuidados Pessoais", Color: "#ec4899", Icon: "💇"},
	{Category: "Compras", Color: "#3b82f6", Icon: "🛒"},
	{Category: "Entretenimento", Color: "#8b5cf6", Icon: "🎬"},
	{Category: "Assinaturas", Color: "#06b6d4", Icon: "📱"},
	{Category: "Casa", Color: "#84cc16", Icon: "🏠"},
	{Category: "Educação", Color: "#14b8a6", Icon: "📚"},
	{Category: "Transferências", Color: "#6366f1", Icon: "💸"},
	{Category: "Academia/Esporte", Color: "#f43f5e", Icon: "💪"},
	{Category: "Investimentos", Color: "#10b981", Icon: "📈"},
	{Category: "Impostos/Taxas", Color: "#64748b", Icon: "🧾"},
	{Category: domain.DefaultCategory, Color: "#9ca3af", Icon: "📦"},
}

// CategoryService answers category display questions: which categories to
// chart and how to style them
type CategoryService struct {
	styles map[string]domain.CategoryStyle
}

// NewCategoryService creates a new CategoryService
func NewCategoryService() *CategoryService {
	styles := make(map[string]domain.CategoryStyle, len(knownCategoryStyles))
	for _, style := range knownCategoryStyles {
		styles[style.Category] = style
	}
	return &CategoryService{
		styles: styles,
	}
}

// KnownCategories returns the category names emitted by the categorizer
func (s *CategoryService) KnownCategories() []string {
	names := make([]string, len(knownCategoryStyles))
	for i, style := range knownCategoryStyles {
		names[i] = style.Category
	}
	return names
}

// Style returns the style for a category, or the fallback style
func (s *CategoryService) Style(category string) domain.CategoryStyle {
	if style, ok := s.styles[category]; ok {
		return style
	}
	style := FallbackCategoryStyle
	style.Category = category
	return style
}

// Styles returns the styles of all known categories
func (s *CategoryService) Styles() []domain.CategoryStyle {
	out := make([]domain.CategoryStyle, len(knownCategoryStyles))
	copy(out, knownCategoryStyles)
	return out
}

// TopCategories returns the first n categories of the ranking
func (s *CategoryService) TopCategories(summary []domain.CategorySummaryEntry, n int) []string {
	if n > len(summary) {
		n = len(summary)
	}
	if n < 0 {
		n = 0
	}
	top := make([]string, 0, n)
	for _, entry := range summary[:n] {
		top = append(top, entry.Category)
	}
	return top
}

// DisplayCategories picks the chart columns. With showAll, an explicit
// selection wins over the top five; without it, only the selection is shown.
func (s *CategoryService) DisplayCategories(summary []domain.CategorySummaryEntry, selected []string, showAll bool) []string {
	if showAll && len(selected) == 0 {
		return s.TopCategories(summary, domain.DefaultDisplayCategories)
	}
	out := make([]string, len(selected))
	copy(out, selected)
	return out
}

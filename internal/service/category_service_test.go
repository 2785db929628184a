package service

import (
	"testing"

	"github.com/luci18530/GastX/internal/domain"
	"github.com/stretchr/testify/assert"
)

func rankedSummary(names ...string) []domain.CategorySummaryEntry {
	summary := make([]domain.CategorySummaryEntry, len(names))
	for i, name := range names {
		summary[i] = domain.CategorySummaryEntry{Category: name}
	}
	return summary
}

func TestCategoryService_Style(t *testing.T) {
	svc := NewCategoryService()

	transport := svc.Style("Transporte")
	assert.Equal(t, "#f97316", transport.Color)
	assert.Equal(t, "🚗", transport.Icon)

	unknown := svc.Style("Pets")
	assert.Equal(t, "Pets", unknown.Category)
	assert.Equal(t, FallbackCategoryStyle.Color, unknown.Color)
	assert.Equal(t, FallbackCategoryStyle.Icon, unknown.Icon)
}

func TestCategoryService_KnownCategories(t *testing.T) {
	svc := NewCategoryService()

	known := svc.KnownCategories()

	assert.Len(t, known, 14)
	assert.Equal(t, "Transporte", known[0])
	assert.Equal(t, domain.DefaultCategory, known[len(known)-1])
	assert.Len(t, svc.Styles(), 14)
}

func TestCategoryService_TopCategories(t *testing.T) {
	svc := NewCategoryService()
	summary := rankedSummary("A", "B", "C")

	assert.Equal(t, []string{"A", "B"}, svc.TopCategories(summary, 2))
	assert.Equal(t, []string{"A", "B", "C"}, svc.TopCategories(summary, 10))
	assert.Empty(t, svc.TopCategories(nil, 5))
}

func TestCategoryService_DisplayCategories(t *testing.T) {
	svc := NewCategoryService()
	summary := rankedSummary("A", "B", "C", "D", "E", "F", "G")

	tests := []struct {
		name     string
		selected []string
		showAll  bool
		want     []string
	}{
		{"show all without selection uses top five", nil, true, []string{"A", "B", "C", "D", "E"}},
		{"show all with selection uses selection", []string{"G"}, true, []string{"G"}},
		{"explicit selection", []string{"F", "B"}, false, []string{"F", "B"}},
		{"explicit empty selection", nil, false, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.DisplayCategories(summary, tt.selected, tt.showAll))
		})
	}
}

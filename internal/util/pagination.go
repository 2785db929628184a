package util

import "github.com/luci18530/GastX/internal/domain"

// TotalPages returns ceil(total / pageSize), 0 for an empty list
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// ClampPageSize bounds a requested page size to [1, MaxPageSize],
// falling back to DefaultPageSize when unset
func ClampPageSize(pageSize int) int {
	if pageSize < 1 {
		return domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		return domain.MaxPageSize
	}
	return pageSize
}

// Paginate returns the 1-indexed page of items. Out-of-range page numbers are
// clamped into [1, max(1, totalPages)] instead of yielding an empty page.
func Paginate[T any](items []T, page, pageSize int) domain.Page[T] {
	pageSize = ClampPageSize(pageSize)
	total := len(items)
	totalPages := TotalPages(total, pageSize)

	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return domain.Page[T]{
		Items:      pageItems,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		PageWindow: PageWindow(totalPages),
	}
}

// PageWindow returns the page buttons offered to the client: the first
// min(PageWindowSize, totalPages) page numbers
func PageWindow(totalPages int) []int {
	n := totalPages
	if n > domain.PageWindowSize {
		n = domain.PageWindowSize
	}
	if n < 0 {
		n = 0
	}
	window := make([]int, n)
	for i := range window {
		window[i] = i + 1
	}
	return window
}

package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// PageWindowSize is the number of page buttons offered to the client
	PageWindowSize = 5
)

type Page[T any] struct {
	Items      []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int   `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
	PageWindow []int `json:"pageWindow"`
}

type PaginatedTransactions = Page[Transaction]

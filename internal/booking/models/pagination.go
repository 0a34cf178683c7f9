package models

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	// MinPageSize is a floor, not a default cap; there is no upper bound.
	MinPageSize = 10
)

// PageRequest is a normalized page/pageSize pair.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest clamps page to at least 1 and pageSize to at least MinPageSize.
func NewPageRequest(page, pageSize int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit is the maximum number of rows on this page.
func (p PageRequest) Limit() int {
	return p.PageSize
}

// TotalPages uses floor division: 25 rows at size 10 reports 2 pages even though
// page 3 holds the last 5 rows. Consumers depend on this count.
func TotalPages(totalRows, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return totalRows / pageSize
}

// PaginatedResult is one page of T with its paging metadata.
type PaginatedResult[T any] struct {
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
	AllPages int `json:"allPages"`
	Data     []T `json:"data"`
}

// NewPaginatedResult assembles a page, never returning a nil Data slice.
func NewPaginatedResult[T any](req PageRequest, totalRows int, data []T) *PaginatedResult[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResult[T]{
		PageNum:  req.Page,
		PageSize: req.PageSize,
		AllPages: TotalPages(totalRows, req.PageSize),
		Data:     data,
	}
}

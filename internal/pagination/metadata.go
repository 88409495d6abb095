package pagination

// PaginationMeta contains metadata about paginated results.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta creates pagination metadata for a page of totalCount items.
// A non-positive pageSize is treated as a single page holding everything.
func NewPaginationMeta(currentPage, pageSize, totalCount int) PaginationMeta {
	if pageSize <= 0 {
		pageSize = totalCount
	}
	if currentPage < MinPage {
		currentPage = MinPage
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = pageCount(totalCount, pageSize)
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > MinPage,
		HasNext:     currentPage < totalPages,
	}
}

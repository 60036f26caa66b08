package pagination

// Meta describes one page of a paginated result for structured output.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta builds page metadata for the given page of a sequence of totalItems.
// The page number is reported as requested, even past the last page, so
// callers can tell an out-of-range request from an empty result.
func NewMeta(pageNumber, pageSize, totalItems int) Meta {
	if pageNumber < MinPage {
		pageNumber = MinPage
	}
	totalPages := TotalPages(totalItems, pageSize)

	return Meta{
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: pageNumber > 1,
		HasNext:     pageNumber < totalPages,
	}
}

// MetaFor builds page metadata from validated Params.
func MetaFor(params Params, totalItems int) Meta {
	return NewMeta(params.Page, params.PageSize, totalItems)
}

package pagination

// Page returns the items on the 1-based page pageNumber, i.e. the slice
// [(pageNumber-1)*pageSize, pageNumber*pageSize) clipped to len(items).
// A page outside the available range yields an empty slice, never a panic.
// The returned slice shares the backing array of items.
func Page[T any](items []T, pageNumber, pageSize int) []T {
	if pageSize < MinPageSize || pageNumber < MinPage {
		return []T{}
	}

	// Compare page indices first so huge page numbers cannot overflow start.
	if len(items) == 0 || pageNumber > TotalPages(len(items), pageSize) {
		return []T{}
	}

	start := (pageNumber - 1) * pageSize
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}

	return items[start:end:end]
}

// TotalPages returns ceil(totalItems/pageSize) with a floor of one page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize < MinPageSize || totalItems <= 0 {
		return 1
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// ClampPage bounds pageNumber to [1, TotalPages(totalItems, pageSize)].
func ClampPage(pageNumber, totalItems, pageSize int) int {
	if pageNumber < MinPage {
		return MinPage
	}
	if last := TotalPages(totalItems, pageSize); pageNumber > last {
		return last
	}
	return pageNumber
}

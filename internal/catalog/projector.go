package catalog

// MaxVisiblePages is the maximum number of page links in the pagination window.
const MaxVisiblePages = 5

// Projection is the visible page of the filtered view plus its metadata.
//
// RangeStart and RangeEnd are 1-based and reported even for an empty view,
// in which case RangeStart > RangeEnd. Use Empty to special-case display.
type Projection struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
	RangeStart int       `json:"rangeStart"`
	RangeEnd   int       `json:"rangeEnd"`
	TotalCount int       `json:"totalCount"`
}

// Empty reports whether the range covers no products.
func (p Projection) Empty() bool {
	return p.RangeStart > p.RangeEnd
}

// Pagination describes the pagination controls for a page.
type Pagination struct {
	Pages   []int `json:"pages"`
	Current int   `json:"current"`
	HasPrev bool  `json:"hasPrev"`
	HasNext bool  `json:"hasNext"`
}

// TotalPages returns max(1, ceil(count/pageSize)).
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Project computes the page slice of filtered for currentPage and pageSize.
// A slice that would start beyond the end yields no items; callers clamp
// currentPage or tolerate the empty page.
func Project(filtered []Product, currentPage, pageSize int) Projection {
	total := len(filtered)
	proj := Projection{
		Page:       currentPage,
		PageSize:   pageSize,
		TotalPages: TotalPages(total, pageSize),
		TotalCount: total,
		Items:      []Product{},
	}
	if pageSize <= 0 {
		return proj
	}

	start := (currentPage - 1) * pageSize
	proj.RangeStart = start + 1
	proj.RangeEnd = min(proj.RangeStart+pageSize-1, total)

	if start < 0 || start >= total {
		return proj
	}
	end := min(start+pageSize, total)
	proj.Items = cloneProducts(filtered[start:end])
	return proj
}

// PageWindow returns up to MaxVisiblePages page numbers centered on
// currentPage and clamped to [1, totalPages], plus previous/next flags.
func PageWindow(currentPage, totalPages int) Pagination {
	start := max(1, currentPage-MaxVisiblePages/2)
	end := min(totalPages, start+MaxVisiblePages-1)
	start = max(1, end-MaxVisiblePages+1)

	pages := make([]int, 0, MaxVisiblePages)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return Pagination{
		Pages:   pages,
		Current: currentPage,
		HasPrev: currentPage > 1,
		HasNext: currentPage < totalPages,
	}
}

// ChangePage returns requested when it lies within [1, totalPages],
// otherwise current unchanged.
func ChangePage(current, requested, totalPages int) int {
	if requested < 1 || requested > totalPages {
		return current
	}
	return requested
}

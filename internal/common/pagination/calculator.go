package pagination

// Window is the slice of a result set that one page covers.
type Window struct {
	Page     int // Effective 1-based page number
	PageSize int
	Offset   int
	LastPage int // 0 when the result set is empty
}

// Limit returns the number of rows to fetch for the window.
func (w Window) Limit() int {
	return w.PageSize
}

// Paginate computes the window for page over total items.
//
// Pages <= 0 are treated as page 1. A page beyond LastPage is not an error:
// its offset simply lies past the end and the page comes back empty.
// pageSize must be positive.
//
// Examples:
//   - total 7, page 2, size 3 -> offset 3, last page 3
//   - total 0, page 1, size 3 -> offset 0, last page 0
//   - total 7, page 0, size 3 -> page 1, offset 0
func Paginate(total int64, page, pageSize int) Window {
	if page < 1 {
		page = 1
	}
	return Window{
		Page:     page,
		PageSize: pageSize,
		Offset:   CalculateOffset(page, pageSize),
		LastPage: CalculateLastPage(total, pageSize),
	}
}

// CalculateOffset returns max(0, page-1) * limit.
func CalculateOffset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}

// CalculateLastPage returns ceil(total / limit), 0 for an empty set.
func CalculateLastPage(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	// Ceiling division: (total + limit - 1) / limit
	return int((total + int64(limit) - 1) / int64(limit))
}

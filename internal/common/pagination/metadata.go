package pagination

// Metadata describes one page of a response.
type Metadata struct {
	Total    int64 `json:"total"`     // Items across all pages
	Page     int   `json:"page"`      // Current page number (1-based)
	PageSize int   `json:"page_size"` // Items per page
	LastPage int   `json:"last_page"` // 0 when there are no items
}

// NewMetadata builds response metadata from a computed window.
func NewMetadata(w Window, total int64) Metadata {
	return Metadata{
		Total:    total,
		Page:     w.Page,
		PageSize: w.PageSize,
		LastPage: w.LastPage,
	}
}

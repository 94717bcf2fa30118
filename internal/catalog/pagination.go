package catalog

import "github.com/MKhiriev/go-news-kiosk/models"

// DefaultPageSize is the number of articles per feed page.
const DefaultPageSize = 6

// Paginate returns the 1-based page of items. A non-positive size falls back
// to [DefaultPageSize]; page is clamped into [1, TotalPages]. An empty input
// yields page 1 of 0 with no items.
func Paginate[T any](items []T, page, size int) models.Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	switch {
	case page < 1:
		page = 1
	case totalPages > 0 && page > totalPages:
		page = totalPages
	case totalPages == 0:
		page = 1
	}

	start := min((page-1)*size, total)
	end := min(start+size, total)

	return models.Page[T]{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

package util

// DefaultPageSize is the number of questions shown per page.
const DefaultPageSize = 10

// Paginate returns the 1-based page of items. Out-of-range pages yield an empty slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

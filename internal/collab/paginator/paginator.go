// Package paginator splits a slice of results into fixed-size pages, the
// same shape as the original Paginator/IteratorRange pair but expressed
// with Go generics instead of iterator ranges.
package paginator

// Page is one slice of the paginated input. It aliases into the
// original slice; callers must not rely on it outliving mutation of the
// source.
type Page[T any] []T

// Paginate splits items into pages of at most pageSize elements each.
// The last page may be shorter. Panics if pageSize is not positive.
func Paginate[T any](items []T, pageSize int) []Page[T] {
	if pageSize < 1 {
		panic("paginator: pageSize must be positive")
	}
	var pages []Page[T]
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, Page[T](items[start:end]))
	}
	return pages
}

package listing

import (
	"fmt"
	"slices"
)

// DefaultPageSize is used when a requested page size is not offered.
const DefaultPageSize = 10

// PageSizes are the page sizes offered by the console.
var PageSizes = []int{10, 25, 50}

// ValidPageSize reports whether size is one of PageSizes.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizes, size)
}

// PageWindow is the requested page (1-based) and page size.
type PageWindow struct {
	Page int
	Size int
}

// Page is one slice of a filtered and sorted list plus its metadata.
// Start and End are zero-based, End exclusive: 0 <= Start <= End <= TotalItems.
type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	TotalItems int
	TotalPages int
	Start      int
	End        int
}

// DisplayRange renders "start+1–end of N", or "0 of 0" for an empty list.
func (p Page[T]) DisplayRange() string {
	if p.TotalItems == 0 {
		return "0 of 0"
	}
	return fmt.Sprintf("%d–%d of %d", p.Start+1, p.End, p.TotalItems)
}

// Paginate clamps w.Page to [1, TotalPages] and slices items accordingly.
func Paginate[T any](items []T, w PageWindow) Page[T] {
	size := w.Size
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	page := w.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := min(start+size, total)

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

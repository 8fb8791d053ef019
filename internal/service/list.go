package service

import (
	"slices"

	"github.com/carson-networks/cashti-console/internal/export"
	"github.com/carson-networks/cashti-console/internal/listing"
)

// ListQuery is one request for a page of a console list.
type ListQuery struct {
	Criteria  listing.Criteria
	Sort      listing.SortSpec
	Window    listing.PageWindow
	Selected  []string
	ViewToken string
}

// ListResult is a rendered page plus the state the browser sends back next time.
type ListResult[T any] struct {
	Page      listing.Page[T]
	Sort      listing.SortSpec
	Selected  []string
	ViewToken string
	Matched   int
	Fetched   int
}

// ExportQuery selects what goes into a CSV download. A non-empty Selected
// limits the export to those record IDs, otherwise every match is exported.
type ExportQuery struct {
	Criteria listing.Criteria
	Sort     listing.SortSpec
	Selected []string
}

// Export is a finished CSV download.
type Export struct {
	FileName    string
	ContentType string
	Body        string
	Rows        int
}

func runList[T any](items []T, q ListQuery, acc listing.Accessor[T], keys listing.SortKeys[T]) ListResult[T] {
	q.Sort = normalizeSort(q.Sort, keys)
	state := listing.Reconcile(q.ViewToken, listing.ViewState{
		Criteria: q.Criteria,
		Sort:     q.Sort,
		Window:   q.Window,
		Selected: q.Selected,
	})

	matched := listing.Filter(items, state.Criteria, acc)
	sorted := listing.Sort(matched, state.Sort, keys)
	page := listing.Paginate(sorted, state.Window)
	state.Window = listing.PageWindow{Page: page.Page, Size: page.Size}

	return ListResult[T]{
		Page:      page,
		Sort:      state.Sort,
		Selected:  state.Selected,
		ViewToken: state.Token().String(),
		Matched:   len(matched),
		Fetched:   len(items),
	}
}

func runExport[T any](items []T, q ExportQuery, acc listing.Accessor[T], keys listing.SortKeys[T], id func(T) string, columns []export.Column[T]) (string, int) {
	rows := listing.Sort(listing.Filter(items, q.Criteria, acc), normalizeSort(q.Sort, keys), keys)
	if len(q.Selected) > 0 {
		rows = slices.DeleteFunc(rows, func(item T) bool {
			return !slices.Contains(q.Selected, id(item))
		})
	}
	return export.CSV(rows, columns), len(rows)
}

// normalizeSort resolves unknown keys to the default and an unset
// direction to descending.
func normalizeSort[T any](s listing.SortSpec, keys listing.SortKeys[T]) listing.SortSpec {
	return listing.SortSpec{
		Key:       keys.Resolve(s.Key),
		Direction: listing.ParseDirection(string(s.Direction)),
	}
}

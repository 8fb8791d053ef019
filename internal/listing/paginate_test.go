package listing

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

func TestPaginate_ConcatenatedPagesEqualTheList(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 49, 50, 51, 137} {
		for _, size := range PageSizes {
			items := numbered(n)
			first := Paginate(items, PageWindow{Page: 1, Size: size})

			var all []string
			for p := 1; p <= first.TotalPages; p++ {
				page := Paginate(items, PageWindow{Page: p, Size: size})
				assert.LessOrEqual(t, 0, page.Start)
				assert.LessOrEqual(t, page.Start, page.End)
				assert.LessOrEqual(t, page.End, page.TotalItems)
				all = append(all, page.Items...)
			}
			if n == 0 {
				assert.Empty(t, all)
				continue
			}
			if diff := cmp.Diff(items, all); diff != "" {
				t.Errorf("n=%d size=%d (-want +got):\n%s", n, size, diff)
			}
		}
	}
}

func TestPaginate_ClampsPage(t *testing.T) {
	items := numbered(23)

	low := Paginate(items, PageWindow{Page: -3, Size: 10})
	assert.Equal(t, 1, low.Page)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, low.Items)

	high := Paginate(items, PageWindow{Page: 99, Size: 10})
	assert.Equal(t, 3, high.Page)
	assert.Equal(t, 3, high.TotalPages)
	assert.Equal(t, []string{"21", "22", "23"}, high.Items)
	assert.Equal(t, "21–23 of 23", high.DisplayRange())
}

func TestPaginate_InvalidSizeFallsBackToDefault(t *testing.T) {
	page := Paginate(numbered(30), PageWindow{Page: 1, Size: 7})
	assert.Equal(t, DefaultPageSize, page.Size)
	assert.Len(t, page.Items, DefaultPageSize)
}

func TestPaginate_EmptyList(t *testing.T) {
	page := Paginate([]string{}, PageWindow{Page: 4, Size: 25})
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
	assert.Empty(t, page.Items)
	assert.Equal(t, "0 of 0", page.DisplayRange())
}

func TestPaginate_FilterSortPaginateScenario(t *testing.T) {
	rows := []row{
		{ID: "a", Name: "Ana", Email: "ana@x.com", Active: true, At: at("2024-03-01T00:00:00Z")},
		{ID: "b", Name: "Bo", Email: "bo@x.com", Active: false, At: at("2024-03-02T00:00:00Z")},
	}

	filtered := Filter(rows, Criteria{Query: "ana", Status: "active"}, rowAccessor)
	sorted := Sort(filtered, SortSpec{Key: "date", Direction: Descending}, rowSortKeys)
	page := Paginate(sorted, PageWindow{Page: 1, Size: 10})

	assert.Equal(t, []string{"a"}, ids(page.Items))
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, "1–1 of 1", page.DisplayRange())
}

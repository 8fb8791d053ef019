package export

import (
	"strings"
)

// Column is one CSV column: a fixed header and a per-record extraction.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// CSV renders a header row followed by one row per item. Rows are joined
// with "\n" and the document has no trailing newline.
func CSV[T any](items []T, columns []Column[T]) string {
	var b strings.Builder

	for i, c := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteCell(c.Header))
	}

	for _, item := range items {
		b.WriteByte('\n')
		for i, c := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteCell(cellValue(item, c)))
		}
	}

	return b.String()
}

// cellValue extracts one cell. A failing extraction renders an empty cell.
func cellValue[T any](item T, c Column[T]) (v string) {
	defer func() {
		if recover() != nil {
			v = ""
		}
	}()
	if c.Value == nil {
		return ""
	}
	return c.Value(item)
}

// quoteCell quotes cells containing a double quote, comma or newline and
// doubles inner quotes. Other cells are emitted as is.
func quoteCell(s string) string {
	if !strings.ContainsAny(s, "\",\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

package listing

import (
	"slices"
	"strings"
)

// Direction is the sort direction of a SortSpec.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" in any case. Anything else is descending,
// which is the console's default.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Ascending)) {
		return Ascending
	}
	return Descending
}

// SortSpec orders a list by a single key.
type SortSpec struct {
	Key       string
	Direction Direction
}

// Comparator returns a negative number when a sorts before b in ascending order.
type Comparator[T any] func(a, b T) int

// SortKeys is the set of keys a record type can be sorted by.
type SortKeys[T any] struct {
	Default string
	Keys    map[string]func() Comparator[T]
}

// Resolve returns the key that will actually be used for spec.
func (k SortKeys[T]) Resolve(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	if _, ok := k.Keys[key]; ok {
		return key
	}
	return k.Default
}

// Sort returns a stably sorted copy of items. Records comparing equal keep
// their input order regardless of direction.
func Sort[T any](items []T, spec SortSpec, keys SortKeys[T]) []T {
	out := slices.Clone(items)
	build, ok := keys.Keys[keys.Resolve(spec.Key)]
	if !ok {
		return out
	}

	cmp := build()
	sign := 1
	if spec.Direction == Descending {
		sign = -1
	}
	slices.SortStableFunc(out, func(a, b T) int {
		return sign * cmp(a, b)
	})
	return out
}

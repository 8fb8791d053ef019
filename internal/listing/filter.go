package listing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Accessor tells the filter how to read the constrained fields of a record
// type. A nil function means the record type has no such field and any
// criteria set on it are ignored.
type Accessor[T any] struct {
	SearchFields func(T) []string
	Status       func(T) string
	KYCStatus    func(T) string
	Type         func(T) string
	Timestamp    func(T) *time.Time
	Amount       func(T) *decimal.Decimal
}

type predicate[T any] func(T) bool

// Filter returns the records satisfying every active constraint in c,
// preserving their relative order. The input slice is not modified.
func Filter[T any](items []T, c Criteria, acc Accessor[T]) []T {
	preds := acc.predicates(c)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

// matches evaluates one record. A panic inside a predicate drops the record
// instead of failing the whole list.
func matches[T any](item T, preds []predicate[T]) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	for _, p := range preds {
		if !p(item) {
			return false
		}
	}
	return true
}

func (acc Accessor[T]) predicates(c Criteria) []predicate[T] {
	var preds []predicate[T]

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" && acc.SearchFields != nil {
		preds = append(preds, func(item T) bool {
			for _, field := range acc.SearchFields(item) {
				if strings.Contains(strings.ToLower(field), q) {
					return true
				}
			}
			return false
		})
	}

	if !isUnconstrained(c.Status) && acc.Status != nil {
		preds = append(preds, equalFold(acc.Status, c.Status))
	}
	if !isUnconstrained(c.KYCStatus) && acc.KYCStatus != nil {
		preds = append(preds, equalFold(acc.KYCStatus, c.KYCStatus))
	}
	if !isUnconstrained(c.Type) && acc.Type != nil {
		preds = append(preds, equalFold(acc.Type, c.Type))
	}

	if c.Dates.Active() && acc.Timestamp != nil {
		r := c.Dates
		preds = append(preds, func(item T) bool {
			ts := acc.Timestamp(item)
			if ts == nil {
				return false
			}
			if r.Start != nil && ts.Before(*r.Start) {
				return false
			}
			if r.End != nil && ts.After(*r.End) {
				return false
			}
			return true
		})
	}

	if c.Amounts.Active() && acc.Amount != nil {
		r := c.Amounts
		preds = append(preds, func(item T) bool {
			amount := acc.Amount(item)
			if r.Min != nil && (amount == nil || amount.LessThan(*r.Min)) {
				return false
			}
			if r.Max != nil && (amount == nil || amount.GreaterThan(*r.Max)) {
				return false
			}
			return true
		})
	}

	return preds
}

func equalFold[T any](field func(T) string, want string) predicate[T] {
	want = strings.TrimSpace(want)
	return func(item T) bool {
		return strings.EqualFold(field(item), want)
	}
}

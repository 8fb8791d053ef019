package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AllValues is the sentinel the console UI sends for "no constraint".
const AllValues = "all"

const dateLayout = "2006-01-02"

// DateRange bounds a timestamp. Nil bounds are open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Active reports whether either bound is set.
func (r DateRange) Active() bool {
	return r.Start != nil || r.End != nil
}

// AmountRange bounds a numeric field. Nil bounds are open.
type AmountRange struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// Active reports whether either bound is set.
func (r AmountRange) Active() bool {
	return r.Min != nil || r.Max != nil
}

// Criteria is the set of constraints an admin has configured on a list.
// A zero value, empty string or "all" for any field means "no constraint".
type Criteria struct {
	Query     string
	Status    string
	KYCStatus string
	Type      string
	Dates     DateRange
	Amounts   AmountRange
}

func isUnconstrained(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, AllValues)
}

// ParseDateRange builds inclusive day bounds from YYYY-MM-DD strings.
// The end bound is moved to 23:59:59.999 so the whole end day is included.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}

	var r DateRange
	if s := strings.TrimSpace(start); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return DateRange{}, errors.New("invalid start date " + s)
		}
		r.Start = &t
	}
	if e := strings.TrimSpace(end); e != "" {
		t, err := time.ParseInLocation(dateLayout, e, loc)
		if err != nil {
			return DateRange{}, errors.New("invalid end date " + e)
		}
		t = EndOfDay(t)
		r.End = &t
	}
	return r, nil
}

// EndOfDay returns 23:59:59.999 on t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DatePreset names the quick date filters offered next to the custom range.
type DatePreset string

const (
	DatePresetAll    DatePreset = "all"
	DatePresetToday  DatePreset = "today"
	DatePresetWeek   DatePreset = "week"
	DatePresetMonth  DatePreset = "month"
	DatePresetYear   DatePreset = "year"
	DatePresetCustom DatePreset = "custom"
)

// ResolvePreset turns a preset into a concrete range relative to now.
// Custom uses the given range as is; unknown presets mean no constraint.
func ResolvePreset(preset DatePreset, now time.Time, custom DateRange) DateRange {
	switch preset {
	case DatePresetToday:
		start := startOfDay(now)
		end := EndOfDay(now)
		return DateRange{Start: &start, End: &end}
	case DatePresetWeek:
		start := now.Add(-7 * 24 * time.Hour)
		return DateRange{Start: &start}
	case DatePresetMonth:
		start := startOfDay(now).AddDate(0, -1, 0)
		return DateRange{Start: &start}
	case DatePresetYear:
		start := startOfDay(now).AddDate(-1, 0, 0)
		return DateRange{Start: &start}
	case DatePresetCustom:
		return custom
	default:
		return DateRange{}
	}
}

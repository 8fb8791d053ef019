package records

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp accepts the timestamp shapes the upstream API emits:
// RFC 3339, ISO without a zone (read as UTC) and bare dates. Anything
// else, including the empty string, yields nil.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ParseAmount parses a decimal, returning nil for blank or non-numeric input.
func ParseAmount(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

var null = []byte("null")

// text decodes a JSON string, number or boolean into its text form. The
// upstream API is not consistent about whether ids are numbers or strings.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = text(s)
		return nil
	}
	*t = text(b)
	return nil
}

// amount decodes a string or number into a decimal. Non-numeric values
// decode to nil instead of failing the whole record.
type amount struct {
	v *decimal.Decimal
}

func (a *amount) UnmarshalJSON(b []byte) error {
	a.v = nil
	var t text
	if err := t.UnmarshalJSON(b); err != nil {
		return nil
	}
	a.v = ParseAmount(string(t))
	return nil
}

// timestamp decodes a string timestamp leniently; see ParseTimestamp.
type timestamp struct {
	v *time.Time
}

func (ts *timestamp) UnmarshalJSON(b []byte) error {
	ts.v = nil
	var t text
	if err := t.UnmarshalJSON(b); err != nil {
		return nil
	}
	ts.v = ParseTimestamp(string(t))
	return nil
}

// flag decodes booleans that sometimes arrive as null.
type flag bool

func (f *flag) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		*f = false
		return nil
	}
	*f = flag(v)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

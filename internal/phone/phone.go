package phone

import (
	"strings"
)

// minDigits applies to countries without a specific rule.
const minDigits = 7

type rule struct {
	min, max int
	// leading lists the allowed first digits; empty means any.
	leading string
}

func (r rule) national(digits string) bool {
	if len(digits) < r.min || len(digits) > r.max {
		return false
	}
	return r.leading == "" || strings.IndexByte(r.leading, digits[0]) >= 0
}

var rules = map[string]rule{
	"HT": {min: 8, max: 8, leading: "2345"},
	"US": {min: 10, max: 10},
	"CA": {min: 10, max: 10},
	"DO": {min: 10, max: 10},
	"MX": {min: 10, max: 10},
	"FR": {min: 9, max: 10},
	"CL": {min: 9, max: 9},
	"BR": {min: 10, max: 11},
}

// Digits strips everything but ASCII digits.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Validate reports whether the digits of raw match the national number rules
// of country. A number written with its dial code does not match.
func Validate(country, raw string) bool {
	country = strings.ToUpper(strings.TrimSpace(country))
	digits := Digits(raw)

	r, ok := rules[country]
	if !ok {
		return len(digits) >= minDigits
	}
	return r.national(digits)
}

// Format renders raw for display: "+509 XXXX-XXXX" for Haiti and
// "+1 (XXX) XXX-XXXX" for an 11 digit US or Canadian number. Anything it
// does not recognise is returned unchanged.
func Format(country, raw string) string {
	digits := Digits(raw)

	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "HT":
		if rest, ok := strings.CutPrefix(digits, "509"); ok && len(rest) == 8 {
			return "+509 " + rest[:4] + "-" + rest[4:]
		}
		if len(digits) == 8 {
			return "+509 " + digits[:4] + "-" + digits[4:]
		}
	case "US", "CA":
		if len(digits) == 11 && digits[0] == '1' {
			return "+1 (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
		}
	}
	return raw
}

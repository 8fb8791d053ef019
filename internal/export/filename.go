package export

import (
	"mime"
	"strings"
	"time"
)

// ContentType of every export.
const ContentType = "text/csv; charset=utf-8"

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// FileName builds "<subject>_<entity>.csv", for example "ana_transactions.csv".
// An empty subject yields "<entity>.csv".
func FileName(subject, entity string) string {
	entity = sanitize(entity)
	if entity == "" {
		entity = "export"
	}
	if subject = sanitize(subject); subject != "" {
		return subject + "_" + entity + ".csv"
	}
	return entity + ".csv"
}

// TimestampedFileName builds "<entity>_YYYY-MM-DD-HH-MM-SS.csv" from t in UTC.
func TimestampedFileName(entity string, t time.Time) string {
	return FileName(entity, t.UTC().Format("2006-01-02-15-04-05"))
}

// ContentDisposition is the attachment header value for name.
func ContentDisposition(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}

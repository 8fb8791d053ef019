package listing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
)

// ViewState is the transient list state of one console screen: what is
// filtered, how it is ordered, which page is shown and which rows are selected.
type ViewState struct {
	Criteria Criteria
	Sort     SortSpec
	Window   PageWindow
	Selected []string
}

// ViewToken is handed back to the browser with every page and sent again with
// the next request, so the server can tell what changed between the two.
type ViewToken struct {
	Fingerprint string
	PageSize    int
}

const tokenVersion = "v1"

// Token computes the token describing v.
func (v ViewState) Token() ViewToken {
	size := v.Window.Size
	if !ValidPageSize(size) {
		size = DefaultPageSize
	}
	return ViewToken{Fingerprint: fingerprint(v.Criteria, v.Sort), PageSize: size}
}

// String encodes the token as "v1.<fingerprint>.<size>".
func (t ViewToken) String() string {
	return tokenVersion + "." + t.Fingerprint + "." + strconv.Itoa(t.PageSize)
}

// ParseViewToken decodes a token. Malformed tokens report ok=false.
func ParseViewToken(s string) (ViewToken, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 || parts[0] != tokenVersion || parts[1] == "" {
		return ViewToken{}, false
	}
	size, err := strconv.Atoi(parts[2])
	if err != nil {
		return ViewToken{}, false
	}
	return ViewToken{Fingerprint: parts[1], PageSize: size}, true
}

// Reconcile applies the console's reset rules to next given the token of the
// previously rendered view: a change to the criteria or sort goes back to
// page 1, and a change to the page size also clears the row selection.
// An absent or malformed previous token leaves next untouched.
func Reconcile(previous string, next ViewState) ViewState {
	prev, ok := ParseViewToken(previous)
	if !ok {
		return next
	}

	cur := next.Token()
	if prev.PageSize != cur.PageSize {
		next.Window.Page = 1
		next.Selected = nil
		return next
	}
	if prev.Fingerprint != cur.Fingerprint {
		next.Window.Page = 1
	}
	return next
}

type fingerprintInput struct {
	Query     string    `json:"q"`
	Status    string    `json:"s"`
	KYCStatus string    `json:"k"`
	Type      string    `json:"t"`
	Start     string    `json:"ds"`
	End       string    `json:"de"`
	Min       string    `json:"min"`
	Max       string    `json:"max"`
	SortKey   string    `json:"sk"`
	SortDir   Direction `json:"sd"`
}

func normalizeConstraint(v string) string {
	if isUnconstrained(v) {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(v))
}

func fingerprint(c Criteria, s SortSpec) string {
	in := fingerprintInput{
		Query:     strings.ToLower(strings.TrimSpace(c.Query)),
		Status:    normalizeConstraint(c.Status),
		KYCStatus: normalizeConstraint(c.KYCStatus),
		Type:      normalizeConstraint(c.Type),
		SortKey:   strings.ToLower(strings.TrimSpace(s.Key)),
		SortDir:   s.Direction,
	}
	if c.Dates.Start != nil {
		in.Start = c.Dates.Start.UTC().Format("2006-01-02T15:04:05.000Z")
	}
	if c.Dates.End != nil {
		in.End = c.Dates.End.UTC().Format("2006-01-02T15:04:05.000Z")
	}
	if c.Amounts.Min != nil {
		in.Min = c.Amounts.Min.String()
	}
	if c.Amounts.Max != nil {
		in.Max = c.Amounts.Max.String()
	}

	raw, _ := json.Marshal(in)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:8])
}

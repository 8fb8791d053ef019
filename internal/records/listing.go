package records

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/carson-networks/cashti-console/internal/listing"
)

// UserAccessor binds User to the listing filter.
var UserAccessor = listing.Accessor[User]{
	SearchFields: func(u User) []string {
		fields := []string{u.Username, u.Email, u.FirstName, u.LastName, u.PhoneNumber}
		if u.Profile != nil {
			fields = append(fields, u.Profile.Phone)
		}
		return fields
	},
	Status:    User.StatusLabel,
	KYCStatus: func(u User) string { return string(u.KYC()) },
	Type:      func(u User) string { return u.UserType },
	Timestamp: func(u User) *time.Time { return u.JoinedAt },
	Amount:    User.Balance,
}

// TransactionAccessor binds Transaction to the listing filter.
var TransactionAccessor = listing.Accessor[Transaction]{
	SearchFields: func(t Transaction) []string {
		return []string{t.ID, t.Reference, t.SenderName, t.ReceiverName, t.Description}
	},
	Status:    func(t Transaction) string { return t.Status },
	Type:      func(t Transaction) string { return t.Type },
	Timestamp: func(t Transaction) *time.Time { return t.CreatedAt },
	Amount:    func(t Transaction) *decimal.Decimal { return t.Amount },
}

// Sort keys shared by the record types.
const (
	SortByDate    = "date"
	SortByName    = "name"
	SortByBalance = "balance"
	SortByAmount  = "amount"
	SortByStatus  = "status"
)

var epoch = time.Unix(0, 0).UTC()

func compareTime(a, b *time.Time) int {
	at, bt := epoch, epoch
	if a != nil {
		at = *a
	}
	if b != nil {
		bt = *b
	}
	return at.Compare(bt)
}

func compareDecimal(a, b *decimal.Decimal) int {
	av, bv := decimal.Zero, decimal.Zero
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av.Cmp(bv)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// UserSortKeys returns the user sort keys, collating names for tag.
// A collator is not safe for concurrent use, so each sort builds its own.
func UserSortKeys(tag language.Tag) listing.SortKeys[User] {
	return listing.SortKeys[User]{
		Default: SortByDate,
		Keys: map[string]func() listing.Comparator[User]{
			SortByDate: func() listing.Comparator[User] {
				return func(a, b User) int { return compareTime(a.JoinedAt, b.JoinedAt) }
			},
			SortByName: func() listing.Comparator[User] {
				c := collate.New(tag)
				return func(a, b User) int { return c.CompareString(a.DisplayName(), b.DisplayName()) }
			},
			SortByBalance: func() listing.Comparator[User] {
				return func(a, b User) int { return compareDecimal(a.Balance(), b.Balance()) }
			},
			SortByStatus: func() listing.Comparator[User] {
				return func(a, b User) int { return compareBool(a.Active, b.Active) }
			},
		},
	}
}

// TransactionSortKeys returns the transaction sort keys.
func TransactionSortKeys(tag language.Tag) listing.SortKeys[Transaction] {
	return listing.SortKeys[Transaction]{
		Default: SortByDate,
		Keys: map[string]func() listing.Comparator[Transaction]{
			SortByDate: func() listing.Comparator[Transaction] {
				return func(a, b Transaction) int { return compareTime(a.CreatedAt, b.CreatedAt) }
			},
			SortByAmount: func() listing.Comparator[Transaction] {
				return func(a, b Transaction) int { return compareDecimal(a.Amount, b.Amount) }
			},
			SortByStatus: func() listing.Comparator[Transaction] {
				return func(a, b Transaction) int { return strings.Compare(a.Status, b.Status) }
			},
			SortByName: func() listing.Comparator[Transaction] {
				c := collate.New(tag)
				return func(a, b Transaction) int { return c.CompareString(a.SenderName, b.SenderName) }
			},
		},
	}
}

// ParseLocale parses a BCP 47 tag, falling back to French which orders
// Kreyòl names acceptably.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.French
	}
	return tag
}


package service

import (
	"context"

	"github.com/carson-networks/cashti-console/internal/export"
	"github.com/carson-networks/cashti-console/internal/listing"
	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/phone"
	"github.com/carson-networks/cashti-console/internal/records"
)

// UserService backs the client list and client detail screens.
type UserService struct {
	upstream  Upstream
	processor Processor
	settings  Settings
}

func NewUserService(up Upstream, proc Processor, settings Settings) *UserService {
	return &UserService{upstream: up, processor: proc, settings: settings}
}

// clientCriteria scopes an unset type constraint to clients, the only user
// type the list screen shows unless asked otherwise.
func clientCriteria(c listing.Criteria) listing.Criteria {
	if c.Type == "" {
		c.Type = records.UserTypeClient
	}
	return c
}

// ListUsers fetches every user and returns the requested page.
func (s *UserService) ListUsers(ctx context.Context, token string, q ListQuery) (*ListResult[records.User], error) {
	users, err := s.upstream.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}

	q.Criteria = clientCriteria(q.Criteria)
	result := runList(users, q, records.UserAccessor, records.UserSortKeys(s.settings.Locale))
	return &result, nil
}

// ExportUsers renders the filtered users, or the selected subset, as CSV.
func (s *UserService) ExportUsers(ctx context.Context, token string, q ExportQuery) (*Export, error) {
	users, err := s.upstream.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}

	q.Criteria = clientCriteria(q.Criteria)
	body, rows := runExport(users, q, records.UserAccessor, records.UserSortKeys(s.settings.Locale),
		func(u records.User) string { return u.ID }, export.UserColumns)

	return &Export{
		FileName:    export.TimestampedFileName("users", s.settings.now()),
		ContentType: export.ContentType,
		Body:        body,
		Rows:        rows,
	}, nil
}

// ClientDetail is everything the client detail screen shows.
type ClientDetail struct {
	User               records.User
	KYC                records.KYCStatus
	PhoneDisplay       string
	Documents          []records.IdentityDocument
	RecentTransactions []records.Transaction
}

// GetClient loads one user with documents and recent transactions.
func (s *UserService) GetClient(ctx context.Context, token, userID string) (*ClientDetail, error) {
	id, err := ValidateID(userID)
	if err != nil {
		return nil, err
	}

	detail, err := s.upstream.UserDetails(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrNotFound
	}

	return &ClientDetail{
		User:               detail.User,
		KYC:                detail.User.KYC(),
		PhoneDisplay:       displayPhone(detail.User),
		Documents:          detail.IdentityDocuments,
		RecentTransactions: detail.RecentTransactions,
	}, nil
}

func displayPhone(u records.User) string {
	raw := u.Phone()
	if raw == "" || u.Profile == nil {
		return raw
	}
	if c, ok := phone.Resolve(u.Profile.Country); ok {
		return phone.Format(c.Code, raw)
	}
	return raw
}

// ListClientTransactions pages through one client's recent transactions.
func (s *UserService) ListClientTransactions(ctx context.Context, token, userID string, q ListQuery) (*ListResult[records.Transaction], error) {
	detail, err := s.GetClient(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	result := runList(detail.RecentTransactions, q, records.TransactionAccessor, records.TransactionSortKeys(s.settings.Locale))
	return &result, nil
}

// ExportClientTransactions renders one client's filtered transactions as
// "<client>_transactions.csv".
func (s *UserService) ExportClientTransactions(ctx context.Context, token, userID string, q ExportQuery) (*Export, error) {
	detail, err := s.GetClient(ctx, token, userID)
	if err != nil {
		return nil, err
	}

	body, rows := runExport(detail.RecentTransactions, q, records.TransactionAccessor, records.TransactionSortKeys(s.settings.Locale),
		func(t records.Transaction) string { return t.ID }, export.ClientTransactionColumns)

	subject := detail.User.Username
	if subject == "" {
		subject = detail.User.DisplayName()
	}
	return &Export{
		FileName:    export.FileName(subject, "transactions"),
		ContentType: export.ContentType,
		Body:        body,
		Rows:        rows,
	}, nil
}

// ToggleStatus activates or deactivates a client account.
func (s *UserService) ToggleStatus(ctx context.Context, token, userID string) (string, error) {
	id, err := ValidateID(userID)
	if err != nil {
		return "", err
	}

	action := &actions.ToggleUserStatus{Token: token, UserID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return "", err
	}
	return action.Message, nil
}

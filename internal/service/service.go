package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/text/language"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/storage/preferences"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

var (
	ErrInvalidID = errors.New("id must be a UUID")
	ErrNotAdmin  = errors.New("account is not an administrator")
	ErrNotFound  = errors.New("not found")
)

// Upstream is the read side of the Cash Ti Machann API the console uses.
type Upstream interface {
	Login(ctx context.Context, login, password string) (*upstream.Session, error)
	Profile(ctx context.Context, token string) (*upstream.Identity, error)
	ListUsers(ctx context.Context, token string) ([]records.User, error)
	UserDetails(ctx context.Context, token, userID string) (*records.UserDetail, error)
	ListTransactions(ctx context.Context, token string, limit int) (records.TransactionPage, error)
	ReviewDocuments(ctx context.Context, token string) (records.ReviewQueue, error)
}

// Processor runs mutations on the operator pool.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// PreferencesReader reads saved admin preferences.
type PreferencesReader interface {
	Find(ctx context.Context, adminID string) (*preferences.Preferences, error)
}

// Settings are the console-wide knobs the services need.
type Settings struct {
	Location   *time.Location
	Locale     language.Tag
	FetchLimit int
	Now        func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// Service holds all business logic services.
type Service struct {
	Auth         *AuthService
	Users        *UserService
	Transactions *TransactionService
	Documents    *DocumentService
	Wallets      *WalletService
	Preferences  *PreferencesService
}

// NewService wires every service to the same upstream client and operator.
func NewService(up Upstream, proc Processor, prefs PreferencesReader, settings Settings) *Service {
	return &Service{
		Auth:         NewAuthService(up),
		Users:        NewUserService(up, proc, settings),
		Transactions: NewTransactionService(up, proc, settings),
		Documents:    NewDocumentService(up, proc),
		Wallets:      NewWalletService(proc),
		Preferences:  NewPreferencesService(prefs, proc),
	}
}

// ValidateID checks that id is a UUID, the key format of the upstream API,
// and returns it in canonical form.
func ValidateID(id string) (string, error) {
	u, err := uuid.FromString(strings.TrimSpace(id))
	if err != nil {
		return "", ErrInvalidID
	}
	return u.String(), nil
}

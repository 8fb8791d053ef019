package records

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UserTypeClient is the user type shown by default in the console user list.
const UserTypeClient = "client"

// Profile is the KYC-relevant part of a user's profile.
type Profile struct {
	Phone              string
	City               string
	Country            string
	DocumentType       string
	DocumentNumber     string
	VerificationStatus string
	HasDocumentFront   bool
	HasDocumentBack    bool
	EmailVerified      bool
	PhoneVerified      bool
}

// Wallet is a user's wallet. Balance is nil when the upstream value is not numeric.
type Wallet struct {
	Balance   *decimal.Decimal
	Currency  string
	Active    bool
	CreatedAt *time.Time
}

// DocumentsSummary counts identity documents by review status.
type DocumentsSummary struct {
	Total    int `json:"total"`
	Verified int `json:"verified"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

// User is one row of the admin user list.
type User struct {
	ID          string
	Username    string
	Email       string
	FirstName   string
	LastName    string
	UserType    string
	PhoneNumber string
	Active      bool
	JoinedAt    *time.Time
	LastLogin   *time.Time
	Profile     *Profile
	Wallet      *Wallet
	Documents   DocumentsSummary
}

// FullName is "first last", trimmed.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName is the full name, falling back to the username.
func (u User) DisplayName() string {
	if n := u.FullName(); n != "" {
		return n
	}
	return u.Username
}

// Phone prefers the profile phone over the account phone number.
func (u User) Phone() string {
	if u.Profile != nil && u.Profile.Phone != "" {
		return u.Profile.Phone
	}
	return u.PhoneNumber
}

// Balance is the wallet balance or nil.
func (u User) Balance() *decimal.Decimal {
	if u.Wallet == nil {
		return nil
	}
	return u.Wallet.Balance
}

// StatusLabel is "active" or "inactive".
func (u User) StatusLabel() string {
	if u.Active {
		return "active"
	}
	return "inactive"
}

type profileJSON struct {
	Phone              string `json:"phone"`
	City               string `json:"city"`
	Country            string `json:"country"`
	CountryDisplay     string `json:"country_display"`
	DocumentType       string `json:"id_document_type"`
	DocumentNumber     string `json:"id_document_number"`
	DocumentFront      string `json:"id_document_front"`
	DocumentBack       string `json:"id_document_back"`
	VerificationStatus string `json:"verification_status"`
	KYCStatus          string `json:"kyc_status"`
	IsEmailVerified    flag   `json:"is_email_verified"`
	IsPhoneVerified    flag   `json:"is_phone_verified"`
	EmailVerified      flag   `json:"email_verified"`
	PhoneVerified      flag   `json:"phone_verified"`
}

type walletJSON struct {
	Balance   amount    `json:"balance"`
	Currency  string    `json:"currency"`
	IsActive  flag      `json:"is_active"`
	CreatedAt timestamp `json:"created_at"`
}

type userJSON struct {
	ID          text             `json:"id"`
	Username    string           `json:"username"`
	Email       string           `json:"email"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	UserType    string           `json:"user_type"`
	PhoneNumber string           `json:"phone_number"`
	IsActive    flag             `json:"is_active"`
	DateJoined  timestamp        `json:"date_joined"`
	LastLogin   timestamp        `json:"last_login"`
	Profile     *profileJSON     `json:"profile"`
	Wallet      *walletJSON      `json:"wallet"`
	Documents   DocumentsSummary `json:"identity_documents_summary"`
}

func (j userJSON) user() User {
	u := User{
		ID:          string(j.ID),
		Username:    j.Username,
		Email:       j.Email,
		FirstName:   j.FirstName,
		LastName:    j.LastName,
		UserType:    j.UserType,
		PhoneNumber: j.PhoneNumber,
		Active:      bool(j.IsActive),
		JoinedAt:    j.DateJoined.v,
		LastLogin:   j.LastLogin.v,
		Documents:   j.Documents,
	}
	if p := j.Profile; p != nil {
		u.Profile = &Profile{
			Phone:              p.Phone,
			City:               p.City,
			Country:            firstNonEmpty(p.CountryDisplay, p.Country),
			DocumentType:       p.DocumentType,
			DocumentNumber:     p.DocumentNumber,
			VerificationStatus: firstNonEmpty(p.VerificationStatus, p.KYCStatus),
			HasDocumentFront:   strings.TrimSpace(p.DocumentFront) != "",
			HasDocumentBack:    strings.TrimSpace(p.DocumentBack) != "",
			EmailVerified:      bool(p.IsEmailVerified || p.EmailVerified),
			PhoneVerified:      bool(p.IsPhoneVerified || p.PhoneVerified),
		}
	}
	if w := j.Wallet; w != nil {
		u.Wallet = &Wallet{
			Balance:   w.Balance.v,
			Currency:  w.Currency,
			Active:    bool(w.IsActive),
			CreatedAt: w.CreatedAt.v,
		}
	}
	return u
}

// UnmarshalJSON decodes the upstream user shape, normalizing loosely typed
// fields once here.
func (u *User) UnmarshalJSON(b []byte) error {
	var j userJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*u = j.user()
	return nil
}

package common

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashti-console/internal/records"
)

// User is the API response model for a row of the user list.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name" doc:"Full name, or username when no name is set"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"userType"`
	Status    string `json:"status" doc:"active or inactive"`
	KYCStatus string `json:"kycStatus" doc:"verified, pending or not_submitted"`
	Balance   string `json:"balance,omitempty" doc:"Decimal wallet balance"`
	Currency  string `json:"currency,omitempty"`
	JoinedAt  string `json:"joinedAt,omitempty" doc:"RFC3339 join date"`
}

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID           string `json:"id"`
	Reference    string `json:"reference,omitempty"`
	Type         string `json:"type"`
	TypeLabel    string `json:"typeLabel"`
	Status       string `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	Amount       string `json:"amount,omitempty" doc:"Decimal amount"`
	Fee          string `json:"fee,omitempty" doc:"Decimal fee"`
	Currency     string `json:"currency"`
	SenderName   string `json:"senderName,omitempty"`
	ReceiverName string `json:"receiverName,omitempty"`
	Description  string `json:"description,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func formatDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// NewUser converts a user record.
func NewUser(u records.User) User {
	out := User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.DisplayName(),
		Phone:     u.Phone(),
		UserType:  u.UserType,
		Status:    u.StatusLabel(),
		KYCStatus: string(u.KYC()),
		Balance:   formatDecimal(u.Balance()),
		JoinedAt:  formatTime(u.JoinedAt),
	}
	if u.Wallet != nil {
		out.Currency = u.Wallet.Currency
	}
	return out
}

// NewUsers converts a page of user records.
func NewUsers(users []records.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = NewUser(u)
	}
	return out
}

// NewTransaction converts a transaction record.
func NewTransaction(t records.Transaction) Transaction {
	return Transaction{
		ID:           t.ID,
		Reference:    t.Reference,
		Type:         t.Type,
		TypeLabel:    t.TypeLabel(),
		Status:       t.Status,
		StatusLabel:  t.StatusLabel(),
		Amount:       formatDecimal(t.Amount),
		Fee:          formatDecimal(t.Fee),
		Currency:     t.CurrencyOrDefault(),
		SenderName:   t.SenderName,
		ReceiverName: t.ReceiverName,
		Description:  t.Description,
		CreatedAt:    formatTime(t.CreatedAt),
	}
}

// NewTransactions converts a page of transaction records.
func NewTransactions(txs []records.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, t := range txs {
		out[i] = NewTransaction(t)
	}
	return out
}

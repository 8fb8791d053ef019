package records

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is shown when the upstream record carries none.
const DefaultCurrency = "HTG"

// Transaction is a wallet transaction, either from the admin transaction
// list or from a client's recent activity. Amounts are signed from the
// point of view of the client on the client view.
type Transaction struct {
	ID           string
	Reference    string
	Type         string
	DisplayType  string
	Status       string
	Amount       *decimal.Decimal
	Fee          *decimal.Decimal
	Currency     string
	SenderName   string
	ReceiverName string
	Description  string
	CreatedAt    *time.Time
}

var transactionTypeLabels = map[string]string{
	"send":         "Voye",
	"deposit":      "Depo",
	"withdrawal":   "Retrè",
	"request":      "Reqèt",
	"bill_payment": "Peman biznis",
}

var transactionStatusLabels = map[string]string{
	"completed": "Konfime",
	"pending":   "An analiz",
	"cancelled": "Anile",
	"failed":    "Echwe",
}

// TypeLabel is the Kreyòl label for the transaction type.
func (t Transaction) TypeLabel() string {
	if t.DisplayType != "" {
		return t.DisplayType
	}
	if l, ok := transactionTypeLabels[strings.ToLower(t.Type)]; ok {
		return l
	}
	if t.Type == "" {
		return "-"
	}
	return t.Type
}

// StatusLabel is the Kreyòl label for the transaction status.
func (t Transaction) StatusLabel() string {
	if l, ok := transactionStatusLabels[strings.ToLower(t.Status)]; ok {
		return l
	}
	return t.Status
}

// CurrencyOrDefault returns the currency, HTG when unset.
func (t Transaction) CurrencyOrDefault() string {
	if t.Currency == "" {
		return DefaultCurrency
	}
	return t.Currency
}

type transactionJSON struct {
	ID              text      `json:"id"`
	Reference       string    `json:"reference_number"`
	TransactionType string    `json:"transaction_type"`
	Type            string    `json:"type"`
	DisplayType     string    `json:"display_type"`
	Status          string    `json:"status"`
	Amount          amount    `json:"amount"`
	Fee             amount    `json:"fee"`
	Currency        string    `json:"currency"`
	SenderName      string    `json:"sender_name"`
	ReceiverName    string    `json:"receiver_name"`
	Description     string    `json:"description"`
	CreatedAt       timestamp `json:"created_at"`
}

// UnmarshalJSON accepts both the admin list shape (transaction_type) and
// the client activity shape (type).
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var j transactionJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*t = Transaction{
		ID:           string(j.ID),
		Reference:    j.Reference,
		Type:         firstNonEmpty(j.TransactionType, j.Type),
		DisplayType:  j.DisplayType,
		Status:       j.Status,
		Amount:       j.Amount.v,
		Fee:          j.Fee.v,
		Currency:     j.Currency,
		SenderName:   j.SenderName,
		ReceiverName: j.ReceiverName,
		Description:  j.Description,
		CreatedAt:    j.CreatedAt.v,
	}
	return nil
}

package export

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashti-console/internal/records"
)

func formatAmount(d *decimal.Decimal) string {
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

// UserColumns is the admin user list export.
var UserColumns = []Column[records.User]{
	{Header: "ID", Value: func(u records.User) string { return u.ID }},
	{Header: "Itilizatè", Value: func(u records.User) string { return u.Username }},
	{Header: "Non", Value: func(u records.User) string { return u.FullName() }},
	{Header: "Imèl", Value: func(u records.User) string { return u.Email }},
	{Header: "Telefòn", Value: records.User.Phone},
	{Header: "Tip", Value: func(u records.User) string { return u.UserType }},
	{Header: "Estati", Value: records.User.StatusLabel},
	{Header: "KYC", Value: func(u records.User) string { return string(u.KYC()) }},
	{Header: "Balans", Value: func(u records.User) string { return formatAmount(u.Balance()) }},
	{Header: "Dat", Value: func(u records.User) string { return formatTime(u.JoinedAt) }},
}

// TransactionColumns is the admin transaction list export.
var TransactionColumns = []Column[records.Transaction]{
	{Header: "ID", Value: func(t records.Transaction) string { return t.ID }},
	{Header: "Referans", Value: func(t records.Transaction) string { return t.Reference }},
	{Header: "Tip", Value: records.Transaction.TypeLabel},
	{Header: "Estati", Value: records.Transaction.StatusLabel},
	{Header: "Montan", Value: func(t records.Transaction) string { return formatAmount(t.Amount) }},
	{Header: "Frè", Value: func(t records.Transaction) string {
		if t.Fee == nil {
			return formatAmount(&decimal.Zero)
		}
		return formatAmount(t.Fee)
	}},
	{Header: "Deviz", Value: records.Transaction.CurrencyOrDefault},
	{Header: "Voye", Value: func(t records.Transaction) string { return t.SenderName }},
	{Header: "Resevwa", Value: func(t records.Transaction) string { return t.ReceiverName }},
	{Header: "Dat", Value: func(t records.Transaction) string { return formatTime(t.CreatedAt) }},
}

// ClientTransactionColumns is the export of one client's recent activity.
var ClientTransactionColumns = []Column[records.Transaction]{
	{Header: "Date", Value: func(t records.Transaction) string { return formatTime(t.CreatedAt) }},
	{Header: "Type", Value: func(t records.Transaction) string { return t.Type }},
	{Header: "Description", Value: func(t records.Transaction) string { return t.Description }},
	{Header: "Amount", Value: func(t records.Transaction) string { return formatAmount(t.Amount) }},
}

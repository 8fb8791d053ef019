package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashti-console/internal/records"
)

// ListUsers fetches every user known to the platform.
func (c *Client) ListUsers(ctx context.Context, token string) ([]records.User, error) {
	raw, err := c.authed(ctx, http.MethodGet, "/api/auth/admin/users/", token, nil)
	if err != nil {
		return nil, err
	}
	return records.DecodeList[records.User](raw)
}

// UserDetails fetches one user with recent transactions and documents.
func (c *Client) UserDetails(ctx context.Context, token, userID string) (*records.UserDetail, error) {
	raw, err := c.authed(ctx, http.MethodGet, "/api/auth/admin/user-details/"+url.PathEscape(userID)+"/", token, nil)
	if err != nil {
		return nil, err
	}
	var d records.UserDetail
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode user details: %w", err)
	}
	return &d, nil
}

// ListTransactions fetches up to limit of the most recent transactions.
func (c *Client) ListTransactions(ctx context.Context, token string, limit int) (records.TransactionPage, error) {
	path := "/api/transactions/admin/all/?page=1&limit=" + strconv.Itoa(limit)
	raw, err := c.authed(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return records.TransactionPage{}, err
	}
	return records.DecodeTransactionPage(raw)
}

// TransactionAction is an admin decision on a transaction.
type TransactionAction string

const (
	TransactionVerify TransactionAction = "verify"
	TransactionCancel TransactionAction = "cancel"
	TransactionBlock  TransactionAction = "block"
)

// Valid reports whether the upstream API knows the action.
func (a TransactionAction) Valid() bool {
	switch a {
	case TransactionVerify, TransactionCancel, TransactionBlock:
		return true
	}
	return false
}

// UpdateTransactionStatus applies an admin action and returns the updated transaction.
func (c *Client) UpdateTransactionStatus(ctx context.Context, token, id string, action TransactionAction, notes string) (*records.Transaction, error) {
	in := struct {
		Action TransactionAction `json:"action"`
		Notes  string            `json:"notes"`
	}{Action: action, Notes: notes}

	raw, err := c.authed(ctx, http.MethodPatch, "/api/transactions/admin/"+url.PathEscape(id)+"/status/", token, in)
	if err != nil {
		return nil, err
	}
	var t records.Transaction
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return &t, nil
}

// ToggleUserStatus activates or deactivates a user account.
func (c *Client) ToggleUserStatus(ctx context.Context, token, userID string) (string, error) {
	raw, err := c.authed(ctx, http.MethodPost, "/api/auth/admin/toggle-user-status/"+url.PathEscape(userID)+"/", token, struct{}{})
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// WalletOperation is the direction of a manual wallet adjustment.
type WalletOperation string

const (
	WalletCredit WalletOperation = "credit"
	WalletDebit  WalletOperation = "debit"
)

// WalletAdjustment is a manual credit or debit of a user's wallet.
type WalletAdjustment struct {
	Operation   WalletOperation `json:"operation"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// AdjustWallet credits or debits a user's wallet.
func (c *Client) AdjustWallet(ctx context.Context, token, userID string, adj WalletAdjustment) (string, error) {
	raw, err := c.authed(ctx, http.MethodPost, "/api/auth/admin/wallet-adjust/"+url.PathEscape(userID)+"/", token, adj)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// ToggleWallet blocks or unblocks a user's wallet.
func (c *Client) ToggleWallet(ctx context.Context, token, userID string) (string, error) {
	raw, err := c.authed(ctx, http.MethodPost, "/api/auth/admin/wallet-toggle/"+url.PathEscape(userID)+"/", token, struct{}{})
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// ReviewDocuments fetches the document review queue.
func (c *Client) ReviewDocuments(ctx context.Context, token string) (records.ReviewQueue, error) {
	raw, err := c.authed(ctx, http.MethodGet, "/api/auth/admin/review-documents/", token, nil)
	if err != nil {
		return records.ReviewQueue{}, err
	}
	return records.DecodeReviewQueue(raw)
}

// ApproveDocument marks a user's identity documents as verified.
func (c *Client) ApproveDocument(ctx context.Context, token, userID string) (string, error) {
	raw, err := c.authed(ctx, http.MethodPost, "/api/auth/admin/approve-document/"+url.PathEscape(userID)+"/", token, struct{}{})
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

// RejectDocument rejects a user's identity documents. documentID is optional.
func (c *Client) RejectDocument(ctx context.Context, token, userID, reason, documentID string) (string, error) {
	in := struct {
		Reason     string `json:"reason"`
		DocumentID string `json:"document_id,omitempty"`
	}{Reason: reason, DocumentID: documentID}

	raw, err := c.authed(ctx, http.MethodPost, "/api/auth/admin/reject-document/"+url.PathEscape(userID)+"/", token, in)
	if err != nil {
		return "", err
	}
	return message(raw), nil
}

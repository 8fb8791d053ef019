package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

var (
	ErrMissingTransaction = errors.New("transaction id is required")
	ErrBadStatusAction    = errors.New("action must be verify, cancel or block")
)

// UpdateTransactionStatus moves a transaction under review to its next state.
type UpdateTransactionStatus struct {
	Token         string
	TransactionID string
	Action        upstream.TransactionAction
	Notes         string

	Result *records.Transaction
}

func (a *UpdateTransactionStatus) Perform(ctx context.Context, env Env) error {
	if strings.TrimSpace(a.TransactionID) == "" {
		return ErrMissingTransaction
	}
	if !a.Action.Valid() {
		return ErrBadStatusAction
	}

	tx, err := env.Upstream.UpdateTransactionStatus(ctx, a.Token, a.TransactionID, a.Action, a.Notes)
	if err != nil {
		return err
	}
	a.Result = tx
	return nil
}

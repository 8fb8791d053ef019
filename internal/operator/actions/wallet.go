package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/carson-networks/cashti-console/internal/upstream"
)

var (
	ErrBadOperation   = errors.New("operation must be credit or debit")
	ErrAmountPositive = errors.New("amount must be greater than zero")
)

// AdjustWallet credits or debits a client's wallet.
type AdjustWallet struct {
	Token      string
	UserID     string
	Adjustment upstream.WalletAdjustment

	Message string
}

func (a *AdjustWallet) Perform(ctx context.Context, env Env) error {
	if strings.TrimSpace(a.UserID) == "" {
		return ErrMissingUser
	}
	switch a.Adjustment.Operation {
	case upstream.WalletCredit, upstream.WalletDebit:
	default:
		return ErrBadOperation
	}
	if !a.Adjustment.Amount.IsPositive() {
		return ErrAmountPositive
	}

	msg, err := env.Upstream.AdjustWallet(ctx, a.Token, a.UserID, a.Adjustment)
	if err != nil {
		return err
	}
	a.Message = msg
	return nil
}

// ToggleWallet freezes or unfreezes a client's wallet.
type ToggleWallet struct {
	Token  string
	UserID string

	Message string
}

func (a *ToggleWallet) Perform(ctx context.Context, env Env) error {
	if strings.TrimSpace(a.UserID) == "" {
		return ErrMissingUser
	}

	msg, err := env.Upstream.ToggleWallet(ctx, a.Token, a.UserID)
	if err != nil {
		return err
	}
	a.Message = msg
	return nil
}

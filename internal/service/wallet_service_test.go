package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

func TestWalletAdjust(t *testing.T) {
	proc := new(mockProcessor)
	proc.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.AdjustWallet) bool {
		return a.UserID == anaID &&
			a.Adjustment.Operation == upstream.WalletCredit &&
			a.Adjustment.Amount.Equal(decimal.RequireFromString("75.25"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.AdjustWallet).Message = "Balans ajiste"
	}).Return(nil)
	svc := NewWalletService(proc)

	msg, err := svc.Adjust(context.Background(), "tok", anaID, upstream.WalletAdjustment{
		Operation: upstream.WalletCredit,
		Amount:    decimal.RequireFromString("75.25"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Balans ajiste", msg)
}

func TestWalletToggle(t *testing.T) {
	proc := new(mockProcessor)
	proc.On("Process", mock.Anything, mock.AnythingOfType("*actions.ToggleWallet")).Return(nil)
	svc := NewWalletService(proc)

	_, err := svc.Toggle(context.Background(), "tok", boID)
	require.NoError(t, err)

	_, err = svc.Toggle(context.Background(), "tok", "")
	assert.ErrorIs(t, err, ErrInvalidID)
}

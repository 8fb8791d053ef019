package service

import (
	"context"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

// WalletService backs the wallet actions of the client detail screen.
type WalletService struct {
	processor Processor
}

func NewWalletService(proc Processor) *WalletService {
	return &WalletService{processor: proc}
}

// Adjust credits or debits a client's wallet.
func (s *WalletService) Adjust(ctx context.Context, token, userID string, adj upstream.WalletAdjustment) (string, error) {
	id, err := ValidateID(userID)
	if err != nil {
		return "", err
	}

	a := &actions.AdjustWallet{Token: token, UserID: id, Adjustment: adj}
	if err := s.processor.Process(ctx, a); err != nil {
		return "", err
	}
	return a.Message, nil
}

// Toggle freezes or unfreezes a client's wallet.
func (s *WalletService) Toggle(ctx context.Context, token, userID string) (string, error) {
	id, err := ValidateID(userID)
	if err != nil {
		return "", err
	}

	a := &actions.ToggleWallet{Token: token, UserID: id}
	if err := s.processor.Process(ctx, a); err != nil {
		return "", err
	}
	return a.Message, nil
}

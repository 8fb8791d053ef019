package actions

import (
	"context"

	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/storage"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

// Upstream is the set of Cash Ti Machann API mutations the actions drive.
type Upstream interface {
	ToggleUserStatus(ctx context.Context, token, userID string) (string, error)
	AdjustWallet(ctx context.Context, token, userID string, adj upstream.WalletAdjustment) (string, error)
	ToggleWallet(ctx context.Context, token, userID string) (string, error)
	ApproveDocument(ctx context.Context, token, userID string) (string, error)
	RejectDocument(ctx context.Context, token, userID, reason, documentID string) (string, error)
	UpdateTransactionStatus(ctx context.Context, token, id string, action upstream.TransactionAction, notes string) (*records.Transaction, error)
}

// Store opens write transactions on the console database.
type Store interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Env is what an action may touch while it runs on an operator.
type Env struct {
	Upstream Upstream
	Store    Store
}

type IAction interface {
	Perform(ctx context.Context, env Env) error
}

// withWriter runs fn inside a transaction, committing on success.
func withWriter(ctx context.Context, store Store, fn func(w *storage.Writer) error) error {
	writer, err := store.Write(ctx)
	if err != nil {
		return err
	}

	if err = fn(writer); err != nil {
		_ = writer.Rollback()
		return err
	}

	return writer.Commit()
}

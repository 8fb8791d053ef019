package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashti-console/internal/storage/preferences"
)

// Txn is the part of bob.Tx the Writer relies on.
type Txn interface {
	bob.Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx          Txn
	Preferences preferences.IPreferencesTable
}

func NewWriter(tx Txn) *Writer {
	return &Writer{
		tx:          tx,
		Preferences: preferences.NewTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}

package service

import (
	"context"

	"github.com/carson-networks/cashti-console/internal/export"
	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

const defaultFetchLimit = 1000

// TransactionService backs the admin transaction screen.
type TransactionService struct {
	upstream  Upstream
	processor Processor
	settings  Settings
}

func NewTransactionService(up Upstream, proc Processor, settings Settings) *TransactionService {
	return &TransactionService{upstream: up, processor: proc, settings: settings}
}

func (s *TransactionService) fetch(ctx context.Context, token string) ([]records.Transaction, error) {
	limit := s.settings.FetchLimit
	if limit < 1 {
		limit = defaultFetchLimit
	}
	page, err := s.upstream.ListTransactions(ctx, token, limit)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// ListTransactions fetches the most recent transactions and returns the requested page.
func (s *TransactionService) ListTransactions(ctx context.Context, token string, q ListQuery) (*ListResult[records.Transaction], error) {
	txs, err := s.fetch(ctx, token)
	if err != nil {
		return nil, err
	}

	result := runList(txs, q, records.TransactionAccessor, records.TransactionSortKeys(s.settings.Locale))
	return &result, nil
}

// ExportTransactions renders the filtered transactions, or the selected subset, as CSV.
func (s *TransactionService) ExportTransactions(ctx context.Context, token string, q ExportQuery) (*Export, error) {
	txs, err := s.fetch(ctx, token)
	if err != nil {
		return nil, err
	}

	body, rows := runExport(txs, q, records.TransactionAccessor, records.TransactionSortKeys(s.settings.Locale),
		func(t records.Transaction) string { return t.ID }, export.TransactionColumns)

	return &Export{
		FileName:    export.TimestampedFileName("transactions", s.settings.now()),
		ContentType: export.ContentType,
		Body:        body,
		Rows:        rows,
	}, nil
}

// UpdateStatus verifies, cancels or blocks a transaction.
func (s *TransactionService) UpdateStatus(ctx context.Context, token, transactionID string, action upstream.TransactionAction, notes string) (*records.Transaction, error) {
	id, err := ValidateID(transactionID)
	if err != nil {
		return nil, err
	}

	a := &actions.UpdateTransactionStatus{Token: token, TransactionID: id, Action: action, Notes: notes}
	if err := s.processor.Process(ctx, a); err != nil {
		return nil, err
	}
	return a.Result, nil
}

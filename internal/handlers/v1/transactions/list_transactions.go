package transactions

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	common.AuthHeader
	Body common.ListBody
}

// SortState is the sort applied to a page.
type SortState struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []common.Transaction `json:"transactions"`
	Page         common.PageMeta      `json:"page"`
	Sort         SortState            `json:"sort"`
	Selected     []string             `json:"selected"`
	ViewToken    string               `json:"viewToken"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ExportTransactionsInput is the Huma input for exporting transactions.
type ExportTransactionsInput struct {
	common.AuthHeader
	Body common.ExportBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, token string, q service.ListQuery) (*service.ListResult[records.Transaction], error)
	ExportTransactions(ctx context.Context, token string, q service.ExportQuery) (*service.Export, error)
}

// ListTransactionsHandler handles POST /v1/transactions/list and /v1/transactions/export.
type ListTransactionsHandler struct {
	TransactionService transactionLister
	Dates              common.Dates
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister, dates common.Dates) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc, Dates: dates}
}

// Register registers the list and export endpoints with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/list",
		Summary:     "List transactions",
		Description: "Filters, sorts and paginates the platform transactions.",
		Tags:        []string{"Transactions"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/export",
		Summary:     "Export transactions",
		Description: "Downloads the filtered transactions, or only the selected ones, as CSV.",
		Tags:        []string{"Transactions"},
	}, h.export)
}

func (h *ListTransactionsHandler) list(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	q, err := h.Dates.ListQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	res, err := h.TransactionService.ListTransactions(ctx, token, q)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "failed to list transactions")
	}
	logData.AddData("transactionCount", res.Fetched)
	logData.AddData("matchedCount", res.Matched)

	selected := res.Selected
	if selected == nil {
		selected = []string{}
	}
	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
		Transactions: common.NewTransactions(res.Page.Items),
		Page:         common.NewPageMeta(res.Page),
		Sort:         SortState{Key: res.Sort.Key, Direction: string(res.Sort.Direction)},
		Selected:     selected,
		ViewToken:    res.ViewToken,
	}}, nil
}

func (h *ListTransactionsHandler) export(ctx context.Context, input *ExportTransactionsInput) (*common.ExportOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	q, err := h.Dates.ExportQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("exportTransactionsMs")
	exp, err := h.TransactionService.ExportTransactions(ctx, token, q)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "failed to export transactions")
	}
	logData.AddData("rowCount", exp.Rows)

	return common.NewExportOutput(exp), nil
}

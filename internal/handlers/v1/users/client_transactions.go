package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/service"
)

// ListClientTransactionsInput is the Huma input for listing a client's transactions.
type ListClientTransactionsInput struct {
	common.AuthHeader
	ID   string `path:"id" doc:"User UUID"`
	Body common.ListBody
}

// ListClientTransactionsResponseBody is the response body for a client's transactions.
type ListClientTransactionsResponseBody struct {
	Transactions []common.Transaction `json:"transactions"`
	Page         common.PageMeta      `json:"page"`
	Sort         SortState            `json:"sort"`
	ViewToken    string               `json:"viewToken"`
}

// ListClientTransactionsOutput is the Huma output for a client's transactions.
type ListClientTransactionsOutput struct {
	Body ListClientTransactionsResponseBody
}

// ExportClientTransactionsInput is the Huma input for exporting a client's transactions.
type ExportClientTransactionsInput struct {
	common.AuthHeader
	ID   string `path:"id" doc:"User UUID"`
	Body common.ExportBody
}

type clientTransactions interface {
	ListClientTransactions(ctx context.Context, token, userID string, q service.ListQuery) (*service.ListResult[records.Transaction], error)
	ExportClientTransactions(ctx context.Context, token, userID string, q service.ExportQuery) (*service.Export, error)
}

// ClientTransactionsHandler handles the transaction tab of the client
// detail screen: POST /v1/users/{id}/transactions/list and /export.
type ClientTransactionsHandler struct {
	UserService clientTransactions
	Dates       common.Dates
}

// NewClientTransactionsHandler creates a new ClientTransactionsHandler.
func NewClientTransactionsHandler(svc clientTransactions, dates common.Dates) *ClientTransactionsHandler {
	return &ClientTransactionsHandler{UserService: svc, Dates: dates}
}

// Register registers the client transaction endpoints with the Huma API.
func (h *ClientTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-client-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/users/{id}/transactions/list",
		Summary:     "List a client's transactions",
		Description: "Filters by type, date range and amount range, then sorts and paginates a client's recent transactions.",
		Tags:        []string{"Users"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "export-client-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/users/{id}/transactions/export",
		Summary:     "Export a client's transactions",
		Description: "Downloads a client's filtered transactions as <username>_transactions.csv.",
		Tags:        []string{"Users"},
	}, h.export)
}

func (h *ClientTransactionsHandler) list(ctx context.Context, input *ListClientTransactionsInput) (*ListClientTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	q, err := h.Dates.ListQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listClientTransactionsMs")
	res, err := h.UserService.ListClientTransactions(ctx, token, input.ID, q)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "failed to list client transactions")
	}
	logData.AddData("transactionCount", res.Fetched)

	return &ListClientTransactionsOutput{Body: ListClientTransactionsResponseBody{
		Transactions: common.NewTransactions(res.Page.Items),
		Page:         common.NewPageMeta(res.Page),
		Sort:         SortState{Key: res.Sort.Key, Direction: string(res.Sort.Direction)},
		ViewToken:    res.ViewToken,
	}}, nil
}

func (h *ClientTransactionsHandler) export(ctx context.Context, input *ExportClientTransactionsInput) (*common.ExportOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	q, err := h.Dates.ExportQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("exportClientTransactionsMs")
	exp, err := h.UserService.ExportClientTransactions(ctx, token, input.ID, q)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "failed to export client transactions")
	}
	logData.AddData("rowCount", exp.Rows)

	return common.NewExportOutput(exp), nil
}

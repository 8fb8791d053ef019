package transactions

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

// UpdateStatusRequestBody is the request body for a transaction decision.
type UpdateStatusRequestBody struct {
	Action string `json:"action" enum:"verify,cancel,block" doc:"Decision on the transaction"`
	Notes  string `json:"notes,omitempty" maxLength:"500" doc:"Admin notes kept with the decision"`
}

// UpdateStatusInput is the Huma input for a transaction decision.
type UpdateStatusInput struct {
	common.AuthHeader
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateStatusRequestBody
}

// UpdateStatusOutput is the Huma output for a transaction decision.
type UpdateStatusOutput struct {
	Body struct {
		Transaction *common.Transaction `json:"transaction,omitempty" doc:"Updated transaction, when the upstream API returns it"`
	}
}

type statusUpdater interface {
	UpdateStatus(ctx context.Context, token, transactionID string, action upstream.TransactionAction, notes string) (*records.Transaction, error)
}

// UpdateStatusHandler handles PATCH /v1/transactions/{id}/status.
type UpdateStatusHandler struct {
	TransactionService statusUpdater
}

// NewUpdateStatusHandler creates a new UpdateStatusHandler.
func NewUpdateStatusHandler(svc statusUpdater) *UpdateStatusHandler {
	return &UpdateStatusHandler{TransactionService: svc}
}

// Register registers the status update endpoint with the Huma API.
func (h *UpdateStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-status",
		Method:      http.MethodPatch,
		Path:        "/v1/transactions/{id}/status",
		Summary:     "Verify, cancel or block a transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateStatusHandler) handle(ctx context.Context, input *UpdateStatusInput) (*UpdateStatusOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	logData.AddData("action", input.Body.Action)

	tx, err := h.TransactionService.UpdateStatus(ctx, token, input.ID, upstream.TransactionAction(input.Body.Action), input.Body.Notes)
	if err != nil {
		return nil, common.Error(err, "failed to update transaction status")
	}

	out := &UpdateStatusOutput{}
	if tx != nil {
		t := common.NewTransaction(*tx)
		out.Body.Transaction = &t
	}
	return out, nil
}

package wallet

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

// AdjustRequestBody is the request body for a wallet adjustment.
type AdjustRequestBody struct {
	Operation   string `json:"operation" enum:"credit,debit" doc:"credit adds funds, debit removes them"`
	Amount      string `json:"amount" minLength:"1" doc:"Positive decimal amount"`
	Description string `json:"description,omitempty" maxLength:"255"`
}

// AdjustInput is the Huma input for a wallet adjustment.
type AdjustInput struct {
	common.AuthHeader
	ID   string `path:"id" doc:"Client UUID"`
	Body AdjustRequestBody
}

// ToggleInput is the Huma input for freezing or unfreezing a wallet.
type ToggleInput struct {
	common.AuthHeader
	ID string `path:"id" doc:"Client UUID"`
}

type walletManager interface {
	Adjust(ctx context.Context, token, userID string, adj upstream.WalletAdjustment) (string, error)
	Toggle(ctx context.Context, token, userID string) (string, error)
}

// Handler handles the wallet actions of the client detail screen.
type Handler struct {
	WalletService walletManager
}

// NewHandler creates a new Handler.
func NewHandler(svc walletManager) *Handler {
	return &Handler{WalletService: svc}
}

// Register registers the wallet endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "adjust-wallet",
		Method:      http.MethodPost,
		Path:        "/v1/users/{id}/wallet/adjust",
		Summary:     "Credit or debit a client's wallet",
		Tags:        []string{"Wallets"},
	}, h.adjust)

	huma.Register(api, huma.Operation{
		OperationID: "toggle-wallet",
		Method:      http.MethodPost,
		Path:        "/v1/users/{id}/wallet/toggle",
		Summary:     "Freeze or unfreeze a client's wallet",
		Tags:        []string{"Wallets"},
	}, h.toggle)
}

func (h *Handler) adjust(ctx context.Context, input *AdjustInput) (*common.MessageOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.Error400BadRequest("amount must be a number", err)
	}
	logData.AddData("operation", input.Body.Operation)
	logData.AddData("amount", amount.String())

	msg, err := h.WalletService.Adjust(ctx, token, input.ID, upstream.WalletAdjustment{
		Operation:   upstream.WalletOperation(input.Body.Operation),
		Amount:      amount,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, common.Error(err, "failed to adjust wallet")
	}
	return common.NewMessageOutput(msg), nil
}

func (h *Handler) toggle(ctx context.Context, input *ToggleInput) (*common.MessageOutput, error) {
	token, err := input.Token()
	if err != nil {
		return nil, err
	}

	msg, err := h.WalletService.Toggle(ctx, token, input.ID)
	if err != nil {
		return nil, common.Error(err, "failed to toggle wallet")
	}
	return common.NewMessageOutput(msg), nil
}

package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
)

// ToggleStatusInput is the Huma input for activating or deactivating a client.
type ToggleStatusInput struct {
	common.AuthHeader
	ID string `path:"id" doc:"User UUID"`
}

type statusToggler interface {
	ToggleStatus(ctx context.Context, token, userID string) (string, error)
}

// ToggleStatusHandler handles POST /v1/users/{id}/toggle-status.
type ToggleStatusHandler struct {
	UserService statusToggler
}

// NewToggleStatusHandler creates a new ToggleStatusHandler.
func NewToggleStatusHandler(svc statusToggler) *ToggleStatusHandler {
	return &ToggleStatusHandler{UserService: svc}
}

// Register registers the toggle status endpoint with the Huma API.
func (h *ToggleStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "toggle-user-status",
		Method:      http.MethodPost,
		Path:        "/v1/users/{id}/toggle-status",
		Summary:     "Activate or deactivate a client",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ToggleStatusHandler) handle(ctx context.Context, input *ToggleStatusInput) (*common.MessageOutput, error) {
	token, err := input.Token()
	if err != nil {
		return nil, err
	}

	msg, err := h.UserService.ToggleStatus(ctx, token, input.ID)
	if err != nil {
		return nil, common.Error(err, "failed to toggle user status")
	}
	return common.NewMessageOutput(msg), nil
}

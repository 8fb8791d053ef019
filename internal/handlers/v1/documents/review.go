package documents

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
)

// ApproveInput is the Huma input for approving documents.
type ApproveInput struct {
	common.AuthHeader
	UserID string `path:"userID" doc:"Client UUID"`
}

// RejectRequestBody is the request body for rejecting documents.
type RejectRequestBody struct {
	Reason     string `json:"reason" maxLength:"500" doc:"Shown to the client; required"`
	DocumentID string `json:"documentID,omitempty" doc:"Reject a single document instead of all of them"`
}

// RejectInput is the Huma input for rejecting documents.
type RejectInput struct {
	common.AuthHeader
	UserID string `path:"userID" doc:"Client UUID"`
	Body   RejectRequestBody
}

type reviewer interface {
	Approve(ctx context.Context, token, userID string) (string, error)
	Reject(ctx context.Context, token, userID, reason, documentID string) (string, error)
}

// ReviewHandler handles POST /v1/documents/{userID}/approve and /reject.
type ReviewHandler struct {
	DocumentService reviewer
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc reviewer) *ReviewHandler {
	return &ReviewHandler{DocumentService: svc}
}

// Register registers the approve and reject endpoints with the Huma API.
func (h *ReviewHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "approve-documents",
		Method:      http.MethodPost,
		Path:        "/v1/documents/{userID}/approve",
		Summary:     "Approve a client's identity documents",
		Tags:        []string{"Documents"},
	}, h.approve)

	huma.Register(api, huma.Operation{
		OperationID: "reject-documents",
		Method:      http.MethodPost,
		Path:        "/v1/documents/{userID}/reject",
		Summary:     "Reject a client's identity documents",
		Tags:        []string{"Documents"},
	}, h.reject)
}

func (h *ReviewHandler) approve(ctx context.Context, input *ApproveInput) (*common.MessageOutput, error) {
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	logging.GetLogData(ctx).AddData("decision", "approve")

	msg, err := h.DocumentService.Approve(ctx, token, input.UserID)
	if err != nil {
		return nil, common.Error(err, "failed to approve documents")
	}
	return common.NewMessageOutput(msg), nil
}

func (h *ReviewHandler) reject(ctx context.Context, input *RejectInput) (*common.MessageOutput, error) {
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	logging.GetLogData(ctx).AddData("decision", "reject")

	msg, err := h.DocumentService.Reject(ctx, token, input.UserID, input.Body.Reason, input.Body.DocumentID)
	if err != nil {
		return nil, common.Error(err, "failed to reject documents")
	}
	return common.NewMessageOutput(msg), nil
}

package documents

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/service"
)

// ReviewQueueInput is the Huma input for the review queue.
type ReviewQueueInput struct {
	common.AuthHeader
}

// PendingDocument is one entry of the review queue.
type PendingDocument struct {
	UserID         string `json:"userId"`
	UserName       string `json:"userName"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DocumentType   string `json:"documentType,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	DocumentURL    string `json:"documentUrl,omitempty"`
	KYCStatus      string `json:"kycStatus"`
	SubmittedAt    string `json:"submittedAt,omitempty"`
}

// ReviewQueueOutput is the Huma output for the review queue.
type ReviewQueueOutput struct {
	Body struct {
		Documents []PendingDocument `json:"documents"`
		Total     int               `json:"total"`
	}
}

type queueReader interface {
	ReviewQueue(ctx context.Context, token string) ([]service.ReviewItem, error)
}

// ReviewQueueHandler handles GET /v1/documents/review.
type ReviewQueueHandler struct {
	DocumentService queueReader
}

// NewReviewQueueHandler creates a new ReviewQueueHandler.
func NewReviewQueueHandler(svc queueReader) *ReviewQueueHandler {
	return &ReviewQueueHandler{DocumentService: svc}
}

// Register registers the review queue endpoint with the Huma API.
func (h *ReviewQueueHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "document-review-queue",
		Method:      http.MethodGet,
		Path:        "/v1/documents/review",
		Summary:     "List documents awaiting review",
		Description: "Returns the identity documents of clients whose KYC status is still pending.",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func (h *ReviewQueueHandler) handle(ctx context.Context, input *ReviewQueueInput) (*ReviewQueueOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("reviewQueueMs")
	items, err := h.DocumentService.ReviewQueue(ctx, token)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "failed to load review queue")
	}
	logData.AddData("documentCount", len(items))

	out := &ReviewQueueOutput{}
	out.Body.Documents = make([]PendingDocument, len(items))
	for i, it := range items {
		d := it.Document
		out.Body.Documents[i] = PendingDocument{
			UserID:         d.UserID,
			UserName:       d.UserName,
			Email:          d.Email,
			Phone:          d.Phone,
			DocumentType:   d.DocumentType,
			DocumentNumber: d.DocumentNumber,
			DocumentURL:    d.DocumentURL,
			KYCStatus:      string(it.KYC),
		}
		if d.SubmittedAt != nil {
			out.Body.Documents[i].SubmittedAt = d.SubmittedAt.UTC().Format(time.RFC3339)
		}
	}
	out.Body.Total = len(items)
	return out, nil
}

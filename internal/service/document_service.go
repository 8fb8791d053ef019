package service

import (
	"context"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
)

// DocumentService backs the KYC review queue.
type DocumentService struct {
	upstream  Upstream
	processor Processor
}

func NewDocumentService(up Upstream, proc Processor) *DocumentService {
	return &DocumentService{upstream: up, processor: proc}
}

// ReviewItem is one queued document with its derived KYC status.
type ReviewItem struct {
	Document records.PendingDocument
	KYC      records.KYCStatus
}

// ReviewQueue lists the documents whose owners are still pending verification.
func (s *DocumentService) ReviewQueue(ctx context.Context, token string) ([]ReviewItem, error) {
	queue, err := s.upstream.ReviewDocuments(ctx, token)
	if err != nil {
		return nil, err
	}

	items := make([]ReviewItem, 0, len(queue.Documents))
	for _, d := range queue.Documents {
		kyc := d.KYC()
		if kyc != records.KYCPending {
			continue
		}
		items = append(items, ReviewItem{Document: d, KYC: kyc})
	}
	return items, nil
}

// Approve marks a client's documents as verified.
func (s *DocumentService) Approve(ctx context.Context, token, userID string) (string, error) {
	return s.review(ctx, &actions.ReviewDocument{Token: token, UserID: userID, Decision: actions.DocumentApprove})
}

// Reject turns a client's documents down. documentID may be empty.
func (s *DocumentService) Reject(ctx context.Context, token, userID, reason, documentID string) (string, error) {
	return s.review(ctx, &actions.ReviewDocument{
		Token:      token,
		UserID:     userID,
		Decision:   actions.DocumentReject,
		Reason:     reason,
		DocumentID: documentID,
	})
}

func (s *DocumentService) review(ctx context.Context, a *actions.ReviewDocument) (string, error) {
	id, err := ValidateID(a.UserID)
	if err != nil {
		return "", err
	}
	a.UserID = id

	if err := s.processor.Process(ctx, a); err != nil {
		return "", err
	}
	return a.Message, nil
}

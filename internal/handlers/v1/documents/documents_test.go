package documents

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/service"
)

const (
	clientID = "9d3b2a10-77c4-4e55-8d21-5a0a1c6e4f02"
	auth     = "Token abc123"
)

type mockDocumentService struct {
	mock.Mock
}

func (m *mockDocumentService) ReviewQueue(ctx context.Context, token string) ([]service.ReviewItem, error) {
	args := m.Called(ctx, token)
	r, _ := args.Get(0).([]service.ReviewItem)
	return r, args.Error(1)
}

func (m *mockDocumentService) Approve(ctx context.Context, token, userID string) (string, error) {
	args := m.Called(ctx, token, userID)
	return args.String(0), args.Error(1)
}

func (m *mockDocumentService) Reject(ctx context.Context, token, userID, reason, documentID string) (string, error) {
	args := m.Called(ctx, token, userID, reason, documentID)
	return args.String(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockDocumentService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewReviewQueueHandler(svc).Register(api)
	NewReviewHandler(svc).Register(api)
	return api
}

func TestHTTP_ReviewQueue(t *testing.T) {
	submitted := time.Date(2025, 2, 20, 9, 30, 0, 0, time.UTC)
	svc := new(mockDocumentService)
	svc.On("ReviewQueue", mock.Anything, "abc123").Return([]service.ReviewItem{{
		Document: records.PendingDocument{UserID: clientID, UserName: "Ana Pierre", DocumentType: "passport", SubmittedAt: &submitted},
		KYC:      records.KYCPending,
	}}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/documents/review", "Authorization: "+auth)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Documents []PendingDocument `json:"documents"`
		Total     int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Documents, 1)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "pending", body.Documents[0].KYCStatus)
	assert.Equal(t, "2025-02-20T09:30:00Z", body.Documents[0].SubmittedAt)
}

func TestHTTP_ReviewQueue_Empty(t *testing.T) {
	svc := new(mockDocumentService)
	svc.On("ReviewQueue", mock.Anything, "abc123").Return([]service.ReviewItem{}, nil)
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/documents/review", "Authorization: "+auth)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"documents":[]`)
}

func TestHTTP_Approve(t *testing.T) {
	svc := new(mockDocumentService)
	svc.On("Approve", mock.Anything, "abc123", clientID).Return("Dokiman apwouve", nil)
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/documents/"+clientID+"/approve", "Authorization: "+auth)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Dokiman apwouve")
}

func TestHTTP_Reject(t *testing.T) {
	svc := new(mockDocumentService)
	svc.On("Reject", mock.Anything, "abc123", clientID, "Foto a twò flou", "d1").Return("Dokiman rejte", nil)
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/documents/"+clientID+"/reject", "Authorization: "+auth, map[string]any{
		"reason":     "Foto a twò flou",
		"documentID": "d1",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Dokiman rejte")
}

func TestHTTP_Reject_MissingReason(t *testing.T) {
	svc := new(mockDocumentService)
	svc.On("Reject", mock.Anything, "abc123", clientID, "", "").Return("", actions.ErrMissingReason)
	api := newTestAPI(t, svc)

	resp := api.Post("/v1/documents/"+clientID+"/reject", "Authorization: "+auth, map[string]any{"reason": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), actions.ErrMissingReason.Error())
}

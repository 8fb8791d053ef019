package users

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/service"
)

// GetUserInput is the Huma input for the client detail.
type GetUserInput struct {
	common.AuthHeader
	ID string `path:"id" doc:"User UUID"`
}

// Profile is the KYC part of the client detail screen.
type Profile struct {
	City           string `json:"city,omitempty"`
	Country        string `json:"country,omitempty"`
	DocumentType   string `json:"documentType,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	HasFront       bool   `json:"hasDocumentFront"`
	HasBack        bool   `json:"hasDocumentBack"`
	EmailVerified  bool   `json:"emailVerified"`
	PhoneVerified  bool   `json:"phoneVerified"`
}

// Document is an identity document on file.
type Document struct {
	ID              string `json:"id"`
	Type            string `json:"type,omitempty"`
	Number          string `json:"number,omitempty"`
	Status          string `json:"status,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
	HasFront        bool   `json:"hasFront"`
	HasBack         bool   `json:"hasBack"`
	UploadedAt      string `json:"uploadedAt,omitempty"`
}

// GetUserResponseBody is the response body for the client detail.
type GetUserResponseBody struct {
	User               common.User          `json:"user"`
	PhoneDisplay       string               `json:"phoneDisplay,omitempty" doc:"Phone formatted for the client's country"`
	WalletActive       bool                 `json:"walletActive"`
	Profile            *Profile             `json:"profile,omitempty"`
	Documents          []Document           `json:"documents"`
	RecentTransactions []common.Transaction `json:"recentTransactions"`
}

// GetUserOutput is the Huma output for the client detail.
type GetUserOutput struct {
	Body GetUserResponseBody
}

type clientGetter interface {
	GetClient(ctx context.Context, token, userID string) (*service.ClientDetail, error)
}

// GetUserHandler handles GET /v1/users/{id}.
type GetUserHandler struct {
	UserService clientGetter
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(svc clientGetter) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

// Register registers the get user endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/v1/users/{id}",
		Summary:     "Get client detail",
		Description: "Returns a client with derived KYC status, identity documents and recent transactions.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("getUserMs")
	detail, err := h.UserService.GetClient(ctx, token, input.ID)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "user not found")
	}

	body := GetUserResponseBody{
		User:               common.NewUser(detail.User),
		PhoneDisplay:       detail.PhoneDisplay,
		Documents:          make([]Document, len(detail.Documents)),
		RecentTransactions: common.NewTransactions(detail.RecentTransactions),
	}
	body.User.KYCStatus = string(detail.KYC)
	if w := detail.User.Wallet; w != nil {
		body.WalletActive = w.Active
	}
	if p := detail.User.Profile; p != nil {
		body.Profile = &Profile{
			City:           p.City,
			Country:        p.Country,
			DocumentType:   p.DocumentType,
			DocumentNumber: p.DocumentNumber,
			HasFront:       p.HasDocumentFront,
			HasBack:        p.HasDocumentBack,
			EmailVerified:  p.EmailVerified,
			PhoneVerified:  p.PhoneVerified,
		}
	}
	for i, d := range detail.Documents {
		body.Documents[i] = newDocument(d)
	}

	return &GetUserOutput{Body: body}, nil
}

func newDocument(d records.IdentityDocument) Document {
	out := Document{
		ID:              d.ID,
		Type:            d.Type,
		Number:          d.Number,
		Status:          d.Status,
		RejectionReason: d.RejectionReason,
		HasFront:        d.HasFront,
		HasBack:         d.HasBack,
	}
	if d.UploadedAt != nil {
		out.UploadedAt = d.UploadedAt.UTC().Format(time.RFC3339)
	}
	return out
}

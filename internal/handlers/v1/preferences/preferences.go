package preferences

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/service"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

// PreferencesBody is the response body for display preferences.
type PreferencesBody struct {
	ViewMode     string `json:"viewMode" doc:"table or cards"`
	Density      string `json:"density" doc:"regular or compact"`
	SortBy       string `json:"sortBy"`
	SortDir      string `json:"sortDir" doc:"asc or desc"`
	ItemsPerPage int    `json:"itemsPerPage" doc:"10, 25 or 50"`
}

// PreferencesOutput is the Huma output for display preferences.
type PreferencesOutput struct {
	Body PreferencesBody
}

// GetInput is the Huma input for reading preferences.
type GetInput struct {
	common.AuthHeader
}

// UpdateRequestBody changes only the fields that are present.
type UpdateRequestBody struct {
	ViewMode     *string `json:"viewMode,omitempty"`
	Density      *string `json:"density,omitempty"`
	SortBy       *string `json:"sortBy,omitempty"`
	SortDir      *string `json:"sortDir,omitempty"`
	ItemsPerPage *int    `json:"itemsPerPage,omitempty"`
}

// UpdateInput is the Huma input for updating preferences.
type UpdateInput struct {
	common.AuthHeader
	Body UpdateRequestBody
}

type adminResolver interface {
	Admin(ctx context.Context, token string) (*upstream.Identity, error)
}

type preferencesStore interface {
	Get(ctx context.Context, adminID string) (service.Preferences, error)
	Update(ctx context.Context, adminID string, u service.PreferencesUpdate) (service.Preferences, error)
}

// Handler handles GET and PUT /v1/preferences for the signed-in admin.
type Handler struct {
	Auth               adminResolver
	PreferencesService preferencesStore
}

// NewHandler creates a new Handler.
func NewHandler(auth adminResolver, svc preferencesStore) *Handler {
	return &Handler{Auth: auth, PreferencesService: svc}
}

// Register registers the preferences endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-preferences",
		Method:      http.MethodGet,
		Path:        "/v1/preferences",
		Summary:     "Get display preferences",
		Tags:        []string{"Preferences"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-preferences",
		Method:      http.MethodPut,
		Path:        "/v1/preferences",
		Summary:     "Update display preferences",
		Tags:        []string{"Preferences"},
	}, h.update)
}

func (h *Handler) admin(ctx context.Context, header common.AuthHeader) (string, error) {
	token, err := header.Token()
	if err != nil {
		return "", err
	}
	id, err := h.Auth.Admin(ctx, token)
	if err != nil {
		return "", common.Error(err, "failed to resolve admin")
	}
	logging.GetLogData(ctx).AddData("adminID", id.ID)
	return id.ID, nil
}

func (h *Handler) get(ctx context.Context, input *GetInput) (*PreferencesOutput, error) {
	adminID, err := h.admin(ctx, input.AuthHeader)
	if err != nil {
		return nil, err
	}

	p, err := h.PreferencesService.Get(ctx, adminID)
	if err != nil {
		return nil, common.Error(err, "failed to load preferences")
	}
	return newOutput(p), nil
}

func (h *Handler) update(ctx context.Context, input *UpdateInput) (*PreferencesOutput, error) {
	adminID, err := h.admin(ctx, input.AuthHeader)
	if err != nil {
		return nil, err
	}

	b := input.Body
	p, err := h.PreferencesService.Update(ctx, adminID, service.PreferencesUpdate{
		ViewMode:     b.ViewMode,
		Density:      b.Density,
		SortBy:       b.SortBy,
		SortDir:      b.SortDir,
		ItemsPerPage: b.ItemsPerPage,
	})
	if err != nil {
		return nil, common.Error(err, "failed to save preferences")
	}
	return newOutput(p), nil
}

func newOutput(p service.Preferences) *PreferencesOutput {
	return &PreferencesOutput{Body: PreferencesBody{
		ViewMode:     p.ViewMode,
		Density:      p.Density,
		SortBy:       p.SortBy,
		SortDir:      string(p.SortDir),
		ItemsPerPage: p.ItemsPerPage,
	}}
}

package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/service"
)

// ExportUsersInput is the Huma input for exporting users.
type ExportUsersInput struct {
	common.AuthHeader
	Body common.ExportBody
}

type userExporter interface {
	ExportUsers(ctx context.Context, token string, q service.ExportQuery) (*service.Export, error)
}

// ExportUsersHandler handles POST /v1/users/export.
type ExportUsersHandler struct {
	UserService userExporter
	Dates       common.Dates
}

// NewExportUsersHandler creates a new ExportUsersHandler.
func NewExportUsersHandler(svc userExporter, dates common.Dates) *ExportUsersHandler {
	return &ExportUsersHandler{UserService: svc, Dates: dates}
}

// Register registers the export users endpoint with the Huma API.
func (h *ExportUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-users",
		Method:      http.MethodPost,
		Path:        "/v1/users/export",
		Summary:     "Export users",
		Description: "Downloads the filtered users, or only the selected ones, as CSV.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ExportUsersHandler) handle(ctx context.Context, input *ExportUsersInput) (*common.ExportOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	q, err := h.Dates.ExportQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("exportUsersMs")
	exp, err := h.UserService.ExportUsers(ctx, token, q)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "failed to export users")
	}
	logData.AddData("rowCount", exp.Rows)

	return common.NewExportOutput(exp), nil
}

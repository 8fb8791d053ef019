package users

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/service"
)

// ListUsersInput is the Huma input for listing users.
type ListUsersInput struct {
	common.AuthHeader
	Body common.ListBody
}

// SortState is the sort applied to a page.
type SortState struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// ListUsersResponseBody is the response body for listing users.
type ListUsersResponseBody struct {
	Users     []common.User   `json:"users"`
	Page      common.PageMeta `json:"page"`
	Sort      SortState       `json:"sort" doc:"Sort actually applied"`
	Selected  []string        `json:"selected" doc:"Selection after the page size rules were applied"`
	ViewToken string          `json:"viewToken" doc:"Send back with the next request"`
}

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body ListUsersResponseBody
}

type userLister interface {
	ListUsers(ctx context.Context, token string, q service.ListQuery) (*service.ListResult[records.User], error)
}

// ListUsersHandler handles POST /v1/users/list.
type ListUsersHandler struct {
	UserService userLister
	Dates       common.Dates
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister, dates common.Dates) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc, Dates: dates}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodPost,
		Path:        "/v1/users/list",
		Summary:     "List users",
		Description: "Filters, sorts and paginates the user list. Only clients are listed unless a type filter is given.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	logData := logging.GetLogData(ctx)
	token, err := input.Token()
	if err != nil {
		return nil, err
	}
	q, err := h.Dates.ListQuery(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logData.AddTiming("listUsersMs")
	res, err := h.UserService.ListUsers(ctx, token, q)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "failed to list users")
	}
	logData.AddData("userCount", res.Fetched)
	logData.AddData("matchedCount", res.Matched)

	selected := res.Selected
	if selected == nil {
		selected = []string{}
	}
	return &ListUsersOutput{Body: ListUsersResponseBody{
		Users:     common.NewUsers(res.Page.Items),
		Page:      common.NewPageMeta(res.Page),
		Sort:      SortState{Key: res.Sort.Key, Direction: string(res.Sort.Direction)},
		Selected:  selected,
		ViewToken: res.ViewToken,
	}}, nil
}

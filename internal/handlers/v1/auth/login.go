package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

// LoginBody is the request body for an admin login.
type LoginBody struct {
	Login    string `json:"login" minLength:"1" doc:"Email or username"`
	Password string `json:"password" minLength:"1" doc:"Password"`
}

// LoginInput is the Huma input for admin login.
type LoginInput struct {
	Body LoginBody
}

// Admin is the API response model for the logged in administrator.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponseBody is the response body for admin login.
type LoginResponseBody struct {
	Token string `json:"token" doc:"Upstream API token to send as 'Authorization: Token <token>'"`
	Admin Admin  `json:"admin"`
}

// LoginOutput is the Huma output for admin login.
type LoginOutput struct {
	Body LoginResponseBody
}

type authenticator interface {
	Login(ctx context.Context, login, password string) (*upstream.Session, error)
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	Auth authenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{Auth: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Admin login",
		Description: "Exchanges admin credentials for an upstream API token. Non-admin accounts are refused.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("loginMs")
	session, err := h.Auth.Login(ctx, input.Body.Login, input.Body.Password)
	stopTimer()
	if err != nil {
		return nil, common.Error(err, "login failed")
	}
	logData.AddData("adminID", session.Identity.ID)

	return &LoginOutput{Body: LoginResponseBody{
		Token: session.Token,
		Admin: Admin{
			ID:    session.Identity.ID,
			Email: session.Identity.Email,
			Name:  session.Identity.Name,
		},
	}}, nil
}

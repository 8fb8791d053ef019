package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// UserTypeAdmin is the only user type allowed into the console.
const UserTypeAdmin = "admin"

// Identity is the account behind a token.
type Identity struct {
	ID       string
	Email    string
	Name     string
	UserType string
}

// IsAdmin reports whether the identity may use the console.
func (i Identity) IsAdmin() bool {
	return i.UserType == UserTypeAdmin
}

// Session is the result of a successful login.
type Session struct {
	Token    string
	Identity Identity
}

type identityJSON struct {
	ID        json.RawMessage `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	UserType  string          `json:"user_type"`
}

func (j identityJSON) identity() Identity {
	id := strings.Trim(string(j.ID), `"`)
	if id == "null" {
		id = ""
	}
	name := j.Name
	if name == "" {
		name = strings.TrimSpace(j.FirstName + " " + j.LastName)
	}
	return Identity{ID: id, Email: j.Email, Name: name, UserType: j.UserType}
}

// Login exchanges an email or username and password for a token.
func (c *Client) Login(ctx context.Context, login, password string) (*Session, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: login, Password: password}

	raw, err := c.do(ctx, http.MethodPost, "/api/auth/login/", "", in)
	if err != nil {
		return nil, err
	}

	var out struct {
		Token string       `json:"token"`
		User  identityJSON `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode login: %w", err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("decode login: no token in response")
	}
	return &Session{Token: out.Token, Identity: out.User.identity()}, nil
}

// Profile returns the identity of the token holder.
func (c *Client) Profile(ctx context.Context, token string) (*Identity, error) {
	raw, err := c.authed(ctx, http.MethodGet, "/api/auth/profile/", token, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		User identityJSON `json:"user"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	id := out.User.identity()
	return &id, nil
}

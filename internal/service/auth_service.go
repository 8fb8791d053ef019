package service

import (
	"context"

	"github.com/carson-networks/cashti-console/internal/upstream"
)

// AuthService admits administrators into the console.
type AuthService struct {
	upstream Upstream
}

func NewAuthService(up Upstream) *AuthService {
	return &AuthService{upstream: up}
}

// Login authenticates against the upstream API and refuses non-admin accounts.
func (s *AuthService) Login(ctx context.Context, login, password string) (*upstream.Session, error) {
	session, err := s.upstream.Login(ctx, login, password)
	if err != nil {
		return nil, err
	}
	if !session.Identity.IsAdmin() {
		return nil, ErrNotAdmin
	}
	return session, nil
}

// Admin resolves the administrator behind token.
func (s *AuthService) Admin(ctx context.Context, token string) (*upstream.Identity, error) {
	id, err := s.upstream.Profile(ctx, token)
	if err != nil {
		return nil, err
	}
	if !id.IsAdmin() {
		return nil, ErrNotAdmin
	}
	return id, nil
}

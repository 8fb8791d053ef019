package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashti-console/internal/upstream"
)

func TestLogin_AdminOnly(t *testing.T) {
	up := new(mockUpstream)
	up.On("Login", mock.Anything, "admin@cashti.ht", "pw").
		Return(&upstream.Session{Token: "t", Identity: upstream.Identity{ID: "1", UserType: upstream.UserTypeAdmin}}, nil)
	up.On("Login", mock.Anything, "client@cashti.ht", "pw").
		Return(&upstream.Session{Token: "t", Identity: upstream.Identity{ID: "2", UserType: "client"}}, nil)
	svc := NewAuthService(up)

	s, err := svc.Login(context.Background(), "admin@cashti.ht", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t", s.Token)

	_, err = svc.Login(context.Background(), "client@cashti.ht", "pw")
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdmin(t *testing.T) {
	up := new(mockUpstream)
	up.On("Profile", mock.Anything, "good").Return(&upstream.Identity{ID: "1", UserType: upstream.UserTypeAdmin}, nil)
	up.On("Profile", mock.Anything, "agent").Return(&upstream.Identity{ID: "3", UserType: "agent"}, nil)
	up.On("Profile", mock.Anything, "bad").Return(nil, &upstream.StatusError{StatusCode: 401})
	svc := NewAuthService(up)

	id, err := svc.Admin(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "1", id.ID)

	_, err = svc.Admin(context.Background(), "agent")
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = svc.Admin(context.Background(), "bad")
	assert.Equal(t, 401, upstream.StatusCode(err))
}

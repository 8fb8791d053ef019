package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/storage/preferences"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

type mockUpstream struct {
	mock.Mock
}

func (m *mockUpstream) Login(ctx context.Context, login, password string) (*upstream.Session, error) {
	args := m.Called(ctx, login, password)
	s, _ := args.Get(0).(*upstream.Session)
	return s, args.Error(1)
}

func (m *mockUpstream) Profile(ctx context.Context, token string) (*upstream.Identity, error) {
	args := m.Called(ctx, token)
	id, _ := args.Get(0).(*upstream.Identity)
	return id, args.Error(1)
}

func (m *mockUpstream) ListUsers(ctx context.Context, token string) ([]records.User, error) {
	args := m.Called(ctx, token)
	users, _ := args.Get(0).([]records.User)
	return users, args.Error(1)
}

func (m *mockUpstream) UserDetails(ctx context.Context, token, userID string) (*records.UserDetail, error) {
	args := m.Called(ctx, token, userID)
	d, _ := args.Get(0).(*records.UserDetail)
	return d, args.Error(1)
}

func (m *mockUpstream) ListTransactions(ctx context.Context, token string, limit int) (records.TransactionPage, error) {
	args := m.Called(ctx, token, limit)
	page, _ := args.Get(0).(records.TransactionPage)
	return page, args.Error(1)
}

func (m *mockUpstream) ReviewDocuments(ctx context.Context, token string) (records.ReviewQueue, error) {
	args := m.Called(ctx, token)
	q, _ := args.Get(0).(records.ReviewQueue)
	return q, args.Error(1)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

type mockPreferencesReader struct {
	mock.Mock
}

func (m *mockPreferencesReader) Find(ctx context.Context, adminID string) (*preferences.Preferences, error) {
	args := m.Called(ctx, adminID)
	p, _ := args.Get(0).(*preferences.Preferences)
	return p, args.Error(1)
}

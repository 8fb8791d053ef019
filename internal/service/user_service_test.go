package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/carson-networks/cashti-console/internal/listing"
	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/upstream"
)

const (
	anaID = "0b7c3d1e-6a0f-4c41-9d55-1f6f3a2b9e01"
	boID  = "4e2d9c8a-1b3f-4d6e-8a7c-2c9b5e4f1a02"
	staff = "9a1b2c3d-4e5f-4a6b-8c7d-3e2f1a0b9c03"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		Location:   time.UTC,
		Locale:     language.French,
		FetchLimit: 500,
		Now:        func() time.Time { return fixedNow },
	}
}

func ptime(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	return &t
}

func testUsers() []records.User {
	return []records.User{
		{ID: anaID, Username: "ana", FirstName: "Ana", Active: true, UserType: records.UserTypeClient,
			JoinedAt: ptime(2024, 1, 1), Wallet: &records.Wallet{Balance: records.ParseAmount("100")}},
		{ID: boID, Username: "bo", FirstName: "Bo", Active: false, UserType: records.UserTypeClient,
			JoinedAt: ptime(2024, 2, 1), Wallet: &records.Wallet{Balance: records.ParseAmount("-50")}},
		{ID: staff, Username: "root", FirstName: "Admin", Active: true, UserType: "admin",
			JoinedAt: ptime(2023, 1, 1)},
	}
}

func ids(users []records.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Username
	}
	return out
}

func newUserTestService(t *testing.T) (*UserService, *mockUpstream, *mockProcessor) {
	t.Helper()
	up := new(mockUpstream)
	proc := new(mockProcessor)
	return NewUserService(up, proc, testSettings()), up, proc
}

// -- ListUsers --

func TestListUsers_DefaultsToClients(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("ListUsers", mock.Anything, "tok").Return(testUsers(), nil)

	res, err := svc.ListUsers(context.Background(), "tok", ListQuery{Window: listing.PageWindow{Page: 1, Size: 10}})
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"bo", "ana"}, ids(res.Page.Items)); diff != "" {
		t.Errorf("default order is newest first (-want +got):\n%s", diff)
	}
	assert.Equal(t, records.SortByDate, res.Sort.Key)
	assert.Equal(t, 3, res.Fetched)
	assert.Equal(t, 2, res.Matched)
	assert.NotEmpty(t, res.ViewToken)
}

func TestListUsers_UntypedUsersNotListedByDefault(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	users := append(testUsers(), records.User{
		ID: "6c5d4e3f-2a1b-4c0d-9e8f-7a6b5c4d3e04", Username: "nobody", Active: true, JoinedAt: ptime(2024, 3, 1),
	})
	up.On("ListUsers", mock.Anything, "tok").Return(users, nil)

	res, err := svc.ListUsers(context.Background(), "tok", ListQuery{})
	require.NoError(t, err)
	assert.NotContains(t, ids(res.Page.Items), "nobody")
	assert.Equal(t, 2, res.Matched)

	res, err = svc.ListUsers(context.Background(), "tok", ListQuery{Criteria: listing.Criteria{Type: "all"}})
	require.NoError(t, err)
	assert.Contains(t, ids(res.Page.Items), "nobody")
}

func TestListUsers_AllTypes(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("ListUsers", mock.Anything, "tok").Return(testUsers(), nil)

	res, err := svc.ListUsers(context.Background(), "tok", ListQuery{Criteria: listing.Criteria{Type: "all"}})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Page.TotalItems)
}

func TestListUsers_ActiveByBalance(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("ListUsers", mock.Anything, "tok").Return(testUsers(), nil)

	res, err := svc.ListUsers(context.Background(), "tok", ListQuery{
		Criteria: listing.Criteria{Status: "active"},
		Sort:     listing.SortSpec{Key: records.SortByBalance, Direction: listing.Descending},
		Window:   listing.PageWindow{Page: 1, Size: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ana"}, ids(res.Page.Items))
	assert.Equal(t, "1–1 of 1", res.Page.DisplayRange())
}

func TestListUsers_CriteriaChangeResetsPage(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("ListUsers", mock.Anything, "tok").Return(testUsers(), nil)

	first, err := svc.ListUsers(context.Background(), "tok", ListQuery{Window: listing.PageWindow{Page: 1, Size: 10}})
	require.NoError(t, err)

	same, err := svc.ListUsers(context.Background(), "tok", ListQuery{
		Window:    listing.PageWindow{Page: 1, Size: 10},
		Selected:  []string{anaID},
		ViewToken: first.ViewToken,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{anaID}, same.Selected)
	assert.Equal(t, first.ViewToken, same.ViewToken)

	resized, err := svc.ListUsers(context.Background(), "tok", ListQuery{
		Window:    listing.PageWindow{Page: 2, Size: 25},
		Selected:  []string{anaID},
		ViewToken: first.ViewToken,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resized.Page.Page)
	assert.Empty(t, resized.Selected, "a page size change clears the selection")
}

func TestListUsers_UpstreamError(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("ListUsers", mock.Anything, "tok").Return(nil, &upstream.StatusError{StatusCode: 401})

	_, err := svc.ListUsers(context.Background(), "tok", ListQuery{})
	assert.Equal(t, 401, upstream.StatusCode(err))
}

// -- ExportUsers --

func TestExportUsers_AllMatches(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("ListUsers", mock.Anything, "tok").Return(testUsers(), nil)

	exp, err := svc.ExportUsers(context.Background(), "tok", ExportQuery{})
	require.NoError(t, err)

	assert.Equal(t, "users_2025-03-14-15-09-26.csv", exp.FileName)
	assert.Equal(t, 2, exp.Rows)
	lines := strings.Split(exp.Body, "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID,"))
	assert.Contains(t, lines[1], boID)
	assert.Contains(t, lines[2], anaID)
}

func TestExportUsers_SelectionOnly(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("ListUsers", mock.Anything, "tok").Return(testUsers(), nil)

	exp, err := svc.ExportUsers(context.Background(), "tok", ExportQuery{Selected: []string{anaID}})
	require.NoError(t, err)
	assert.Equal(t, 1, exp.Rows)
	assert.Contains(t, exp.Body, anaID)
	assert.NotContains(t, exp.Body, boID)
}

// -- GetClient --

func TestGetClient_InvalidID(t *testing.T) {
	svc, up, _ := newUserTestService(t)

	_, err := svc.GetClient(context.Background(), "tok", "42")
	assert.ErrorIs(t, err, ErrInvalidID)
	up.AssertNotCalled(t, "UserDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetClient_DerivesKYCAndPhone(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	detail := &records.UserDetail{
		User: records.User{
			ID:       anaID,
			Username: "ana",
			Profile: &records.Profile{
				Phone:            "37001234",
				Country:          "Haiti",
				HasDocumentFront: true,
				HasDocumentBack:  true,
				EmailVerified:    true,
			},
		},
	}
	up.On("UserDetails", mock.Anything, "tok", anaID).Return(detail, nil)

	got, err := svc.GetClient(context.Background(), "tok", strings.ToUpper(anaID))
	require.NoError(t, err)
	assert.Equal(t, records.KYCVerified, got.KYC)
	assert.Equal(t, "+509 3700-1234", got.PhoneDisplay)
}

// -- client transactions --

func clientDetail() *records.UserDetail {
	return &records.UserDetail{
		User: records.User{ID: anaID, Username: "ana"},
		RecentTransactions: []records.Transaction{
			{ID: "t1", Type: "send", Amount: records.ParseAmount("-50"), CreatedAt: ptime(2025, 1, 10)},
			{ID: "t2", Type: "deposit", Amount: records.ParseAmount("200"), CreatedAt: ptime(2025, 2, 10)},
			{ID: "t3", Type: "send", Amount: records.ParseAmount("15"), CreatedAt: ptime(2025, 3, 10)},
		},
	}
}

func TestListClientTransactions_TypeAndAmountFilter(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("UserDetails", mock.Anything, "tok", anaID).Return(clientDetail(), nil)

	minAmount := records.ParseAmount("0")
	res, err := svc.ListClientTransactions(context.Background(), "tok", anaID, ListQuery{
		Criteria: listing.Criteria{Type: "send", Amounts: listing.AmountRange{Min: minAmount}},
	})
	require.NoError(t, err)
	require.Len(t, res.Page.Items, 1)
	assert.Equal(t, "t3", res.Page.Items[0].ID)
}

func TestExportClientTransactions(t *testing.T) {
	svc, up, _ := newUserTestService(t)
	up.On("UserDetails", mock.Anything, "tok", anaID).Return(clientDetail(), nil)

	exp, err := svc.ExportClientTransactions(context.Background(), "tok", anaID, ExportQuery{
		Sort: listing.SortSpec{Key: records.SortByAmount, Direction: listing.Ascending},
	})
	require.NoError(t, err)
	assert.Equal(t, "ana_transactions.csv", exp.FileName)
	assert.Equal(t, 3, exp.Rows)
	lines := strings.Split(exp.Body, "\n")
	assert.Equal(t, "Date,Type,Description,Amount", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",-50.00"), lines[1])
}

// -- ToggleStatus --

func TestToggleStatus_ProcessesAction(t *testing.T) {
	svc, _, proc := newUserTestService(t)
	proc.On("Process", mock.Anything, mock.AnythingOfType("*actions.ToggleUserStatus")).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*actions.ToggleUserStatus)
			assert.Equal(t, anaID, a.UserID)
			a.Message = "Itilizatè aktive"
		}).
		Return(nil)

	msg, err := svc.ToggleStatus(context.Background(), "tok", anaID)
	require.NoError(t, err)
	assert.Equal(t, "Itilizatè aktive", msg)
}

func TestToggleStatus_Error(t *testing.T) {
	svc, _, proc := newUserTestService(t)
	proc.On("Process", mock.Anything, mock.Anything).Return(errors.New("queue full"))

	_, err := svc.ToggleStatus(context.Background(), "tok", anaID)
	assert.EqualError(t, err, "queue full")
}

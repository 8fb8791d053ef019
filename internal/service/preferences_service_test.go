package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/cashti-console/internal/listing"
	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/storage/preferences"
)

func ptr[T any](v T) *T { return &v }

func TestPreferencesGet_DefaultsWhenUnsaved(t *testing.T) {
	reader := new(mockPreferencesReader)
	reader.On("Find", mock.Anything, "7").Return(nil, nil)
	svc := NewPreferencesService(reader, new(mockProcessor))

	p, err := svc.Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), p)
}

func TestPreferencesGet_MergesSavedValues(t *testing.T) {
	reader := new(mockPreferencesReader)
	reader.On("Find", mock.Anything, "7").Return(&preferences.Preferences{
		AdminID:      "7",
		ViewMode:     "cards",
		Density:      "bogus",
		SortDir:      "asc",
		ItemsPerPage: 13,
	}, nil)
	svc := NewPreferencesService(reader, new(mockProcessor))

	p, err := svc.Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, Preferences{
		ViewMode:     ViewModeCards,
		Density:      DensityRegular,
		SortBy:       "date",
		SortDir:      listing.Ascending,
		ItemsPerPage: 10,
	}, p)
}

func TestPreferencesUpdate_Partial(t *testing.T) {
	reader := new(mockPreferencesReader)
	reader.On("Find", mock.Anything, "7").Return(nil, nil)
	proc := new(mockProcessor)
	proc.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.SavePreferences) bool {
		p := a.Preferences
		return p.AdminID == "7" && p.Density == "compact" && p.ItemsPerPage == 50 && p.ViewMode == "table" && p.SortDir == "desc"
	})).Return(nil)
	svc := NewPreferencesService(reader, proc)

	p, err := svc.Update(context.Background(), "7", PreferencesUpdate{
		Density:      ptr("compact"),
		ItemsPerPage: ptr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, DensityCompact, p.Density)
	assert.Equal(t, 50, p.ItemsPerPage)
	proc.AssertExpectations(t)
}

func TestPreferencesUpdate_Invalid(t *testing.T) {
	reader := new(mockPreferencesReader)
	reader.On("Find", mock.Anything, "7").Return(nil, nil)
	proc := new(mockProcessor)
	svc := NewPreferencesService(reader, proc)

	cases := []PreferencesUpdate{
		{ViewMode: ptr("grid")},
		{Density: ptr("cozy")},
		{SortDir: ptr("up")},
		{SortBy: ptr(" ")},
		{ItemsPerPage: ptr(20)},
	}
	for _, u := range cases {
		_, err := svc.Update(context.Background(), "7", u)
		assert.ErrorIs(t, err, ErrInvalidPreference)
	}
	proc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestPreferencesUpdate_StoreError(t *testing.T) {
	reader := new(mockPreferencesReader)
	reader.On("Find", mock.Anything, "7").Return(nil, errors.New("db down"))
	svc := NewPreferencesService(reader, new(mockProcessor))

	_, err := svc.Update(context.Background(), "7", PreferencesUpdate{})
	assert.EqualError(t, err, "db down")
}

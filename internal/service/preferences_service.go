package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carson-networks/cashti-console/internal/listing"
	"github.com/carson-networks/cashti-console/internal/operator/actions"
	"github.com/carson-networks/cashti-console/internal/records"
	"github.com/carson-networks/cashti-console/internal/storage/preferences"
)

const (
	ViewModeTable   = "table"
	ViewModeCards   = "cards"
	DensityRegular  = "regular"
	DensityCompact  = "compact"
	defaultSortBy   = records.SortByDate
	defaultViewMode = ViewModeTable
	defaultDensity  = DensityRegular
)

var ErrInvalidPreference = errors.New("invalid preference")

// Preferences are an admin's display settings.
type Preferences struct {
	ViewMode     string
	Density      string
	SortBy       string
	SortDir      listing.Direction
	ItemsPerPage int
}

// DefaultPreferences apply to admins who never saved any.
func DefaultPreferences() Preferences {
	return Preferences{
		ViewMode:     defaultViewMode,
		Density:      defaultDensity,
		SortBy:       defaultSortBy,
		SortDir:      listing.Descending,
		ItemsPerPage: listing.DefaultPageSize,
	}
}

// PreferencesUpdate changes only the fields that are set.
type PreferencesUpdate struct {
	ViewMode     *string
	Density      *string
	SortBy       *string
	SortDir      *string
	ItemsPerPage *int
}

// PreferencesService stores per-admin display preferences.
type PreferencesService struct {
	reader    PreferencesReader
	processor Processor
}

func NewPreferencesService(reader PreferencesReader, proc Processor) *PreferencesService {
	return &PreferencesService{reader: reader, processor: proc}
}

// Get returns the saved preferences merged over the defaults.
func (s *PreferencesService) Get(ctx context.Context, adminID string) (Preferences, error) {
	row, err := s.reader.Find(ctx, adminID)
	if err != nil {
		return Preferences{}, err
	}
	return merge(row), nil
}

// Update validates and applies a partial update, returning the new preferences.
func (s *PreferencesService) Update(ctx context.Context, adminID string, u PreferencesUpdate) (Preferences, error) {
	current, err := s.Get(ctx, adminID)
	if err != nil {
		return Preferences{}, err
	}

	next, err := apply(current, u)
	if err != nil {
		return Preferences{}, err
	}

	err = s.processor.Process(ctx, &actions.SavePreferences{Preferences: &preferences.Preferences{
		AdminID:      adminID,
		ViewMode:     next.ViewMode,
		Density:      next.Density,
		SortBy:       next.SortBy,
		SortDir:      string(next.SortDir),
		ItemsPerPage: next.ItemsPerPage,
	}})
	if err != nil {
		return Preferences{}, err
	}
	return next, nil
}

func merge(row *preferences.Preferences) Preferences {
	p := DefaultPreferences()
	if row == nil {
		return p
	}
	if row.ViewMode == ViewModeTable || row.ViewMode == ViewModeCards {
		p.ViewMode = row.ViewMode
	}
	if row.Density == DensityRegular || row.Density == DensityCompact {
		p.Density = row.Density
	}
	if row.SortBy != "" {
		p.SortBy = row.SortBy
	}
	if row.SortDir != "" {
		p.SortDir = listing.ParseDirection(row.SortDir)
	}
	if listing.ValidPageSize(row.ItemsPerPage) {
		p.ItemsPerPage = row.ItemsPerPage
	}
	return p
}

func apply(p Preferences, u PreferencesUpdate) (Preferences, error) {
	if u.ViewMode != nil {
		switch v := strings.TrimSpace(*u.ViewMode); v {
		case ViewModeTable, ViewModeCards:
			p.ViewMode = v
		default:
			return p, fmt.Errorf("%w: view mode %q", ErrInvalidPreference, v)
		}
	}
	if u.Density != nil {
		switch v := strings.TrimSpace(*u.Density); v {
		case DensityRegular, DensityCompact:
			p.Density = v
		default:
			return p, fmt.Errorf("%w: density %q", ErrInvalidPreference, v)
		}
	}
	if u.SortBy != nil {
		v := strings.ToLower(strings.TrimSpace(*u.SortBy))
		if v == "" {
			return p, fmt.Errorf("%w: empty sort key", ErrInvalidPreference)
		}
		p.SortBy = v
	}
	if u.SortDir != nil {
		switch v := strings.ToLower(strings.TrimSpace(*u.SortDir)); v {
		case string(listing.Ascending), string(listing.Descending):
			p.SortDir = listing.Direction(v)
		default:
			return p, fmt.Errorf("%w: sort direction %q", ErrInvalidPreference, v)
		}
	}
	if u.ItemsPerPage != nil {
		if !listing.ValidPageSize(*u.ItemsPerPage) {
			return p, fmt.Errorf("%w: items per page %d", ErrInvalidPreference, *u.ItemsPerPage)
		}
		p.ItemsPerPage = *u.ItemsPerPage
	}
	return p, nil
}

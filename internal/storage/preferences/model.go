package preferences

import (
	"context"
	"time"
)

const TableName = "console_preferences"

// Preferences are one admin's display settings for the list screens.
type Preferences struct {
	AdminID      string    `db:"admin_id"`
	ViewMode     string    `db:"view_mode"`
	Density      string    `db:"density"`
	SortBy       string    `db:"sort_by"`
	SortDir      string    `db:"sort_dir"`
	ItemsPerPage int       `db:"items_per_page"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IPreferencesTable defines the storage operations on admin preferences.
//
//go:generate mockery --name IPreferencesTable --output mock_IPreferencesTable.go
type IPreferencesTable interface {
	// Find returns nil, nil when the admin has never saved preferences.
	Find(ctx context.Context, adminID string) (*Preferences, error)
	Upsert(ctx context.Context, prefs *Preferences) error
}

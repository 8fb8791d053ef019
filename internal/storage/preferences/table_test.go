package preferences

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindQuery(t *testing.T) {
	sql, args, err := findQuery("admin-7").Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, sql, "console_preferences")
	assert.Contains(t, sql, `"admin_id" = $1`)
	assert.Contains(t, sql, `"items_per_page"`)
	assert.Equal(t, []any{"admin-7"}, args)
}

func TestUpsertQuery(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sql, args, err := upsertQuery(&Preferences{
		AdminID:      "admin-7",
		ViewMode:     "cards",
		Density:      "compact",
		SortBy:       "balance",
		SortDir:      "asc",
		ItemsPerPage: 25,
		UpdatedAt:    at,
	}).Build(context.Background())
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO")
	assert.Contains(t, sql, "console_preferences")
	assert.Contains(t, sql, "ON CONFLICT")
	assert.Contains(t, sql, "DO UPDATE SET")
	assert.Contains(t, sql, "EXCLUDED")
	assert.Contains(t, sql, "view_mode")
	assert.Equal(t, []any{"admin-7", "cards", "compact", "balance", "asc", 25, at}, args)
}

package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/cashti-console/internal/storage"
	"github.com/carson-networks/cashti-console/internal/storage/preferences"
)

var ErrNoStore = errors.New("no database configured")

// SavePreferences writes an admin's display preferences.
type SavePreferences struct {
	Preferences *preferences.Preferences
}

func (a *SavePreferences) Perform(ctx context.Context, env Env) error {
	if env.Store == nil {
		return ErrNoStore
	}
	return withWriter(ctx, env.Store, func(w *storage.Writer) error {
		return w.Preferences.Upsert(ctx, a.Preferences)
	})
}

package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/cashti-console/internal/storage/preferences"
)

type Reader struct {
	Preferences preferences.IPreferencesTable
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Preferences: preferences.NewTable(exec),
	}
}

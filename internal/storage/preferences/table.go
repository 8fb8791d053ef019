package preferences

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var columns = []string{
	"admin_id",
	"view_mode",
	"density",
	"sort_by",
	"sort_dir",
	"items_per_page",
	"updated_at",
}

var _ IPreferencesTable = (*Table)(nil)

type Table struct {
	exec bob.Executor
	now  func() time.Time
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec, now: time.Now}
}

func (t *Table) Find(ctx context.Context, adminID string) (*Preferences, error) {
	row, err := bob.One(ctx, t.exec, findQuery(adminID), scan.StructMapper[Preferences]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) Upsert(ctx context.Context, prefs *Preferences) error {
	prefs.UpdatedAt = t.now().UTC()

	_, err := bob.Exec(ctx, t.exec, upsertQuery(prefs))
	return err
}

func findQuery(adminID string) bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns(columnExprs()...),
		sm.From(TableName),
		sm.Where(psql.Quote("admin_id").EQ(psql.Arg(adminID))),
	)
}

func upsertQuery(prefs *Preferences) bob.BaseQuery[*dialect.InsertQuery] {
	return psql.Insert(
		im.Into(TableName, columns...),
		im.Values(psql.Arg(
			prefs.AdminID,
			prefs.ViewMode,
			prefs.Density,
			prefs.SortBy,
			prefs.SortDir,
			prefs.ItemsPerPage,
			prefs.UpdatedAt,
		)),
		im.OnConflict("admin_id").DoUpdate(
			im.SetExcluded(columns[1:]...),
		),
	)
}

func columnExprs() []any {
	exprs := make([]any, len(columns))
	for i, c := range columns {
		exprs[i] = psql.Quote(c)
	}
	return exprs
}

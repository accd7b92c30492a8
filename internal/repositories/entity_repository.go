package repositories

import (
	"database/sql"
	"errors"
	"sort"
	"strings"

	"jobboard/internal/config"
	intdb "jobboard/internal/db"
	"jobboard/internal/domain"
)

// EntityDescriptor maps a soft-deletable entity onto its table. Mutable and
// Sortable are allow-lists: a field outside Mutable is rejected before any
// write, and Sortable is what handlers feed to the query normalizer, so raw
// caller input never reaches an ORDER BY clause.
type EntityDescriptor[T any] struct {
	Resource    string
	Table       string
	Columns     []string // select expressions, in scan order
	ScanRow     func(scan func(dest ...any) error) (T, error)
	Mutable     map[string]bool
	Sortable    map[string]bool
	DefaultSort string
}

// EntityRepository implements the uniform list/get/create/update/soft-delete
// contract for one entity. The non-deleted filter is baked into every query
// path; a soft-deleted row is indistinguishable from an absent one to callers.
//
// There is no optimistic locking: concurrent update and soft-delete on the
// same id are last-write-wins at the store level.
type EntityRepository[T any] struct {
	DB   *sql.DB
	Desc EntityDescriptor[T]
}

func (r EntityRepository[T]) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r EntityRepository[T]) selectClause() string {
	return "SELECT " + strings.Join(r.Desc.Columns, ", ") + " FROM " + r.Desc.Table
}

// List returns one page of non-deleted rows plus the total count of
// non-deleted rows. A page past the end yields an empty slice with the
// correct total, never an error.
func (r EntityRepository[T]) List(p domain.PageRequest) ([]T, int, error) {
	return r.listWhere(p, "", nil)
}

// listWhere is the shared list path; extra is an additional WHERE fragment
// ("AND owner_id=?") built only from repository code, never caller input.
func (r EntityRepository[T]) listWhere(p domain.PageRequest, extra string, extraArgs []any) ([]T, int, error) {
	where := " WHERE is_deleted = 0"
	if extra != "" {
		where += " " + extra
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM `+r.Desc.Table+where, extraArgs...).Scan(&total); err != nil {
		return nil, 0, domain.StoreError{Op: "count " + r.Desc.Table, Err: err}
	}

	orderCol := p.SortField
	if !r.Desc.Sortable[orderCol] {
		orderCol = r.Desc.DefaultSort
	}
	dir := domain.SortAsc
	if p.SortOrder == domain.SortDesc {
		dir = domain.SortDesc
	}

	args := append(append([]any{}, extraArgs...), p.Limit, p.Offset())
	rows, err := r.db().Query(r.selectClause()+where+" ORDER BY "+orderCol+" "+dir+" LIMIT ? OFFSET ?", args...)
	if err != nil {
		return nil, 0, domain.StoreError{Op: "list " + r.Desc.Table, Err: err}
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := r.Desc.ScanRow(rows.Scan)
		if err != nil {
			return nil, 0, domain.StoreError{Op: "scan " + r.Desc.Table, Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, domain.StoreError{Op: "iterate " + r.Desc.Table, Err: err}
	}
	return items, total, nil
}

// GetByID loads one non-deleted row. Missing and soft-deleted rows both come
// back as NotFoundError.
func (r EntityRepository[T]) GetByID(id int64) (T, error) {
	var zero T
	if id <= 0 {
		return zero, domain.NotFoundError{Resource: r.Desc.Resource}
	}
	row := r.db().QueryRow(r.selectClause()+" WHERE id = ? AND is_deleted = 0 LIMIT 1", id)
	item, err := r.Desc.ScanRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, domain.NotFoundError{Resource: r.Desc.Resource, Err: err}
		}
		return zero, domain.StoreError{Op: "get " + r.Desc.Table, Err: err}
	}
	return item, nil
}

// Create inserts a new row with is_deleted=0 and fresh timestamps in a single
// atomic write, then re-reads it so the caller sees assigned id/timestamps.
// Fields outside the mutable allow-list are rejected before any store call.
func (r EntityRepository[T]) Create(fields map[string]any) (T, error) {
	var zero T
	cols, vals, err := r.writeValues(fields)
	if err != nil {
		return zero, err
	}

	cols = append(cols, "is_deleted", "created_at", "updated_at")
	ph := make([]string, 0, len(cols))
	for range vals {
		ph = append(ph, "?")
	}
	ph = append(ph, "0", "NOW()", "NOW()")

	res, err := r.db().Exec(
		`INSERT INTO `+r.Desc.Table+` (`+strings.Join(cols, ", ")+`) VALUES (`+strings.Join(ph, ", ")+`)`,
		vals...,
	)
	if err != nil {
		if intdb.IsDuplicate(err) {
			return zero, domain.ConflictError{Resource: r.Desc.Resource, Msg: "already exists", Err: err}
		}
		return zero, domain.StoreError{Op: "insert " + r.Desc.Table, Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return zero, domain.StoreError{Op: "insert " + r.Desc.Table, Err: err}
	}
	return r.GetByID(id)
}

// Update mutates allow-listed fields of a live row. NotFound whenever GetByID
// would fail; identifiers and timestamps are never caller-writable.
func (r EntityRepository[T]) Update(id int64, fields map[string]any) (T, error) {
	var zero T
	cols, vals, err := r.writeValues(fields)
	if err != nil {
		return zero, err
	}
	if _, err := r.GetByID(id); err != nil {
		return zero, err
	}
	if len(cols) == 0 {
		return r.GetByID(id)
	}

	sets := make([]string, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, c+" = ?")
	}
	sets = append(sets, "updated_at = NOW()")
	vals = append(vals, id)

	if _, err := r.db().Exec(
		`UPDATE `+r.Desc.Table+` SET `+strings.Join(sets, ", ")+` WHERE id = ? AND is_deleted = 0`,
		vals...,
	); err != nil {
		if intdb.IsDuplicate(err) {
			return zero, domain.ConflictError{Resource: r.Desc.Resource, Msg: "already exists", Err: err}
		}
		return zero, domain.StoreError{Op: "update " + r.Desc.Table, Err: err}
	}
	return r.GetByID(id)
}

// SoftDelete flips the deletion flag. Idempotent from the caller's view:
// false when the row is absent or already deleted, true on the first delete.
func (r EntityRepository[T]) SoftDelete(id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	res, err := r.db().Exec(
		`UPDATE `+r.Desc.Table+` SET is_deleted = 1, updated_at = NOW() WHERE id = ? AND is_deleted = 0`,
		id,
	)
	if err != nil {
		return false, domain.StoreError{Op: "soft delete " + r.Desc.Table, Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, domain.StoreError{Op: "soft delete " + r.Desc.Table, Err: err}
	}
	return affected > 0, nil
}

// writeValues validates fields against the mutable allow-list and returns
// them in deterministic column order.
func (r EntityRepository[T]) writeValues(fields map[string]any) ([]string, []any, error) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		if !r.Desc.Mutable[col] {
			return nil, nil, domain.ValidationError{Field: col, Msg: "field is not writable"}
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	vals := make([]any, 0, len(cols))
	for _, c := range cols {
		vals = append(vals, fields[c])
	}
	return cols, vals, nil
}

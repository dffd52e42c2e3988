package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-orgs/internal/shared/pgerror"
	"go-orgs/internal/shared/query"

	"github.com/google/uuid"
)

// Repository is the generic tenant-scoped data access shared by every entity.
//
// Lookups that match nothing return a nil record and a nil error; callers
// decide whether absence is a 404 or something else. Constraint failures
// come back as *pgerror.Violation.
type Repository[T any] struct {
	store Store
	table Table[T]
	newID func() (string, error)
}

func NewRepository[T any](store Store, table Table[T]) *Repository[T] {
	return &Repository[T]{store: store, table: table, newID: NewID}
}

// NewID returns a time-ordered UUIDv7 string.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// WithIDGenerator swaps the identifier source. Used by tests.
func (r *Repository[T]) WithIDGenerator(fn func() (string, error)) *Repository[T] {
	return &Repository[T]{store: r.store, table: r.table, newID: fn}
}

func (r *Repository[T]) List(ctx context.Context, scope string, opts query.ListOptions) ([]T, error) {
	cols := query.Columns(r.table.Columns(), opts.Filter)
	conds, args := r.where(scope, true)

	stmt := query.Statement{
		SQL: fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s LIMIT ? OFFSET ?",
			strings.Join(cols, ", "),
			r.table.Name,
			whereClause(conds),
			query.SortField(r.table.Sortable, opts.Sort),
			query.OrderDirection(opts.Order),
		),
		Args: append(args, query.Limit(opts.Size), query.Offset(opts.Page, opts.Size)),
	}

	return r.fetch(ctx, stmt, cols)
}

func (r *Repository[T]) GetByKey(ctx context.Context, scope, key string, filter []string) (*T, error) {
	cols := query.Columns(r.table.Columns(), filter)
	conds, args := r.where(scope, true)
	conds = append(conds, r.table.Key+" = ?")

	stmt := query.Statement{
		SQL:  fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", strings.Join(cols, ", "), r.table.Name, whereClause(conds)),
		Args: append(args, key),
	}

	return r.fetchOne(ctx, stmt, cols)
}

func (r *Repository[T]) Create(ctx context.Context, scope string, values []query.Assignment) (*T, error) {
	values = r.table.writable(values)
	if err := r.table.checkRequired(values); err != nil {
		return nil, err
	}

	id, err := r.newID()
	if err != nil {
		return nil, fmt.Errorf("generate id: %w", err)
	}

	cols := []string{IDColumn}
	args := []any{id}
	if r.table.Scope != "" {
		cols = append(cols, r.table.Scope)
		args = append(args, scope)
	}
	for _, v := range values {
		cols = append(cols, v.Column)
		args = append(args, v.Value)
	}

	all := r.table.Columns()
	stmt := query.Statement{
		SQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			r.table.Name,
			strings.Join(cols, ", "),
			placeholders(len(cols)),
			strings.Join(all, ", "),
		),
		Args: args,
	}

	rec, err := r.fetchOne(ctx, stmt, all)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%s: insert returned no row", r.table.Name)
	}
	return rec, nil
}

// UpdateByKey writes only the submitted columns whose value differs from the
// stored row. It reports whether anything was written. An empty diff returns
// the stored row untouched, so updated_at is not bumped.
//
// The write is guarded by the updated_at value seen on read. If another
// writer got there first the row is re-read: gone means absent, still there
// means ErrStaleRecord.
func (r *Repository[T]) UpdateByKey(ctx context.Context, scope, key string, submitted []query.Assignment) (*T, bool, error) {
	current, err := r.GetByKey(ctx, scope, key, nil)
	if err != nil || current == nil {
		return nil, false, err
	}

	changes := query.Diff(r.table.writable(submitted), r.table.snapshot(current))
	if len(changes) == 0 {
		return current, false, nil
	}

	set, args := query.SetClause(changes)
	conds, scopeArgs := r.where(scope, false)
	conds = append(conds, r.table.Key+" = ?", UpdatedAtColumn+" IS NOT DISTINCT FROM ?")
	args = append(args, scopeArgs...)
	args = append(args, key, r.table.value(current, UpdatedAtColumn))

	all := r.table.Columns()
	stmt := query.Statement{
		SQL: fmt.Sprintf("UPDATE %s SET %s, %s = CURRENT_TIMESTAMP%s RETURNING %s",
			r.table.Name,
			set,
			UpdatedAtColumn,
			whereClause(conds),
			strings.Join(all, ", "),
		),
		Args: args,
	}

	updated, err := r.fetchOne(ctx, stmt, all)
	if err != nil {
		return nil, false, err
	}
	if updated != nil {
		return updated, true, nil
	}

	latest, err := r.GetByKey(ctx, scope, key, nil)
	if err != nil {
		return nil, false, err
	}
	if latest == nil {
		return nil, false, nil
	}
	return nil, false, ErrStaleRecord
}

func (r *Repository[T]) DeleteByKey(ctx context.Context, scope, key string) (*T, error) {
	conds, args := r.where(scope, false)
	conds = append(conds, r.table.Key+" = ?")

	all := r.table.Columns()
	stmt := query.Statement{
		SQL:  fmt.Sprintf("DELETE FROM %s%s RETURNING %s", r.table.Name, whereClause(conds), strings.Join(all, ", ")),
		Args: append(args, key),
	}

	return r.fetchOne(ctx, stmt, all)
}

func (r *Repository[T]) where(scope string, visible bool) ([]string, []any) {
	var conds []string
	var args []any
	if r.table.Scope != "" {
		conds = append(conds, r.table.Scope+" = ?")
		args = append(args, scope)
	}
	if visible && r.table.Visible != nil {
		conds = append(conds, r.table.Visible.Column+" = ?")
		args = append(args, r.table.Visible.Value)
	}
	return conds, args
}

func (r *Repository[T]) fetch(ctx context.Context, stmt query.Statement, cols []string) ([]T, error) {
	rows, err := r.store.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.table.Name, pgerror.Classify(err))
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var rec T
		if err := rows.Scan(r.table.dest(&rec, cols)...); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", r.table.Name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", r.table.Name, pgerror.Classify(err))
	}
	return records, nil
}

func (r *Repository[T]) fetchOne(ctx context.Context, stmt query.Statement, cols []string) (*T, error) {
	records, err := r.fetch(ctx, stmt, cols)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// IsMissingField reports whether err is a required-field failure and which column.
func IsMissingField(err error) (string, bool) {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Column, true
	}
	return "", false
}

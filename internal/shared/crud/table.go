// Package crud implements list/get/create/update/delete once for every
// tenant-scoped table. An entity plugs in by declaring a Table: its name,
// natural key, scope column and a static field table that maps columns onto
// the record type.
package crud

import (
	"fmt"

	"go-orgs/internal/shared/query"
)

const (
	IDColumn        = "id"
	CreatedAtColumn = "created_at"
	UpdatedAtColumn = "updated_at"
)

// Field maps one column onto the record type T.
//
// Scan returns the destination handed to rows.Scan. Value returns the
// comparable value the diff builder sees; nullable columns report nil when
// unset. Mutable fields are the only ones clients may write, on create and
// on update.
type Field[T any] struct {
	Column   string
	Mutable  bool
	Required bool
	Scan     func(*T) any
	Value    func(*T) any
}

// Condition is an equality predicate with a bound value.
type Condition struct {
	Column string
	Value  any
}

type Table[T any] struct {
	Name string
	// Key is the natural key column used in URLs.
	Key string
	// Scope is the tenant column every statement is filtered by. Empty for the
	// tenant root itself.
	Scope string
	// Visible restricts list and get. Writes ignore it.
	Visible  *Condition
	Fields   []Field[T]
	Sortable []string
}

// Columns lists every column in field table order.
func (t Table[T]) Columns() []string {
	cols := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		cols[i] = f.Column
	}
	return cols
}

func (t Table[T]) field(column string) (Field[T], bool) {
	for _, f := range t.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (t Table[T]) dest(rec *T, columns []string) []any {
	dest := make([]any, len(columns))
	for i, col := range columns {
		f, ok := t.field(col)
		if !ok {
			panic(fmt.Sprintf("crud: column %q is not in table %s", col, t.Name))
		}
		dest[i] = f.Scan(rec)
	}
	return dest
}

// writable drops assignments to columns that are unknown or not mutable.
func (t Table[T]) writable(values []query.Assignment) []query.Assignment {
	out := make([]query.Assignment, 0, len(values))
	for _, v := range values {
		if f, ok := t.field(v.Column); ok && f.Mutable {
			out = append(out, v)
		}
	}
	return out
}

func (t Table[T]) snapshot(rec *T) map[string]any {
	snap := make(map[string]any, len(t.Fields))
	for _, f := range t.Fields {
		if f.Mutable {
			snap[f.Column] = f.Value(rec)
		}
	}
	return snap
}

func (t Table[T]) value(rec *T, column string) any {
	f, ok := t.field(column)
	if !ok || f.Value == nil {
		return nil
	}
	return f.Value(rec)
}

func (t Table[T]) checkRequired(values []query.Assignment) error {
	for _, f := range t.Fields {
		if !f.Required {
			continue
		}
		present := false
		for _, v := range values {
			if v.Column == f.Column && !empty(v.Value) {
				present = true
				break
			}
		}
		if !present {
			return &MissingFieldError{Column: f.Column}
		}
	}
	return nil
}

func empty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	default:
		return false
	}
}

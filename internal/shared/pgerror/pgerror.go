// Package pgerror classifies PostgreSQL integrity failures by constraint name.
package pgerror

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Kind string

const (
	UniqueViolation     Kind = "unique"
	ForeignKeyViolation Kind = "foreign_key"
	NotNullViolation    Kind = "not_null"
	CheckViolation      Kind = "check"
	InvalidInput        Kind = "invalid_input"
)

// Violation is a store-level constraint failure. Constraint carries the name
// of the violated constraint so callers can pick a domain outcome per endpoint.
type Violation struct {
	Kind       Kind
	Constraint string
	Table      string
	Column     string
	Err        error
}

func (v *Violation) Error() string {
	if v.Constraint != "" {
		return fmt.Sprintf("%s violation on %s: %v", v.Kind, v.Constraint, v.Err)
	}
	return fmt.Sprintf("%s violation: %v", v.Kind, v.Err)
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// On reports whether the violation is of kind on the named constraint.
func (v *Violation) On(kind Kind, constraint string) bool {
	return v.Kind == kind && v.Constraint == constraint
}

// Classify wraps integrity errors into *Violation and returns anything else untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var kind Kind
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		kind = UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		kind = ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		kind = NotNullViolation
	case pgerrcode.CheckViolation:
		kind = CheckViolation
	case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidDatetimeFormat:
		kind = InvalidInput
	default:
		return err
	}

	return &Violation{
		Kind:       kind,
		Constraint: pgErr.ConstraintName,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Err:        err,
	}
}

// As extracts a *Violation from err.
func As(err error) (*Violation, bool) {
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// Matches reports whether err carries a violation of kind on constraint.
func Matches(err error, kind Kind, constraint string) bool {
	v, ok := As(err)
	return ok && v.On(kind, constraint)
}

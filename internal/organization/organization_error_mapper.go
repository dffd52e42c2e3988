package organization

import (
	"errors"

	organizationerrors "go-orgs/internal/organization/errors"
	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/crud"
	"go-orgs/internal/shared/pgerror"
)

type operation int

const (
	opRead operation = iota
	opCreate
	opUpdate
)

// mapRepositoryError translates store failures into client errors. A slug
// collision on create points the client at the existing record; on update it
// is a conflict. Unrecognized errors pass through and surface as 500.
func mapRepositoryError(err error, op operation) error {
	if err == nil {
		return nil
	}

	if column, ok := crud.IsMissingField(err); ok {
		return apperror.RequiredField(column)
	}

	if errors.Is(err, crud.ErrStaleRecord) {
		return organizationerrors.ErrOrganizationModified
	}

	if pgerror.Matches(err, pgerror.UniqueViolation, SlugConstraint) {
		switch op {
		case opCreate:
			return organizationerrors.ErrOrganizationAlreadyExists
		case opUpdate:
			return organizationerrors.ErrSlugConflict
		}
	}

	if v, ok := pgerror.As(err); ok && v.Kind == pgerror.InvalidInput {
		return apperror.ErrInvalidInput
	}

	return err
}

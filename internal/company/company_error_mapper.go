package company

import (
	"errors"

	companyerrors "go-orgs/internal/company/errors"
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

// mapRepositoryError translates store failures into client errors. A name
// collision on create points the client at the existing company; on update
// it is a conflict. A missing parent organization is a 404.
func mapRepositoryError(err error, op operation) error {
	if err == nil {
		return nil
	}

	if column, ok := crud.IsMissingField(err); ok {
		return apperror.RequiredField(column)
	}

	if errors.Is(err, crud.ErrStaleRecord) {
		return companyerrors.ErrCompanyModified
	}

	if pgerror.Matches(err, pgerror.ForeignKeyViolation, OrganizationFKConstraint) {
		return companyerrors.ErrOrganizationNotFound
	}

	if pgerror.Matches(err, pgerror.UniqueViolation, NameConstraint) {
		switch op {
		case opCreate:
			return companyerrors.ErrCompanyAlreadyExists
		case opUpdate:
			return companyerrors.ErrCompanyNameConflict
		}
	}

	if v, ok := pgerror.As(err); ok && v.Kind == pgerror.InvalidInput {
		return apperror.ErrInvalidInput
	}

	return err
}

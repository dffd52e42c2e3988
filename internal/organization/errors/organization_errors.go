package organizationerrors

import (
	"go-orgs/internal/shared/apperror"
	"net/http"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
	// ErrOrganizationAlreadyExists is answered with a redirect to the
	// existing organization.
	ErrOrganizationAlreadyExists = apperror.New(
		apperror.CodeAlreadyExists,
		"Organization with the same slug already exists",
		http.StatusSeeOther,
	)
	ErrSlugConflict = apperror.New(
		apperror.CodeConflict,
		"Slug is already used by another organization",
		http.StatusConflict,
	)
	ErrOrganizationModified = apperror.New(
		apperror.CodeConflict,
		"Organization was modified by another request, retry with fresh data",
		http.StatusConflict,
	)
)

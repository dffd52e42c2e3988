package companyerrors

import (
	"go-orgs/internal/shared/apperror"
	"net/http"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	// ErrCompanyAlreadyExists is answered with a redirect to the existing
	// company.
	ErrCompanyAlreadyExists = apperror.New(
		apperror.CodeAlreadyExists,
		"Company with the same name already exists in this organization",
		http.StatusSeeOther,
	)
	ErrCompanyNameConflict = apperror.New(
		apperror.CodeConflict,
		"Name is already used by another company in this organization",
		http.StatusConflict,
	)
	ErrCompanyModified = apperror.New(
		apperror.CodeConflict,
		"Company was modified by another request, retry with fresh data",
		http.StatusConflict,
	)
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Organization not found",
		http.StatusNotFound,
	)
)

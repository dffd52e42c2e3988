package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeRateLimited,
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrRequestInProgress = New(
		CodeProcessing,
		"A request with the same idempotency key is still being processed",
		http.StatusConflict,
	)
)

type FieldDetails struct {
	Field string `json:"field"`
}

// RequiredField reports a mandatory field left out of the body. field is the
// wire name; the message uses its humanized form.
func RequiredField(field string) *AppError {
	return New(CodeValidation, FieldName(field)+" is required", http.StatusUnprocessableEntity).
		WithDetails(FieldDetails{Field: field})
}

// InvalidField reports a field that is present but malformed.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, FieldName(field)+" is invalid", http.StatusBadRequest).
		WithDetails(FieldDetails{Field: field})
}

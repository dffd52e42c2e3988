// Package tenant resolves which organization a request acts on.
package tenant

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header names the organization a company request is scoped to.
const Header = "X-Organization"

var (
	ErrMissingOrganization = errors.New("organization header is missing")
	ErrInvalidOrganization = errors.New("organization header is not a valid id")
)

// FromHeader returns the canonical organization id carried by h. An absent
// header is ErrMissingOrganization; a blank or non-UUID value is
// ErrInvalidOrganization.
func FromHeader(h http.Header) (string, error) {
	values, ok := h[http.CanonicalHeaderKey(Header)]
	if !ok || len(values) == 0 {
		return "", ErrMissingOrganization
	}

	raw := strings.TrimSpace(values[0])
	if raw == "" {
		return "", ErrInvalidOrganization
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidOrganization
	}
	return id.String(), nil
}

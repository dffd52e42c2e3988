package organization

import "go-orgs/internal/shared/query"

type CreateOrganizationRequest struct {
	Name   string  `json:"name" binding:"required"`
	Slug   string  `json:"slug" binding:"required,slug"`
	Status *Status `json:"status"`
}

// Assignments lists the columns to insert. Status defaults to active.
func (r CreateOrganizationRequest) Assignments() []query.Assignment {
	status := StatusActive
	if r.Status != nil {
		status = *r.Status
	}
	return []query.Assignment{
		{Column: "name", Value: r.Name},
		{Column: "slug", Value: r.Slug},
		{Column: "status", Value: status},
	}
}

// UpdateOrganizationRequest is a partial update. Empty strings and absent
// fields leave the stored value alone.
type UpdateOrganizationRequest struct {
	Name   string  `json:"name"`
	Slug   string  `json:"slug" binding:"omitempty,slug"`
	Status *Status `json:"status"`
}

func (r UpdateOrganizationRequest) Assignments() []query.Assignment {
	var out []query.Assignment
	if r.Name != "" {
		out = append(out, query.Assignment{Column: "name", Value: r.Name})
	}
	if r.Slug != "" {
		out = append(out, query.Assignment{Column: "slug", Value: r.Slug})
	}
	if r.Status != nil {
		out = append(out, query.Assignment{Column: "status", Value: *r.Status})
	}
	return out
}

package company

import "go-orgs/internal/shared/query"

// CompanyFields are the client-writable columns shared by create and update.
// Blank strings count as absent.
type CompanyFields struct {
	LegalTypeID      string `json:"legal_type_id"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Website          string `json:"website" binding:"omitempty,url"`
	VAT              string `json:"vat"`
	RegistrationDate *Date  `json:"registration_date"`
}

func (f CompanyFields) assignments(name string) []query.Assignment {
	var out []query.Assignment
	text := func(column, value string) {
		if value != "" {
			out = append(out, query.Assignment{Column: column, Value: value})
		}
	}

	text("legal_type_id", f.LegalTypeID)
	text("name", name)
	text("email", f.Email)
	text("phone", f.Phone)
	text("address", f.Address)
	text("website", f.Website)
	text("vat", f.VAT)
	if f.RegistrationDate != nil {
		out = append(out, query.Assignment{Column: "registration_date", Value: *f.RegistrationDate})
	}
	return out
}

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
	CompanyFields
}

func (r CreateCompanyRequest) Assignments() []query.Assignment {
	return r.CompanyFields.assignments(r.Name)
}

type UpdateCompanyRequest struct {
	Name string `json:"name"`
	CompanyFields
}

func (r UpdateCompanyRequest) Assignments() []query.Assignment {
	return r.CompanyFields.assignments(r.Name)
}

package company

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"go-orgs/internal/shared/crud"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without a time zone, kept as YYYY-MM-DD so two
// dates compare with ==.
type Date string

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return Date(t.Format(DateLayout)), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(Date(""))}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: s, Type: reflect.TypeOf(Date(""))}
	}
	*d = parsed
	return nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date(v.Format(DateLayout))
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("company: cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("company: cannot scan %q into Date: %w", s, err)
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return string(d), nil
}

type Company struct {
	ID               string     `json:"id,omitempty"`
	OrganizationID   string     `json:"organization_id,omitempty"`
	LegalTypeID      *string    `json:"legal_type_id,omitempty"`
	Name             string     `json:"name,omitempty"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Address          *string    `json:"address,omitempty"`
	Website          *string    `json:"website,omitempty"`
	VAT              *string    `json:"vat,omitempty"`
	RegistrationDate *Date      `json:"registration_date,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

const (
	TableName                = "companies"
	NameConstraint           = "companies_organization_id_name_key"
	OrganizationFKConstraint = "companies_organization_id_fkey"
)

// Table maps the companies table. Every statement is scoped by
// organization_id.
var Table = crud.Table[Company]{
	Name:     TableName,
	Key:      "name",
	Scope:    "organization_id",
	Sortable: []string{"name", "email", "vat", "registration_date", "created_at"},
	Fields: []crud.Field[Company]{
		{
			Column: crud.IDColumn,
			Scan:   func(c *Company) any { return &c.ID },
			Value:  func(c *Company) any { return c.ID },
		},
		{
			Column: "organization_id",
			Scan:   func(c *Company) any { return &c.OrganizationID },
			Value:  func(c *Company) any { return c.OrganizationID },
		},
		optionalText("legal_type_id", func(c *Company) **string { return &c.LegalTypeID }),
		{
			Column:   "name",
			Mutable:  true,
			Required: true,
			Scan:     func(c *Company) any { return &c.Name },
			Value:    func(c *Company) any { return c.Name },
		},
		optionalText("email", func(c *Company) **string { return &c.Email }),
		optionalText("phone", func(c *Company) **string { return &c.Phone }),
		optionalText("address", func(c *Company) **string { return &c.Address }),
		optionalText("website", func(c *Company) **string { return &c.Website }),
		optionalText("vat", func(c *Company) **string { return &c.VAT }),
		{
			Column:  "registration_date",
			Mutable: true,
			Scan:    func(c *Company) any { return &c.RegistrationDate },
			Value: func(c *Company) any {
				if c.RegistrationDate == nil {
					return nil
				}
				return *c.RegistrationDate
			},
		},
		{
			Column: crud.CreatedAtColumn,
			Scan:   func(c *Company) any { return &c.CreatedAt },
			Value:  func(c *Company) any { return timeValue(c.CreatedAt) },
		},
		{
			Column: crud.UpdatedAtColumn,
			Scan:   func(c *Company) any { return &c.UpdatedAt },
			Value:  func(c *Company) any { return timeValue(c.UpdatedAt) },
		},
	},
}

// optionalText maps a nullable, client-writable text column.
func optionalText(column string, field func(*Company) **string) crud.Field[Company] {
	return crud.Field[Company]{
		Column:  column,
		Mutable: true,
		Scan:    func(c *Company) any { return field(c) },
		Value: func(c *Company) any {
			if p := *field(c); p != nil {
				return *p
			}
			return nil
		},
	}
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

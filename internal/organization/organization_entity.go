package organization

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"go-orgs/internal/shared/crud"
	"go-orgs/internal/shared/enum"
)

// Status is stored as a smallint ordinal and rendered as its label.
type Status int16

const (
	StatusInactive Status = iota
	StatusActive
	StatusPending
)

var statusCodec = enum.New("inactive", "active", "pending")

func (s Status) String() string {
	if label, ok := statusCodec.Label(int(s)); ok {
		return label
	}
	return strconv.Itoa(int(s))
}

// MarshalJSON writes the label. An ordinal outside the known set is written
// as a bare number rather than failing the whole response.
func (s Status) MarshalJSON() ([]byte, error) {
	if label, ok := statusCodec.Label(int(s)); ok {
		return json.Marshal(label)
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON accepts a label ("active") or an ordinal (1).
func (s *Status) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		ordinal, ok := statusCodec.Ordinal(label)
		if !ok {
			return statusTypeError(data)
		}
		*s = Status(ordinal)
		return nil
	}

	var ordinal int
	if err := json.Unmarshal(data, &ordinal); err != nil || !statusCodec.Valid(ordinal) {
		return statusTypeError(data)
	}
	*s = Status(ordinal)
	return nil
}

func statusTypeError(data []byte) error {
	return &json.UnmarshalTypeError{Value: string(data), Type: reflect.TypeOf(Status(0))}
}

func (s *Status) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*s = Status(v)
	case int32:
		*s = Status(v)
	case int16:
		*s = Status(v)
	case []byte:
		return s.scanText(string(v))
	case string:
		return s.scanText(v)
	default:
		return fmt.Errorf("organization: cannot scan %T into Status", src)
	}
	return nil
}

func (s *Status) scanText(v string) error {
	n, err := strconv.ParseInt(v, 10, 16)
	if err != nil {
		return fmt.Errorf("organization: cannot scan %q into Status: %w", v, err)
	}
	*s = Status(n)
	return nil
}

func (s Status) Value() (driver.Value, error) {
	return int64(s), nil
}

// StatusLabels lists the accepted labels in ordinal order.
func StatusLabels() []string {
	return statusCodec.Labels()
}

// Organization is the tenant root. Every field is optional in JSON so a
// projected read only renders the columns that were selected.
type Organization struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name,omitempty"`
	Slug      string     `json:"slug,omitempty"`
	Status    *Status    `json:"status,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

const (
	TableName      = "organizations"
	SlugConstraint = "organizations_slug_key"
)

// Table maps the organizations table. Reads only see active organizations.
var Table = crud.Table[Organization]{
	Name:     TableName,
	Key:      "slug",
	Visible:  &crud.Condition{Column: "status", Value: StatusActive},
	Sortable: []string{"name", "slug", "status"},
	Fields: []crud.Field[Organization]{
		{
			Column: crud.IDColumn,
			Scan:   func(o *Organization) any { return &o.ID },
			Value:  func(o *Organization) any { return o.ID },
		},
		{
			Column:   "name",
			Mutable:  true,
			Required: true,
			Scan:     func(o *Organization) any { return &o.Name },
			Value:    func(o *Organization) any { return o.Name },
		},
		{
			Column:   "slug",
			Mutable:  true,
			Required: true,
			Scan:     func(o *Organization) any { return &o.Slug },
			Value:    func(o *Organization) any { return o.Slug },
		},
		{
			Column:  "status",
			Mutable: true,
			Scan:    func(o *Organization) any { return &o.Status },
			Value: func(o *Organization) any {
				if o.Status == nil {
					return nil
				}
				return *o.Status
			},
		},
		{
			Column: crud.CreatedAtColumn,
			Scan:   func(o *Organization) any { return &o.CreatedAt },
			Value:  func(o *Organization) any { return timeValue(o.CreatedAt) },
		},
		{
			Column: crud.UpdatedAtColumn,
			Scan:   func(o *Organization) any { return &o.UpdatedAt },
			Value:  func(o *Organization) any { return timeValue(o.UpdatedAt) },
		},
	},
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

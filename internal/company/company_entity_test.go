package company_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-orgs/internal/company"
	"go-orgs/internal/shared/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := company.ParseDate("2020-01-15")
	require.NoError(t, err)
	assert.Equal(t, company.Date("2020-01-15"), d)

	_, err = company.ParseDate("2020-13-01")
	assert.Error(t, err)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d company.Date
	require.NoError(t, json.Unmarshal([]byte(`"1999-12-31"`), &d))
	assert.Equal(t, company.Date("1999-12-31"), d)

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, json.Unmarshal([]byte(`"31.12.1999"`), &d), &typeErr)
	assert.ErrorAs(t, json.Unmarshal([]byte(`19991231`), &d), &typeErr)
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{name: "time", src: time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)},
		{name: "text", src: "2020-01-15"},
		{name: "timestamp text", src: []byte("2020-01-15T00:00:00Z")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d company.Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, company.Date("2020-01-15"), d)
		})
	}

	var d company.Date
	assert.Error(t, d.Scan(42))
}

func TestCompanyFields_SkipBlankValues(t *testing.T) {
	date := company.Date("2020-01-15")
	req := company.UpdateCompanyRequest{
		CompanyFields: company.CompanyFields{
			LegalTypeID:      "llc",
			Website:          "https://acme.test",
			RegistrationDate: &date,
		},
	}

	assert.Equal(t, []query.Assignment{
		{Column: "legal_type_id", Value: "llc"},
		{Column: "website", Value: "https://acme.test"},
		{Column: "registration_date", Value: date},
	}, req.Assignments())
}

func TestCompany_MarshalOmitsUnset(t *testing.T) {
	out, err := json.Marshal(company.Company{Name: "Acme"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Acme"}`, string(out))
}

//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-orgs/db"
	"go-orgs/internal/events"
	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/connection"
	"go-orgs/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func setupPostgresContainer(t *testing.T, ctx context.Context) *gin.Engine {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "orgs",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	gormDB, err := connection.ConnectGORMWithRetry(connection.DatabaseConfig{
		Host:     host,
		User:     "test",
		Password: "test",
		Name:     "orgs",
		Port:     port.Port(),
		SSLMode:  "disable",
	}, 3)
	require.NoError(t, err)
	require.NoError(t, gormDB.Exec(db.Schema).Error)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	registerModules(r, modules{
		db:        gormDB,
		publisher: events.NoopPublisher{},
		registry:  prometheus.NewRegistry(),
		rateLimit: rate.Inf,
		rateBurst: 1,
		logger:    zap.NewNop(),
	})
	return r
}

type result struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

func call(t *testing.T, r *gin.Engine, method, target, body, orgID string) (*httptest.ResponseRecorder, result) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if orgID != "" {
		req.Header.Set(tenant.Header, orgID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res result
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w, res
}

func TestIntegration_OrganizationAndCompanyLifecycle(t *testing.T) {
	ctx := context.Background()
	r := setupPostgresContainer(t, ctx)

	var orgID string

	t.Run("create organization", func(t *testing.T) {
		w, res := call(t, r, http.MethodPost, "/api/v1/organizations", `{"name":"Acme","slug":"acme"}`, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var org struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		require.NoError(t, json.Unmarshal(res.Data, &org))
		_, err := uuid.Parse(org.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", org.Status)
		orgID = org.ID
	})

	t.Run("duplicate slug redirects", func(t *testing.T) {
		w, _ := call(t, r, http.MethodPost, "/api/v1/organizations", `{"name":"Other","slug":"acme"}`, "")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/api/v1/organizations/acme", w.Header().Get("Location"))
	})

	t.Run("no-op update redirects and changed update succeeds", func(t *testing.T) {
		w, _ := call(t, r, http.MethodPut, "/api/v1/organizations/acme", `{"name":"Acme"}`, "")
		assert.Equal(t, http.StatusSeeOther, w.Code)

		w, res := call(t, r, http.MethodPut, "/api/v1/organizations/acme", `{"name":"Acme Corp"}`, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, string(res.Data), `"updated_at"`)
	})

	t.Run("pending organization is hidden from reads", func(t *testing.T) {
		w, _ := call(t, r, http.MethodPost, "/api/v1/organizations", `{"name":"Globex","slug":"globex","status":"pending"}`, "")
		require.Equal(t, http.StatusCreated, w.Code)

		w, _ = call(t, r, http.MethodGet, "/api/v1/organizations/globex", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		_, res := call(t, r, http.MethodGet, "/api/v1/organizations?filter=slug", "", "")
		assert.JSONEq(t, `[{"slug":"acme"}]`, string(res.Data))
	})

	t.Run("company lifecycle", func(t *testing.T) {
		w, _ := call(t, r, http.MethodPost, "/api/v1/companies",
			`{"name":"Acme GmbH","vat":"DE1","registration_date":"2020-01-15"}`, orgID)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w, _ = call(t, r, http.MethodPost, "/api/v1/companies", `{"name":"Acme GmbH"}`, orgID)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/api/v1/companies/Acme%20GmbH", w.Header().Get("Location"))

		w, res := call(t, r, http.MethodGet, "/api/v1/companies/Acme%20GmbH?filter=name,registration_date", "", orgID)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name":"Acme GmbH","registration_date":"2020-01-15"}`, string(res.Data))

		w, _ = call(t, r, http.MethodPut, "/api/v1/companies/Acme%20GmbH", `{"vat":"DE1"}`, orgID)
		assert.Equal(t, http.StatusSeeOther, w.Code)

		w, _ = call(t, r, http.MethodPut, "/api/v1/companies/Acme%20GmbH", `{"vat":"DE2"}`, orgID)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("companies are scoped to the header organization", func(t *testing.T) {
		other := uuid.NewString()

		_, res := call(t, r, http.MethodGet, "/api/v1/companies", "", other)
		assert.JSONEq(t, `[]`, string(res.Data))

		w, _ := call(t, r, http.MethodPost, "/api/v1/companies", `{"name":"Ghost"}`, other)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete organization cascades to companies", func(t *testing.T) {
		w, _ := call(t, r, http.MethodDelete, "/api/v1/organizations/acme", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		_, res := call(t, r, http.MethodGet, "/api/v1/companies", "", orgID)
		assert.JSONEq(t, `[]`, string(res.Data))
	})
}

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-orgs/internal/middleware"
	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const orgID = "0190a3c2-7b4e-7c1d-8f3a-2b5c6d7e8f90"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestOrganizationScope(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.OrganizationScope())
	r.GET("/companies", func(c *gin.Context) {
		assert.Equal(t, orgID, c.GetString(middleware.OrganizationIDKey))
		assert.Equal(t, orgID, contextutil.GetOrganizationID(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header []string
		want   int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "blank header", header: []string{""}, want: http.StatusBadRequest},
		{name: "not an id", header: []string{"acme"}, want: http.StatusBadRequest},
		{name: "valid", header: []string{orgID}, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/companies", nil)
			for _, v := range tt.header {
				req.Header.Set("X-Organization", v)
			}

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestContextLogger(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.ContextLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")

		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("mints an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimitByScope(t *testing.T) {
	r := setupRouter()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.OrganizationIDKey, c.GetHeader("X-Test-Org"))
		c.Next()
	})
	r.Use(middleware.RateLimitByScope(0.001, 1))
	r.GET("/companies", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(org string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/companies", nil)
		req.Header.Set("X-Test-Org", org)
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("org-a").Code)

	limited := do("org-a")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(limited.Body.Bytes(), &body))
	assert.Equal(t, apperror.ErrTooManyRequests.Code, body.Error.Code)
	assert.Equal(t, apperror.ErrTooManyRequests.Message, body.Error.Message)

	assert.Equal(t, http.StatusOK, do("org-b").Code)
}

func TestIdempotency(t *testing.T) {
	lockKey := "idemp:/companies:" + orgID + ":abc:lock"

	newRouter := func(handlerCalls *int, mw gin.HandlerFunc) *gin.Engine {
		r := setupRouter()
		r.Use(func(c *gin.Context) {
			c.Set(middleware.OrganizationIDKey, orgID)
			c.Next()
		})
		r.Use(mw)
		r.POST("/companies", func(c *gin.Context) {
			*handlerCalls++
			c.Status(http.StatusCreated)
		})
		return r
	}

	post := func(r *gin.Engine, key string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/companies", nil)
		if key != "" {
			req.Header.Set(middleware.IdempotencyHeader, key)
		}
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("acquires and releases the lock", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.ExpectDel(lockKey).SetVal(1)

		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		assert.Equal(t, http.StatusCreated, post(r, "abc"))
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		assert.Equal(t, http.StatusConflict, post(r, "abc"))
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure lets the request through", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetErr(errors.New("connection refused"))

		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		assert.Equal(t, http.StatusCreated, post(r, "abc"))
		assert.Equal(t, 1, calls)
	})

	t.Run("no key skips redis", func(t *testing.T) {
		db, mock := redismock.NewClientMock()

		calls := 0
		r := newRouter(&calls, middleware.Idempotency(db))

		assert.Equal(t, http.StatusCreated, post(r, ""))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	r := setupRouter()
	r.Use(m.Handler())
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	assert.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		labels := map[string]string{}
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		assert.Equal(t, map[string]string{"method": "GET", "path": "/healthz", "status": "200"}, labels)
	}
}

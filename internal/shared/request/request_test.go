package request_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-orgs/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestListOptions(t *testing.T) {
	c := newContext("/organizations?sort=slug&order=desc&size=10&page=2&filter=name&filter=slug,status")

	opts := request.ListOptions(c)

	assert.Equal(t, "slug", opts.Sort)
	assert.Equal(t, "desc", opts.Order)
	assert.Equal(t, "10", opts.Size)
	assert.Equal(t, "2", opts.Page)
	assert.Equal(t, []string{"name", "slug,status"}, opts.Filter)
}

func TestPaginationMeta(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		assert.Nil(t, request.PaginationMeta(newContext("/organizations")))
	})

	t.Run("page and size", func(t *testing.T) {
		meta := request.PaginationMeta(newContext("/organizations?page=3&size=25"))

		assert.Equal(t, 3, meta.Page)
		assert.Equal(t, 25, meta.PageSize)
	})

	t.Run("bogus page is reported as the first page", func(t *testing.T) {
		meta := request.PaginationMeta(newContext("/organizations?page=abc"))

		assert.Equal(t, 1, meta.Page)
		assert.Zero(t, meta.PageSize)
	})
}

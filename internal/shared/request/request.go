// Package request reads list parameters off a gin request.
package request

import (
	"strconv"

	"go-orgs/internal/shared/query"
	"go-orgs/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// BasePath prefixes every versioned API route.
const BasePath = "/api/v1"

// ListOptions copies the raw sort, order, size, page and filter parameters.
// Normalization happens in the query package.
func ListOptions(c *gin.Context) query.ListOptions {
	return query.ListOptions{
		Sort:   c.Query("sort"),
		Order:  c.Query("order"),
		Size:   c.Query("size"),
		Page:   c.Query("page"),
		Filter: Filter(c),
	}
}

// Filter returns every ?filter= value. Values may also be comma separated.
func Filter(c *gin.Context) []string {
	return c.QueryArray("filter")
}

// PaginationMeta echoes page and size back when the client sent either.
func PaginationMeta(c *gin.Context) *response.PaginationMeta {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	if _, ok := c.GetQuery("page"); ok && page < 1 {
		page = 1
	}
	return response.NewPaginationMeta(page, size)
}

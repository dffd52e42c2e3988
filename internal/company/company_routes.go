package company

import (
	"go-orgs/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const ResourcePath = "/companies"

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb redis.Cmdable,
	limit rate.Limit,
	burst int,
) {
	companies := r.Group(ResourcePath)
	companies.Use(middleware.OrganizationScope())
	companies.Use(middleware.RateLimitByScope(limit, burst))
	{
		companies.GET("", handler.List)
		companies.GET("/:name", handler.GetByName)
		companies.POST("", middleware.Idempotency(rdb), handler.Create)
		companies.PUT("/:name", handler.Update)
		companies.DELETE("/:name", handler.Delete)
	}
}

package organization

import (
	"go-orgs/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const ResourcePath = "/organizations"

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb redis.Cmdable,
	limit rate.Limit,
	burst int,
) {
	orgs := r.Group(ResourcePath)
	orgs.Use(middleware.RateLimitByScope(limit, burst))
	{
		orgs.GET("", handler.List)
		orgs.GET("/:slug", handler.GetBySlug)
		orgs.POST("", middleware.Idempotency(rdb), handler.Create)
		orgs.PUT("/:slug", handler.Update)
		orgs.DELETE("/:slug", handler.Delete)
	}
}

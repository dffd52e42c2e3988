package app

import (
	"net/http"

	"go-orgs/internal/company"
	"go-orgs/internal/events"
	"go-orgs/internal/middleware"
	"go-orgs/internal/organization"
	"go-orgs/internal/shared/request"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const apiVersion = "api@1.0.0"

type modules struct {
	db        *gorm.DB
	rdb       redis.Cmdable
	publisher events.Publisher
	registry  *prometheus.Registry
	rateLimit rate.Limit
	rateBurst int
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, m modules) {
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(m.registry)

	router.Use(middleware.ContextLogger(m.logger), metrics.Handler())

	// --- Repositories ---
	organizationRepo := organization.NewRepository(m.db)
	companyRepo := company.NewRepository(m.db)

	// --- Services ---
	organizationService := organization.NewService(organizationRepo, m.publisher, m.logger)
	companyService := company.NewService(companyRepo, m.publisher, m.logger)

	// --- Handlers ---
	organizationHandler := organization.NewHandler(organizationService, m.logger)
	companyHandler := company.NewHandler(companyService, m.logger)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})))

	api := router.Group(request.BasePath)
	{
		api.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, apiVersion)
		})
		organization.RegisterRoutes(api, organizationHandler, m.rdb, m.rateLimit, m.rateBurst)
		company.RegisterRoutes(api, companyHandler, m.rdb, m.rateLimit, m.rateBurst)
	}
}

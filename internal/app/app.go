package app

import (
	"go-orgs/internal/events"
	"go-orgs/internal/messaging/kafka/producer"
	"go-orgs/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the backing services and registers every route on
// router. The returned cleanup closes what was opened.
func BuildApp(router *gin.Engine, cfg Config) (func(), error) {
	logger := zap.L().Named("app")
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("cleanup failed", zap.Error(err))
			}
		}
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.DBMaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	closers = append(closers, sqlDB.Close)

	// A nil client must stay an untyped nil so the middleware sees it as off.
	var rdb redis.Cmdable
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBMaxRetries)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, client.Close)
		rdb = client
	} else {
		logger.Info("REDIS_ADDR not set, idempotency lock disabled")
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.DBMaxRetries)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, writer.Close)
		publisher = producer.NewPublisher(writer)
	} else {
		logger.Info("KAFKA_BROKER not set, lifecycle events disabled")
	}

	registerModules(router, modules{
		db:        gormDB,
		rdb:       rdb,
		publisher: publisher,
		registry:  prometheus.NewRegistry(),
		rateLimit: cfg.RateLimit,
		rateBurst: cfg.RateLimitBurst,
		logger:    zap.L(),
	})

	return cleanup, nil
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-orgs/internal/shared/apperror"
	"go-orgs/internal/shared/contextutil"
	"go-orgs/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 30 * time.Second
)

// Idempotency rejects a POST whose Idempotency-Key is already being processed
// with 409 PROCESSING. The lock lives only for the duration of the request,
// responses are not replayed. A nil client disables the check, and a Redis
// failure lets the request through.
func Idempotency(rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if rdb == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), c.GetString(OrganizationIDKey), key)

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyTTL).Result()
		if err != nil {
			contextutil.GetLogger(ctx, zap.L()).Warn("idempotency lock unavailable", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			e := apperror.ErrRequestInProgress
			response.AbortError(c, e.HTTPStatus, e.Code, e.Message)
			return
		}

		defer func() {
			if err := rdb.Del(context.WithoutCancel(ctx), lockKey).Err(); err != nil {
				contextutil.GetLogger(ctx, zap.L()).Warn("idempotency lock release failed", zap.String("key", lockKey), zap.Error(err))
			}
		}()

		c.Next()
	}
}

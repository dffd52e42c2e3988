package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// requestID reuses the caller's request id or mints one, and echoes it back.
func requestID(c *gin.Context) string {
	rid := c.GetHeader(RequestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
	}
	c.Set("request_id", rid)
	c.Header(RequestIDHeader, rid)
	return rid
}

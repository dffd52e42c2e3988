// Package contextutil carries request-scoped values through context.Context.
package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey      contextKey = "request_id"
	organizationIDKey contextKey = "organization_id"
	loggerKey         contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithOrganizationID stores the tenant the request is scoped to.
func WithOrganizationID(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, organizationIDKey, orgID)
}

func GetOrganizationID(ctx context.Context) string {
	if id, ok := ctx.Value(organizationIDKey).(string); ok {
		return id
	}
	return ""
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, then defaultLogger, then a no-op
// logger. It never returns nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

// Metadata is the tracing info attached to logs and events.
type Metadata struct {
	RequestID      string
	OrganizationID string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID:      GetRequestID(ctx),
		OrganizationID: GetOrganizationID(ctx),
	}
}

package consumer

import (
	"context"
	"encoding/json"
	"strings"

	"go-orgs/internal/bootstrap"
	"go-orgs/internal/events"
	"go-orgs/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLifecycle turns every lifecycle event into an audit entry until ctx
// is cancelled. Undecodable messages are committed and skipped so they do not
// block the partition.
func ConsumeLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.lifecycle")
	log.Info("lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("lifecycle consumer stopped")
				return
			}
			log.Error("fetch lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.LifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode lifecycle event failed",
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditCtx := contextutil.WithRequestID(ctx, event.RequestID)
		auditCtx = contextutil.WithOrganizationID(auditCtx, event.OrganizationID)
		audit.Log(auditCtx, bootstrap.AuditLog{
			Action:  strings.ToUpper(event.EventType),
			Message: event.AggregateType + " " + event.Key + " " + actionOf(event),
			Meta: map[string]any{
				"aggregate_id":    event.AggregateID,
				"organization_id": event.OrganizationID,
				"occurred_at":     event.OccurredAt,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit lifecycle message failed", zap.Error(err))
			continue
		}
	}
}

func actionOf(event events.LifecycleEvent) string {
	return strings.TrimPrefix(event.EventType, event.AggregateType+"_")
}

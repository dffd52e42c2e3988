package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"go-orgs/internal/bootstrap"
	"go-orgs/internal/events"
	"go-orgs/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const auditConsumerGroup = "go-orgs-audit"

// RunConsumer reads lifecycle events into the audit log until SIGINT or
// SIGTERM.
func RunConsumer(cfg Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.LifecycleTopic,
		GroupID:        auditConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeLifecycle(ctx, reader, bootstrap.NewStdoutAuditLogger(logger), logger)

	logger.Info("consumer shutting down")
	return nil
}

package producer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-orgs/internal/events"
	"go-orgs/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafkago.Message
	err  error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("writes keyed message with headers", func(t *testing.T) {
		w := &fakeWriter{}
		p := producer.NewPublisher(w)
		event := events.NewLifecycleEvent(events.AggregateCompany, events.ActionCreated, "c-1", "o-1", "Acme", "req-1")

		err := p.Publish(context.Background(), event)

		require.NoError(t, err)
		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, events.LifecycleTopic, msg.Topic)
		assert.Equal(t, "c-1", string(msg.Key))
		assert.Equal(t, "event_type", msg.Headers[0].Key)
		assert.Equal(t, "company_created", string(msg.Headers[0].Value))

		var decoded events.LifecycleEvent
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, "o-1", decoded.OrganizationID)
		assert.Equal(t, "Acme", decoded.Key)
		assert.Equal(t, "req-1", decoded.RequestID)
	})

	t.Run("wraps writer failure", func(t *testing.T) {
		cause := errors.New("leader not available")
		p := producer.NewPublisher(&fakeWriter{err: cause})

		err := p.Publish(context.Background(), events.NewLifecycleEvent(events.AggregateOrganization, events.ActionDeleted, "o-1", "o-1", "acme", ""))

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "organization_deleted")
	})
}

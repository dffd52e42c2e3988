package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go-orgs/internal/bootstrap"
	"go-orgs/internal/events"
	"go-orgs/internal/messaging/kafka/consumer"
	"go-orgs/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeReader replays msgs and cancels the consumer once they run out.
type fakeReader struct {
	msgs      []kafkago.Message
	fetchErrs []error
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.fetchErrs) > 0 {
		err := r.fetchErrs[0]
		r.fetchErrs = r.fetchErrs[1:]
		return kafkago.Message{}, err
	}
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type recordingAudit struct {
	mu       sync.Mutex
	entries  []bootstrap.AuditLog
	metadata []contextutil.Metadata
}

func (a *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	a.metadata = append(a.metadata, contextutil.ExtractMetadata(ctx))
}

func TestConsumeLifecycle(t *testing.T) {
	event := events.NewLifecycleEvent(events.AggregateOrganization, events.ActionUpdated, "o-1", "o-1", "acme", "req-9")
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte("{not json")},
			{Offset: 2, Value: payload},
		},
		fetchErrs: []error{errors.New("broker hiccup")},
		cancel:    cancel,
	}
	audit := &recordingAudit{}

	consumer.ConsumeLifecycle(ctx, reader, audit, zap.NewNop())

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "ORGANIZATION_UPDATED", audit.entries[0].Action)
	assert.Equal(t, contextutil.Metadata{RequestID: "req-9", OrganizationID: "o-1"}, audit.metadata[0])
	assert.Equal(t, "organization acme updated", audit.entries[0].Message)
	assert.Equal(t, "o-1", audit.entries[0].Meta["aggregate_id"])

	require.Len(t, reader.committed, 2)
	assert.Equal(t, int64(1), reader.committed[0].Offset)
	assert.Equal(t, int64(2), reader.committed[1].Offset)
}

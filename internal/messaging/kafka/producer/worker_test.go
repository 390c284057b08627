package producer

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOutboxRepo struct {
	pending []kafka.OutboxEvent
	listErr error
	sent    []string
	failed  map[string]string
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error { return nil }

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.pending, f.listErr
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	failFor map[string]bool
	written []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.failFor[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	t.Run("publishes and marks each event", func(t *testing.T) {
		repo := &fakeOutboxRepo{pending: []kafka.OutboxEvent{
			{ID: "1", AggregateID: "emp-1", Topic: "t", EventType: "ledger.balance_changed", Payload: []byte(`{}`), RequestID: "req-1"},
			{ID: "2", AggregateID: "cus-1", Topic: "t", EventType: "ledger.balance_changed", Payload: []byte(`{}`)},
		}}
		writer := &fakeWriter{}

		sent, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, []string{"1", "2"}, repo.sent)
		require.Len(t, writer.written, 2)
		assert.Equal(t, "emp-1", string(writer.written[0].Key))
		assert.Len(t, writer.written[0].Headers, 4)
		assert.Len(t, writer.written[1].Headers, 3)
	})

	t.Run("failed publish is rescheduled", func(t *testing.T) {
		repo := &fakeOutboxRepo{pending: []kafka.OutboxEvent{
			{ID: "1", AggregateID: "emp-1", Topic: "t", Payload: []byte(`{}`)},
			{ID: "2", AggregateID: "cus-1", Topic: "t", Payload: []byte(`{}`)},
		}}
		writer := &fakeWriter{failFor: map[string]bool{"emp-1": true}}

		sent, err := processPendingEvents(context.Background(), repo, writer, zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, []string{"2"}, repo.sent)
		assert.Equal(t, "broker unavailable", repo.failed["1"])
	})

	t.Run("list error", func(t *testing.T) {
		repo := &fakeOutboxRepo{listErr: errors.New("db down")}

		_, err := processPendingEvents(context.Background(), repo, &fakeWriter{}, zap.NewNop())

		assert.EqualError(t, err, "db down")
	})
}

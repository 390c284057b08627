package consumer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/events"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func message(t *testing.T, evt events.BalanceChangedEvent) kafkago.Message {
	body, err := json.Marshal(evt)
	require.NoError(t, err)
	return kafkago.Message{Value: body}
}

func TestHandleBalanceMessage(t *testing.T) {
	threshold := decimal.NewFromInt(1000)

	tests := []struct {
		name  string
		event events.BalanceChangedEvent
		alert bool
	}{
		{"custody debit below threshold", events.BalanceChangedEvent{Account: string(ledger.CustodyRemaining), Delta: "-300", Balance: "200"}, true},
		{"custody debit above threshold", events.BalanceChangedEvent{Account: string(ledger.CustodyRemaining), Delta: "-300", Balance: "1200"}, false},
		{"custody credit below threshold", events.BalanceChangedEvent{Account: string(ledger.CustodyRemaining), Delta: "100", Balance: "200"}, false},
		{"employee budget ignored", events.BalanceChangedEvent{Account: string(ledger.EmployeeBudget), Delta: "-300", Balance: "-100"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)

			got := handleBalanceMessage(message(t, tt.event), threshold, zap.New(core))

			assert.Equal(t, tt.alert, got)
			if tt.alert {
				assert.Equal(t, 1, logs.FilterMessage("custody balance low").Len())
			}
		})
	}

	t.Run("malformed payload", func(t *testing.T) {
		assert.False(t, handleBalanceMessage(kafkago.Message{Value: []byte("{")}, threshold, zap.NewNop()))
	})
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed int
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed += len(msgs)
	return nil
}

func TestConsumeBalanceAlerts_CommitsEveryMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			message(t, events.BalanceChangedEvent{Account: string(ledger.CustodyRemaining), Delta: "-10", Balance: "5"}),
			{Value: []byte("not json")},
		},
	}

	ConsumeBalanceAlerts(ctx, reader, decimal.NewFromInt(100), zap.NewNop())

	assert.Equal(t, 2, reader.committed)
}

package consumer

import (
	"context"
	"encoding/json"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/events"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeBalanceAlerts watches balance changes and warns when a custody's
// spendable remainder drops below threshold.
func ConsumeBalanceAlerts(
	ctx context.Context,
	reader MessageReader,
	threshold decimal.Decimal,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.balance_alert")
	log.Info("balance alert consumer started", zap.String("threshold", threshold.String()))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("balance alert consumer stopped")
				return
			}
			log.Error("fetch balance message failed", zap.Error(err))
			continue
		}

		handleBalanceMessage(msg, threshold, log)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit balance message failed", zap.Error(err))
		}
	}
}

// handleBalanceMessage reports whether an alert was raised.
func handleBalanceMessage(msg kafkago.Message, threshold decimal.Decimal, log *zap.Logger) bool {
	var event events.BalanceChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode balance_changed event failed", zap.Error(err))
		return false
	}

	if event.Account != string(ledger.CustodyRemaining) {
		return false
	}

	balance, err := decimal.NewFromString(event.Balance)
	if err != nil {
		log.Error("invalid balance in event", zap.String("owner_id", event.OwnerID), zap.Error(err))
		return false
	}

	delta, _ := decimal.NewFromString(event.Delta)
	if !delta.IsNegative() || !balance.LessThan(threshold) {
		return false
	}

	log.Warn("custody balance low",
		zap.String("custody_id", event.OwnerID),
		zap.String("remaining", balance.String()),
		zap.String("threshold", threshold.String()),
		zap.String("reason", event.Reason),
		zap.String("source_id", event.SourceID),
	)
	return true
}

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/config"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/events"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RunConsumer watches ledger balance changes and logs custodies that drop
// below CUSTODY_LOW_BALANCE_THRESHOLD.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	threshold, err := decimal.NewFromString(cfg.CustodyLowBalanceThreshold)
	if err != nil {
		return fmt.Errorf("invalid CUSTODY_LOW_BALANCE_THRESHOLD: %w", err)
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.BalanceChangedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeBalanceAlerts(ctx, reader, threshold, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

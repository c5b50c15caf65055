package preview

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/segmentio/kafka-go"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
)

// Consumer reads preview work items with manual offset commits: an item is
// committed only after the handler persisted its previews, so a crash mid
// item replays it. Persistence overwrites, making replay idempotent.
type Consumer struct {
	reader  *kafka.Reader
	handler *Handler
}

func NewConsumer(cfg *config.Config, handler *Handler) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           []string{net.JoinHostPort(cfg.Kafka.Host, cfg.Kafka.Port)},
			GroupID:           cfg.Kafka.PreviewGroupID,
			Topic:             cfg.Kafka.PreviewTopic,
			StartOffset:       kafka.FirstOffset,
			HeartbeatInterval: 3 * time.Second,
		}),
		handler: handler,
	}
}

// Run consumes until ctx is cancelled. A handler failure leaves the offset
// uncommitted and backs off before refetching the same item.
func (c *Consumer) Run(ctx context.Context) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	for {
		message, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Error(fmt.Sprintf("failed to fetch message: %v", err))
			continue
		}

		if err := c.handler.Handle(ctx, message.Value); err != nil {
			logger.Error(fmt.Sprintf("failed to handle message at offset %d: %v", message.Offset, err))
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		if err := c.reader.CommitMessages(ctx, message); err != nil {
			logger.Error(fmt.Sprintf("failed to commit offset %d: %v", message.Offset, err))
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

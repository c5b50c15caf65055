package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"github.com/segmentio/kafka-go"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

// Producer enqueues preview work items. Messages are keyed by message id so
// retries for one message stay on one partition.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg *config.Config) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(net.JoinHostPort(cfg.Kafka.Host, cfg.Kafka.Port)),
			Topic:    cfg.Kafka.PreviewTopic,
			Balancer: &kafka.Hash{},
		},
	}
}

func (p *Producer) Enqueue(ctx context.Context, item model.PreviewWorkItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal work item: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(item.MessageID),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to write work item: %w", err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

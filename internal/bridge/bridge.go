package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/valkey-io/valkey-go"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

const eventsChannel = "messenger:events"

// Bridge replicates room-targeted emits between gateway instances over a
// shared valkey pub/sub channel. There is no reconciliation besides the bus,
// so construction fails closed when the bus is unreachable: an instance that
// silently degraded to single-instance delivery would be an invisible
// correctness regression.
type Bridge struct {
	conn   valkey.Client
	origin string
}

func New(cfg *config.Config, origin string) (*Bridge, error) {
	conn, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.Valkey.Address},
		Password:    cfg.Valkey.Password,
		SelectDB:    cfg.Valkey.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect broadcast bus: %w", err)
	}

	if err := conn.Do(context.Background(), conn.B().Ping().Build()).Error(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("broadcast bus unreachable: %w", err)
	}

	return &Bridge{
		conn:   conn,
		origin: origin,
	}, nil
}

func (b *Bridge) Close() {
	b.conn.Close()
}

func (b *Bridge) Origin() string {
	return b.origin
}

func (b *Bridge) Publish(ctx context.Context, event model.BusEvent) error {
	event.Origin = b.origin

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal bus event: %w", err)
	}

	err = b.conn.Do(ctx, b.conn.B().Publish().Channel(eventsChannel).Message(string(data)).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to publish bus event: %w", err)
	}

	return nil
}

// Listen blocks delivering incoming bus events to handler until ctx is done
// or the subscription drops.
func (b *Bridge) Listen(ctx context.Context, handler func(model.BusEvent)) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	err := b.conn.Receive(ctx, b.conn.B().Subscribe().Channel(eventsChannel).Build(), func(msg valkey.PubSubMessage) {
		var event model.BusEvent
		if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
			logger.Error(fmt.Sprintf("failed to decode bus event: %v", err))
			return
		}

		handler(event)
	})
	if err != nil {
		return fmt.Errorf("bus subscription ended: %w", err)
	}

	return nil
}

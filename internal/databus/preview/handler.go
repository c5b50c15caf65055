package preview

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/linkpreview"
)

const previewTTL = 2 * time.Hour

// Handler enriches a message with link previews: resolve each URL through
// the cache or a live fetch, persist the result, then broadcast it to the
// conversation room.
type Handler struct {
	repository DBRepo
	cache      Cache
	fetcher    Fetcher
	bus        BusPublisher
}

func NewHandler(repo DBRepo, cache Cache, fetcher Fetcher, bus BusPublisher) *Handler {
	return &Handler{
		repository: repo,
		cache:      cache,
		fetcher:    fetcher,
		bus:        bus,
	}
}

// Handle processes one work item. Per-URL fetch failures skip just that URL;
// a partial preview set still persists and broadcasts. Only persistence
// errors propagate, so the consumer retries the whole item.
func (h *Handler) Handle(ctx context.Context, value []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handle")

	var item model.PreviewWorkItem
	if err := json.Unmarshal(value, &item); err != nil {
		// Malformed items can never succeed; drop them.
		logger.Error(fmt.Sprintf("failed to unmarshal work item: %v", err))
		return nil
	}

	previews := make([]model.Preview, 0, len(item.URLs))
	for _, span := range item.URLs {
		meta, err := h.resolve(ctx, span.URL)
		if err != nil {
			logger.Warn(fmt.Sprintf("failed to resolve %s: %v", span.URL, err))
			continue
		}

		previews = append(previews, model.Preview{
			URL:            span.URL,
			ThumbnailImage: meta.ThumbnailImage,
			StartIndex:     span.StartIndex,
			EndIndex:       span.EndIndex,
			Title:          meta.Title,
			Description:    meta.Description,
		})
	}

	if len(previews) == 0 {
		return nil
	}

	err := backoff.Retry(func() error {
		return h.repository.SetMessagePreviews(ctx, item.MessageID, previews)
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3))
	if err != nil {
		return fmt.Errorf("failed to persist previews for message %s: %w", item.MessageID, err)
	}

	h.publish(ctx, item, previews)

	return nil
}

// resolve returns metadata for the URL, through the cache when a canonical
// twin was fetched recently.
func (h *Handler) resolve(ctx context.Context, rawURL string) (*linkpreview.Metadata, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	key := cacheKey(rawURL)

	cached, err := h.cache.GetPreview(ctx, key)
	if err != nil {
		logger.Warn(fmt.Sprintf("preview cache read failed: %v", err))
	}
	if cached != nil {
		var meta linkpreview.Metadata
		if err := json.Unmarshal(cached, &meta); err == nil {
			return &meta, nil
		}
	}

	meta, err := h.fetcher.Fetch(ctx, linkpreview.Canonicalize(rawURL))
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(meta); err == nil {
		if err := h.cache.SetPreview(ctx, key, data, previewTTL); err != nil {
			logger.Warn(fmt.Sprintf("preview cache write failed: %v", err))
		}
	}

	return meta, nil
}

// publish pushes the enriched previews to the conversation room on every
// instance. Delivery is best-effort: the previews are already durable.
func (h *Handler) publish(ctx context.Context, item model.PreviewWorkItem, previews []model.Preview) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	payload, err := json.Marshal(struct {
		ConversationID string          `json:"conversationId"`
		MessageID      string          `json:"messageId"`
		PreviewURL     []model.Preview `json:"previewUrl"`
	}{
		ConversationID: item.ConversationID,
		MessageID:      item.MessageID,
		PreviewURL:     previews,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to marshal preview payload: %v", err))
		return
	}

	err = h.bus.Publish(ctx, model.BusEvent{
		Kind:    model.BusKindEmit,
		Room:    item.ConversationID,
		Event:   model.EventReceiveCrawURL,
		Payload: payload,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to broadcast previews for message %s: %v", item.MessageID, err))
	}
}

func cacheKey(rawURL string) string {
	sum := md5.Sum([]byte(linkpreview.Canonicalize(rawURL))) //nolint:gosec // .
	return hex.EncodeToString(sum[:])
}

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package preview

import (
	"context"
	"time"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/linkpreview"
)

type DBRepo interface {
	SetMessagePreviews(ctx context.Context, messageID string, previews []model.Preview) error
}

type Cache interface {
	GetPreview(ctx context.Context, key string) ([]byte, error)
	SetPreview(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*linkpreview.Metadata, error)
}

type BusPublisher interface {
	Publish(ctx context.Context, event model.BusEvent) error
}

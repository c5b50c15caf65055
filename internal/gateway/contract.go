//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package gateway

import (
	"context"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/service"
)

type ChatService interface {
	SendMessage(ctx context.Context, params service.SendMessageParams) (*model.Message, error)
	ToggleEmoji(ctx context.Context, userID, messageID, emoji string) (bool, error)
	RoomsForUser(ctx context.Context, userID string) ([]string, error)
}

type AuthVerifier interface {
	VerifyToken(ctx context.Context, token string, kind model.TokenKind) (*model.Identity, error)
}

type UserClient interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

type CallClient interface {
	GetCall(ctx context.Context, callID, callType string) (*model.Call, error)
}

type BusPublisher interface {
	Publish(ctx context.Context, event model.BusEvent) error
	Origin() string
}

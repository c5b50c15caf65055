//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"encoding/json"

	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/service"
)

type ChatService interface {
	CreateConversation(ctx context.Context, userID string, targetIDs []string, content string) (*service.CreateConversationResult, error)
	SendMessage(ctx context.Context, params service.SendMessageParams) (*model.Message, error)
	DeleteMessage(ctx context.Context, conversationID, messageID, userID string) error
	ConversationsForUser(ctx context.Context, userID string) (model.ConversationPreviewList, error)
}

type UserClient interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetAllRelatedFriends(ctx context.Context, userID string) ([]model.User, error)
}

type StreamClient interface {
	GenerateUserToken(userID string) (string, int64, error)
	UpsertUser(ctx context.Context, userID, name, avatarURL string) error
}

type StorageClient interface {
	Upload(ctx context.Context, ownerID string, data []byte, bucketType, fileName string) (string, error)
}

type Hub interface {
	EmitRoomRaw(room, event string, payload json.RawMessage)
}

type BusPublisher interface {
	Publish(ctx context.Context, event model.BusEvent) error
}

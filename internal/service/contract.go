//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/s21platform/messenger-service/internal/model"
)

type DBRepo interface {
	LockParticipantSet(ctx context.Context, key int64) error
	FindConversationByParticipants(ctx context.Context, participants []string) (string, error)
	CreateConversation(ctx context.Context, convType string, participants []string) (string, error)
	TouchConversation(ctx context.Context, conversationID string) error
	GetUserConversationIDs(ctx context.Context, userID string) ([]string, error)
	GetConversationPreviews(ctx context.Context, userID string) (model.ConversationPreviewList, error)
	IsParticipant(ctx context.Context, conversationID, userID string) (bool, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	GetMessage(ctx context.Context, messageID string) (*model.Message, error)
	DeleteMessage(ctx context.Context, messageID string) error
	GetReactionForUpdate(ctx context.Context, messageID, userID string) (*model.EmojiReaction, error)
	InsertReaction(ctx context.Context, reaction *model.EmojiReaction) error
	DeleteReaction(ctx context.Context, reactionID string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type UserClient interface {
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

type PreviewProducer interface {
	Enqueue(ctx context.Context, item model.PreviewWorkItem) error
}

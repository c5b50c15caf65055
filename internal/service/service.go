package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
)

// Service owns the transactional invariants of conversations, messages and
// emoji reactions. Every mutating operation runs inside a transaction carried
// by the context; enrichment enqueues are best-effort side effects.
type Service struct {
	repository DBRepo
	userClient UserClient
	producer   PreviewProducer
}

func New(repo DBRepo, userClient UserClient, producer PreviewProducer) *Service {
	return &Service{
		repository: repo,
		userClient: userClient,
		producer:   producer,
	}
}

type SendMessageParams struct {
	ConversationID string
	SenderID       string
	Content        string
	Type           string
	Mentions       []model.Mention
	ReplyInfo      *model.ReplyInfo
}

type CreateConversationResult struct {
	ConversationID string
	Message        *model.Message
	Created        bool
}

func (s *Service) SendMessage(ctx context.Context, params SendMessageParams) (*model.Message, error) {
	conversationID, err := uuid.Parse(params.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("invalid conversation id: %w", model.ErrNotFound)
	}

	senderID, err := uuid.Parse(params.SenderID)
	if err != nil {
		return nil, fmt.Errorf("invalid sender id: %v", err)
	}

	isMember, err := s.repository.IsParticipant(ctx, params.ConversationID, params.SenderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, model.ErrForbidden
	}

	if params.ReplyInfo != nil && params.ReplyInfo.MessageID != "" {
		if _, err := s.repository.GetMessage(ctx, params.ReplyInfo.MessageID); err != nil {
			return nil, fmt.Errorf("reply target: %w", err)
		}
	}

	message := &model.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Type:           params.Type,
		Content:        params.Content,
		Mentions:       params.Mentions,
		PreviewURL:     []model.Preview{},
		ReplyInfo:      params.ReplyInfo,
		SentAt:         time.Now(),
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.repository.SaveMessage(ctx, message); err != nil {
			return err
		}
		return s.repository.TouchConversation(ctx, params.ConversationID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	s.enqueuePreviews(ctx, message)

	return message, nil
}

// enqueuePreviews publishes an enrichment work item for text messages with
// URLs. Enrichment is best-effort metadata: a publish failure is logged and
// never fails the send.
func (s *Service) enqueuePreviews(ctx context.Context, message *model.Message) {
	if message.Type != model.TextMessageType {
		return
	}

	urls := ExtractURLs(message.Content)
	if len(urls) == 0 {
		return
	}

	item := model.PreviewWorkItem{
		ConversationID: message.ConversationID.String(),
		MessageID:      message.ID.String(),
		URLs:           urls,
	}

	if err := s.producer.Enqueue(ctx, item); err != nil {
		logger := logger_lib.FromContext(ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to enqueue preview work item for message %s: %v", message.ID, err))
	}
}

func (s *Service) CreateConversation(ctx context.Context, userID string, targetIDs []string, content string) (*CreateConversationResult, error) {
	targets := make([]string, 0, len(targetIDs))
	seen := map[string]struct{}{userID: {}}
	for _, targetID := range targetIDs {
		if _, ok := seen[targetID]; ok {
			continue
		}
		seen[targetID] = struct{}{}
		targets = append(targets, targetID)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("conversation requires at least one target user")
	}

	for _, targetID := range targets {
		if _, err := s.userClient.GetUser(ctx, targetID); err != nil {
			return nil, fmt.Errorf("target user %s: %w", targetID, err)
		}
	}

	participants := append([]string{userID}, targets...)

	convType := model.GroupConversationType
	if len(targets) == 1 {
		convType = model.OneToOneConversationType
	}

	senderID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %v", err)
	}

	message := &model.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		Type:       model.TextMessageType,
		Content:    content,
		PreviewURL: []model.Preview{},
		SentAt:     time.Now(),
	}

	result := &CreateConversationResult{Message: message}

	// The lookup must happen after the advisory lock is held: two concurrent
	// calls with the same participant set otherwise both miss it and each
	// inserts a conversation.
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.repository.LockParticipantSet(ctx, participantSetKey(participants)); err != nil {
			return err
		}

		existingID, err := s.repository.FindConversationByParticipants(ctx, participants)
		if err != nil {
			return err
		}

		if existingID != "" {
			parsed, err := uuid.Parse(existingID)
			if err != nil {
				return fmt.Errorf("repository returned invalid conversation id: %v", err)
			}
			message.ConversationID = parsed
			result.ConversationID = existingID

			if err := s.repository.SaveMessage(ctx, message); err != nil {
				return err
			}
			return s.repository.TouchConversation(ctx, existingID)
		}

		conversationID, err := s.repository.CreateConversation(ctx, convType, participants)
		if err != nil {
			return err
		}

		parsed, err := uuid.Parse(conversationID)
		if err != nil {
			return fmt.Errorf("repository returned invalid conversation id: %v", err)
		}
		message.ConversationID = parsed
		result.ConversationID = conversationID
		result.Created = true

		return s.repository.SaveMessage(ctx, message)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	s.enqueuePreviews(ctx, message)

	return result, nil
}

// participantSetKey derives the advisory-lock key for a participant set,
// order-independent.
func participantSetKey(participants []string) int64 {
	sorted := append([]string(nil), participants...)
	sort.Strings(sorted)

	hasher := fnv.New64a()
	for _, participant := range sorted {
		hasher.Write([]byte(participant)) //nolint:errcheck // .
		hasher.Write([]byte{0})           //nolint:errcheck // .
	}
	return int64(hasher.Sum64()) //nolint:gosec // .
}

// ToggleEmoji flips the user's reaction on the message: a first reaction adds
// it, a repeat removes it. Returns true when the reaction was added.
func (s *Service) ToggleEmoji(ctx context.Context, userID, messageID, emoji string) (bool, error) {
	parsedMessageID, err := uuid.Parse(messageID)
	if err != nil {
		return false, fmt.Errorf("invalid message id: %w", model.ErrNotFound)
	}

	parsedUserID, err := uuid.Parse(userID)
	if err != nil {
		return false, fmt.Errorf("invalid user id: %v", err)
	}

	var added bool
	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetReactionForUpdate(ctx, messageID, userID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if existing != nil {
			added = false
			return s.repository.DeleteReaction(ctx, existing.ID.String())
		}

		added = true
		return s.repository.InsertReaction(ctx, &model.EmojiReaction{
			ID:        uuid.New(),
			MessageID: parsedMessageID,
			UserID:    parsedUserID,
			Emoji:     emoji,
		})
	})
	if err != nil {
		return false, fmt.Errorf("failed to toggle emoji: %w", err)
	}

	return added, nil
}

// DeleteMessage removes a message on behalf of its original sender only.
func (s *Service) DeleteMessage(ctx context.Context, conversationID, messageID, userID string) error {
	return tx.TxExecute(ctx, func(ctx context.Context) error {
		message, err := s.repository.GetMessage(ctx, messageID)
		if err != nil {
			return err
		}

		if message.ConversationID.String() != conversationID {
			return model.ErrNotFound
		}

		if message.SenderID.String() != userID {
			return model.ErrForbidden
		}

		return s.repository.DeleteMessage(ctx, messageID)
	})
}

func (s *Service) RoomsForUser(ctx context.Context, userID string) ([]string, error) {
	return s.repository.GetUserConversationIDs(ctx, userID)
}

func (s *Service) ConversationsForUser(ctx context.Context, userID string) (model.ConversationPreviewList, error) {
	return s.repository.GetConversationPreviews(ctx, userID)
}

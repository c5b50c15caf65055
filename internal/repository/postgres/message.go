package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/model"
)

// messageRow keeps the jsonb columns raw; conversion to model.Message happens
// here so the model stays free of driver concerns.
type messageRow struct {
	ID             uuid.UUID  `db:"id"`
	ConversationID uuid.UUID  `db:"conversation_id"`
	SenderID       uuid.UUID  `db:"sender_id"`
	Type           string     `db:"type"`
	Content        string     `db:"content"`
	Mentions       []byte     `db:"mentions"`
	PreviewURL     []byte     `db:"preview_url"`
	ReplyInfo      []byte     `db:"reply_info"`
	SentAt         time.Time  `db:"sent_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (row *messageRow) toModel() (*model.Message, error) {
	message := &model.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		Type:           row.Type,
		Content:        row.Content,
		SentAt:         row.SentAt,
		DeletedAt:      row.DeletedAt,
	}

	if len(row.Mentions) > 0 {
		if err := json.Unmarshal(row.Mentions, &message.Mentions); err != nil {
			return nil, fmt.Errorf("failed to decode mentions: %v", err)
		}
	}
	if len(row.PreviewURL) > 0 {
		if err := json.Unmarshal(row.PreviewURL, &message.PreviewURL); err != nil {
			return nil, fmt.Errorf("failed to decode preview list: %v", err)
		}
	}
	if len(row.ReplyInfo) > 0 {
		if err := json.Unmarshal(row.ReplyInfo, &message.ReplyInfo); err != nil {
			return nil, fmt.Errorf("failed to decode reply info: %v", err)
		}
	}

	return message, nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	mentions, err := json.Marshal(message.Mentions)
	if err != nil {
		return fmt.Errorf("failed to encode mentions: %v", err)
	}

	previews, err := json.Marshal(message.PreviewURL)
	if err != nil {
		return fmt.Errorf("failed to encode preview list: %v", err)
	}

	var replyInfo interface{}
	if message.ReplyInfo != nil {
		data, err := json.Marshal(message.ReplyInfo)
		if err != nil {
			return fmt.Errorf("failed to encode reply info: %v", err)
		}
		replyInfo = data
	}

	query := sq.Insert("messages").
		Columns("id", "conversation_id", "sender_id", "type", "content", "mentions", "preview_url", "reply_info").
		Values(message.ID, message.ConversationID, message.SenderID, message.Type, message.Content, mentions, previews, replyInfo).
		PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID string) (*model.Message, error) {
	query, args, err := sq.Select(
		"id",
		"conversation_id",
		"sender_id",
		"type",
		"content",
		"mentions",
		"preview_url",
		"reply_info",
		"sent_at",
		"deleted_at",
	).
		From("messages").
		Where(sq.Eq{"id": messageID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var row messageRow
	err = r.Chk(ctx).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return row.toModel()
}

// DeleteMessage soft-deletes the row; every read filters on deleted_at, so
// the message leaves the conversation's list in the same statement.
func (r *Repository) DeleteMessage(ctx context.Context, messageID string) error {
	query, args, err := sq.Update("messages").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": messageID}).
		Where(sq.Eq{"deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete message: %v", err)
	}

	return nil
}

// SetMessagePreviews overwrites the preview list, so replaying the same work
// item never produces duplicate entries.
func (r *Repository) SetMessagePreviews(ctx context.Context, messageID string, previews []model.Preview) error {
	data, err := json.Marshal(previews)
	if err != nil {
		return fmt.Errorf("failed to encode preview list: %v", err)
	}

	query, args, err := sq.Update("messages").
		Set("preview_url", data).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set message previews: %v", err)
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/s21platform/messenger-service/internal/model"
)

// LockParticipantSet takes a transaction-scoped advisory lock on the
// participant-set key, serializing concurrent creation attempts for the same
// set. The lock releases with the transaction.
func (r *Repository) LockParticipantSet(ctx context.Context, key int64) error {
	_, err := r.Chk(ctx).ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", key)
	if err != nil {
		return fmt.Errorf("failed to lock participant set: %v", err)
	}

	return nil
}

// FindConversationByParticipants looks up the conversation whose participant
// set is exactly the given one, order-independent. Returns "" when none exists.
func (r *Repository) FindConversationByParticipants(ctx context.Context, participants []string) (string, error) {
	query, args, err := sq.Select("conversation_id").
		From("conversation_participants").
		GroupBy("conversation_id").
		Having("count(*) = ?", len(participants)).
		Having("count(*) filter (where user_id = any(?)) = ?", pq.Array(participants), len(participants)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationID string
	err = r.Chk(ctx).GetContext(ctx, &conversationID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to find conversation by participants: %v", err)
	}

	return conversationID, nil
}

func (r *Repository) CreateConversation(ctx context.Context, convType string, participants []string) (string, error) {
	query, args, err := sq.Insert("conversations").
		Columns("type").
		Values(convType).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationID string
	err = r.Chk(ctx).GetContext(ctx, &conversationID, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to create conversation: %v", err)
	}

	insert := sq.Insert("conversation_participants").
		Columns("conversation_id", "user_id").
		Suffix("ON CONFLICT (conversation_id, user_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	for _, userID := range participants {
		insert = insert.Values(conversationID, userID)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("failed to add participants: %v", err)
	}

	return conversationID, nil
}

func (r *Repository) TouchConversation(ctx context.Context, conversationID string) error {
	query, args, err := sq.Update("conversations").
		Set("last_activity", sq.Expr("now()")).
		Where(sq.Eq{"id": conversationID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to touch conversation: %v", err)
	}

	return nil
}

func (r *Repository) IsParticipant(ctx context.Context, conversationID, userID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("conversation_participants").
		Where(sq.And{
			sq.Eq{"conversation_id": conversationID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var isParticipant bool
	err = r.Chk(ctx).GetContext(ctx, &isParticipant, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check conversation membership: %v", err)
	}

	return isParticipant, nil
}

func (r *Repository) GetUserConversationIDs(ctx context.Context, userID string) ([]string, error) {
	query, args, err := sq.Select("conversation_id").
		From("conversation_participants").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var conversationIDs []string
	err = r.Chk(ctx).SelectContext(ctx, &conversationIDs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get user conversations: %v", err)
	}

	return conversationIDs, nil
}

func (r *Repository) GetConversationPreviews(ctx context.Context, userID string) (model.ConversationPreviewList, error) {
	lastMessage := func(column string) string {
		query, _, _ := sq.Select(column).
			From("messages m").
			Where("m.conversation_id = c.id").
			Where(sq.Eq{"m.deleted_at": nil}).
			OrderBy("m.sent_at DESC").
			Limit(1).
			ToSql()
		return query
	}

	query, args, err := sq.Select(
		"c.id as conversation_id",
		"c.type",
		"c.last_activity",
		"("+lastMessage("content")+") as last_message_content",
	).
		From("conversations c").
		Join("conversation_participants cp ON c.id = cp.conversation_id").
		Where(sq.Eq{"cp.user_id": userID}).
		OrderBy("c.last_activity DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var previews model.ConversationPreviewList
	err = r.Chk(ctx).SelectContext(ctx, &previews, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation previews: %v", err)
	}

	return previews, nil
}

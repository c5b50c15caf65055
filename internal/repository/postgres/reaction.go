package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/s21platform/messenger-service/internal/model"
)

// GetReactionForUpdate locks the user's reaction row for the message, if any.
// Together with the unique index on (message_id, user_id) this serializes
// concurrent toggles to exactly one of added/removed.
func (r *Repository) GetReactionForUpdate(ctx context.Context, messageID, userID string) (*model.EmojiReaction, error) {
	query, args, err := sq.Select(
		"id",
		"message_id",
		"user_id",
		"emoji",
	).
		From("message_reactions").
		Where(sq.And{
			sq.Eq{"message_id": messageID},
			sq.Eq{"user_id": userID},
		}).
		Suffix("FOR UPDATE").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reaction model.EmojiReaction
	err = r.Chk(ctx).GetContext(ctx, &reaction, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction: %v", err)
	}

	return &reaction, nil
}

func (r *Repository) InsertReaction(ctx context.Context, reaction *model.EmojiReaction) error {
	query, args, err := sq.Insert("message_reactions").
		Columns("id", "message_id", "user_id", "emoji").
		Values(reaction.ID, reaction.MessageID, reaction.UserID, reaction.Emoji).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert reaction: %v", err)
	}

	return nil
}

func (r *Repository) DeleteReaction(ctx context.Context, reactionID string) error {
	query, args, err := sq.Delete("message_reactions").
		Where(sq.Eq{"id": reactionID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %v", err)
	}

	return nil
}

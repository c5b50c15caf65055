package model

import "github.com/google/uuid"

// EmojiReaction holds at most one active reaction per (user, message) pair;
// a repeated reaction by the same user toggles the existing one off.
type EmojiReaction struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MessageID uuid.UUID `db:"message_id" json:"messageId"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Emoji     string    `db:"emoji" json:"emoji"`
}

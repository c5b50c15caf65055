package model

import (
	"time"
)

const (
	OneToOneConversationType = "one_to_one"
	GroupConversationType    = "group"

	// GeneralRoom is the global broadcast room every admitted connection joins.
	GeneralRoom = "general"
)

type Conversation struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Participants []string  `json:"participants"`
	LastActivity time.Time `json:"lastActivity"`
}

type ConversationPreviewList []ConversationPreview

type ConversationPreview struct {
	ConversationID     string     `db:"conversation_id" json:"conversationId"`
	Type               string     `db:"type" json:"type"`
	LastMessageContent *string    `db:"last_message_content" json:"lastMessageContent,omitempty"`
	LastActivity       *time.Time `db:"last_activity" json:"lastActivity,omitempty"`
}

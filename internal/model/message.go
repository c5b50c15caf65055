package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TextMessageType  = "text"
	ImageMessageType = "image"
	CallMessageType  = "call"
	NotiMessageType  = "noti"
)

type MessageList []Message

type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversationId"`
	SenderID       uuid.UUID  `json:"senderId"`
	Type           string     `json:"contentType"`
	Content        string     `json:"body"`
	Mentions       []Mention  `json:"mentions"`
	PreviewURL     []Preview  `json:"previewUrl"`
	ReplyInfo      *ReplyInfo `json:"replyInfo,omitempty"`
	SentAt         time.Time  `json:"sentAt"`
	DeletedAt      *time.Time `json:"-"`
}

type Mention struct {
	ID          string `json:"id,omitempty"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	StartIndex  int    `json:"startIndex"`
	EndIndex    int    `json:"endIndex"`
}

type ReplyInfo struct {
	MessageID  string `json:"messageId"`
	Body       string `json:"body"`
	SenderName string `json:"senderName"`
	IsImage    bool   `json:"isImage"`
}

type Preview struct {
	URL            string `json:"url"`
	ThumbnailImage string `json:"thumbnailImage"`
	StartIndex     int    `json:"startIndex"`
	EndIndex       int    `json:"endIndex"`
	Title          string `json:"title"`
	Description    string `json:"description"`
}

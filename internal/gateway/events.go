package gateway

import (
	"encoding/json"

	"github.com/s21platform/messenger-service/internal/model"
)

// Inbound event names accepted over the socket.
const (
	eventSendMessage   = "send-message"
	eventSendEmoji     = "send-emoji"
	eventCreateMeeting = "create-meeting"
	eventEndMeeting    = "end-meeting"
)

// WsEvent is the envelope for every frame in both directions.
type WsEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type SendMessageRequest struct {
	ConversationID string           `json:"conversationId"`
	Content        string           `json:"content"`
	Mentions       []model.Mention  `json:"mentions"`
	ReplyInfo      *model.ReplyInfo `json:"replyInfo"`
}

type SendEmojiRequest struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
	Emoji          string `json:"emoji"`
}

type MeetingRequest struct {
	ConversationID string `json:"conversationId"`
	CallID         string `json:"callId"`
	CallType       string `json:"callType"`
}

type EmojiPayload struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
	UserID         string `json:"userId"`
	Emoji          string `json:"emoji"`
}

type DeleteMessagePayload struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
}

type RedirectPayload struct {
	ConversationID string `json:"conversationId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type CrawURLPayload struct {
	ConversationID string          `json:"conversationId"`
	MessageID      string          `json:"messageId"`
	PreviewURL     []model.Preview `json:"previewUrl"`
}

package model

import (
	"encoding/json"
	"time"
)

// Bus event kinds carried over the cross-instance bridge.
const (
	// BusKindEmit replicates a room-targeted emit to every other instance.
	BusKindEmit = "room.emit"
	// BusKindNewConversation is applied by every instance, origin included:
	// each one joins its local sockets of the target users to the new room.
	BusKindNewConversation = "conversation.new"
)

// Wire protocol event names.
const (
	EventMessages       = "messages"
	EventReceiveEmoji   = "receive-emoji"
	EventReceiveCrawURL = "receive-craw-url"
	EventDeleteMessage  = "delete-message"
	EventRedirect       = "redirect"
	EventErrors         = "errors"
)

// BusEvent is the tagged variant exchanged between gateway instances. Origin
// identifies the publishing instance so subscribers can skip emits they have
// already delivered locally.
type BusEvent struct {
	Origin  string          `json:"origin"`
	Kind    string          `json:"kind"`
	Room    string          `json:"room,omitempty"`
	Event   string          `json:"event,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

// MessageEvent is the socket-facing shape of a message. Stored rows keep the
// body/senderId column names; the wire contract speaks content/sender.
type MessageEvent struct {
	MessageID      string     `json:"messageId"`
	ConversationID string     `json:"conversationId"`
	Sender         string     `json:"sender"`
	ContentType    string     `json:"contentType"`
	Content        string     `json:"content"`
	Mentions       []Mention  `json:"mentions"`
	PreviewURL     []Preview  `json:"previewUrl"`
	ReplyInfo      *ReplyInfo `json:"replyInfo,omitempty"`
	SentAt         time.Time  `json:"sentAt"`
}

func NewMessageEvent(message *Message) MessageEvent {
	mentions := message.Mentions
	if mentions == nil {
		mentions = []Mention{}
	}
	previews := message.PreviewURL
	if previews == nil {
		previews = []Preview{}
	}

	return MessageEvent{
		MessageID:      message.ID.String(),
		ConversationID: message.ConversationID.String(),
		Sender:         message.SenderID.String(),
		ContentType:    message.Type,
		Content:        message.Content,
		Mentions:       mentions,
		PreviewURL:     previews,
		ReplyInfo:      message.ReplyInfo,
		SentAt:         message.SentAt,
	}
}

type NewConversationEvent struct {
	ConversationID string    `json:"conversationId"`
	UserID         string    `json:"userId"`
	TargetIDs      []string  `json:"targetIds"`
	MessageID      string    `json:"messageId"`
	Content        string    `json:"content"`
	SentAt         time.Time `json:"sentAt"`
}

// PreviewWorkItem is the enrichment task published for messages with URLs.
type PreviewWorkItem struct {
	ConversationID string    `json:"conversationId"`
	MessageID      string    `json:"messageId"`
	URLs           []URLSpan `json:"urls"`
}

type URLSpan struct {
	URL        string `json:"url"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

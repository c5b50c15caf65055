package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/service"
)

// broadcast delivers an event to local members of the room and replicates it
// to other instances over the bus. Bus failures degrade to local-only
// delivery and are logged.
func (g *Gateway) broadcast(client *Client, room, event string, payload any) {
	logger := logger_lib.FromContext(client.ctx, config.KeyLogger)

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to marshal %s payload: %v", event, err))
		return
	}

	g.hub.EmitRoomRaw(room, event, data)

	err = g.bus.Publish(client.ctx, model.BusEvent{
		Kind:    model.BusKindEmit,
		Room:    room,
		Event:   event,
		Payload: data,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to replicate %s to other instances: %v", event, err))
	}
}

func (g *Gateway) handleSendMessage(client *Client, event WsEvent) {
	logger := logger_lib.FromContext(client.ctx, config.KeyLogger)
	logger.AddFuncName("handleSendMessage")

	var req SendMessageRequest
	if err := json.Unmarshal(event.Data, &req); err != nil {
		g.emitError(client, "invalid send-message payload")
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		g.emitError(client, "message content is empty")
		return
	}

	for i := range req.Mentions {
		req.Mentions[i].ID = uuid.New().String()
	}

	message, err := g.service.SendMessage(client.ctx, service.SendMessageParams{
		ConversationID: req.ConversationID,
		SenderID:       client.userID,
		Content:        content,
		Type:           model.TextMessageType,
		Mentions:       req.Mentions,
		ReplyInfo:      req.ReplyInfo,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		g.emitError(client, sendErrorText(err))
		return
	}

	g.broadcast(client, req.ConversationID, model.EventMessages, model.NewMessageEvent(message))
}

func (g *Gateway) handleSendEmoji(client *Client, event WsEvent) {
	logger := logger_lib.FromContext(client.ctx, config.KeyLogger)
	logger.AddFuncName("handleSendEmoji")

	var req SendEmojiRequest
	if err := json.Unmarshal(event.Data, &req); err != nil {
		g.emitError(client, "invalid send-emoji payload")
		return
	}

	added, err := g.service.ToggleEmoji(client.ctx, client.userID, req.MessageID, req.Emoji)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to toggle emoji: %v", err))
		g.emitError(client, sendErrorText(err))
		return
	}

	// A removed reaction broadcasts with an empty emoji so clients clear it.
	payload := EmojiPayload{
		ConversationID: req.ConversationID,
		MessageID:      req.MessageID,
		UserID:         client.userID,
	}
	if added {
		payload.Emoji = req.Emoji
	}

	g.broadcast(client, req.ConversationID, model.EventReceiveEmoji, payload)
}

func (g *Gateway) handleCreateMeeting(client *Client, event WsEvent) {
	logger := logger_lib.FromContext(client.ctx, config.KeyLogger)
	logger.AddFuncName("handleCreateMeeting")

	var req MeetingRequest
	if err := json.Unmarshal(event.Data, &req); err != nil {
		g.emitError(client, "invalid create-meeting payload")
		return
	}

	call, err := g.calls.GetCall(client.ctx, req.CallID, req.CallType)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			g.emitError(client, "call not found")
			return
		}
		logger.Error(fmt.Sprintf("failed to look up call %s: %v", req.CallID, err))
		g.emitError(client, "failed to look up call")
		return
	}

	// The creator starting the meeting produces a call message; anyone else
	// joining produces a notification.
	messageType := model.NotiMessageType
	content := "joined the meeting"
	if call.CreatedBy == client.userID {
		messageType = model.CallMessageType
		content = "meeting started"
	}

	message, err := g.service.SendMessage(client.ctx, service.SendMessageParams{
		ConversationID: req.ConversationID,
		SenderID:       client.userID,
		Content:        content,
		Type:           messageType,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to record meeting message: %v", err))
		g.emitError(client, sendErrorText(err))
		return
	}

	g.broadcast(client, req.ConversationID, model.EventMessages, model.NewMessageEvent(message))
}

func (g *Gateway) handleEndMeeting(client *Client, event WsEvent) {
	logger := logger_lib.FromContext(client.ctx, config.KeyLogger)
	logger.AddFuncName("handleEndMeeting")

	var req MeetingRequest
	if err := json.Unmarshal(event.Data, &req); err != nil {
		g.emitError(client, "invalid end-meeting payload")
		return
	}

	if _, err := g.calls.GetCall(client.ctx, req.CallID, req.CallType); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			g.emitError(client, "call not found")
			return
		}
		logger.Error(fmt.Sprintf("failed to look up call %s: %v", req.CallID, err))
		g.emitError(client, "failed to look up call")
		return
	}

	message, err := g.service.SendMessage(client.ctx, service.SendMessageParams{
		ConversationID: req.ConversationID,
		SenderID:       client.userID,
		Content:        "meeting ended",
		Type:           model.NotiMessageType,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to record meeting message: %v", err))
		g.emitError(client, sendErrorText(err))
		return
	}

	g.broadcast(client, req.ConversationID, model.EventMessages, model.NewMessageEvent(message))
}

// HandleBusEvent applies an event received from another instance (or, for
// conversation.new, possibly this one) to local sockets.
func (g *Gateway) HandleBusEvent(event model.BusEvent) {
	switch event.Kind {
	case model.BusKindEmit:
		if event.Origin == g.bus.Origin() {
			return
		}
		g.hub.EmitRoomRaw(event.Room, event.Event, event.Payload)
	case model.BusKindNewConversation:
		g.handleNewConversation(event)
	}
}

// handleNewConversation runs on every instance, the publisher included: each
// one joins its own sockets of the affected users to the new room, then
// delivers the first message and the initiator redirect locally.
func (g *Gateway) handleNewConversation(event model.BusEvent) {
	var ev model.NewConversationEvent
	if err := json.Unmarshal(event.Payload, &ev); err != nil {
		return
	}

	if _, err := uuid.Parse(ev.ConversationID); err != nil {
		return
	}
	if _, err := uuid.Parse(ev.UserID); err != nil {
		return
	}

	members := append([]string{ev.UserID}, ev.TargetIDs...)
	g.hub.JoinUserSockets(ev.ConversationID, members)

	message := model.MessageEvent{
		MessageID:      ev.MessageID,
		ConversationID: ev.ConversationID,
		Sender:         ev.UserID,
		ContentType:    model.TextMessageType,
		Content:        ev.Content,
		Mentions:       []model.Mention{},
		PreviewURL:     []model.Preview{},
		SentAt:         ev.SentAt,
	}

	_ = g.hub.EmitRoom(ev.ConversationID, model.EventMessages, message)
	_ = g.hub.EmitUser(ev.UserID, model.EventRedirect, RedirectPayload{ConversationID: ev.ConversationID})
}

func sendErrorText(err error) string {
	switch {
	case errors.Is(err, model.ErrForbidden):
		return "not allowed"
	case errors.Is(err, model.ErrNotFound):
		return "not found"
	default:
		return "internal error"
	}
}

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/service"
)

const maxUploadSize = 10 << 20

type Handler struct {
	service      ChatService
	userClient   UserClient
	streamClient StreamClient
	storage      StorageClient
	hub          Hub
	bus          BusPublisher
}

func New(
	chatService ChatService,
	userClient UserClient,
	streamClient StreamClient,
	storage StorageClient,
	hub Hub,
	bus BusPublisher,
) *Handler {
	return &Handler{
		service:      chatService,
		userClient:   userClient,
		streamClient: streamClient,
		storage:      storage,
		hub:          hub,
		bus:          bus,
	}
}

func (h *Handler) AttachRoutes(r chi.Router) {
	r.Post("/conversations", h.CreateConversation)
	r.Get("/conversations", h.GetConversations)
	r.Get("/contacts", h.GetContacts)
	r.Delete("/conversations/{conversationID}/messages/{messageID}", h.DeleteMessage)
	r.Post("/media/upload", h.UploadMedia)
	r.Get("/meeting/token", h.GetMeetingToken)
}

type createConversationRequest struct {
	TargetIDs []string `json:"targetIds"`
	Content   string   `json:"body"`
}

type createConversationResponse struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
	Created        bool   `json:"created"`
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.TargetIDs) == 0 {
		h.writeError(w, "targetIds must not be empty", http.StatusBadRequest)
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		h.writeError(w, "message body is empty", http.StatusBadRequest)
		return
	}

	result, err := h.service.CreateConversation(r.Context(), userID, req.TargetIDs, req.Content)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.writeError(w, "target user not found", http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
		h.writeError(w, "failed to create conversation", http.StatusInternalServerError)
		return
	}

	if result.Created {
		// Every instance, this one included, joins its local sockets of the
		// participants to the new room before delivering the first message.
		payload, err := json.Marshal(model.NewConversationEvent{
			ConversationID: result.ConversationID,
			UserID:         userID,
			TargetIDs:      req.TargetIDs,
			MessageID:      result.Message.ID.String(),
			Content:        result.Message.Content,
			SentAt:         result.Message.SentAt,
		})
		if err == nil {
			err = h.bus.Publish(r.Context(), model.BusEvent{
				Kind:    model.BusKindNewConversation,
				Payload: payload,
			})
		}
		if err != nil {
			logger.Error(fmt.Sprintf("failed to announce conversation %s: %v", result.ConversationID, err))
		}
	} else {
		// The room already exists; deliver the message through the usual
		// replicated emit.
		h.broadcast(r, result.ConversationID, model.EventMessages, model.NewMessageEvent(result.Message))
	}

	h.writeJSON(w, createConversationResponse{
		ConversationID: result.ConversationID,
		MessageID:      result.Message.ID.String(),
		Created:        result.Created,
	}, http.StatusOK)
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	conversations, err := h.service.ConversationsForUser(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, "failed to get conversations", http.StatusInternalServerError)
		return
	}

	if conversations == nil {
		conversations = model.ConversationPreviewList{}
	}

	h.writeJSON(w, conversations, http.StatusOK)
}

// GetContacts lists the users the authed user may start a conversation with.
func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetContacts")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	contacts, err := h.userClient.GetAllRelatedFriends(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get contacts: %v", err))
		h.writeError(w, "failed to get contacts", http.StatusInternalServerError)
		return
	}

	if contacts == nil {
		contacts = []model.User{}
	}

	h.writeJSON(w, contacts, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	conversationID := chi.URLParam(r, "conversationID")
	messageID := chi.URLParam(r, "messageID")

	err := h.service.DeleteMessage(r.Context(), conversationID, messageID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			h.writeError(w, "message not found", http.StatusNotFound)
		case errors.Is(err, model.ErrForbidden):
			h.writeError(w, "only the sender can delete a message", http.StatusForbidden)
		default:
			logger.Error(fmt.Sprintf("failed to delete message %s: %v", messageID, err))
			h.writeError(w, "failed to delete message", http.StatusInternalServerError)
		}
		return
	}

	h.broadcast(r, conversationID, model.EventDeleteMessage, struct {
		ConversationID string `json:"conversationId"`
		MessageID      string `json:"messageId"`
	}{
		ConversationID: conversationID,
		MessageID:      messageID,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UploadMedia")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	conversationID := r.Header.Get("X-Conversation-Id")
	fileName := r.Header.Get("X-File-Name")
	if conversationID == "" || fileName == "" {
		h.writeError(w, "X-Conversation-Id and X-File-Name headers are required", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		h.writeError(w, "file exceeds the upload limit", http.StatusRequestEntityTooLarge)
		return
	}
	if len(data) == 0 {
		h.writeError(w, "empty file", http.StatusBadRequest)
		return
	}

	fileURL, err := h.storage.Upload(r.Context(), userID, data, model.MessageBucketType, fileName)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upload file: %v", err))
		h.writeError(w, "failed to upload file", http.StatusInternalServerError)
		return
	}

	message, err := h.service.SendMessage(r.Context(), service.SendMessageParams{
		ConversationID: conversationID,
		SenderID:       userID,
		Content:        fileURL,
		Type:           model.ImageMessageType,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrForbidden):
			h.writeError(w, "not a participant of the conversation", http.StatusForbidden)
		case errors.Is(err, model.ErrNotFound):
			h.writeError(w, "conversation not found", http.StatusNotFound)
		default:
			logger.Error(fmt.Sprintf("failed to save media message: %v", err))
			h.writeError(w, "failed to save media message", http.StatusInternalServerError)
		}
		return
	}

	h.broadcast(r, conversationID, model.EventMessages, model.NewMessageEvent(message))

	h.writeJSON(w, message, http.StatusOK)
}

type meetingTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// GetMeetingToken mirrors the user into the call provider and mints a token
// for joining meetings.
func (h *Handler) GetMeetingToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMeetingToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	user, err := h.userClient.GetUser(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user %s: %v", userID, err))
		h.writeError(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	if err := h.streamClient.UpsertUser(r.Context(), user.ID, user.Nickname, user.AvatarURL); err != nil {
		logger.Error(fmt.Sprintf("failed to upsert user %s: %v", userID, err))
		h.writeError(w, "failed to prepare meeting access", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.streamClient.GenerateUserToken(userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate meeting token: %v", err))
		h.writeError(w, "failed to generate meeting token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, meetingTokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

// broadcast delivers an event to local room members and replicates it to the
// other instances. Failures degrade to local delivery.
func (h *Handler) broadcast(r *http.Request, room, event string, payload any) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to marshal %s payload: %v", event, err))
		return
	}

	h.hub.EmitRoomRaw(room, event, data)

	err = h.bus.Publish(r.Context(), model.BusEvent{
		Kind:    model.BusKindEmit,
		Room:    room,
		Event:   event,
		Payload: data,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to replicate %s to other instances: %v", event, err))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message})
}

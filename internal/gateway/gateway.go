package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
	"github.com/s21platform/messenger-service/internal/pkg/tx"
)

// Gateway admits websocket connections and routes their events. Admission is
// the only place tokens are verified; afterwards the connection context
// carries the resolved identity for its whole lifetime.
type Gateway struct {
	hub          *Hub
	service      ChatService
	verifier     AuthVerifier
	users        UserClient
	calls        CallClient
	bus          BusPublisher
	txProvider   tx.DB
	requiredRole string
	upgrader     websocket.Upgrader
}

func New(hub *Hub, chatService ChatService, verifier AuthVerifier, users UserClient, calls CallClient, bus BusPublisher, txProvider tx.DB, requiredRole string) *Gateway {
	return &Gateway{
		hub:          hub,
		service:      chatService,
		verifier:     verifier,
		users:        users,
		calls:        calls,
		bus:          bus,
		txProvider:   txProvider,
		requiredRole: requiredRole,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS verifies the token from the query string, optionally enforces the
// configured role, and upgrades the connection on success.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ServeWS")

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("connection rejected: no token")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	identity, err := g.verifier.VerifyToken(r.Context(), token, model.AccessToken)
	if err != nil {
		logger.Warn(fmt.Sprintf("connection rejected: %v", err))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if g.requiredRole != "" {
		user, err := g.users.GetUser(r.Context(), identity.UserID)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to resolve user %s: %v", identity.UserID, err))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if user.Role != g.requiredRole {
			logger.Warn(fmt.Sprintf("connection rejected for user %s: role mismatch", identity.UserID))
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	client := newClient(g.connectionContext(r, identity, token), conn, identity)
	g.hub.Register(client)
	g.handleConnection(client)

	go client.writePump()
	go client.readPump(g)
}

// connectionContext rebuilds the context a connection lives on. The request
// context dies with the handler, so logger, tx plumbing and the admitted
// identity (session, user, token) are re-attached to a fresh one.
func (g *Gateway) connectionContext(r *http.Request, identity *model.Identity, token string) context.Context {
	ctx := context.WithValue(context.Background(), config.KeyLogger, logger_lib.FromContext(r.Context(), config.KeyLogger))
	ctx = tx.Inject(ctx, g.txProvider)
	ctx = context.WithValue(ctx, config.KeyUUID, identity.UserID)
	ctx = context.WithValue(ctx, config.KeySession, identity.SessionID)
	ctx = context.WithValue(ctx, config.KeyToken, token)
	return ctx
}

// handleConnection joins the socket to all of its conversation rooms plus the
// global room. A room lookup failure degrades to global-only delivery.
func (g *Gateway) handleConnection(client *Client) {
	logger := logger_lib.FromContext(client.ctx, config.KeyLogger)

	rooms, err := g.service.RoomsForUser(client.ctx, client.userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load rooms for user %s: %v", client.userID, err))
		rooms = nil
	}

	for _, room := range rooms {
		g.hub.Join(room, client)
	}
	g.hub.Join(model.GeneralRoom, client)
}

func (g *Gateway) handleDisconnect(client *Client) {
	g.hub.Leave(model.GeneralRoom, client)
	g.hub.Unregister(client)
}

func (g *Gateway) dispatch(client *Client, event WsEvent) {
	switch event.Event {
	case eventSendMessage:
		g.handleSendMessage(client, event)
	case eventSendEmoji:
		g.handleSendEmoji(client, event)
	case eventCreateMeeting:
		g.handleCreateMeeting(client, event)
	case eventEndMeeting:
		g.handleEndMeeting(client, event)
	default:
		g.emitError(client, fmt.Sprintf("unknown event: %s", event.Event))
	}
}

func (g *Gateway) emitError(client *Client, message string) {
	if err := g.hub.Emit(client, model.EventErrors, ErrorPayload{Message: message}); err != nil {
		logger := logger_lib.FromContext(client.ctx, config.KeyLogger)
		logger.Error(fmt.Sprintf("failed to emit error to user %s: %v", client.userID, err))
	}
}

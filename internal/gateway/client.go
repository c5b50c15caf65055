package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 15 * time.Second
	pingPeriod     = 10 * time.Second
	maxMessageSize = 64 * 1024
	sendBufSize    = 256
)

// Client is one admitted websocket connection. Its context carries the
// identity resolved at admission along with the logger and transaction
// runner, so event handlers reuse them without re-verifying.
type Client struct {
	conn    *websocket.Conn
	send    chan []byte
	ctx     context.Context
	cancel  context.CancelFunc
	userID  string
	session string
}

func newClient(ctx context.Context, conn *websocket.Conn, identity *model.Identity) *Client {
	ctx, cancel := context.WithCancel(ctx)
	return &Client{
		conn:    conn,
		send:    make(chan []byte, sendBufSize),
		ctx:     ctx,
		cancel:  cancel,
		userID:  identity.UserID,
		session: identity.SessionID,
	}
}

func (c *Client) UserID() string {
	return c.userID
}

// readPump reads frames off the socket and dispatches them until the peer
// goes away or stops answering pings.
func (c *Client) readPump(g *Gateway) {
	defer func() {
		g.handleDisconnect(c)
		c.cancel()
		c.conn.Close() //nolint:errcheck // .
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger := logger_lib.FromContext(c.ctx, config.KeyLogger)
				logger.Warn(fmt.Sprintf("unexpected close for user %s: %v", c.userID, err))
			}
			return
		}

		var event WsEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logger := logger_lib.FromContext(c.ctx, config.KeyLogger)
			logger.Warn(fmt.Sprintf("failed to decode frame from user %s: %v", c.userID, err))
			continue
		}

		g.dispatch(c, event)
	}
}

// writePump serializes all writes to the connection and keeps the peer alive
// with pings. It exits when the send channel is closed by the hub.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close() //nolint:errcheck // .
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

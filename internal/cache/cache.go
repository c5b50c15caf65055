package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

const (
	blacklistSessionsKey      = "blacklist:sessions"
	blacklistAccessTokensKey  = "blacklist:tokens:access"
	blacklistRefreshTokensKey = "blacklist:tokens:refresh"
	previewKeyPrefix          = "preview:"
)

// Client wraps the shared valkey instance used for session fast-path lookups,
// revocation blacklists and the link-preview cache. All of this state is
// advisory: readers fall back to the durable store on any miss or error.
type Client struct {
	conn valkey.Client
}

func New(cfg *config.Config) (*Client, error) {
	conn, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.Valkey.Address},
		Password:    cfg.Valkey.Password,
		SelectDB:    cfg.Valkey.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect valkey: %w", err)
	}

	if err := conn.Do(context.Background(), conn.B().Ping().Build()).Error(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping valkey: %w", err)
	}

	return &Client{conn: conn}, nil
}

func (c *Client) Close() {
	c.conn.Close()
}

func sessionKey(kind model.TokenKind, sessionID string) string {
	return fmt.Sprintf("sessions:%s:%s", kind, sessionID)
}

func tokenBlacklistKey(kind model.TokenKind) string {
	if kind == model.RefreshToken {
		return blacklistRefreshTokensKey
	}
	return blacklistAccessTokensKey
}

// GetSessionUser returns the cached user id for the session, or "" on miss.
func (c *Client) GetSessionUser(ctx context.Context, kind model.TokenKind, sessionID string) (string, error) {
	userID, err := c.conn.Do(ctx, c.conn.B().Get().Key(sessionKey(kind, sessionID)).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get cached session: %w", err)
	}

	return userID, nil
}

func (c *Client) SetSessionUser(ctx context.Context, kind model.TokenKind, sessionID, userID string, ttl time.Duration) error {
	err := c.conn.Do(ctx, c.conn.B().Set().Key(sessionKey(kind, sessionID)).Value(userID).Ex(ttl).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}

	return nil
}

func (c *Client) DeleteSessionUser(ctx context.Context, kind model.TokenKind, sessionID string) error {
	err := c.conn.Do(ctx, c.conn.B().Del().Key(sessionKey(kind, sessionID)).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to drop cached session: %w", err)
	}

	return nil
}

func (c *Client) IsSessionBlacklisted(ctx context.Context, sessionID string) (bool, error) {
	blacklisted, err := c.conn.Do(ctx, c.conn.B().Sismember().Key(blacklistSessionsKey).Member(sessionID).Build()).AsBool()
	if err != nil {
		return false, fmt.Errorf("failed to check session blacklist: %w", err)
	}

	return blacklisted, nil
}

func (c *Client) BlacklistSession(ctx context.Context, sessionID string) error {
	err := c.conn.Do(ctx, c.conn.B().Sadd().Key(blacklistSessionsKey).Member(sessionID).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to blacklist session: %w", err)
	}

	return nil
}

func (c *Client) IsTokenBlacklisted(ctx context.Context, kind model.TokenKind, token string) (bool, error) {
	blacklisted, err := c.conn.Do(ctx, c.conn.B().Sismember().Key(tokenBlacklistKey(kind)).Member(token).Build()).AsBool()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}

	return blacklisted, nil
}

func (c *Client) BlacklistToken(ctx context.Context, kind model.TokenKind, token string) error {
	err := c.conn.Do(ctx, c.conn.B().Sadd().Key(tokenBlacklistKey(kind)).Member(token).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	return nil
}

// GetPreview returns the cached preview metadata for the key, nil on miss.
func (c *Client) GetPreview(ctx context.Context, key string) ([]byte, error) {
	data, err := c.conn.Do(ctx, c.conn.B().Get().Key(previewKeyPrefix+key).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached preview: %w", err)
	}

	return data, nil
}

func (c *Client) SetPreview(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	err := c.conn.Do(ctx, c.conn.B().Set().Key(previewKeyPrefix+key).Value(string(data)).Ex(ttl).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to cache preview: %w", err)
	}

	return nil
}

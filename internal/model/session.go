package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

type Session struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Identity is the resolved result of token verification. It is attached to a
// connection once at admission and reused by every event handler afterwards.
type Identity struct {
	SessionID string
	UserID    string
}

type SessionClaims struct {
	jwt.RegisteredClaims

	SessionID string `json:"id"`
}

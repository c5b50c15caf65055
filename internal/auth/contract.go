//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package auth

import (
	"context"
	"time"

	"github.com/s21platform/messenger-service/internal/model"
)

type SessionRepo interface {
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	SoftDeleteSession(ctx context.Context, sessionID string) error
}

type Cache interface {
	IsTokenBlacklisted(ctx context.Context, kind model.TokenKind, token string) (bool, error)
	BlacklistToken(ctx context.Context, kind model.TokenKind, token string) error
	IsSessionBlacklisted(ctx context.Context, sessionID string) (bool, error)
	BlacklistSession(ctx context.Context, sessionID string) error
	GetSessionUser(ctx context.Context, kind model.TokenKind, sessionID string) (string, error)
	SetSessionUser(ctx context.Context, kind model.TokenKind, sessionID, userID string, ttl time.Duration) error
	DeleteSessionUser(ctx context.Context, kind model.TokenKind, sessionID string) error
}

type TokenParser interface {
	Parse(tokenString string, kind model.TokenKind) (*model.SessionClaims, error)
}

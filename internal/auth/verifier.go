package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

// Verifier resolves bearer tokens to a session identity. Cache and blacklist
// writes are best-effort: a cache failure degrades to the durable-store path,
// never to silent success.
type Verifier struct {
	repo    SessionRepo
	cache   Cache
	parser  TokenParser
	timeout time.Duration
}

func New(repo SessionRepo, cache Cache, parser TokenParser, timeout time.Duration) *Verifier {
	return &Verifier{
		repo:    repo,
		cache:   cache,
		parser:  parser,
		timeout: timeout,
	}
}

func (v *Verifier) VerifyToken(ctx context.Context, token string, kind model.TokenKind) (*model.Identity, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	blacklisted, err := v.cache.IsTokenBlacklisted(ctx, kind, token)
	if err != nil {
		logger.Warn(fmt.Sprintf("token blacklist check degraded: %v", err))
	}
	if blacklisted {
		return nil, model.ErrUnauthorized
	}

	claims, err := v.parser.Parse(token, kind)
	if err != nil {
		// A token that fails signature checking will fail every retry;
		// blacklist it so we stop paying for the verification.
		if blErr := v.cache.BlacklistToken(ctx, kind, token); blErr != nil {
			logger.Warn(fmt.Sprintf("failed to blacklist rejected token: %v", blErr))
		}
		logger.Error(fmt.Sprintf("token validation failed: %v", err))
		return nil, model.ErrUnauthorized
	}

	return v.VerifySession(ctx, claims.SessionID, kind)
}

func (v *Verifier) VerifySession(ctx context.Context, sessionID string, kind model.TokenKind) (*model.Identity, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	blacklisted, err := v.cache.IsSessionBlacklisted(ctx, sessionID)
	if err != nil {
		logger.Warn(fmt.Sprintf("session blacklist check degraded: %v", err))
	}
	if blacklisted {
		return nil, model.ErrUnauthorized
	}

	userID, err := v.cache.GetSessionUser(ctx, kind, sessionID)
	if err != nil {
		logger.Warn(fmt.Sprintf("session cache read degraded: %v", err))
	}
	if userID != "" {
		return &model.Identity{SessionID: sessionID, UserID: userID}, nil
	}

	session, err := v.repo.GetSession(ctx, sessionID)
	if err != nil {
		// Only a session the store does not know gets blacklisted; a
		// transient store failure must stay retryable on the next request.
		if errors.Is(err, model.ErrNotFound) {
			if blErr := v.cache.BlacklistSession(ctx, sessionID); blErr != nil {
				logger.Warn(fmt.Sprintf("failed to blacklist unknown session: %v", blErr))
			}
		}
		logger.Error(fmt.Sprintf("failed to resolve session %s: %v", sessionID, err))
		return nil, model.ErrUnauthorized
	}

	if session.IsExpired(time.Now()) {
		if err := v.repo.SoftDeleteSession(ctx, sessionID); err != nil {
			logger.Error(fmt.Sprintf("failed to soft delete expired session %s: %v", sessionID, err))
		}
		if err := v.cache.BlacklistSession(ctx, sessionID); err != nil {
			logger.Warn(fmt.Sprintf("failed to blacklist expired session: %v", err))
		}
		if err := v.cache.DeleteSessionUser(ctx, kind, sessionID); err != nil {
			logger.Warn(fmt.Sprintf("failed to drop expired session from cache: %v", err))
		}
		return nil, model.ErrUnauthorized
	}

	if ttl := time.Until(session.ExpiresAt); ttl > 0 {
		if err := v.cache.SetSessionUser(ctx, kind, sessionID, session.UserID.String(), ttl); err != nil {
			logger.Warn(fmt.Sprintf("failed to populate session cache: %v", err))
		}
	}

	return &model.Identity{SessionID: sessionID, UserID: session.UserID.String()}, nil
}

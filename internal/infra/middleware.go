package infra

import (
	"context"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

type AuthVerifier interface {
	VerifyToken(ctx context.Context, token string, kind model.TokenKind) (*model.Identity, error)
}

// LoggerHTTP attaches the logger to every request context.
func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthHTTP verifies the bearer token and attaches the resolved identity to
// the request context.
func AuthHTTP(verifier AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			identity, err := verifier.VerifyToken(r.Context(), token, model.AccessToken)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), config.KeyUUID, identity.UserID)
			ctx = context.WithValue(ctx, config.KeySession, identity.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

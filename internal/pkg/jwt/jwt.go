package jwt

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/messenger-service/internal/model"
)

// Verifier validates access and refresh tokens against their type-specific
// public keys. It never signs anything: sessions are minted by the auth
// service, this side only checks them.
type Verifier struct {
	accessKey  *rsa.PublicKey
	refreshKey *rsa.PublicKey
}

func New(accessPublicPEM, refreshPublicPEM string) (*Verifier, error) {
	accessKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(accessPublicPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse access token public key: %w", err)
	}

	refreshKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(refreshPublicPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse refresh token public key: %w", err)
	}

	return &Verifier{
		accessKey:  accessKey,
		refreshKey: refreshKey,
	}, nil
}

func (v *Verifier) Parse(tokenString string, kind model.TokenKind) (*model.SessionClaims, error) {
	publicKey := v.accessKey
	if kind == model.RefreshToken {
		publicKey = v.refreshKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s JWT token: %w", kind, err)
	}

	if claims, ok := token.Claims.(*model.SessionClaims); ok && token.Valid {
		if claims.SessionID == "" {
			return nil, fmt.Errorf("%s JWT token carries no session id", kind)
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid %s JWT token", kind)
}

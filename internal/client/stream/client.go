package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

// Client wraps the call/meeting provider: call lookups and user mirroring go
// over its REST API, user tokens are minted locally with the shared secret.
type Client struct {
	baseURL    string
	apiKey     string
	secret     []byte
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Stream.BaseURL,
		apiKey:  cfg.Stream.APIKey,
		secret:  []byte(cfg.Stream.SecretKey),
		httpClient: &http.Client{
			Timeout: cfg.Stream.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) GetCall(ctx context.Context, callID, callType string) (*model.Call, error) {
	url := fmt.Sprintf("%s/video/call/%s/%s", c.baseURL, callType, callID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var call model.Call
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &call, nil
}

type userTokenClaims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}

func (c *Client) GenerateUserToken(userID string) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(time.Hour)

	claims := userTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: "user",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign call provider token: %w", err)
	}

	return tokenString, expiresAt.Unix(), nil
}

func (c *Client) UpsertUser(ctx context.Context, userID, name, avatarURL string) error {
	payload := map[string]string{
		"id":    userID,
		"name":  name,
		"image": avatarURL,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}

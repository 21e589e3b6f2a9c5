package identity

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"NAKAMA_server/config"

	"github.com/golang-jwt/jwt"
	jsoniter "github.com/json-iterator/go"
)

// Client talks to a GoTrue-style managed auth provider. Access tokens are
// HS256 JWTs signed with the project secret, so resolution is a local parse
// with no network round trip; account creation goes through the provider's
// admin endpoint with the service-level key.
type Client struct {
	baseURL    string
	serviceKey string
	jwtSecret  []byte
	client     *http.Client
}

// New creates a provider client from the auth config
func New(cfg config.AuthConfig) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		jwtSecret:  []byte(cfg.JwtSecret),
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// ResolveToken parses the provider-issued access token to a user id
func (c *Client) ResolveToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

type adminCreateUserRequest struct {
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	EmailConfirm bool         `json:"email_confirm"`
	UserMetadata UserMetadata `json:"user_metadata"`
}

type adminCreateUserResponse struct {
	ID      string `json:"id"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

// AdminCreateUser creates an account on the provider, confirming the email
// directly since no email server is configured
func (c *Client) AdminCreateUser(ctx context.Context, email string, password string, meta UserMetadata) (string, error) {
	body, err := jsoniter.Marshal(adminCreateUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: meta,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var res adminCreateUserResponse
	if err = jsoniter.Unmarshal(raw, &res); err != nil {
		return "", err
	}

	if resp.StatusCode >= 400 {
		msg := res.Msg
		if msg == "" {
			msg = res.Message
		}
		if strings.Contains(msg, "already") || strings.Contains(msg, "duplicate") {
			return "", ErrDuplicate
		}
		return "", fmt.Errorf("provider status %d: %s", resp.StatusCode, msg)
	}

	return res.ID, nil
}

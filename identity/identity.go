package identity

import (
	"context"
	Errors "errors"
)

// ErrInvalidToken means the bearer token could not be resolved to a user
var ErrInvalidToken = Errors.New("identity: invalid token")

// ErrDuplicate means the provider already holds an account for the email
var ErrDuplicate = Errors.New("identity: email already registered")

// UserMetadata is the profile snapshot stored alongside provider credentials
type UserMetadata struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	AvatarColor string `json:"avatar_color"`
	CreatedAt   string `json:"created_at"`
}

// Provider is the whole contract with the managed identity service:
// resolve a bearer token to a user id, and create accounts with the
// service-level credential. Passwords, sessions and token expiry are the
// provider's problem, not this server's.
type Provider interface {
	ResolveToken(token string) (string, error)
	AdminCreateUser(ctx context.Context, email string, password string, meta UserMetadata) (string, error)
}

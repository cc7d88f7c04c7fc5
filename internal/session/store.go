package session

import (
	"context"
	"time"

	"golang.org/x/oauth2"
)

// Session binds a server-side session ID to the provider-issued token.
// The browser only ever sees the ID; the token never leaves this
// service.
type Session struct {
	SessionID string       `json:"session_id"`
	UserID    string       `json:"user_id"`
	Token     oauth2.Token `json:"token"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

package domain

import (
	"context"
	"time"
)

// Session is the persisted client state for one logged-in user: the upstream
// auth token and the user profile returned by login. It is loaded fresh from
// the store on every protected request, so an upstream token rotation takes
// effect on the next call.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at time now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenIssuer issues the portal's own session tokens (e.g. JWT).
type TokenIssuer interface {
	Issue(sessionID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a portal session token and returns the session ID.
type TokenVerifier interface {
	Verify(token string) (sessionID string, err error)
}

// AuthService defines login, registration, and logout against the upstream
// identity endpoints plus the local session lifecycle.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (portalToken string, user *User, err error)
	Register(ctx context.Context, in RegisterInput) (string, error)
	Logout(ctx context.Context, sessionID string) error
	SessionByID(ctx context.Context, sessionID string) (*Session, error)
}

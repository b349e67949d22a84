package user

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session is an authenticated login, keyed by an opaque token. Sessions are
// owned by a SessionStore injected into request handling; no process-wide
// token map exists.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"` // UTC
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionStore is any store that can hold login sessions with explicit
// expiry. Get must return ErrSessionExpired (and forget the session) once
// ExpiresAt has passed.
type SessionStore interface {
	CreateSession(userID string, ttl time.Duration) (Session, error)
	GetSession(token string) (Session, error)
	DeleteSession(token string) error
}

package repository

import (
	"context"
	"errors"
	"time"

	"shopfront/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session row matches the token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists opaque-token login sessions.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its token. Expiry is not checked
	// here; the caller decides what to do with an expired row.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// UpdateExpiry moves a session's expiry forward (fresh-session rotation).
	UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error

	// Delete removes a session by token, ending the login.
	Delete(ctx context.Context, id string) error

	// DeleteByUserID removes every session of one user.
	DeleteByUserID(ctx context.Context, userID int64) error

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}

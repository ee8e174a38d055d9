package entity

import "time"

// Session is a long-lived login represented by an opaque random token.
// The token itself is the primary key; possession of it is the credential.
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time

	// Fresh is set when validation rotated the expiry because the session
	// had passed half of its lifetime. Callers should re-issue the cookie.
	Fresh bool
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// NeedsRotation reports whether the session is inside the second half of its
// lifetime and should be reissued with a fresh expiry on access.
func (s *Session) NeedsRotation(now time.Time, ttl time.Duration) bool {
	return now.After(s.ExpiresAt.Add(-ttl / 2))
}

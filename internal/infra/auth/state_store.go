package auth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// stateTTL bounds how long an authorization round-trip may take.
const stateTTL = 10 * time.Minute

// StateStore tracks outstanding OAuth state parameters for CSRF protection.
// States are single-use and expire after stateTTL.
type StateStore struct {
	mu     sync.Mutex
	states map[string]time.Time
}

// NewStateStore creates an empty state store.
func NewStateStore() *StateStore {
	return &StateStore{states: make(map[string]time.Time)}
}

// Generate produces a cryptographically secure random state string.
func (s *StateStore) Generate() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return hex.EncodeToString(bytes), nil
}

// Store records a state parameter and sweeps out expired ones.
func (s *StateStore) Store(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state] = time.Now().Add(stateTTL)

	now := time.Now()
	for st, expiry := range s.states {
		if now.After(expiry) {
			delete(s.states, st)
		}
	}
}

// Consume validates a state parameter and removes it, so a state can only
// be redeemed once.
func (s *StateStore) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, exists := s.states[state]
	if !exists {
		return false
	}

	delete(s.states, state)

	return !time.Now().After(expiry)
}

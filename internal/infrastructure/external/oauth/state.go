package oauth

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// StateManager issues one-time OAuth state tokens for CSRF protection
type StateManager struct {
	mu         sync.Mutex
	states     map[string]time.Time
	expiration time.Duration
}

// NewStateManager creates a new state manager
func NewStateManager() *StateManager {
	return &StateManager{
		states:     make(map[string]time.Time),
		expiration: 15 * time.Minute, // State expires in 15 minutes
	}
}

// GenerateState generates a random state token and remembers it
func (sm *StateManager) GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	state := base64.URLEncoding.EncodeToString(b)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.states[state] = time.Now().Add(sm.expiration)

	return state, nil
}

// ValidateState validates a state token (one-time use)
func (sm *StateManager) ValidateState(state string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	expires, exists := sm.states[state]
	if !exists {
		return false
	}

	// Delete the state immediately (one-time use)
	delete(sm.states, state)

	return time.Now().Before(expires)
}

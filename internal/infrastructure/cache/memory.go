package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// MemoryStore is an in-process session store with expiration
type MemoryStore struct {
	mu      sync.RWMutex
	items   map[string]*memoryItem
	exports map[string]exportMark
	done    chan struct{}
	once    sync.Once
}

type exportMark struct {
	token string
	until time.Time
}

type memoryItem struct {
	session    entities.TranscriptSession
	expireTime time.Time
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return newMemoryStore(5 * time.Minute)
}

func newMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		items:   make(map[string]*memoryItem),
		exports: make(map[string]exportMark),
		done:    make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(cleanupInterval)

	return store
}

// Save stores a copy of the session with expiration
func (ms *MemoryStore) Save(_ context.Context, session *entities.TranscriptSession, ttl time.Duration) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.items[session.ID] = &memoryItem{
		session:    *session,
		expireTime: time.Now().Add(ttl),
	}
	return nil
}

// Get retrieves a copy of a session (ErrSessionNotFound if missing or expired)
func (ms *MemoryStore) Get(_ context.Context, id string) (*entities.TranscriptSession, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	item, exists := ms.items[id]
	if !exists {
		return nil, entities.ErrSessionNotFound
	}

	// Check if expired
	if time.Now().After(item.expireTime) {
		return nil, entities.ErrSessionNotFound
	}

	session := item.session
	return &session, nil
}

// Delete removes a session
func (ms *MemoryStore) Delete(_ context.Context, id string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, id)
	delete(ms.exports, id)
	return nil
}

// AcquireExport sets the export mark unless a live one exists
func (ms *MemoryStore) AcquireExport(_ context.Context, id string, ttl time.Duration) (string, bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	if mark, held := ms.exports[id]; held && now.Before(mark.until) {
		return "", false, nil
	}
	token := uuid.NewString()
	ms.exports[id] = exportMark{token: token, until: now.Add(ttl)}
	return token, true, nil
}

// ReleaseExport clears the export mark if token still owns it
func (ms *MemoryStore) ReleaseExport(_ context.Context, id, token string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if mark, held := ms.exports[id]; held && mark.token == token {
		delete(ms.exports, id)
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included until the next sweep
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.items)
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.once.Do(func() { close(ms.done) })
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ms.done:
			return
		case <-ticker.C:
			ms.sweep()
		}
	}
}

func (ms *MemoryStore) sweep() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for key, item := range ms.items {
		if now.After(item.expireTime) {
			delete(ms.items, key)
		}
	}
	for key, mark := range ms.exports {
		if now.After(mark.until) {
			delete(ms.exports, key)
		}
	}
}

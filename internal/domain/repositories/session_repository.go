package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// SessionStore defines the interface for transcript session storage
type SessionStore interface {
	// Save creates or replaces a session snapshot, expiring after ttl
	Save(ctx context.Context, session *entities.TranscriptSession, ttl time.Duration) error

	// Get finds a session by ID, returning entities.ErrSessionNotFound when absent or expired
	Get(ctx context.Context, id string) (*entities.TranscriptSession, error)

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// AcquireExport marks an export of the session as in flight and returns the
	// token that owns the mark. It returns false when another export holds it.
	AcquireExport(ctx context.Context, id string, ttl time.Duration) (string, bool, error)

	// ReleaseExport clears the in-flight mark if token still owns it
	ReleaseExport(ctx context.Context, id, token string) error
}

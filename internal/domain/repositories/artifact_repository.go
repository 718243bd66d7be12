package repositories

import (
	"context"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

// ArtifactStore publishes exported documents and hands out temporary download links
type ArtifactStore interface {
	// Publish stores the artifact under key and returns a time-limited URL to it
	Publish(ctx context.Context, key string, artifact *entities.Artifact) (string, error)
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
)

const (
	sessionKeyPrefix = "transcrypt:session:"
	exportKeyPrefix  = "transcrypt:export:"
)

// releaseExportScript deletes the export mark only while it still holds the caller's token
var releaseExportScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds connection settings for the session store
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisStore keeps JSON session snapshots in Redis so several API instances can share them
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisClient connects and pings the server
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// NewRedisStore wraps an existing client
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }
func exportKey(id string) string { return exportKeyPrefix + id }

// Save writes the snapshot with expiration
func (s *RedisStore) Save(ctx context.Context, session *entities.TranscriptSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get reads a snapshot
func (s *RedisStore) Get(ctx context.Context, id string) (*entities.TranscriptSession, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session entities.TranscriptSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Delete removes the snapshot and any export mark
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id), exportKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// AcquireExport uses SET NX so only one instance exports a session at a time
func (s *RedisStore) AcquireExport(ctx context.Context, id string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, exportKey(id), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire export lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// ReleaseExport drops the export mark unless it expired and was taken by another export
func (s *RedisStore) ReleaseExport(ctx context.Context, id, token string) error {
	if err := releaseExportScript.Run(ctx, s.rdb, []string{exportKey(id)}, token).Err(); err != nil {
		return fmt.Errorf("failed to release export lock: %w", err)
	}
	return nil
}

// Close closes the underlying client
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/pkg/config"
)

// objectAPI is the subset of the MinIO client used for artifacts
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// MinIOClient stores exported artifacts in a private bucket and presigns download links
type MinIOClient struct {
	client    objectAPI
	bucket    string
	publicURL string // Public URL for links when MinIO sits behind a reverse proxy
	expiry    time.Duration
	logger    *zap.Logger
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists.
// The bucket check is retried with exponential backoff while MinIO starts up.
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := newMinIOClient(minioClient, cfg, logger)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	notify := func(err error, wait time.Duration) {
		client.logger.Warn("storage.bucket.retry", zap.Error(err), zap.Duration("wait", wait))
	}
	op := func() error { return client.ensureBucket(ctx) }
	if err := backoff.RetryNotify(op, backoff.WithContext(bo, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

func newMinIOClient(api objectAPI, cfg *config.StorageConfig, logger *zap.Logger) *MinIOClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &MinIOClient{
		client:    api,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		expiry:    expiry,
		logger:    logger,
	}
}

// ensureBucket creates the bucket when missing. Objects stay private; links are presigned.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	m.logger.Info("storage.bucket.created", zap.String("bucket", m.bucket))
	return nil
}

// Publish uploads the artifact and returns a presigned download URL
func (m *MinIOClient) Publish(ctx context.Context, key string, artifact *entities.Artifact) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(artifact.Data), artifact.Size(), minio.PutObjectOptions{
		ContentType: artifact.MIMEType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload artifact: %w", err)
	}

	params := url.Values{}
	params.Set("response-content-disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))

	link, err := m.client.PresignedGetObject(ctx, m.bucket, key, m.expiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	m.logger.Info("storage.artifact.published",
		zap.String("key", key),
		zap.Int64("size", artifact.Size()),
	)
	return m.rewriteHost(link), nil
}

// rewriteHost swaps the internal endpoint for the public URL, keeping path and signature
func (m *MinIOClient) rewriteHost(link *url.URL) string {
	if m.publicURL == "" {
		return link.String()
	}
	return m.publicURL + link.RequestURI()
}

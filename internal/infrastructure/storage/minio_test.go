package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/transcrypt/internal/domain/entities"
	"github.com/johnquangdev/transcrypt/pkg/config"
)

type fakeObjects struct {
	exists      bool
	made        bool
	objects     map[string][]byte
	contentType string
	params      url.Values
	expiry      time.Duration
	putErr      error
}

func (f *fakeObjects) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return f.exists, nil
}

func (f *fakeObjects) MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error {
	f.made = true
	f.exists = true
	return nil
}

func (f *fakeObjects) PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[bucket+"/"+object] = data
	f.contentType = opts.ContentType
	return minio.UploadInfo{Bucket: bucket, Key: object, Size: size}, nil
}

func (f *fakeObjects) PresignedGetObject(ctx context.Context, bucket, object string, expires time.Duration, params url.Values) (*url.URL, error) {
	f.params = params
	f.expiry = expires
	return url.Parse("http://minio.internal:9000/" + bucket + "/" + object + "?X-Amz-Signature=abc")
}

func testArtifact() *entities.Artifact {
	return &entities.Artifact{
		Filename: "transcrypt-My-Video.txt",
		MIMEType: "text/plain; charset=utf-8",
		Data:     []byte("hello"),
	}
}

func TestMinIOClient_EnsureBucket(t *testing.T) {
	fake := &fakeObjects{}
	client := newMinIOClient(fake, &config.StorageConfig{BucketName: "exports"}, nil)

	require.NoError(t, client.ensureBucket(context.Background()))
	assert.True(t, fake.made)

	fake.made = false
	require.NoError(t, client.ensureBucket(context.Background()))
	assert.False(t, fake.made)
}

func TestMinIOClient_Publish(t *testing.T) {
	fake := &fakeObjects{exists: true}
	client := newMinIOClient(fake, &config.StorageConfig{BucketName: "exports", URLExpiry: time.Minute}, nil)

	link, err := client.Publish(context.Background(), "exports/s1/a.txt", testArtifact())
	require.NoError(t, err)

	assert.Equal(t, []byte("hello"), fake.objects["exports/exports/s1/a.txt"])
	assert.Equal(t, "text/plain; charset=utf-8", fake.contentType)
	assert.Equal(t, time.Minute, fake.expiry)
	assert.Equal(t, `attachment; filename=transcrypt-My-Video.txt`, fake.params.Get("response-content-disposition"))
	assert.Equal(t, "http://minio.internal:9000/exports/exports/s1/a.txt?X-Amz-Signature=abc", link)
}

func TestMinIOClient_PublishPublicURL(t *testing.T) {
	fake := &fakeObjects{exists: true}
	client := newMinIOClient(fake, &config.StorageConfig{BucketName: "b", PublicURL: "https://files.example.com/"}, nil)

	link, err := client.Publish(context.Background(), "k.txt", testArtifact())
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/b/k.txt?X-Amz-Signature=abc", link)
	assert.Equal(t, 15*time.Minute, fake.expiry)
}

func TestMinIOClient_PublishError(t *testing.T) {
	fake := &fakeObjects{exists: true, putErr: errors.New("connection refused")}
	client := newMinIOClient(fake, &config.StorageConfig{BucketName: "b"}, nil)

	_, err := client.Publish(context.Background(), "k.txt", testArtifact())
	assert.ErrorContains(t, err, "connection refused")
}

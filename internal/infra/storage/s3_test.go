package storage

import (
	"context"
	"log/slog"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbite/config"
	"newsbite/internal/errors"
)

type fakePresigner struct {
	lastInput *s3.PutObjectInput
	url       string
	err       error
}

func (f *fakePresigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}

	return &v4.PresignedHTTPRequest{URL: f.url, Method: "PUT"}, nil
}

func TestNewObjectStorage_Unconfigured(t *testing.T) {
	// Without a storage section the service is absent, not broken.
	svc, err := NewObjectStorage(&config.Config{}, slog.Default())
	assert.NoError(t, err)
	assert.Nil(t, svc)
}

func TestS3ObjectStorage_PresignUpload(t *testing.T) {
	fake := &fakePresigner{url: "https://bucket.s3.ap-northeast-2.amazonaws.com/thumbs/a.png?X-Amz-Signature=abc"}
	svc := &S3ObjectStorage{
		presigner: fake,
		bucket:    "newsbite-media",
		region:    "ap-northeast-2",
		logger:    slog.Default(),
	}

	target, err := svc.PresignUpload(context.Background(), "thumbs/a.png", "image/png", 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, fake.url, target.UploadURL)
	assert.Equal(t, "thumbs/a.png", target.Key)
	assert.Equal(t, 15*time.Minute, target.ExpiresIn)
	assert.Equal(t, "https://newsbite-media.s3.ap-northeast-2.amazonaws.com/thumbs/a.png", target.ObjectURL)

	require.NotNil(t, fake.lastInput)
	assert.Equal(t, "newsbite-media", *fake.lastInput.Bucket)
	assert.Equal(t, "thumbs/a.png", *fake.lastInput.Key)
	assert.Equal(t, "image/png", *fake.lastInput.ContentType)
}

func TestS3ObjectStorage_PresignUploadPathStyleEndpoint(t *testing.T) {
	fake := &fakePresigner{url: "http://localhost:9000/newsbite-media/thumbs/a.png?X-Amz-Signature=abc"}
	svc := &S3ObjectStorage{
		presigner: fake,
		bucket:    "newsbite-media",
		region:    "us-east-1",
		endpoint:  "http://localhost:9000",
		logger:    slog.Default(),
	}

	target, err := svc.PresignUpload(context.Background(), "thumbs/a.png", "image/png", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/newsbite-media/thumbs/a.png", target.ObjectURL)
}

func TestS3ObjectStorage_PresignUploadError(t *testing.T) {
	svc := &S3ObjectStorage{
		presigner: &fakePresigner{err: errors.New("credentials expired")},
		bucket:    "newsbite-media",
		logger:    slog.Default(),
	}

	target, err := svc.PresignUpload(context.Background(), "thumbs/a.png", "image/png", time.Minute)
	assert.Error(t, err)
	assert.Nil(t, target)
	assert.Contains(t, err.Error(), "failed to presign upload")
}

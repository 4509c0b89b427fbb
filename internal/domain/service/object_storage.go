package service

import (
	"context"
	"time"
)

// UploadTarget describes a presigned slot a client can PUT an object into.
type UploadTarget struct {
	UploadURL string        // The presigned PUT URL.
	ObjectURL string        // The URL the object will be served from once uploaded.
	Key       string        // The object key inside the bucket.
	ExpiresIn time.Duration // How long the presigned URL stays valid.
}

// ObjectStorage defines the interface for direct-to-storage client uploads.
// The server never proxies file bytes; it only hands out signed URLs.
type ObjectStorage interface {
	// PresignUpload returns a presigned PUT target for the given object key
	// and content type.
	PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (*UploadTarget, error)
}

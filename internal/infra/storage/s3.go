// Package storage hands out presigned S3 URLs for direct client uploads.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"newsbite/config"
	"newsbite/internal/domain/service"
	"newsbite/internal/errors"
)

// putObjectPresigner is the part of the S3 presign client this service uses.
// Narrowed to an interface so tests can substitute the signer.
type putObjectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3ObjectStorage implements service.ObjectStorage against S3 or an
// S3-compatible store such as MinIO.
type S3ObjectStorage struct {
	presigner putObjectPresigner
	bucket    string
	region    string
	endpoint  string
	logger    *slog.Logger
}

// NewObjectStorage creates the presigning storage service from configuration.
// When storage is not configured the service is nil and uploads are disabled;
// a present but unusable configuration is a startup error.
func NewObjectStorage(cfg *config.Config, logger *slog.Logger) (service.ObjectStorage, error) {
	if cfg.Storage == nil || cfg.Storage.Bucket == "" {
		logger.Info("object storage not configured, uploads disabled")

		return nil, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Storage.Region),
	}
	if cfg.Storage.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			"",
		)))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.BaseEndpoint)
			// MinIO serves buckets by path, not subdomain.
			o.UsePathStyle = true
		}
	})

	return &S3ObjectStorage{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Storage.Bucket,
		region:    cfg.Storage.Region,
		endpoint:  strings.TrimRight(cfg.Storage.BaseEndpoint, "/"),
		logger:    logger,
	}, nil
}

// PresignUpload implements service.ObjectStorage.
// The returned URL authorizes exactly one PUT of the given content type;
// the object becomes readable at ObjectURL once the client completes it.
func (s *S3ObjectStorage) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (*service.UploadTarget, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return nil, errors.Wrap(err, "failed to presign upload")
	}

	s.logger.Debug("presigned upload URL issued",
		slog.String("key", key),
		slog.Duration("expiresIn", expires))

	return &service.UploadTarget{
		UploadURL: req.URL,
		ObjectURL: s.objectURL(key),
		Key:       key,
		ExpiresIn: expires,
	}, nil
}

// objectURL is where the object will be served from after upload. With a
// custom endpoint the store is path-style; plain AWS uses the virtual-hosted
// bucket URL.
func (s *S3ObjectStorage) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

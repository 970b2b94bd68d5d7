// Package storage stores uploaded images. The projects, gallery and logos
// buckets are key prefixes inside a single S3 or MinIO bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cwdp/internal/config"
)

// ObjectStore is the bucket side of the backend.
type ObjectStore interface {
	Upload(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, bucket, path string) error
	PublicURL(bucket, path string) string
}

// New builds the object store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (ObjectStore, error) {
	switch cfg.Driver {
	case "", "s3":
		s3Cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load s3 config: %w", err)
		}
		baseURL := s3Cfg.PublicBaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
		return NewS3Store(s3Cfg.Client, s3Cfg.Bucket, baseURL), nil
	case "minio":
		return NewMinioStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func objectKey(bucket, path string) string {
	return bucket + "/" + strings.TrimLeft(path, "/")
}

func joinPublicURL(baseURL, bucket, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + objectKey(bucket, path)
}

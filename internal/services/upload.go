package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"cwdp/internal/models"
	"cwdp/internal/storage"
)

var (
	ErrFileTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedType    = errors.New("file type is not an accepted image format")
	ErrInvalidBucket      = errors.New("unknown bucket")
	ErrInvalidFolder      = errors.New("invalid folder")
	ErrEmptyFile          = errors.New("file is empty")
	allowedImageMIMEs     = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	allowedImageExtByMIME = map[string]string{
		"image/jpeg": "jpg",
		"image/png":  "png",
		"image/webp": "webp",
		"image/gif":  "gif",
	}
)

// ImageUploader validates images and stores them under a fresh name.
type ImageUploader struct {
	store    storage.ObjectStore
	maxBytes int64
	progress *ProgressTracker
	now      func() time.Time
	token    func() string
}

func NewImageUploader(store storage.ObjectStore, maxBytes int64, progress *ProgressTracker) *ImageUploader {
	return &ImageUploader{
		store:    store,
		maxBytes: maxBytes,
		progress: progress,
		now:      time.Now,
		token: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		},
	}
}

func (u *ImageUploader) MaxBytes() int64 {
	return u.maxBytes
}

// Upload stores one image. declaredSize is what the client announced; the
// body is still read with a hard limit in case it lies. Nothing reaches the
// store unless size and type checks pass.
func (u *ImageUploader) Upload(ctx context.Context, bucket models.Bucket, folder string, body io.Reader, declaredSize int64, uploadID string) (*models.UploadResult, error) {
	if !bucket.Valid() {
		return nil, ErrInvalidBucket
	}
	if declaredSize > u.maxBytes {
		return nil, ErrFileTooLarge
	}
	folder, err := cleanFolder(folder)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(body, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), allowedImageMIMEs...) {
		return nil, ErrUnsupportedType
	}
	ext := allowedImageExtByMIME[mtype.String()]

	name := fmt.Sprintf("%d-%s.%s", u.now().UnixMilli(), u.token(), ext)
	if folder != "" {
		name = folder + "/" + name
	}

	u.progress.Start(uploadID)
	if err := u.store.Upload(ctx, string(bucket), name, bytes.NewReader(data), int64(len(data)), mtype.String()); err != nil {
		u.progress.Fail(uploadID)
		log.Printf("Error uploading image to %s: %v", bucket, err)
		return nil, err
	}
	u.progress.Complete(uploadID)

	return &models.UploadResult{
		URL:    u.store.PublicURL(string(bucket), name),
		Path:   name,
		Bucket: bucket,
	}, nil
}

func (u *ImageUploader) Remove(ctx context.Context, bucket models.Bucket, objectPath string) error {
	if !bucket.Valid() {
		return ErrInvalidBucket
	}
	objectPath = strings.TrimLeft(objectPath, "/")
	if objectPath == "" || strings.Contains(objectPath, "..") {
		return ErrInvalidFolder
	}
	return u.store.Remove(ctx, string(bucket), objectPath)
}

// RemoveByURL deletes the object behind a stored public URL. URLs that do
// not point into bucket are left alone.
func (u *ImageUploader) RemoveByURL(ctx context.Context, bucket models.Bucket, publicURL string) error {
	objectPath, ok := storage.PathFromPublicURL(u.store, string(bucket), publicURL)
	if !ok {
		return fmt.Errorf("cannot derive storage path from %q", publicURL)
	}
	return u.store.Remove(ctx, string(bucket), objectPath)
}

func cleanFolder(folder string) (string, error) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return "", nil
	}
	if strings.Contains(folder, "..") || strings.ContainsAny(folder, "\\?#") {
		return "", ErrInvalidFolder
	}
	return path.Clean(folder), nil
}

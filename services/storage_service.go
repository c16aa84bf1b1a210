package services

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"pulse-api/config"
)

const signedURLExpiry = time.Hour

// StorageService talks to the S3-compatible object store holding post and
// profile images.
type StorageService struct {
	client *minio.Client
	config *config.Config
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &StorageService{
		client: client,
		config: cfg,
	}, nil
}

// ImageURL returns a time-limited signed URL for the object, falling back
// to the bucket's public URL when signing fails.
func (s *StorageService) ImageURL(ctx context.Context, bucket, object string) (string, error) {
	signed, err := s.client.PresignedGetObject(ctx, bucket, object, signedURLExpiry, url.Values{})
	if err != nil {
		return s.publicURL(bucket, object), nil
	}
	return signed.String(), nil
}

// Upload stores an object under the given name. Existing objects are not
// overwritten unless the caller picked the same name.
func (s *StorageService) Upload(ctx context.Context, bucket, object string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, object, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %s: %w", object, err)
	}
	return nil
}

// UploadUnique stores the object under a collision-free name derived from
// the owner, the current time and a random suffix, and returns that name.
func (s *StorageService) UploadUnique(ctx context.Context, bucket, owner, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := path.Ext(filename)
	object := fmt.Sprintf("%s_%d_%s%s", owner, time.Now().UnixMilli(), uuid.New().String()[:13], ext)

	if err := s.Upload(ctx, bucket, object, reader, size, contentType); err != nil {
		return "", err
	}
	return object, nil
}

func (s *StorageService) Delete(ctx context.Context, bucket, object string) error {
	if err := s.client.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", object, err)
	}
	return nil
}

func (s *StorageService) publicURL(bucket, object string) string {
	scheme := "http"
	if s.config.StorageUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.config.StorageEndpoint, bucket, object)
}

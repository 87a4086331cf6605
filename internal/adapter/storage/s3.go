package storage

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/agenciathoth/checklist/internal/config"
	"github.com/agenciathoth/checklist/internal/core/ports"
)

// S3Storage talks to any S3-compatible bucket through the minio client.
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ ports.ObjectStorage = (*S3Storage)(nil)

func NewS3Storage(conf *config.Config) (*S3Storage, error) {
	client, err := minio.New(conf.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.S3AccessKey, conf.S3SecretKey, ""),
		Secure: conf.S3UseSSL,
		Region: conf.S3Region,
	})
	if err != nil {
		return nil, err
	}

	return &S3Storage{
		client:    client,
		bucket:    conf.S3Bucket,
		publicURL: strings.TrimSuffix(conf.S3PublicURL, "/"),
	}, nil
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *S3Storage) PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedPutObject(ctx, s.bucket, key, expiry)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (s *S3Storage) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *S3Storage) PublicURL(key string) string {
	return s.publicURL + "/" + key
}

// Healthy reports whether the bucket is reachable, for the health report.
func (s *S3Storage) Healthy(ctx context.Context) bool {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	return err == nil && ok
}

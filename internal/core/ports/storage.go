package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the S3-compatible bucket holding task media. Keys are
// caller-chosen; public URLs are derived by key concatenation.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

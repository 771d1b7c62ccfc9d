package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type ObjectStore interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, objectPath string) error
	GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}

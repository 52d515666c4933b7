package storage

import (
	"context"
	"io"
)

// Store persists uploaded artifacts and returns a stable URL for each object.
// The workflow core only ever sees URLs; bytes stay behind this interface.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

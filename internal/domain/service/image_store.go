package service

import (
	"context"
)

// ImageStore persists product images and returns a reference clients can load.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Package storage keeps product images in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the parameters required for the image store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewImageStore opens the bucket named by storage.imageBucketUrl and closes
// it on shutdown.
func NewImageStore(params Params) (service.ImageStore, error) {
	bucketURL := params.Config.Storage.ImageBucketURL
	if bucketURL == "" {
		return nil, errors.New("storage.imageBucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", bucketURL)
	}
	params.Logger.Info("Image bucket opened", slog.String("url", bucketURL))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobImageStore(bucket, params.Config.Storage.PublicBaseURL), nil
}

func newBlobImageStore(bucket *blob.Bucket, publicBaseURL string) *blobImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put writes data under key and returns the reference clients load it from:
// the public base URL joined with key, or the bare key when no base is set.
func (s *blobImageStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("empty image key")
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", key)
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

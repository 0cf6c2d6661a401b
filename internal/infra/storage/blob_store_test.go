package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_Put(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newBlobImageStore(bucket, "https://cdn.example.com/images/")

	ref, err := store.Put(ctx, "products/p1.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/products/p1.png", ref)

	data, err := bucket.ReadAll(ctx, "products/p1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	attrs, err := bucket.Attributes(ctx, "products/p1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobImageStore_Put_WithoutPublicBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	ref, err := newBlobImageStore(bucket, "").Put(context.Background(), "/products/p2.jpg", "image/jpeg", []byte("jpg"))

	require.NoError(t, err)
	assert.Equal(t, "products/p2.jpg", ref)
}

func TestBlobImageStore_Put_EmptyKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	_, err := newBlobImageStore(bucket, "").Put(context.Background(), "", "image/png", []byte("x"))

	assert.Error(t, err)
}

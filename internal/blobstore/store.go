// Package blobstore keeps uploaded images in an object store, degrading to
// base64 rows in the database when the object store is not configured or
// fails.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no object exists for a key.
var ErrNotFound = errors.New("blobstore: object not found")

// Object is a stored blob with its content type.
type Object struct {
	Data        []byte
	ContentType string
}

// Store puts and gets blobs by key.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (*Object, error)
}

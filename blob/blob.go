// ABOUTME: Object-store boundary for file uploads; the site only ever keeps the returned URL.
// ABOUTME: Defines the ObjectStore interface implemented by the S3 client and the test fake.
package blob

import (
	"context"
	"io"
)

// ObjectStore stores raw bytes under a key and returns a public URL.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (url string, err error)
}

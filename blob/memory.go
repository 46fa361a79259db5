// ABOUTME: In-memory ObjectStore fake recording uploads for handler tests.
// ABOUTME: Returns deterministic URLs and can be forced to fail.
package blob

import (
	"context"
	"io"
	"sync"
)

// Object is one stored upload.
type Object struct {
	Key         string
	ContentType string
	Data        []byte
}

// Memory records uploads in process memory.
type Memory struct {
	mu      sync.Mutex
	objects []Object
	// Err, when set, fails every Put.
	Err error
}

// NewMemory creates an empty in-memory object store.
func NewMemory() *Memory {
	return &Memory{}
}

// Put records the object and returns a mem:// URL for it.
func (m *Memory) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects = append(m.objects, Object{Key: key, ContentType: contentType, Data: data})
	return "mem://" + key, nil
}

// Objects returns a snapshot of recorded uploads.
func (m *Memory) Objects() []Object {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Object, len(m.objects))
	copy(out, m.objects)
	return out
}

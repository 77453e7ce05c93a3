// Package remote mirrors locally written artifacts to an object store.
package remote

import (
	"context"
	"io"
	"sync"
)

// Uploader pushes an open file's content to the store under objectPath.
// The return value of the store itself is not consumed beyond the error.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, size int64, objectPath string) error
}

// MemoryUploader records uploads in memory. Test double for the S3 store.
type MemoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryUploader() *MemoryUploader {
	return &MemoryUploader{objects: make(map[string][]byte)}
}

func (u *MemoryUploader) Upload(_ context.Context, r io.Reader, _ int64, objectPath string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	u.mu.Lock()
	u.objects[objectPath] = data
	u.mu.Unlock()
	return nil
}

// Object returns the uploaded bytes for objectPath, if any.
func (u *MemoryUploader) Object(objectPath string) ([]byte, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	data, ok := u.objects[objectPath]
	return data, ok
}

// Count reports how many objects were uploaded.
func (u *MemoryUploader) Count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.objects)
}

package catalog

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process catalog used when no database is configured
// and in tests. Rows become visible only on commit.
type MemoryStore struct {
	mu        sync.Mutex
	resources []Resource

	// CommitErr, when set, makes every session commit fail. Test hook.
	CommitErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Resources returns a copy of the committed rows.
func (s *MemoryStore) Resources() []Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Resource(nil), s.resources...)
}

func (s *MemoryStore) Begin(_ context.Context) (Session, error) {
	if s == nil {
		return nil, fmt.Errorf("catalog: store is nil")
	}
	return &memSession{store: s}, nil
}

type memSession struct {
	store   *MemoryStore
	pending []Resource
	done    bool
}

func (s *memSession) AddResource(_ context.Context, res *Resource) error {
	if s.done {
		return ErrSessionClosed
	}
	if res == nil {
		return fmt.Errorf("catalog: nil resource")
	}
	s.pending = append(s.pending, *res)
	return nil
}

func (s *memSession) Commit(_ context.Context) error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	if err := s.store.CommitErr; err != nil {
		return err
	}
	s.store.mu.Lock()
	s.store.resources = append(s.store.resources, s.pending...)
	s.store.mu.Unlock()
	return nil
}

func (s *memSession) Close() error {
	s.done = true
	s.pending = nil
	return nil
}

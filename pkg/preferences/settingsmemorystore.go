// FILE: preferences/inmem_store.go

package preferences

import (
	"context"
	"slices"
	"sync"
)

// InMemorySettings is a thread-safe, in-memory implementation of the Settings interface.
type InMemorySettings struct {
	sync.RWMutex
	ints  map[string]int
	blobs map[string][]byte
}

// NewInMemorySettings creates an empty settings area.
func NewInMemorySettings() *InMemorySettings {
	return &InMemorySettings{
		ints:  make(map[string]int),
		blobs: make(map[string][]byte),
	}
}

func (s *InMemorySettings) Int(ctx context.Context, key string) (int, error) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.ints[key]
	if !ok {
		return 0, ErrNotSet
	}
	return v, nil
}

func (s *InMemorySettings) SetInt(ctx context.Context, key string, value int) error {
	s.Lock()
	defer s.Unlock()
	s.ints[key] = value
	return nil
}

func (s *InMemorySettings) Blob(ctx context.Context, key string) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotSet
	}
	return slices.Clone(v), nil
}

func (s *InMemorySettings) SetBlob(ctx context.Context, key string, value []byte) error {
	s.Lock()
	defer s.Unlock()
	s.blobs[key] = slices.Clone(value)
	return nil
}

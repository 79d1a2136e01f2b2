// FILE: contacts/inmem_store.go

package contacts

import (
	"context"
	"slices"
	"sync"
)

// InMemoryStore is a thread-safe, in-memory implementation of the Store interface.
type InMemoryStore struct {
	sync.RWMutex
	snapshot []Contact
	saved    bool
	saves    int
}

// NewInMemoryStore creates a new in-memory store, optionally seeded with a saved snapshot.
func NewInMemoryStore(seed ...Contact) *InMemoryStore {
	s := &InMemoryStore{}
	if len(seed) > 0 {
		s.snapshot = slices.Clone(seed)
		s.saved = true
	}
	return s
}

// Load returns a copy of the last saved snapshot.
func (s *InMemoryStore) Load(ctx context.Context) ([]Contact, error) {
	s.RLock()
	defer s.RUnlock()
	if !s.saved {
		return nil, ErrNoSnapshot
	}
	return slices.Clone(s.snapshot), nil
}

// Save replaces the stored snapshot.
func (s *InMemoryStore) Save(ctx context.Context, contacts []Contact) error {
	s.Lock()
	defer s.Unlock()
	s.snapshot = slices.Clone(contacts)
	s.saved = true
	s.saves++
	return nil
}

// SaveCount returns how many times Save has been called.
func (s *InMemoryStore) SaveCount() int {
	s.RLock()
	defer s.RUnlock()
	return s.saves
}

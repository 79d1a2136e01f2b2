// FILE: contacts/service.go

package contacts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/illmade-knight/contactbook/internal/observe"
	"github.com/rs/zerolog"
)

// Service owns the ordered contact collection. Every mutation is written
// through to the Store as a full snapshot before observers are notified.
// A failed write is logged and returned, but the in-memory change is kept.
type Service struct {
	mu        sync.RWMutex
	store     Store
	contacts  []Contact
	observers observe.Registry[[]Contact]
	logger    zerolog.Logger
}

// Open creates a Service and loads the collection from store.
// A missing or unreadable snapshot leaves the collection empty; it never fails.
func Open(ctx context.Context, store Store, logger zerolog.Logger) *Service {
	s := &Service{
		store:  store,
		logger: logger.With().Str("component", "contacts").Logger(),
	}
	s.load(ctx)
	return s
}

func (s *Service) load(ctx context.Context) {
	loaded, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		s.logger.Info().Msg("No saved contacts found, starting with an empty list")
		return
	case err != nil:
		s.logger.Warn().Err(err).Msg("Failed to load contacts, starting with an empty list")
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(loaded))
	s.contacts = make([]Contact, 0, len(loaded))
	for _, c := range loaded {
		if _, dup := seen[c.ID]; dup {
			s.logger.Warn().Stringer("contact_id", c.ID).Msg("Dropping contact with duplicate ID")
			continue
		}
		seen[c.ID] = struct{}{}
		s.contacts = append(s.contacts, c)
	}
	s.logger.Debug().Int("count", len(s.contacts)).Msg("Loaded contacts")
}

// Add appends a new contact with a fresh ID and persists the collection.
// The returned contact is always valid; a non-nil error wraps ErrPersist.
func (s *Service) Add(ctx context.Context, name, phoneNumber, email, address string) (Contact, error) {
	s.mu.Lock()
	c := Contact{
		ID:          s.newIDLocked(),
		Name:        name,
		PhoneNumber: phoneNumber,
		Email:       email,
		Address:     address,
	}
	s.contacts = append(s.contacts, c)
	err := s.persistLocked(ctx)
	snapshot := slices.Clone(s.contacts)
	s.mu.Unlock()

	s.observers.Notify(snapshot)
	return c, err
}

// Edit overwrites the mutable fields of the contact with the given id.
// An unknown id is ignored: nothing changes and nothing is written.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, name, phoneNumber, email, address string) error {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Debug().Stringer("contact_id", id).Msg("Edit ignored, contact not found")
		return nil
	}
	c := &s.contacts[i]
	c.Name = name
	c.PhoneNumber = phoneNumber
	c.Email = email
	c.Address = address
	err := s.persistLocked(ctx)
	snapshot := slices.Clone(s.contacts)
	s.mu.Unlock()

	s.observers.Notify(snapshot)
	return err
}

// Delete removes every contact with the given id. An unknown id is ignored.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	before := len(s.contacts)
	s.contacts = slices.DeleteFunc(s.contacts, func(c Contact) bool { return c.ID == id })
	if len(s.contacts) == before {
		s.mu.Unlock()
		s.logger.Debug().Stringer("contact_id", id).Msg("Delete ignored, contact not found")
		return nil
	}
	err := s.persistLocked(ctx)
	snapshot := slices.Clone(s.contacts)
	s.mu.Unlock()

	s.observers.Notify(snapshot)
	return err
}

// Search returns the contacts whose name contains query, ignoring case,
// in insertion order. An empty query returns the whole collection.
func (s *Service) Search(query string) []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		return slices.Clone(s.contacts)
	}
	lowered := strings.ToLower(query)
	results := make([]Contact, 0)
	for _, c := range s.contacts {
		if c.nameContains(lowered) {
			results = append(results, c)
		}
	}
	return results
}

// Contacts returns a copy of the current collection.
func (s *Service) Contacts() []Contact {
	return s.Search("")
}

// Get returns the contact with the given id.
func (s *Service) Get(id uuid.UUID) (Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}

// Subscribe registers fn to receive the full collection after every change.
// The slice passed to fn is shared between observers and must not be modified.
func (s *Service) Subscribe(fn func([]Contact)) (cancel func()) {
	return s.observers.Subscribe(fn)
}

func (s *Service) indexLocked(id uuid.UUID) int {
	return slices.IndexFunc(s.contacts, func(c Contact) bool { return c.ID == id })
}

func (s *Service) newIDLocked() uuid.UUID {
	for {
		id := uuid.New()
		if s.indexLocked(id) < 0 {
			return id
		}
	}
}

func (s *Service) persistLocked(ctx context.Context) error {
	if err := s.store.Save(ctx, slices.Clone(s.contacts)); err != nil {
		s.logger.Warn().Err(err).Int("count", len(s.contacts)).Msg("Failed to persist contacts, keeping in-memory changes")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// FILE: contacts/store.go

package contacts

import (
	"context"
	"errors"
)

var (
	// ErrNoSnapshot is returned by Store.Load when nothing has been saved yet.
	ErrNoSnapshot = errors.New("contacts: no saved snapshot")
	// ErrInvalidSnapshot is returned by Store.Load when the saved data cannot be decoded.
	ErrInvalidSnapshot = errors.New("contacts: invalid snapshot")
	// ErrPersist wraps any failure to write the collection to its Store.
	ErrPersist = errors.New("contacts: persist failed")
)

// Store is the durable backend for the contact collection.
// Save always receives the complete collection and replaces whatever was stored before.
type Store interface {
	Load(ctx context.Context) ([]Contact, error)
	Save(ctx context.Context, contacts []Contact) error
}

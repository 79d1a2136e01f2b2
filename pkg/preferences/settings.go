// FILE: preferences/store.go

package preferences

import (
	"context"
	"errors"
)

// Keys used in the settings area.
const (
	KeyFontSize        = "fontSize"
	KeyBackgroundColor = "backgroundColor"
)

var (
	// ErrNotSet is returned by Settings lookups for keys that have never been written.
	ErrNotSet = errors.New("preferences: key not set")
	// ErrPersist wraps any failure to write preferences to their Settings backend.
	ErrPersist = errors.New("preferences: persist failed")
)

// Settings is a durable key-value settings area. Presence is reported
// explicitly through ErrNotSet rather than through a zero value.
type Settings interface {
	Int(ctx context.Context, key string) (int, error)
	SetInt(ctx context.Context, key string, value int) error
	Blob(ctx context.Context, key string) ([]byte, error)
	SetBlob(ctx context.Context, key string, value []byte) error
}

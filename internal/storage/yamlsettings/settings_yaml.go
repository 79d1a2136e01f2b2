// Package yamlsettings provides a YAML-file-backed settings area.
package yamlsettings

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/illmade-knight/contactbook/internal/storage/atomicfile"
	"github.com/illmade-knight/contactbook/pkg/preferences"
	"gopkg.in/yaml.v3"
)

var errCorrupt = errors.New("settings file is corrupt")

// settingsDocument is the private struct for YAML marshalling.
// Blobs are kept base64-encoded so the file stays plain text.
type settingsDocument struct {
	Ints  map[string]int    `yaml:"ints,omitempty"`
	Blobs map[string]string `yaml:"blobs,omitempty"`
}

// SettingsStore is a concrete implementation of the preferences.Settings
// interface. Every write rewrites the whole file.
type SettingsStore struct {
	mu   sync.Mutex
	path string
}

// NewSettingsStore creates a settings area stored at path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

func (s *SettingsStore) Int(ctx context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return 0, err
	}
	v, ok := doc.Ints[key]
	if !ok {
		return 0, preferences.ErrNotSet
	}
	return v, nil
}

func (s *SettingsStore) SetInt(ctx context.Context, key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readForUpdate()
	if err != nil {
		return err
	}
	if doc.Ints == nil {
		doc.Ints = make(map[string]int)
	}
	doc.Ints[key] = value
	return s.write(doc)
}

func (s *SettingsStore) Blob(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	encoded, ok := doc.Blobs[key]
	if !ok {
		return nil, preferences.ErrNotSet
	}
	v, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return v, nil
}

func (s *SettingsStore) SetBlob(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readForUpdate()
	if err != nil {
		return err
	}
	if doc.Blobs == nil {
		doc.Blobs = make(map[string]string)
	}
	doc.Blobs[key] = base64.StdEncoding.EncodeToString(value)
	return s.write(doc)
}

func (s *SettingsStore) read() (settingsDocument, error) {
	var doc settingsDocument
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return doc, nil
		}
		return doc, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return settingsDocument{}, fmt.Errorf("%w: %w", errCorrupt, err)
	}
	return doc, nil
}

// readForUpdate is read, except that a corrupt file is treated as empty so
// that the next write replaces it.
func (s *SettingsStore) readForUpdate() (settingsDocument, error) {
	doc, err := s.read()
	if errors.Is(err, errCorrupt) {
		return settingsDocument{}, nil
	}
	return doc, err
}

func (s *SettingsStore) write(doc settingsDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := atomicfile.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

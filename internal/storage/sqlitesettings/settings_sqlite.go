// Package sqlitesettings provides a settings area stored in a SQLite database.
package sqlitesettings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/illmade-knight/contactbook/pkg/preferences"
	_ "modernc.org/sqlite"
)

// SettingsStore is a concrete implementation of the preferences.Settings
// interface. A NULL column means the key has not been set for that type.
type SettingsStore struct {
	db   *sql.DB
	path string
}

// NewSettingsStore opens (or creates) the database at path.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer, and it keeps the file locked only while a statement runs.
	db.SetMaxOpenConns(1)

	s := &SettingsStore{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SettingsStore) initialize() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		int_value INTEGER,
		blob_value BLOB,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SettingsStore) Close() error {
	return s.db.Close()
}

func (s *SettingsStore) Int(ctx context.Context, key string) (int, error) {
	var v sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT int_value FROM settings WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, preferences.ErrNotSet
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !v.Valid {
		return 0, preferences.ErrNotSet
	}
	return int(v.Int64), nil
}

func (s *SettingsStore) SetInt(ctx context.Context, key string, value int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, int_value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET int_value = excluded.int_value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SettingsStore) Blob(ctx context.Context, key string) ([]byte, error) {
	var present bool
	var v []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT blob_value IS NOT NULL, blob_value FROM settings WHERE key = ?`, key).Scan(&present, &v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, preferences.ErrNotSet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !present {
		return nil, preferences.ErrNotSet
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}

func (s *SettingsStore) SetBlob(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, blob_value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET blob_value = excluded.blob_value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

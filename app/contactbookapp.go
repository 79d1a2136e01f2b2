// Package app provides the central orchestrator for the contactbook application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/illmade-knight/contactbook/internal/config"
	"github.com/illmade-knight/contactbook/internal/storage/jsonfile"
	"github.com/illmade-knight/contactbook/internal/storage/sqlitesettings"
	"github.com/illmade-knight/contactbook/internal/storage/yamlsettings"
	"github.com/illmade-knight/contactbook/pkg/contacts"
	"github.com/illmade-knight/contactbook/pkg/preferences"
	"github.com/rs/zerolog"
)

// App is the central application struct. It holds both stores and the
// resources that back them.
type App struct {
	Contacts    *contacts.Service
	Preferences *preferences.Service
	Logger      zerolog.Logger

	closers []io.Closer
}

// New creates an App from already opened services.
func New(contactSvc *contacts.Service, prefSvc *preferences.Service, logger zerolog.Logger) *App {
	return &App{
		Contacts:    contactSvc,
		Preferences: prefSvc,
		Logger:      logger,
	}
}

// Open builds the storage backends described by cfg and loads both stores.
// A settings backend that cannot be opened is replaced by an in-memory one so
// that the application still starts.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	contactsStore, err := jsonfile.NewContactsStore(cfg.ContactsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to create contacts store: %w", err)
	}
	logger.Debug().Str("path", contactsStore.Path()).Msg("Contacts file store initialized")

	settings, closer := openSettings(cfg, logger)

	a := New(
		contacts.Open(ctx, contactsStore, logger),
		preferences.Open(ctx, settings, logger),
		logger,
	)
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	return a, nil
}

func openSettings(cfg *config.Config, logger zerolog.Logger) (preferences.Settings, io.Closer) {
	path := cfg.SettingsPath()
	log := logger.With().Str("backend", cfg.Settings.Backend).Str("path", path).Logger()

	switch cfg.Settings.Backend {
	case config.SettingsBackendSQLite:
		store, err := sqlitesettings.NewSettingsStore(path)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to open settings database, preferences will not be saved")
			return preferences.NewInMemorySettings(), nil
		}
		log.Debug().Msg("Settings store initialized")
		return store, store
	default:
		log.Debug().Msg("Settings store initialized")
		return yamlsettings.NewSettingsStore(path), nil
	}
}

// Close releases any resources held by the storage backends.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

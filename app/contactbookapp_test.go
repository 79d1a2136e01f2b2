package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/illmade-knight/contactbook/app"
	"github.com/illmade-knight/contactbook/internal/config"
	"github.com/illmade-knight/contactbook/pkg/contacts"
	"github.com/illmade-knight/contactbook/pkg/preferences"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		DataDir:      t.TempDir(),
		ContactsFile: "contacts.json",
		Settings:     config.SettingsConfig{Backend: backend},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestApp_Open(t *testing.T) {
	for _, backend := range []string{config.SettingsBackendYAML, config.SettingsBackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, backend)
			logger := zerolog.New(zerolog.NewTestWriter(t))

			// Arrange
			application, err := app.Open(ctx, cfg, logger)
			require.NoError(t, err)
			assert.Empty(t, application.Contacts.Contacts())
			assert.Equal(t, preferences.Defaults(), application.Preferences.Preferences())

			// Act
			ann, err := application.Contacts.Add(ctx, "Ann", "123", "a@x", "Addr1")
			require.NoError(t, err)
			require.NoError(t, application.Preferences.SetFontSize(ctx, 22))
			require.NoError(t, application.Close())

			// Assert
			reopened, err := app.Open(ctx, cfg, logger)
			require.NoError(t, err)
			t.Cleanup(func() { _ = reopened.Close() })

			assert.Equal(t, []contacts.Contact{ann}, reopened.Contacts.Contacts())
			assert.Equal(t, 22, reopened.Preferences.FontSize())
			assert.FileExists(t, cfg.ContactsPath())
			assert.FileExists(t, cfg.SettingsPath())
		})
	}
}

func TestApp_OpenWithCorruptContactsFile(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.SettingsBackendYAML)
	require.NoError(t, os.WriteFile(cfg.ContactsPath(), []byte("not json"), 0o600))

	application, err := app.Open(ctx, cfg, zerolog.Nop())

	require.NoError(t, err, "a corrupt file must not prevent startup")
	defer application.Close()
	assert.Empty(t, application.Contacts.Contacts())
}

func TestApp_OpenWithUnusableSettingsDatabase(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.SettingsBackendSQLite)
	blocker := filepath.Join(cfg.DataDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	cfg.Settings.File = filepath.Join(blocker, "settings.db")

	application, err := app.Open(ctx, cfg, zerolog.Nop())

	require.NoError(t, err)
	defer application.Close()
	require.NoError(t, application.Preferences.SetFontSize(ctx, 30))
	assert.Equal(t, 30, application.Preferences.FontSize())
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/illmade-knight/contactbook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	chdir(t, t.TempDir())

	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "contactbook"), cfg.DataDir)
	assert.Equal(t, filepath.Join(dataHome, "contactbook", "contacts.json"), cfg.ContactsPath())
	assert.Equal(t, config.SettingsBackendYAML, cfg.Settings.Backend)
	assert.Equal(t, filepath.Join(dataHome, "contactbook", "settings.yaml"), cfg.SettingsPath())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contactbook.yaml")
	content := `
data_dir: ` + dir + `
contacts_file: people.json
settings:
  backend: SQLite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONTACTBOOK_LOG_FORMAT", "json")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "people.json"), cfg.ContactsPath())
	assert.Equal(t, config.SettingsBackendSQLite, cfg.Settings.Backend)
	assert.Equal(t, filepath.Join(dir, "settings.db"), cfg.SettingsPath())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "valid", cfg: config.Config{DataDir: "/d", ContactsFile: "c.json", Settings: config.SettingsConfig{Backend: "yaml"}}},
		{name: "no data dir", cfg: config.Config{ContactsFile: "c.json", Settings: config.SettingsConfig{Backend: "yaml"}}, wantErr: true},
		{name: "no contacts file", cfg: config.Config{DataDir: "/d", Settings: config.SettingsConfig{Backend: "yaml"}}, wantErr: true},
		{name: "unknown backend", cfg: config.Config{DataDir: "/d", ContactsFile: "c.json", Settings: config.SettingsConfig{Backend: "redis"}}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaths_Absolute(t *testing.T) {
	cfg := config.Config{
		DataDir:      "/data",
		ContactsFile: "/elsewhere/contacts.json",
		Settings:     config.SettingsConfig{Backend: "yaml", File: "prefs.yaml"},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/elsewhere/contacts.json", cfg.ContactsPath())
	assert.Equal(t, "/data/prefs.yaml", cfg.SettingsPath())
}

// chdir is a Go 1.21-compatible stand-in for testing.T.Chdir (added in Go
// 1.24): it changes the working directory and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir: restore %q: %v", prev, err)
		}
	})
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(append([]string{"--data-dir", dataDir, "--log-level", "error"}, args...), &stdout, &stderr)
	require.NoError(t, err, "stderr: %s", stderr.String())
	return stdout.String()
}

func TestCLI_ContactLifecycle(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	chdir(t, t.TempDir())
	dataDir := t.TempDir()

	out := run(t, dataDir, "add", "Ann", "--phone", "123", "--email", "a@x", "--address", "Addr1")
	annID, err := uuid.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	run(t, dataDir, "add", "Bob", "--phone", "456")

	out = run(t, dataDir, "list", "an")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, annID.String())
	assert.NotContains(t, out, "Bob")

	run(t, dataDir, "edit", annID.String(), "--phone", "999")
	out = run(t, dataDir, "list", "ann")
	assert.Contains(t, out, "999")
	assert.Contains(t, out, "a@x", "fields without a flag keep their value")

	run(t, dataDir, "delete", annID.String())
	out = run(t, dataDir, "list")
	assert.NotContains(t, out, "Ann")
	assert.Contains(t, out, "Bob")

	assert.FileExists(t, filepath.Join(dataDir, "contacts.json"))
}

func TestCLI_Preferences(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	chdir(t, t.TempDir())
	dataDir := t.TempDir()

	out := run(t, dataDir, "prefs")
	assert.Contains(t, out, "14")
	assert.Contains(t, out, "#ffffff")

	run(t, dataDir, "prefs", "font-size", "20")
	run(t, dataDir, "prefs", "background", "#336699")

	out = run(t, dataDir, "prefs")
	assert.Contains(t, out, "20")
	assert.Contains(t, out, "#336699")
}

func TestCLI_Export(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	chdir(t, t.TempDir())
	dataDir := t.TempDir()
	target := filepath.Join(t.TempDir(), "contacts.xlsx")

	run(t, dataDir, "add", "Ann")
	run(t, dataDir, "export", target)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCLI_Errors(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	chdir(t, t.TempDir())
	dataDir := t.TempDir()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "edit bad id", args: []string{"edit", "not-a-uuid"}},
		{name: "edit unknown id", args: []string{"edit", uuid.NewString(), "--name", "X"}},
		{name: "delete bad id", args: []string{"delete", "nope"}},
		{name: "bad font size", args: []string{"prefs", "font-size", "big"}},
		{name: "bad color", args: []string{"prefs", "background", "#zzzzzz"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := execute(append([]string{"--data-dir", dataDir}, tc.args...), &stdout, &stderr)
			assert.Error(t, err)
		})
	}
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

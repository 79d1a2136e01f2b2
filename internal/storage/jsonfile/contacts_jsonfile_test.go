package jsonfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/illmade-knight/contactbook/internal/storage/jsonfile"
	"github.com/illmade-knight/contactbook/pkg/contacts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactsTest(t *testing.T) (context.Context, string, *jsonfile.ContactsStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contactbook", "contacts.json")
	store, err := jsonfile.NewContactsStore(path)
	require.NoError(t, err)
	require.Equal(t, path, store.Path())
	return context.Background(), path, store
}

func TestContactsStore_RoundTrip(t *testing.T) {
	ctx, path, store := setupContactsTest(t)
	want := []contacts.Contact{
		{ID: uuid.New(), Name: "Ann", PhoneNumber: "123", Email: "a@x", Address: "Addr1"},
		{ID: uuid.New(), Name: "Bøb", PhoneNumber: "", Email: "b@x", Address: "Line 1\nLine 2"},
	}

	// Act
	require.NoError(t, store.Save(ctx, want))
	got, err := store.Load(ctx)

	// Assert
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	t.Run("file layout", func(t *testing.T) {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var raw []map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Len(t, raw, 2)
		assert.Equal(t, want[0].ID.String(), raw[0]["id"])
		assert.Equal(t, "123", raw[0]["phoneNumber"])
		assert.ElementsMatch(t, []string{"id", "name", "phoneNumber", "email", "address"}, keys(raw[0]))
	})
}

func TestContactsStore_EmptyCollection(t *testing.T) {
	ctx, path, store := setupContactsTest(t)

	require.NoError(t, store.Save(ctx, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContactsStore_MissingFile(t *testing.T) {
	ctx, _, store := setupContactsTest(t)

	_, err := store.Load(ctx)

	assert.ErrorIs(t, err, contacts.ErrNoSnapshot)
}

func TestContactsStore_InvalidFile(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{{{"},
		{name: "empty file", content: ""},
		{name: "object instead of array", content: `{"id":"x"}`},
		{name: "missing field", content: `[{"id":"` + uuid.NewString() + `","name":"Ann"}]`},
		{name: "bad id", content: `[{"id":"not-a-uuid","name":"Ann","phoneNumber":"","email":"","address":""}]`},
		{name: "wrong type", content: `[{"id":"` + uuid.NewString() + `","name":7,"phoneNumber":"","email":"","address":""}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, path, store := setupContactsTest(t)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))

			_, err := store.Load(ctx)

			assert.ErrorIs(t, err, contacts.ErrInvalidSnapshot)
		})
	}
}

func TestContactsStore_WithService(t *testing.T) {
	ctx, _, store := setupContactsTest(t)
	svc := contacts.Open(ctx, store, zerolog.Nop())

	ann, err := svc.Add(ctx, "Ann", "123", "a@x", "Addr1")
	require.NoError(t, err)
	bob, err := svc.Add(ctx, "Bob", "456", "b@x", "Addr2")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, ann.ID))

	reloaded := contacts.Open(ctx, store, zerolog.Nop())
	assert.Equal(t, []contacts.Contact{bob}, reloaded.Contacts())
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// FILE: main.go
// This demo shows both stores working against in-memory backends.

package main

import (
	"context"
	"os"

	"github.com/illmade-knight/contactbook/internal/logging"
	"github.com/illmade-knight/contactbook/pkg/contacts"
	"github.com/illmade-knight/contactbook/pkg/preferences"
)

func main() {
	logger := logging.New(logging.Options{Level: "info", Output: os.Stdout})
	logger.Info().Msg("--- Starting Contact Book Demo ---")

	ctx := context.Background()

	// 1. Initialize both services and their in-memory stores
	contactStore := contacts.NewInMemoryStore()
	contactService := contacts.Open(ctx, contactStore, logger)
	settings := preferences.NewInMemorySettings()
	prefService := preferences.Open(ctx, settings, logger)

	cancel := contactService.Subscribe(func(cs []contacts.Contact) {
		logger.Info().Int("count", len(cs)).Msg("👀 Observer: contacts changed")
	})
	defer cancel()

	// 2. Add contacts
	logger.Info().Msg("--- Adding Contacts ---")
	ann, _ := contactService.Add(ctx, "Ann", "123", "a@x", "Addr1")
	_, _ = contactService.Add(ctx, "Bob", "456", "b@x", "Addr2")
	logger.Info().Int("saves", contactStore.SaveCount()).Msg("✅ Added Ann and Bob")

	// 3. Search
	logger.Info().Msg("--- Searching ---")
	for _, c := range contactService.Search("an") {
		logger.Info().Str("name", c.Name).Str("id", c.ID.String()).Msg("Search 'an' matched")
	}

	// 4. Edit and delete
	logger.Info().Msg("--- Editing and Deleting ---")
	_ = contactService.Edit(ctx, ann.ID, "Ann", "999", "a@x", "Addr1")
	if updated, ok := contactService.Get(ann.ID); ok {
		logger.Info().Str("phone", updated.PhoneNumber).Msg("✅ Ann's phone updated")
	}
	_ = contactService.Delete(ctx, ann.ID)
	logger.Info().Int("remaining", len(contactService.Contacts())).Msg("✅ Deleted Ann")

	// 5. Preferences
	logger.Info().Msg("--- Preferences ---")
	logger.Info().Int("fontSize", prefService.FontSize()).Str("background", prefService.BackgroundColor().Hex()).Msg("Defaults")
	_ = prefService.SetFontSize(ctx, 20)
	teal, _ := preferences.ParseHex("#008080")
	_ = prefService.SetBackgroundColor(ctx, teal)

	// A second service over the same settings sees the stored values.
	reopened := preferences.Open(ctx, settings, logger)
	logger.Info().Int("fontSize", reopened.FontSize()).Str("background", reopened.BackgroundColor().Hex()).Msg("✅ Reloaded preferences")

	logger.Info().Msg("--- Demo Finished ---")
}

// Package jsonfile provides file-backed storage for the contact collection.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/illmade-knight/contactbook/internal/storage/atomicfile"
	"github.com/illmade-knight/contactbook/pkg/contacts"
	"github.com/xeipuuv/gojsonschema"
)

const contactsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name", "phoneNumber", "email", "address"],
		"properties": {
			"id": {
				"type": "string",
				"pattern": "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
			},
			"name": {"type": "string"},
			"phoneNumber": {"type": "string"},
			"email": {"type": "string"},
			"address": {"type": "string"}
		}
	}
}`

// contactDocument is the private struct for JSON marshalling.
type contactDocument struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// ContactsStore is a concrete implementation of the contacts.Store interface
// that keeps the whole collection in one JSON file.
type ContactsStore struct {
	path   string
	schema *gojsonschema.Schema
}

// NewContactsStore creates a store backed by the file at path. The file does
// not need to exist yet.
func NewContactsStore(path string) (*ContactsStore, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(contactsSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile contacts schema: %w", err)
	}
	return &ContactsStore{path: path, schema: schema}, nil
}

// Path returns the location of the contacts file.
func (s *ContactsStore) Path() string {
	return s.path
}

// Load reads and validates the contacts file.
func (s *ContactsStore) Load(ctx context.Context) ([]contacts.Contact, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, contacts.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to read contacts file: %w", err)
	}

	if err := s.validate(data); err != nil {
		return nil, err
	}

	var docs []contactDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", contacts.ErrInvalidSnapshot, err)
	}

	results := make([]contacts.Contact, 0, len(docs))
	for _, doc := range docs {
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: contact id %q: %w", contacts.ErrInvalidSnapshot, doc.ID, err)
		}
		results = append(results, contacts.Contact{
			ID:          id,
			Name:        doc.Name,
			PhoneNumber: doc.PhoneNumber,
			Email:       doc.Email,
			Address:     doc.Address,
		})
	}
	return results, nil
}

// Save replaces the contacts file with the given collection.
func (s *ContactsStore) Save(ctx context.Context, cs []contacts.Contact) error {
	docs := make([]contactDocument, 0, len(cs))
	for _, c := range cs {
		docs = append(docs, contactDocument{
			ID:          c.ID.String(),
			Name:        c.Name,
			PhoneNumber: c.PhoneNumber,
			Email:       c.Email,
			Address:     c.Address,
		})
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}
	if err := atomicfile.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write contacts file: %w", err)
	}
	return nil
}

func (s *ContactsStore) validate(data []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", contacts.ErrInvalidSnapshot, err)
	}
	if result.Valid() {
		return nil
	}

	descs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		descs = append(descs, desc.String())
	}
	return fmt.Errorf("%w: %s", contacts.ErrInvalidSnapshot, strings.Join(descs, "; "))
}

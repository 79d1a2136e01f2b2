// FILE: contacts/models.go

package contacts

import (
	"strings"

	"github.com/google/uuid"
)

// Contact is a single address-book record. ID is assigned when the contact is
// created and never changes afterwards.
type Contact struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
}

// nameContains reports whether the contact's name contains lowered, which
// must already be lower case.
func (c Contact) nameContains(lowered string) bool {
	return strings.Contains(strings.ToLower(c.Name), lowered)
}

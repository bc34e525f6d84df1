// Package registry holds the in-memory collection of accepted registrations.
package registry

import (
	"fmt"

	"github.com/google/uuid"
)

// User is one accepted registration. A User only exists after all three
// fields passed validation, so a constructed value always satisfies the
// shape rules.
type User struct {
	id       uuid.UUID
	name     string
	email    string
	password string
}

// ID returns the identifier assigned when the user was registered.
func (u User) ID() uuid.UUID { return u.id }

// Name returns the user's full name.
func (u User) Name() string { return u.name }

// Email returns the user's email address.
func (u User) Email() string { return u.email }

// String renders the user for display. The password is deliberately absent
// from every textual representation.
func (u User) String() string {
	return fmt.Sprintf("Nombre: %s | Correo: %s", u.name, u.email)
}

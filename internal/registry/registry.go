package registry

import (
	"github.com/google/uuid"

	"github.com/zjrosen/registro/internal/validate"
)

// Registry is an insertion-ordered, append-only collection of users. It is
// scoped to a single interactive session: no locking, no persistence, no
// deletion. Duplicate name/email combinations are allowed.
type Registry struct {
	users []User
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register validates the three fields and, when all pass, appends a new
// user. It reports whether the registration was accepted. The result does
// not distinguish which field failed; the caller reprompts with corrected
// input.
func (r *Registry) Register(name, email, password string) bool {
	if !validate.Name(name) || !validate.Email(email) || !validate.Password(password) {
		return false
	}
	r.users = append(r.users, User{
		id:       uuid.New(),
		name:     name,
		email:    email,
		password: password,
	})
	return true
}

// Users returns a copy of the registered users in insertion order.
func (r *Registry) Users() []User {
	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	return len(r.users)
}

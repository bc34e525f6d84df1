package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_String(t *testing.T) {
	r := New()
	require.True(t, r.Register("Ana Gómez", "ana@x.co", "ABcdefg1!"))

	u := r.Users()[0]
	assert.Equal(t, "Nombre: Ana Gómez | Correo: ana@x.co", u.String())
}

func TestUser_StringOmitsPassword(t *testing.T) {
	const password = "ABcdefg1!"

	r := New()
	require.True(t, r.Register("Ana Gómez", "ana@x.co", password))

	u := r.Users()[0]
	assert.NotContains(t, u.String(), password, "password must never be rendered")
	assert.NotContains(t, fmt.Sprintf("%v", u), password, "password must not leak through formatting")
}

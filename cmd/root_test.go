package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/registro/internal/registry"
)

func captureCommand() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	c := &cobra.Command{}
	c.SetOut(buf)
	return c, buf
}

func TestPrintUsers_Empty(t *testing.T) {
	c, buf := captureCommand()

	printUsers(c, registry.New())

	out := buf.String()
	assert.Contains(t, out, "=== Lista de usuarios registrados ===")
	assert.Contains(t, out, "No hay usuarios registrados.")
}

func TestPrintUsers_ListsInInsertionOrder(t *testing.T) {
	reg := registry.New()
	require.True(t, reg.Register("Ana Gómez", "ana@x.co", "ABcdefg1!"))
	require.True(t, reg.Register("Luis Pérez", "luis@x.co", "QWerty1!abc"))

	c, buf := captureCommand()
	printUsers(c, reg)

	out := buf.String()
	first := "Nombre: Ana Gómez | Correo: ana@x.co"
	second := "Nombre: Luis Pérez | Correo: luis@x.co"
	assert.Contains(t, out, first)
	assert.Contains(t, out, second)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(first)), bytes.Index(buf.Bytes(), []byte(second)),
		"users print in insertion order")
	assert.NotContains(t, out, "ABcdefg1!", "passwords never reach stdout")
	assert.NotContains(t, out, "No hay usuarios registrados.")
}

func TestSetVersion(t *testing.T) {
	t.Cleanup(func() { SetVersion("dev") })

	SetVersion("1.2.3 (commit: abc, built: today)")
	assert.Equal(t, "1.2.3 (commit: abc, built: today)", rootCmd.Version)
}

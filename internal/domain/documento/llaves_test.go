package documento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
)

func TestIdentificadorUnico(t *testing.T) {
	id := documento.IdentificadorUnico("A1", "123", "AUTH-9", 7, documento.OperacionCompra)
	assert.Equal(t, "A1-123-AUTH-9-7-compra", id)

	// El mismo DTE con otra empresa u operación produce otra llave.
	assert.NotEqual(t, id, documento.IdentificadorUnico("A1", "123", "AUTH-9", 8, documento.OperacionCompra))
	assert.NotEqual(t, id, documento.IdentificadorUnico("A1", "123", "AUTH-9", 7, documento.OperacionVenta))
}

func TestLlaveGlobal(t *testing.T) {
	// La llave global no distingue mayúsculas y no incluye empresa ni
	// operación.
	assert.Equal(t, documento.LlaveGlobal("a1", "123", "auth-9"), documento.LlaveGlobal("A1", "123", "AUTH-9"))
	assert.Equal(t, "A1-123-AUTH-9", documento.LlaveGlobal("a1", "123", "Auth-9"))
}

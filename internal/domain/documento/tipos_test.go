package documento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
)

func TestTipoOperacionValida(t *testing.T) {
	assert.True(t, documento.OperacionCompra.Valida())
	assert.True(t, documento.OperacionVenta.Valida())
	assert.False(t, documento.TipoOperacion("").Valida())
	assert.False(t, documento.TipoOperacion("traslado").Valida())
}

func TestTiposPermitidos(t *testing.T) {
	// Las compras admiten los seis tipos; las ventas solo tres.
	assert.Len(t, documento.TiposPermitidos(documento.OperacionCompra), 6)
	assert.Len(t, documento.TiposPermitidos(documento.OperacionVenta), 3)

	assert.True(t, documento.TipoValido(documento.OperacionCompra, documento.TipoCombustibles))
	assert.False(t, documento.TipoValido(documento.OperacionVenta, documento.TipoCombustibles))
	assert.False(t, documento.TipoValido(documento.OperacionVenta, documento.TipoPequenoContribuyente))
	assert.True(t, documento.TipoValido(documento.OperacionVenta, documento.TipoBienYServicio))
}

func TestNormalizarTipo(t *testing.T) {
	assert.Equal(t, documento.TipoServicio, documento.NormalizarTipo(documento.OperacionCompra, " Servicio "))

	// Fuera del catálogo de la operación cae a bien.
	assert.Equal(t, documento.TipoBien, documento.NormalizarTipo(documento.OperacionVenta, documento.TipoCombustibles))
	assert.Equal(t, documento.TipoBien, documento.NormalizarTipo(documento.OperacionCompra, ""))
	assert.Equal(t, documento.TipoBien, documento.NormalizarTipo(documento.OperacionCompra, "cualquier_cosa"))

	assert.Equal(t, documento.TipoPequenoContribuyente, documento.NormalizarTipo(documento.OperacionCompra, documento.TipoPequenoContribuyente))
}

package sat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnio/contabilidad-api/pkg/sat"
)

func TestNormalizarNIT(t *testing.T) {
	assert.Equal(t, "123456789", sat.NormalizarNIT("12-345678-9"))
	assert.Equal(t, "123456789", sat.NormalizarNIT(" 12 345 678 9 "))
	assert.Equal(t, "123456789", sat.NormalizarNIT("123456789"))
	assert.Equal(t, "", sat.NormalizarNIT("CF"))
	assert.Equal(t, "", sat.NormalizarNIT(""))
}

func TestMismoNIT(t *testing.T) {
	assert.True(t, sat.MismoNIT("12-345678-9", "123456789"))
	assert.True(t, sat.MismoNIT("123456789", " 12 345 678 9"))
	assert.False(t, sat.MismoNIT("123456789", "987654321"))

	// Un NIT vacío nunca coincide, ni siquiera con otro vacío.
	assert.False(t, sat.MismoNIT("", ""))
	assert.False(t, sat.MismoNIT("CF", "CF"))
	assert.False(t, sat.MismoNIT("123456789", ""))
}

func TestNormalizarNombreImpuesto(t *testing.T) {
	assert.Equal(t, "IVA", sat.NormalizarNombreImpuesto(" iva "))
	assert.Equal(t, "PETROLEO", sat.NormalizarNombreImpuesto("Petroleo"))
	assert.Equal(t, "TURISMO HOSPEDAJE", sat.NormalizarNombreImpuesto("turismo   hospedaje"))
}

func TestEsPequenoContribuyente(t *testing.T) {
	assert.True(t, sat.EsPequenoContribuyente("FPEQ"))
	assert.True(t, sat.EsPequenoContribuyente("FCAP"))
	assert.False(t, sat.EsPequenoContribuyente("FACT"))
}

func TestEsSinCreditoFiscal(t *testing.T) {
	assert.True(t, sat.EsSinCreditoFiscal("RECI"))
	assert.True(t, sat.EsSinCreditoFiscal("RDON"))
	assert.False(t, sat.EsSinCreditoFiscal("FACT"))
}

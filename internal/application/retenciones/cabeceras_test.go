package retenciones

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanonCabecera(t *testing.T) {
	// Las variantes del portal resuelven al mismo encabezado canónico.
	assert.Equal(t, cabFechaEmision, canonCabecera("FECHA EMISIÓN"))
	assert.Equal(t, cabFechaEmision, canonCabecera("fecha emision"))
	assert.Equal(t, cabFechaEmision, canonCabecera("  Fecha   Emisión  "))
	assert.Equal(t, cabAfectoRetencion, canonCabecera("Afecto Retención"))
	assert.Equal(t, cabNitRetenedor, canonCabecera("Nit Retenedor"))
}

func TestCampo(t *testing.T) {
	fila := map[string]any{
		"Fecha Emisión":   "15/03/2026",
		"Total Retención": 150.75,
	}
	assert.Equal(t, "15/03/2026", campo(fila, cabFechaEmision))
	assert.Equal(t, 150.75, campo(fila, cabTotalRetencion))
	assert.Nil(t, campo(fila, cabConstancia))
}

func TestAsNum(t *testing.T) {
	assert.True(t, asNum(150.75).Equal(decimal.RequireFromString("150.75")))
	assert.True(t, asNum(200).Equal(decimal.RequireFromString("200")))
	assert.True(t, asNum("Q1,234.56").Equal(decimal.RequireFromString("1234.56")))
	assert.True(t, asNum("  -45.50 ").Equal(decimal.RequireFromString("-45.50")))
	assert.True(t, asNum(nil).IsZero())
	assert.True(t, asNum("").IsZero())
	assert.True(t, asNum("sin valor").IsZero())
}

func TestParseFechaCelda(t *testing.T) {
	// Serial de Excel: 46023 es el 1 de enero de 2026.
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), parseFechaCelda(46023))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), parseFechaCelda(46023.0))

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parseFechaCelda("15/03/2026"))
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parseFechaCelda("2026-03-15"))

	// Ilegible cae a la fecha actual.
	assert.WithinDuration(t, time.Now().UTC(), parseFechaCelda("ayer"), time.Minute)
	assert.WithinDuration(t, time.Now().UTC(), parseFechaCelda(nil), time.Minute)
}

func TestFechaTrabajo(t *testing.T) {
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), fechaTrabajo("2026-03"))

	now := time.Now().UTC()
	assert.Equal(t, time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), fechaTrabajo("otra cosa"))
}

package documento_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func regExcel(serie, numero, aut string) documento.Registro {
	return documento.Registro{
		Serie:              serie,
		NumeroDte:          numero,
		NumeroAutorizacion: aut,
		FechaEmision:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		NitEmisor:          "123456789",
		NombreEmisor:       "Proveedor S.A.",
		Moneda:             "GTQ",
		MontoTotal:         dec("1130.00"),
		MontoBien:          dec("1000.00"),
		IVA:                dec("130.00"),
	}
}

func TestFusionarXMLGanaEnMontos(t *testing.T) {
	excel := []documento.Registro{regExcel("A1", "100", "AUT-1")}
	xml := []documento.Registro{{
		Serie:              "A1",
		NumeroDte:          "100",
		NumeroAutorizacion: "AUT-1",
		MontoTotal:         dec("1130.00"),
		MontoBien:          dec("400.00"),
		MontoServicio:      dec("600.00"),
		IVA:                dec("130.00"),
	}}

	out := documento.Fusionar(excel, xml)
	require.Len(t, out, 1)

	// El XML trae el desglose bien/servicio y gana sobre el Excel.
	assert.True(t, out[0].MontoBien.Equal(dec("400.00")))
	assert.True(t, out[0].MontoServicio.Equal(dec("600.00")))

	// La identidad se conserva del Excel.
	assert.Equal(t, "Proveedor S.A.", out[0].NombreEmisor)
	assert.False(t, out[0].FechaEmision.IsZero())
}

func TestFusionarXMLEnCeroNoPisa(t *testing.T) {
	excel := []documento.Registro{regExcel("A1", "100", "AUT-1")}
	xml := []documento.Registro{{
		Serie:              "A1",
		NumeroDte:          "100",
		NumeroAutorizacion: "AUT-1",
		// sin montos: todo en cero
	}}

	out := documento.Fusionar(excel, xml)
	require.Len(t, out, 1)
	assert.True(t, out[0].MontoTotal.Equal(dec("1130.00")))
	assert.True(t, out[0].IVA.Equal(dec("130.00")))
}

func TestFusionarCuentasYTipoSoloSiVienen(t *testing.T) {
	base := regExcel("A1", "100", "AUT-1")
	base.CuentaDebe = "520240"
	base.Tipo = documento.TipoBien

	xml := []documento.Registro{{
		Serie:              "A1",
		NumeroDte:          "100",
		NumeroAutorizacion: "AUT-1",
		CuentaHaber:        "110101",
		Tipo:               documento.TipoServicio,
	}}

	out := documento.Fusionar([]documento.Registro{base}, xml)
	require.Len(t, out, 1)
	assert.Equal(t, "520240", out[0].CuentaDebe)
	assert.Equal(t, "110101", out[0].CuentaHaber)
	assert.Equal(t, documento.TipoServicio, out[0].Tipo)
}

func TestFusionarSoloXMLSeAgregaAlFinal(t *testing.T) {
	excel := []documento.Registro{
		regExcel("A1", "100", "AUT-1"),
		regExcel("A1", "101", "AUT-2"),
	}
	xml := []documento.Registro{
		{Serie: "B2", NumeroDte: "500", NumeroAutorizacion: "AUT-9", MontoTotal: dec("50.00")},
	}

	out := documento.Fusionar(excel, xml)
	require.Len(t, out, 3)
	assert.Equal(t, "100", out[0].NumeroDte)
	assert.Equal(t, "101", out[1].NumeroDte)
	assert.Equal(t, "500", out[2].NumeroDte)
}

func TestFusionarSinExcel(t *testing.T) {
	xml := []documento.Registro{
		{Serie: "B2", NumeroDte: "500", NumeroAutorizacion: "AUT-9"},
	}
	out := documento.Fusionar(nil, xml)
	require.Len(t, out, 1)
	assert.Equal(t, "B2", out[0].Serie)
}

func TestOtrosImpuestosNoIncluyeIVA(t *testing.T) {
	r := documento.Registro{
		IVA:      dec("130.00"),
		Petroleo: dec("10.00"),
		Bomberos: dec("2.50"),
	}
	assert.True(t, r.OtrosImpuestos().Equal(dec("12.50")))
	assert.True(t, r.TotalImpuestos().Equal(dec("142.50")))
}

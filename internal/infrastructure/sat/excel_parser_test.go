package sat

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func libroSAT(t *testing.T, filas [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, fila := range filas {
		for j, v := range fila {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestExcelParserParse(t *testing.T) {
	buf := libroSAT(t, [][]any{
		{
			"Fecha de emisión", "Número de Autorización", "Tipo de DTE (nombre)",
			"Serie", "Número del DTE", "NIT del emisor", "Nombre completo del emisor",
			"Moneda", "Gran Total (Moneda Original)", "IVA (monto de este impuesto)",
			"Estado", "Marca de anulado",
		},
		{
			"2026-03-15", "AUT-001", "FACT",
			"A1", "100", "12345678", "Proveedor S.A.",
			"GTQ", "1130.00", "130.00",
			"Vigente", "NO",
		},
		{"", "", "", "", "", "", "", "", "", "", "", ""},
	})

	regs, err := NewExcelParser().Parse(buf)
	require.NoError(t, err)
	require.Len(t, regs, 1)

	r := regs[0]
	assert.Equal(t, "A1", r.Serie)
	assert.Equal(t, "100", r.NumeroDte)
	assert.Equal(t, "AUT-001", r.NumeroAutorizacion)
	assert.Equal(t, "FACT", r.TipoDte)
	assert.Equal(t, "Proveedor S.A.", r.NombreEmisor)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), r.FechaEmision)
	assert.Equal(t, "Vigente", r.FacturaEstado)
	require.NotNil(t, r.MarcaAnulado)
	assert.False(t, *r.MarcaAnulado)

	// Todo va a bien, neto de impuestos; el XML refina en la fusión.
	assert.True(t, r.MontoTotal.Equal(decimal.RequireFromString("1130.00")))
	assert.True(t, r.MontoBien.Equal(decimal.RequireFromString("1000.00")), "monto_bien = total - impuestos")
	assert.True(t, r.MontoServicio.IsZero())
}

func TestExcelParserMonedaPorDefecto(t *testing.T) {
	buf := libroSAT(t, [][]any{
		{"Serie", "Número del DTE", "Gran Total (Moneda Original)"},
		{"B2", "55", "250.00"},
	})
	regs, err := NewExcelParser().Parse(buf)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "GTQ", regs[0].Moneda)
}

func TestExcelParserLibroVacio(t *testing.T) {
	buf := libroSAT(t, [][]any{{"Serie", "Número del DTE"}})
	regs, err := NewExcelParser().Parse(buf)
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestExcelParserArchivoIlegible(t *testing.T) {
	_, err := NewExcelParser().Parse(bytes.NewBufferString("esto no es un xlsx"))
	assert.Error(t, err)
}

func TestCoerceNum(t *testing.T) {
	cases := map[string]string{
		"1234.56":     "1234.56",
		"1,234.56":    "1234.56",
		"1.234,56":    "1234.56",
		"Q 1,234.56":  "1234.56",
		"1234,56":     "1234.56",
		"-45.5":       "-45.5",
		"":            "0",
		"sin valor":   "0",
		"1234.567":    "1234.57",
		"  2,000.00 ": "2000",
	}
	for in, want := range cases {
		got := coerceNum(in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "coerceNum(%q) = %s, se esperaba %s", in, got, want)
	}
}

func TestParseFechaExcel(t *testing.T) {
	// Serial de Excel (sistema 1900): 46023 es el 1 de enero de 2026.
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), parseFechaExcel("46023"))

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parseFechaExcel("2026-03-15"))
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), parseFechaExcel("15/03/2026"))

	// Un número pequeño es un monto, no una fecha.
	assert.True(t, parseFechaExcel("1500").IsZero())
	assert.True(t, parseFechaExcel("").IsZero())
}

func TestParseMarcaAnulado(t *testing.T) {
	si := parseMarcaAnulado("Sí")
	require.NotNil(t, si)
	assert.True(t, *si)

	no := parseMarcaAnulado("NO")
	require.NotNil(t, no)
	assert.False(t, *no)

	assert.Nil(t, parseMarcaAnulado(""))
	assert.Nil(t, parseMarcaAnulado("tal vez"))
}

package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
)

type fakeExcelParser struct {
	regs []documento.Registro
	err  error
}

func (f *fakeExcelParser) Parse(r io.Reader) ([]documento.Registro, error) {
	return f.regs, f.err
}

// fakeXMLParser devuelve un registro por archivo según su contenido:
// "omitir" simula un XML sin autorización, "error" uno malformado.
type fakeXMLParser struct{}

func (f *fakeXMLParser) Parse(data []byte) (*documento.Registro, error) {
	switch string(data) {
	case "omitir":
		return nil, nil
	case "error":
		return nil, errors.New("xml malformado")
	}
	return &documento.Registro{
		Serie:              "A1",
		NumeroDte:          string(data),
		NumeroAutorizacion: "AUT-" + string(data),
		MontoServicio:      decimal.RequireFromString("600.00"),
	}, nil
}

func TestPreviewFusionaYCuenta(t *testing.T) {
	excel := &fakeExcelParser{regs: []documento.Registro{
		{Serie: "A1", NumeroDte: "100", NumeroAutorizacion: "AUT-100", MontoBien: decimal.RequireFromString("1000.00")},
	}}
	uc := NewPreviewUseCase(excel, &fakeXMLParser{}, testLogger())

	resp, err := uc.Ejecutar(context.Background(), strings.NewReader("xlsx"), [][]byte{
		[]byte("100"),    // coincide con el Excel
		[]byte("200"),    // solo XML
		[]byte("omitir"), // sin autorización
		[]byte("error"),  // malformado, solo se omite
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Fuentes.Excel)
	assert.Equal(t, 2, resp.Fuentes.XML)
	assert.Equal(t, 2, resp.Fuentes.XMLOmitidos)

	require.Len(t, resp.Data, 2)
	// El primero conserva el orden del Excel y toma el monto servicio del XML.
	assert.Equal(t, "100", resp.Data[0].NumeroDte)
	assert.True(t, resp.Data[0].MontoServicio.Equal(decimal.RequireFromString("600.00")))
	assert.Equal(t, "200", resp.Data[1].NumeroDte)
}

func TestPreviewExcelIlegibleAborta(t *testing.T) {
	excel := &fakeExcelParser{err: errors.New("libro corrupto")}
	uc := NewPreviewUseCase(excel, &fakeXMLParser{}, testLogger())

	_, err := uc.Ejecutar(context.Background(), strings.NewReader("xlsx"), nil)
	assert.Error(t, err)
}

func TestPreviewSinFuentesLegibles(t *testing.T) {
	uc := NewPreviewUseCase(&fakeExcelParser{}, &fakeXMLParser{}, testLogger())

	_, err := uc.Ejecutar(context.Background(), nil, [][]byte{[]byte("omitir")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

package ingesta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/gnio/contabilidad-api/internal/domain/entity"
)

func armarRectificar(docRepo *fakeDocRepo) *RectificarUseCase {
	empresaRepo := &fakeEmpresaRepo{empresas: map[int64]*entity.Empresa{
		7: {ID: 7, Nombre: "Mi Empresa", NIT: "12345678"},
	}}
	return NewRectificarUseCase(&fakeTxRunner{docRepo: docRepo}, empresaRepo, testLogger())
}

func ptr[T any](v T) *T { return &v }

func TestRectificarExitoso(t *testing.T) {
	docRepo := newFakeDocRepo()
	docRepo.uuidsValidos["u1"] = true
	docRepo.uuidsValidos["u2"] = true
	uc := armarRectificar(docRepo)

	op := documento.OperacionVenta
	resp, err := uc.Ejecutar(context.Background(), dto.RectificarRequest{
		EmpresaID:    7,
		Operacion:    &op,
		FechaEmision: "2026-03-20",
		CuentaDebe:   ptr("110101"),
		Documentos:   []dto.RectificarDocumento{{UUID: "u1"}, {UUID: "u2"}},
	})
	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, 2, resp.Updated)

	campos := docRepo.rectificados["u1"]
	require.NotNil(t, campos.TipoOperacion)
	assert.Equal(t, documento.OperacionVenta, *campos.TipoOperacion)
	require.NotNil(t, campos.FechaEmision)
	assert.Equal(t, 20, campos.FechaEmision.Day())
	require.NotNil(t, campos.CuentaDebe)
	assert.Equal(t, "110101", *campos.CuentaDebe)
	assert.Nil(t, campos.CuentaHaber)
}

func TestRectificarUUIDInexistenteAbortaElLote(t *testing.T) {
	docRepo := newFakeDocRepo()
	docRepo.uuidsValidos["u1"] = true
	uc := armarRectificar(docRepo)

	_, err := uc.Ejecutar(context.Background(), dto.RectificarRequest{
		EmpresaID:  7,
		CuentaDebe: ptr("110101"),
		Documentos: []dto.RectificarDocumento{{UUID: "u1"}, {UUID: "fantasma"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRectificarValidaEntrada(t *testing.T) {
	uc := armarRectificar(newFakeDocRepo())

	_, err := uc.Ejecutar(context.Background(), dto.RectificarRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Operación desconocida.
	op := documento.TipoOperacion("traslado")
	_, err = uc.Ejecutar(context.Background(), dto.RectificarRequest{
		EmpresaID:  7,
		Operacion:  &op,
		Documentos: []dto.RectificarDocumento{{UUID: "u1"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Solo uuids vacíos.
	_, err = uc.Ejecutar(context.Background(), dto.RectificarRequest{
		EmpresaID:  7,
		Documentos: []dto.RectificarDocumento{{UUID: ""}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRectificarEmpresaInexistente(t *testing.T) {
	uc := armarRectificar(newFakeDocRepo())

	_, err := uc.Ejecutar(context.Background(), dto.RectificarRequest{
		EmpresaID:  99,
		Documentos: []dto.RectificarDocumento{{UUID: "u1"}},
	})
	assert.ErrorIs(t, err, domain.ErrEmpresaNotFound)
}

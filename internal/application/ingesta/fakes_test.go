package ingesta

import (
	"context"
	"time"

	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/gnio/contabilidad-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// fakeDocRepo repositorio de documentos en memoria para los tests.
type fakeDocRepo struct {
	existentes    []*entity.Documento
	upserted      []*entity.Documento
	rectificados  map[string]repository.Rectificacion
	uuidsValidos  map[string]bool
	errUpsert     error
	errRectificar error
}

func newFakeDocRepo() *fakeDocRepo {
	return &fakeDocRepo{
		rectificados: make(map[string]repository.Rectificacion),
		uuidsValidos: make(map[string]bool),
	}
}

func (f *fakeDocRepo) Upsert(doc *entity.Documento) error {
	if f.errUpsert != nil {
		return f.errUpsert
	}
	f.upserted = append(f.upserted, doc)
	return nil
}

func (f *fakeDocRepo) BuscarExistentes(claves []repository.ClaveDocumento) ([]*entity.Documento, error) {
	var out []*entity.Documento
	for _, c := range claves {
		for _, e := range f.existentes {
			if e.Serie == c.Serie && e.NumeroDte == c.NumeroDte && e.NumeroAutorizacion == c.NumeroAutorizacion {
				out = append(out, e)
			}
		}
	}
	return out, nil
}

func (f *fakeDocRepo) Listar(filtro repository.FiltroDocumentos) ([]*entity.Documento, int64, error) {
	return f.upserted, int64(len(f.upserted)), nil
}

func (f *fakeDocRepo) Rectificar(uuid string, campos repository.Rectificacion) (bool, error) {
	if f.errRectificar != nil {
		return false, f.errRectificar
	}
	if !f.uuidsValidos[uuid] {
		return false, nil
	}
	f.rectificados[uuid] = campos
	return true, nil
}

// fakeTxRunner ejecuta el callback directamente sobre el repo dado.
type fakeTxRunner struct {
	docRepo repository.DocumentoRepository
	corrido bool
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(docRepo repository.DocumentoRepository) error) error {
	f.corrido = true
	return fn(f.docRepo)
}

type fakeEmpresaRepo struct {
	empresas map[int64]*entity.Empresa
}

func (f *fakeEmpresaRepo) GetByID(id int64) (*entity.Empresa, error) {
	return f.empresas[id], nil
}

func (f *fakeEmpresaRepo) List() ([]*entity.Empresa, error) {
	var out []*entity.Empresa
	for _, e := range f.empresas {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	e.ID = int64(len(f.empresas) + 1)
	e.CreatedAt = time.Now()
	f.empresas[e.ID] = e
	return nil
}

type fakeNomenclaturaRepo struct {
	cuentas []*entity.CuentaContable
}

func (f *fakeNomenclaturaRepo) CuentasPorEmpresa(empresaID int64) ([]*entity.CuentaContable, error) {
	return f.cuentas, nil
}

func (f *fakeNomenclaturaRepo) CuentasPorNomenclatura(nomenclaturaID int64, page, pageSize int) ([]*entity.CuentaContable, int64, error) {
	return f.cuentas, int64(len(f.cuentas)), nil
}

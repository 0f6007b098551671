// Package usecase contiene los casos de uso de consulta y administración.
package usecase

import (
	"context"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/gnio/contabilidad-api/pkg/logger"
	"github.com/gocarina/gocsv"
)

// DocumentoUseCase listado mensual y exportación de documentos.
type DocumentoUseCase struct {
	docRepo repository.DocumentoRepository
	log     *logger.Logger
}

// NewDocumentoUseCase construye el caso de uso.
func NewDocumentoUseCase(docRepo repository.DocumentoRepository, log *logger.Logger) *DocumentoUseCase {
	return &DocumentoUseCase{docRepo: docRepo, log: log}
}

// Listar devuelve la página pedida de documentos del mes.
func (uc *DocumentoUseCase) Listar(ctx context.Context, filtro repository.FiltroDocumentos) (*dto.ListaDocumentosResponse, error) {
	if filtro.EmpresaID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if filtro.Operacion != "" && !filtro.Operacion.Valida() {
		return nil, domain.ErrInvalidInput
	}
	docs, total, err := uc.docRepo.Listar(filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentoItem, len(docs))
	for i, d := range docs {
		items[i] = aItem(d)
	}
	return &dto.ListaDocumentosResponse{
		Data:     items,
		Total:    total,
		Page:     filtro.Page,
		PageSize: filtro.PageSize,
	}, nil
}

// ExportarCSV devuelve todos los documentos del mes como CSV (RFC 4180,
// columnas en el orden de las etiquetas csv del DTO).
func (uc *DocumentoUseCase) ExportarCSV(ctx context.Context, filtro repository.FiltroDocumentos) (string, error) {
	if filtro.EmpresaID == 0 {
		return "", domain.ErrInvalidInput
	}
	// exportación completa, sin paginar
	filtro.Page = 1
	filtro.PageSize = 0
	docs, _, err := uc.docRepo.Listar(filtro)
	if err != nil {
		return "", err
	}
	items := make([]dto.DocumentoItem, len(docs))
	for i, d := range docs {
		items[i] = aItem(d)
	}
	return gocsv.MarshalString(&items)
}

func aItem(d *entity.Documento) dto.DocumentoItem {
	deref := func(p *string) string {
		if p != nil {
			return *p
		}
		return ""
	}
	otros := d.Petroleo.Add(d.TurismoHospedaje).Add(d.TurismoPasajes).Add(d.TimbrePrensa).
		Add(d.Bomberos).Add(d.TasaMunicipal).Add(d.BebidasAlcoholicas).Add(d.BebidasNoAlcoholicas).
		Add(d.Tabaco).Add(d.Cemento).Add(d.TarifaPortuaria)
	return dto.DocumentoItem{
		UUID:               d.UUID,
		Serie:              d.Serie,
		NumeroDte:          d.NumeroDte,
		NumeroAutorizacion: d.NumeroAutorizacion,
		FechaEmision:       d.FechaEmision.Format("2006-01-02"),
		TipoDte:            d.TipoDte,
		NitEmisor:          d.NitEmisor,
		NombreEmisor:       d.NombreEmisor,
		Moneda:             d.Moneda,

		MontoTotal:     d.MontoTotal,
		MontoBien:      d.MontoBien,
		MontoServicio:  d.MontoServicio,
		IVA:            d.IVA,
		Petroleo:       d.Petroleo,
		OtrosImpuestos: otros,

		TipoOperacion: string(d.TipoOperacion),
		Tipo:          string(d.Tipo),
		CuentaDebe:    deref(d.CuentaDebe),
		CuentaDebe2:   deref(d.CuentaDebe2),
		CuentaHaber:   deref(d.CuentaHaber),
		Periodo:       d.Periodo(),
	}
}

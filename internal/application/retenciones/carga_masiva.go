package retenciones

import (
	"context"
	"strings"
	"time"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/gnio/contabilidad-api/pkg/logger"
	"github.com/gnio/contabilidad-api/pkg/sat"
	"github.com/google/uuid"
)

// UseCase carga lotes de constancias de retención y lista las ya guardadas.
// Las constancias repetidas se ignoran en silencio: volver a subir el mismo
// reporte del portal no duplica ni falla.
type UseCase struct {
	retRepo     repository.RetencionRepository
	empresaRepo repository.EmpresaRepository
	log         *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(retRepo repository.RetencionRepository, empresaRepo repository.EmpresaRepository, log *logger.Logger) *UseCase {
	return &UseCase{retRepo: retRepo, empresaRepo: empresaRepo, log: log}
}

func (uc *UseCase) validar(in dto.CargaRetencionesRequest) (*entity.Empresa, error) {
	if in.EmpresaID == 0 || len(in.Retenciones) == 0 {
		return nil, domain.ErrInvalidInput
	}
	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}
	// Refuerzo opcional: si el cliente manda el NIT del retenido, debe ser
	// el de la empresa.
	if in.NitRetenido != "" && !sat.MismoNIT(in.NitRetenido, empresa.NIT) {
		return nil, domain.ErrInvalidInput
	}
	return empresa, nil
}

// fechaTrabajo interpreta "YYYY-MM" como el primer día del mes; cualquier
// otra cosa cae al mes actual.
func fechaTrabajo(date string) time.Time {
	if t, err := time.Parse("2006-01", strings.TrimSpace(date)); err == nil {
		return t
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// CargarIVA guarda un lote de constancias de retención de IVA.
func (uc *UseCase) CargarIVA(ctx context.Context, in dto.CargaRetencionesRequest) (*dto.CargaRetencionesResponse, error) {
	if _, err := uc.validar(in); err != nil {
		return nil, err
	}
	ft := fechaTrabajo(in.Date)

	rets := make([]*entity.RetencionIVA, len(in.Retenciones))
	for i, fila := range in.Retenciones {
		rets[i] = &entity.RetencionIVA{
			UUID:             uuid.New().String(),
			EmpresaID:        in.EmpresaID,
			FechaTrabajo:     ft,
			NitRetenedor:     toString(campo(fila, cabNitRetenedor)),
			NombreRetenedor:  toString(campo(fila, cabNombreRetenedor)),
			EstadoConstancia: toString(campo(fila, cabEstado)),
			Constancia:       toString(campo(fila, cabConstancia)),
			FechaEmision:     parseFechaCelda(campo(fila, cabFechaEmision)),
			TotalFactura:     asNum(campo(fila, cabTotalFactura)),
			ImporteNeto:      asNum(campo(fila, cabImporteNeto)),
			AfectoRetencion:  asNum(campo(fila, cabAfectoRetencion)),
			TotalRetencion:   asNum(campo(fila, cabTotalRetencion)),
		}
	}

	if err := uc.retRepo.InsertarIVA(rets); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("empresa_id", in.EmpresaID).Int("retenciones", len(rets)).Msg("retenciones IVA guardadas")

	// inserted reporta lo intentado; las constancias repetidas se ignoran
	// sin avisar, igual que re-subir el mismo reporte.
	return &dto.CargaRetencionesResponse{
		Status:   200,
		OK:       true,
		Inserted: len(rets),
		Message:  "Retenciones guardadas correctamente",
	}, nil
}

// CargarISR guarda un lote de constancias de retención de ISR.
func (uc *UseCase) CargarISR(ctx context.Context, in dto.CargaRetencionesRequest) (*dto.CargaRetencionesResponse, error) {
	if _, err := uc.validar(in); err != nil {
		return nil, err
	}
	ft := fechaTrabajo(in.Date)

	rets := make([]*entity.RetencionISR, len(in.Retenciones))
	for i, fila := range in.Retenciones {
		rets[i] = &entity.RetencionISR{
			UUID:             uuid.New().String(),
			EmpresaID:        in.EmpresaID,
			FechaTrabajo:     ft,
			NitRetenedor:     toString(campo(fila, cabNitRetenedor)),
			NombreRetenedor:  toString(campo(fila, cabNombreRetenedor)),
			EstadoConstancia: toString(campo(fila, cabEstado)),
			Constancia:       toString(campo(fila, cabConstancia)),
			FechaEmision:     parseFechaCelda(campo(fila, cabFechaEmision)),
			TotalFactura:     asNum(campo(fila, cabTotalFactura)),
			RentaImponible:   asNum(campo(fila, cabRentaImponible)),
			TotalRetencion:   asNum(campo(fila, cabTotalRetencion)),
		}
	}

	if err := uc.retRepo.InsertarISR(rets); err != nil {
		return nil, err
	}

	uc.log.Info().Int64("empresa_id", in.EmpresaID).Int("retenciones", len(rets)).Msg("retenciones ISR guardadas")

	return &dto.CargaRetencionesResponse{
		Status:   200,
		OK:       true,
		Inserted: len(rets),
		Message:  "Retenciones ISR guardadas correctamente",
	}, nil
}

// ListarIVA devuelve las retenciones de IVA de la empresa para un mes.
func (uc *UseCase) ListarIVA(ctx context.Context, empresaID int64, mes string) (*dto.ListaRetencionesIVAResponse, error) {
	if empresaID == 0 {
		return nil, domain.ErrInvalidInput
	}
	rets, err := uc.retRepo.ListarIVA(empresaID, fechaTrabajo(mes))
	if err != nil {
		return nil, err
	}
	items := make([]dto.RetencionIVAItem, len(rets))
	for i, r := range rets {
		items[i] = dto.RetencionIVAItem{
			UUID:             r.UUID,
			NitRetenedor:     r.NitRetenedor,
			NombreRetenedor:  r.NombreRetenedor,
			EstadoConstancia: r.EstadoConstancia,
			Constancia:       r.Constancia,
			FechaEmision:     r.FechaEmision.Format("2006-01-02"),
			TotalFactura:     r.TotalFactura,
			ImporteNeto:      r.ImporteNeto,
			AfectoRetencion:  r.AfectoRetencion,
			TotalRetencion:   r.TotalRetencion,
			Periodo:          r.FechaTrabajo.Format("2006-01"),
		}
	}
	return &dto.ListaRetencionesIVAResponse{Data: items, Total: len(items)}, nil
}

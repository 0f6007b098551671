package ingesta

import (
	"context"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/gnio/contabilidad-api/pkg/logger"
)

// RectificarUseCase corrige documentos ya cargados: fecha de emisión,
// operación y cuentas. Nunca toca montos ni campos de anulación.
type RectificarUseCase struct {
	txRunner    TxRunner
	empresaRepo repository.EmpresaRepository
	log         *logger.Logger
}

// NewRectificarUseCase construye el caso de uso.
func NewRectificarUseCase(txRunner TxRunner, empresaRepo repository.EmpresaRepository, log *logger.Logger) *RectificarUseCase {
	return &RectificarUseCase{txRunner: txRunner, empresaRepo: empresaRepo, log: log}
}

// Ejecutar aplica la rectificación a todos los uuids del lote en una sola
// transacción. Un uuid inexistente aborta el lote completo.
func (uc *RectificarUseCase) Ejecutar(ctx context.Context, in dto.RectificarRequest) (*dto.RectificarResponse, error) {
	if in.EmpresaID == 0 || len(in.Documentos) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Operacion != nil && !in.Operacion.Valida() {
		return nil, domain.ErrInvalidInput
	}

	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}

	campos := repository.Rectificacion{
		TipoOperacion: in.Operacion,
		CuentaDebe:    in.CuentaDebe,
		CuentaDebe2:   in.CuentaDebe2,
		CuentaHaber:   in.CuentaHaber,
	}
	if t, ok := parseFecha(in.FechaEmision); ok {
		campos.FechaEmision = &t
	}

	var uuids []string
	for _, d := range in.Documentos {
		if d.UUID != "" {
			uuids = append(uuids, d.UUID)
		}
	}
	if len(uuids) == 0 {
		return nil, domain.ErrInvalidInput
	}

	ctxTx, cancel := context.WithTimeout(ctx, timeoutTransaccion)
	defer cancel()
	updated := 0
	err = uc.txRunner.Run(ctxTx, func(docRepo repository.DocumentoRepository) error {
		for _, id := range uuids {
			ok, err := docRepo.Rectificar(id, campos)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrNotFound
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("empresa_id", in.EmpresaID).
		Int("documentos", updated).
		Msg("documentos rectificados")

	return &dto.RectificarResponse{
		Status:  200,
		OK:      true,
		Updated: updated,
		Message: "Documentos rectificados correctamente",
	}, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
)

var _ repository.RetencionRepository = (*RetencionRepo)(nil)

// RetencionRepo implementación de RetencionRepository.
type RetencionRepo struct {
	q Querier
}

// NewRetencionRepository construye el adaptador.
func NewRetencionRepository(q Querier) *RetencionRepo {
	return &RetencionRepo{q: q}
}

// InsertarIVA inserta el lote ignorando constancias repetidas de la misma
// empresa (ON CONFLICT DO NOTHING sobre empresa_id + constancia).
func (r *RetencionRepo) InsertarIVA(rets []*entity.RetencionIVA) error {
	query := `
		INSERT INTO iva_retenciones (
			uuid, empresa_id, fecha_trabajo, nit_retenedor, nombre_retenedor,
			estado_constancia, constancia, fecha_emision,
			total_factura, importe_neto, afecto_retencion, total_retencion, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
		ON CONFLICT (empresa_id, constancia) DO NOTHING`
	for _, ret := range rets {
		_, err := r.q.Exec(context.Background(), query,
			ret.UUID, ret.EmpresaID, ret.FechaTrabajo, ret.NitRetenedor, ret.NombreRetenedor,
			ret.EstadoConstancia, ret.Constancia, ret.FechaEmision,
			ret.TotalFactura, ret.ImporteNeto, ret.AfectoRetencion, ret.TotalRetencion,
		)
		if err != nil {
			return fmt.Errorf("insert retención IVA: %w", err)
		}
	}
	return nil
}

// InsertarISR inserta el lote ignorando constancias repetidas.
func (r *RetencionRepo) InsertarISR(rets []*entity.RetencionISR) error {
	query := `
		INSERT INTO isr_retenciones (
			uuid, empresa_id, fecha_trabajo, nit_retenedor, nombre_retenedor,
			estado_constancia, constancia, fecha_emision,
			total_factura, renta_imponible, total_retencion, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (empresa_id, constancia) DO NOTHING`
	for _, ret := range rets {
		_, err := r.q.Exec(context.Background(), query,
			ret.UUID, ret.EmpresaID, ret.FechaTrabajo, ret.NitRetenedor, ret.NombreRetenedor,
			ret.EstadoConstancia, ret.Constancia, ret.FechaEmision,
			ret.TotalFactura, ret.RentaImponible, ret.TotalRetencion,
		)
		if err != nil {
			return fmt.Errorf("insert retención ISR: %w", err)
		}
	}
	return nil
}

// ListarIVA devuelve las retenciones de IVA del mes de trabajo.
func (r *RetencionRepo) ListarIVA(empresaID int64, mes time.Time) ([]*entity.RetencionIVA, error) {
	query := `
		SELECT uuid, empresa_id, fecha_trabajo, nit_retenedor, nombre_retenedor,
		       estado_constancia, constancia, fecha_emision,
		       total_factura, importe_neto, afecto_retencion, total_retencion, created_at
		FROM iva_retenciones
		WHERE empresa_id = $1 AND fecha_trabajo = $2
		ORDER BY fecha_emision, constancia`
	rows, err := r.q.Query(context.Background(), query, empresaID, mes)
	if err != nil {
		return nil, fmt.Errorf("listar retenciones IVA: %w", err)
	}
	defer rows.Close()
	var list []*entity.RetencionIVA
	for rows.Next() {
		var ret entity.RetencionIVA
		if err := rows.Scan(
			&ret.UUID, &ret.EmpresaID, &ret.FechaTrabajo, &ret.NitRetenedor, &ret.NombreRetenedor,
			&ret.EstadoConstancia, &ret.Constancia, &ret.FechaEmision,
			&ret.TotalFactura, &ret.ImporteNeto, &ret.AfectoRetencion, &ret.TotalRetencion, &ret.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan retención IVA: %w", err)
		}
		list = append(list, &ret)
	}
	return list, rows.Err()
}

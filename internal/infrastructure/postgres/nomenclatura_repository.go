package postgres

import (
	"context"
	"fmt"

	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.NomenclaturaRepository = (*NomenclaturaRepo)(nil)

// NomenclaturaRepo lectura del plan de cuentas.
type NomenclaturaRepo struct {
	q Querier
}

// NewNomenclaturaRepository construye el adaptador.
func NewNomenclaturaRepository(q Querier) *NomenclaturaRepo {
	return &NomenclaturaRepo{q: q}
}

const cuentasSelect = `
	SELECT c.id, c.nomenclatura_id, c.cuenta, COALESCE(c.descripcion, ''),
	       COALESCE(c.nivel, 1), COALESCE(c.debe_haber, 'DEBE'),
	       COALESCE(c.naturaleza, 'REVISAR'), COALESCE(c.orden, 0)
	FROM cuentas_contables c`

// CuentasPorEmpresa devuelve todas las cuentas de la nomenclatura asignada a
// la empresa.
func (r *NomenclaturaRepo) CuentasPorEmpresa(empresaID int64) ([]*entity.CuentaContable, error) {
	query := cuentasSelect + `
		JOIN empresas e ON e.nomenclatura_id = c.nomenclatura_id
		WHERE e.id = $1
		ORDER BY c.orden`
	rows, err := r.q.Query(context.Background(), query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("cuentas por empresa: %w", err)
	}
	defer rows.Close()
	return scanCuentas(rows)
}

// CuentasPorNomenclatura devuelve la página pedida y el total.
func (r *NomenclaturaRepo) CuentasPorNomenclatura(nomenclaturaID int64, page, pageSize int) ([]*entity.CuentaContable, int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM cuentas_contables WHERE nomenclatura_id = $1", nomenclaturaID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("contar cuentas: %w", err)
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	query := cuentasSelect + `
		WHERE c.nomenclatura_id = $1
		ORDER BY c.orden
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, nomenclaturaID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("cuentas por nomenclatura: %w", err)
	}
	defer rows.Close()
	list, err := scanCuentas(rows)
	return list, total, err
}

func scanCuentas(rows pgx.Rows) ([]*entity.CuentaContable, error) {
	var list []*entity.CuentaContable
	for rows.Next() {
		var c entity.CuentaContable
		if err := rows.Scan(
			&c.ID, &c.NomenclaturaID, &c.Codigo, &c.Descripcion,
			&c.Nivel, &c.DebeHaber, &c.Naturaleza, &c.Orden,
		); err != nil {
			return nil, fmt.Errorf("scan cuenta contable: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

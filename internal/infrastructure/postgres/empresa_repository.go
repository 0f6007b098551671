package postgres

import (
	"context"
	"fmt"

	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación de EmpresaRepository.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// GetByID devuelve nil, nil cuando la empresa no existe.
func (r *EmpresaRepo) GetByID(id int64) (*entity.Empresa, error) {
	query := `
		SELECT id, nombre, nit, COALESCE(sector_economico, ''), COALESCE(nomenclatura_id, 0), created_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nombre, &e.NIT, &e.SectorEconomico, &e.NomenclaturaID, &e.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// List devuelve todas las empresas ordenadas por nombre.
func (r *EmpresaRepo) List() ([]*entity.Empresa, error) {
	query := `
		SELECT id, nombre, nit, COALESCE(sector_economico, ''), COALESCE(nomenclatura_id, 0), created_at
		FROM empresas ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("listar empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nombre, &e.NIT, &e.SectorEconomico, &e.NomenclaturaID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create da de alta la empresa y rellena el ID generado.
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (nombre, nit, sector_economico, nomenclatura_id, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		e.Nombre, e.NIT, nullIfEmpty(e.SectorEconomico), e.NomenclaturaID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el NIT ya está registrado: %w", err)
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

package repository

import "github.com/gnio/contabilidad-api/internal/domain/entity"

// EmpresaRepository puerto de persistencia del registro de empresas.
type EmpresaRepository interface {
	// GetByID devuelve nil, nil cuando la empresa no existe.
	GetByID(id int64) (*entity.Empresa, error)
	List() ([]*entity.Empresa, error)
	Create(e *entity.Empresa) error
}

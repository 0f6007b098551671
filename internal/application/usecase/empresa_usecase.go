package usecase

import (
	"context"
	"strings"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/gnio/contabilidad-api/pkg/sat"
)

// EmpresaUseCase registro mínimo de empresas.
type EmpresaUseCase struct {
	empresaRepo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(empresaRepo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{empresaRepo: empresaRepo}
}

// List devuelve todas las empresas.
func (uc *EmpresaUseCase) List(ctx context.Context) ([]dto.EmpresaResponse, error) {
	empresas, err := uc.empresaRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpresaResponse, len(empresas))
	for i, e := range empresas {
		out[i] = aEmpresaResponse(e)
	}
	return out, nil
}

// Get devuelve una empresa por id.
func (uc *EmpresaUseCase) Get(ctx context.Context, id int64) (*dto.EmpresaResponse, error) {
	e, err := uc.empresaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmpresaNotFound
	}
	resp := aEmpresaResponse(e)
	return &resp, nil
}

// Create da de alta una empresa. El NIT debe traer al menos un dígito.
func (uc *EmpresaUseCase) Create(ctx context.Context, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || sat.NormalizarNIT(in.NIT) == "" {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Empresa{
		Nombre:          strings.TrimSpace(in.Nombre),
		NIT:             strings.TrimSpace(in.NIT),
		SectorEconomico: strings.TrimSpace(in.SectorEconomico),
		NomenclaturaID:  in.NomenclaturaID,
	}
	if err := uc.empresaRepo.Create(e); err != nil {
		return nil, err
	}
	resp := aEmpresaResponse(e)
	return &resp, nil
}

func aEmpresaResponse(e *entity.Empresa) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		ID:              e.ID,
		Nombre:          e.Nombre,
		NIT:             e.NIT,
		SectorEconomico: e.SectorEconomico,
		NomenclaturaID:  e.NomenclaturaID,
	}
}

package usecase

import (
	"context"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
)

// NomenclaturaUseCase consulta del plan de cuentas.
type NomenclaturaUseCase struct {
	nomenclaturaRepo repository.NomenclaturaRepository
}

// NewNomenclaturaUseCase construye el caso de uso.
func NewNomenclaturaUseCase(nomenclaturaRepo repository.NomenclaturaRepository) *NomenclaturaUseCase {
	return &NomenclaturaUseCase{nomenclaturaRepo: nomenclaturaRepo}
}

// Cuentas devuelve la página pedida de cuentas de la nomenclatura, en orden
// ascendente.
func (uc *NomenclaturaUseCase) Cuentas(ctx context.Context, nomenclaturaID int64, page dto.PageRequest) (*dto.ListaCuentasResponse, error) {
	if nomenclaturaID == 0 {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	cuentas, total, err := uc.nomenclaturaRepo.CuentasPorNomenclatura(nomenclaturaID, page.Page, page.PageSize)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CuentaContableItem, len(cuentas))
	for i, c := range cuentas {
		items[i] = dto.CuentaContableItem{
			ID:          c.ID,
			Codigo:      c.Codigo,
			Descripcion: c.Descripcion,
			Nivel:       c.Nivel,
			DebeHaber:   c.DebeHaber,
			Naturaleza:  c.Naturaleza,
			Orden:       c.Orden,
		}
	}
	return &dto.ListaCuentasResponse{
		Data:     items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}, nil
}

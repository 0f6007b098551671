package repository

import "github.com/gnio/contabilidad-api/internal/domain/entity"

// NomenclaturaRepository puerto de lectura del plan de cuentas.
type NomenclaturaRepository interface {
	// CuentasPorEmpresa devuelve todas las cuentas de la nomenclatura
	// asignada a la empresa, ordenadas por orden ascendente.
	CuentasPorEmpresa(empresaID int64) ([]*entity.CuentaContable, error)
	// CuentasPorNomenclatura devuelve la página pedida y el total.
	CuentasPorNomenclatura(nomenclaturaID int64, page, pageSize int) ([]*entity.CuentaContable, int64, error)
}

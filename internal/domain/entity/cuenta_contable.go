package entity

// CuentaContable es una fila de la nomenclatura (plan de cuentas).
// Las cuentas con Nivel <= 3 son encabezados y no reciben movimientos.
type CuentaContable struct {
	ID             int64
	NomenclaturaID int64
	Codigo         string // número de cuenta, ej. 520240
	Descripcion    string
	Nivel          int
	DebeHaber      string // DEBE | HABER
	Naturaleza     string // ACTIVO, PASIVO, CAPITAL, INGRESOS, GASTOS, COSTOS, ...
	Orden          int
}

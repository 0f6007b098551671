package dto

// EmpresaResponse una empresa del registro.
type EmpresaResponse struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	NIT             string `json:"nit"`
	SectorEconomico string `json:"sectorEconomico"`
	NomenclaturaID  int64  `json:"nomenclaturaId"`
}

// CreateEmpresaRequest alta mínima de empresa.
type CreateEmpresaRequest struct {
	Nombre          string `json:"nombre"`
	NIT             string `json:"nit"`
	SectorEconomico string `json:"sector_economico"`
	NomenclaturaID  int64  `json:"nomenclatura_id"`
}

// CuentaContableItem fila del listado de nomenclatura.
type CuentaContableItem struct {
	ID          int64  `json:"id"`
	Codigo      string `json:"cuenta"`
	Descripcion string `json:"descripcion"`
	Nivel       int    `json:"nivel"`
	DebeHaber   string `json:"debeHaber"`
	Naturaleza  string `json:"naturaleza"`
	Orden       int    `json:"orden"`
}

// ListaCuentasResponse respuesta del listado de cuentas de una nomenclatura.
type ListaCuentasResponse struct {
	Data     []CuentaContableItem `json:"data"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

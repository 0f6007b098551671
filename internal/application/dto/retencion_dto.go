package dto

import "github.com/shopspring/decimal"

// CargaRetencionesRequest cuerpo de POST /api/retenciones/{iva,isr}/masivo.
// Cada retención llega como la fila cruda del Excel del portal de la SAT,
// con sus encabezados originales (tildes incluidas); el caso de uso los
// canonicaliza.
type CargaRetencionesRequest struct {
	EmpresaID   int64            `json:"empresa_id"`
	Date        string           `json:"date"` // YYYY-MM
	NitRetenido string           `json:"nit_retenido"`
	Retenciones []map[string]any `json:"retenciones"`
}

// CargaRetencionesResponse respuesta del guardado masivo.
type CargaRetencionesResponse struct {
	Status   int    `json:"status"`
	OK       bool   `json:"ok"`
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

// RetencionIVAItem fila del listado de retenciones de IVA.
type RetencionIVAItem struct {
	UUID             string          `json:"uuid"`
	NitRetenedor     string          `json:"nitRetenedor"`
	NombreRetenedor  string          `json:"nombreRetenedor"`
	EstadoConstancia string          `json:"estadoConstancia"`
	Constancia       string          `json:"constancia"`
	FechaEmision     string          `json:"fechaEmision"`
	TotalFactura     decimal.Decimal `json:"totalFactura"`
	ImporteNeto      decimal.Decimal `json:"importeNeto"`
	AfectoRetencion  decimal.Decimal `json:"afectoRetencion"`
	TotalRetencion   decimal.Decimal `json:"totalRetencion"`
	Periodo          string          `json:"periodo"`
}

// ListaRetencionesIVAResponse respuesta del listado mensual.
type ListaRetencionesIVAResponse struct {
	Data  []RetencionIVAItem `json:"data"`
	Total int                `json:"total"`
}

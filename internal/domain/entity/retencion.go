package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RetencionIVA constancia de retención de IVA emitida a favor de la empresa.
type RetencionIVA struct {
	UUID             string
	EmpresaID        int64
	FechaTrabajo     time.Time // primer día del mes de trabajo
	NitRetenedor     string
	NombreRetenedor  string
	EstadoConstancia string
	Constancia       string
	FechaEmision     time.Time
	TotalFactura     decimal.Decimal
	ImporteNeto      decimal.Decimal
	AfectoRetencion  decimal.Decimal
	TotalRetencion   decimal.Decimal
	CreatedAt        time.Time
}

// RetencionISR constancia de retención de ISR emitida a favor de la empresa.
type RetencionISR struct {
	UUID             string
	EmpresaID        int64
	FechaTrabajo     time.Time
	NitRetenedor     string
	NombreRetenedor  string
	EstadoConstancia string
	Constancia       string
	FechaEmision     time.Time
	TotalFactura     decimal.Decimal
	RentaImponible   decimal.Decimal
	TotalRetencion   decimal.Decimal
	CreatedAt        time.Time
}

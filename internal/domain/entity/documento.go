package entity

import (
	"time"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/shopspring/decimal"
)

// Documento es un DTE (Documento Tributario Electrónico) ya clasificado y
// persistido para una empresa, operación y mes de trabajo.
type Documento struct {
	UUID               string
	IdentificadorUnico string // serie-numeroDte-numeroAutorizacion-empresaID-operacion

	Serie              string
	NumeroDte          string
	NumeroAutorizacion string
	FechaEmision       time.Time
	TipoDte            string

	NitEmisor             string
	NombreEmisor          string
	CodigoEstablecimiento string
	NombreEstablecimiento string
	IDReceptor            string
	NombreReceptor        string
	NitCertificador       string
	NombreCertificador    string

	Moneda        string // GTQ por defecto
	MontoTotal    decimal.Decimal
	MontoBien     decimal.Decimal
	MontoServicio decimal.Decimal

	FacturaEstado  string
	MarcaAnulado   *bool
	FechaAnulacion *time.Time

	IVA                  decimal.Decimal
	Petroleo             decimal.Decimal
	TurismoHospedaje     decimal.Decimal
	TurismoPasajes       decimal.Decimal
	TimbrePrensa         decimal.Decimal
	Bomberos             decimal.Decimal
	TasaMunicipal        decimal.Decimal
	BebidasAlcoholicas   decimal.Decimal
	BebidasNoAlcoholicas decimal.Decimal
	Tabaco               decimal.Decimal
	Cemento              decimal.Decimal
	TarifaPortuaria      decimal.Decimal

	TipoOperacion documento.TipoOperacion
	Tipo          documento.TipoFactura
	CuentaDebe    *string
	CuentaDebe2   *string
	CuentaHaber   *string

	EmpresaID    int64
	FechaTrabajo time.Time // primer día del mes de trabajo
	CreatedAt    time.Time
}

// Periodo devuelve el mes de trabajo en formato YYYY-MM.
func (d Documento) Periodo() string {
	return d.FechaTrabajo.Format("2006-01")
}

package documento

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registro es la forma canónica de un documento recién parseado, antes de
// validarse y persistirse. Los montos van siempre en decimal; las cuentas y
// el tipo usan cadena vacía como "sin asignar".
type Registro struct {
	Serie              string
	NumeroDte          string
	NumeroAutorizacion string
	FechaEmision       time.Time
	TipoDte            string
	NitEmisor          string
	NombreEmisor       string

	CodigoEstablecimiento string
	NombreEstablecimiento string
	IDReceptor            string
	NombreReceptor        string
	NitCertificador       string
	NombreCertificador    string

	Moneda        string
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

	CuentaDebe  string
	CuentaDebe2 string
	CuentaHaber string
	Tipo        TipoFactura
}

// Llave identifica el registro dentro de un lote para la fusión Excel/XML.
func (r Registro) Llave() string {
	return r.Serie + "-" + r.NumeroDte + "-" + r.NumeroAutorizacion
}

// OtrosImpuestos suma los impuestos detallados distintos del IVA.
func (r Registro) OtrosImpuestos() decimal.Decimal {
	sum := decimal.Zero
	for _, m := range []decimal.Decimal{
		r.Petroleo, r.TurismoHospedaje, r.TurismoPasajes, r.TimbrePrensa,
		r.Bomberos, r.TasaMunicipal, r.BebidasAlcoholicas, r.BebidasNoAlcoholicas,
		r.Tabaco, r.Cemento, r.TarifaPortuaria,
	} {
		sum = sum.Add(m)
	}
	return sum
}

// TotalImpuestos suma todos los impuestos detallados, IVA incluido.
func (r Registro) TotalImpuestos() decimal.Decimal {
	return r.IVA.Add(r.OtrosImpuestos())
}

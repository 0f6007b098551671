// Package cuentas implementa la asignación automática de cuentas contables
// sobre la nomenclatura de la empresa. Es lógica pura: recibe el catálogo ya
// cargado y nunca toca almacenamiento.
package cuentas

import (
	"strings"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/gnio/contabilidad-api/pkg/sat"
	"github.com/shopspring/decimal"
)

// Lado de la partida doble.
type Lado string

const (
	LadoDebe  Lado = "DEBE"
	LadoHaber Lado = "HABER"
)

// Naturalezas de cuenta reconocidas por los fallbacks.
const (
	NaturalezaActivo      = "ACTIVO"
	NaturalezaPasivo      = "PASIVO"
	NaturalezaCapital     = "CAPITAL"
	NaturalezaIngresos    = "INGRESOS"
	NaturalezaGastos      = "GASTOS"
	NaturalezaCostos      = "COSTOS"
	NaturalezaOtrosGastos = "OTROS_GASTOS"
)

// Códigos preferidos de la nomenclatura estándar guatemalteca. Si la empresa
// no los tiene, se cae a la primera cuenta con la naturaleza adecuada.
const (
	CodigoVentasBienes         = "410101"
	CodigoVentasServicios      = "410102"
	CodigoComprasBienes        = "520240"
	CodigoComprasServicios     = "520239"
	CodigoCombustibles         = "520223"
	CodigoPequenoContribuyente = "520238"
	CodigoCaja                 = "110101"
)

// Opcion es una cuenta seleccionable de la nomenclatura.
type Opcion struct {
	ID          int64
	Codigo      string
	Descripcion string
	Nivel       int
	DebeHaber   Lado
	Naturaleza  string
}

// Motor resuelve cuentas sobre un catálogo fijo. Las cuentas de nivel 3 o
// menor son encabezados de la nomenclatura y nunca se asignan, sin importar
// cómo venga marcado el catálogo.
type Motor struct {
	opciones []Opcion
}

// NewMotor construye el motor normalizando naturaleza y lado del catálogo.
func NewMotor(opciones []Opcion) *Motor {
	norm := make([]Opcion, len(opciones))
	for i, o := range opciones {
		o.Naturaleza = strings.ToUpper(strings.TrimSpace(o.Naturaleza))
		if Lado(strings.ToUpper(string(o.DebeHaber))) == LadoHaber {
			o.DebeHaber = LadoHaber
		} else {
			o.DebeHaber = LadoDebe
		}
		norm[i] = o
	}
	return &Motor{opciones: norm}
}

func (m *Motor) porCodigo(codigo string, lado Lado) *Opcion {
	for i := range m.opciones {
		o := &m.opciones[i]
		if o.Nivel <= 3 {
			continue
		}
		if o.Codigo == codigo && o.DebeHaber == lado {
			return o
		}
	}
	return nil
}

func (m *Motor) porNaturaleza(lado Lado, naturalezas ...string) *Opcion {
	for i := range m.opciones {
		o := &m.opciones[i]
		if o.Nivel <= 3 {
			continue
		}
		if o.DebeHaber != lado {
			continue
		}
		for _, n := range naturalezas {
			if o.Naturaleza == n {
				return o
			}
		}
	}
	return nil
}

func primero(candidatos ...*Opcion) string {
	for _, c := range candidatos {
		if c != nil {
			return c.Codigo
		}
	}
	return ""
}

// InferirTipo deduce el tipo de factura a partir de la operación, el tipo de
// DTE y la forma de los montos, y lo valida contra el catálogo cerrado de la
// operación (con "bien" como valor de respaldo).
func InferirTipo(op documento.TipoOperacion, reg documento.Registro) documento.TipoFactura {
	var t documento.TipoFactura
	switch {
	case reg.Petroleo.GreaterThan(decimal.Zero):
		t = documento.TipoCombustibles
	case op == documento.OperacionCompra && sat.EsPequenoContribuyente(reg.TipoDte):
		t = documento.TipoPequenoContribuyente
	case op == documento.OperacionCompra && sat.EsSinCreditoFiscal(reg.TipoDte):
		t = documento.TipoSinCreditoFiscal
	case reg.MontoBien.GreaterThan(decimal.Zero) && reg.MontoServicio.GreaterThan(decimal.Zero):
		t = documento.TipoBienYServicio
	case reg.MontoServicio.GreaterThan(decimal.Zero):
		t = documento.TipoServicio
	default:
		t = documento.TipoBien
	}
	return documento.NormalizarTipo(op, t)
}

// Completar rellena cuenta debe, cuenta haber y tipo del registro cuando
// vienen vacíos. Nunca pisa un valor ya asignado.
func (m *Motor) Completar(op documento.TipoOperacion, reg *documento.Registro) {
	if reg.CuentaDebe == "" || reg.CuentaHaber == "" {
		debe, haber := m.sugerirDebeHaber(op, *reg)
		if reg.CuentaDebe == "" {
			reg.CuentaDebe = debe
		}
		if reg.CuentaHaber == "" {
			reg.CuentaHaber = haber
		}
	}
	if reg.Tipo == "" {
		reg.Tipo = InferirTipo(op, *reg)
	}
}

func (m *Motor) sugerirDebeHaber(op documento.TipoOperacion, reg documento.Registro) (debe, haber string) {
	servicio := reg.MontoServicio.GreaterThan(decimal.Zero)
	combustible := reg.Petroleo.GreaterThan(decimal.Zero)

	if op == documento.OperacionVenta {
		ventasServ := m.porCodigo(CodigoVentasServicios, LadoHaber)
		ventasBien := m.porCodigo(CodigoVentasBienes, LadoHaber)
		if servicio {
			haber = primero(ventasServ, ventasBien)
		} else {
			haber = primero(ventasBien, ventasServ)
		}
		debe = primero(m.porCodigo(CodigoCaja, LadoDebe), m.porNaturaleza(LadoDebe, NaturalezaActivo))
		return debe, haber
	}

	if sat.EsPequenoContribuyente(reg.TipoDte) {
		debe = primero(
			m.porCodigo(CodigoPequenoContribuyente, LadoDebe),
			m.porNaturaleza(LadoDebe, NaturalezaGastos, NaturalezaCostos, NaturalezaOtrosGastos),
		)
		haber = m.cajaOHaberGenerico()
		return debe, haber
	}

	if combustible {
		debe = primero(
			m.porCodigo(CodigoCombustibles, LadoDebe),
			m.porNaturaleza(LadoDebe, NaturalezaGastos, NaturalezaCostos),
		)
		haber = m.cajaOHaberGenerico()
		return debe, haber
	}

	serv := m.porCodigo(CodigoComprasServicios, LadoDebe)
	bien := m.porCodigo(CodigoComprasBienes, LadoDebe)
	generico := m.porNaturaleza(LadoDebe, NaturalezaGastos, NaturalezaCostos)
	if servicio {
		debe = primero(serv, bien, generico)
	} else {
		debe = primero(bien, serv, generico)
	}
	haber = m.cajaOHaberGenerico()
	return debe, haber
}

func (m *Motor) cajaOHaberGenerico() string {
	return primero(
		m.porCodigo(CodigoCaja, LadoHaber),
		m.porNaturaleza(LadoHaber, NaturalezaPasivo, NaturalezaCapital, NaturalezaIngresos),
	)
}

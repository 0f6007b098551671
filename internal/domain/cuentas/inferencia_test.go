package cuentas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gnio/contabilidad-api/internal/domain/cuentas"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
)

// catalogoEstandar arma una nomenclatura mínima con los códigos preferidos y
// sus cuentas genéricas, todas de nivel 4.
func catalogoEstandar() []cuentas.Opcion {
	return []cuentas.Opcion{
		{ID: 1, Codigo: "110101", Descripcion: "Caja", Nivel: 4, DebeHaber: "DEBE", Naturaleza: "ACTIVO"},
		{ID: 2, Codigo: "110101", Descripcion: "Caja", Nivel: 4, DebeHaber: "HABER", Naturaleza: "ACTIVO"},
		{ID: 3, Codigo: "410101", Descripcion: "Ventas de bienes", Nivel: 4, DebeHaber: "HABER", Naturaleza: "INGRESOS"},
		{ID: 4, Codigo: "410102", Descripcion: "Ventas de servicios", Nivel: 4, DebeHaber: "HABER", Naturaleza: "INGRESOS"},
		{ID: 5, Codigo: "520240", Descripcion: "Compras de bienes", Nivel: 4, DebeHaber: "DEBE", Naturaleza: "GASTOS"},
		{ID: 6, Codigo: "520239", Descripcion: "Compras de servicios", Nivel: 4, DebeHaber: "DEBE", Naturaleza: "GASTOS"},
		{ID: 7, Codigo: "520223", Descripcion: "Combustibles", Nivel: 4, DebeHaber: "DEBE", Naturaleza: "GASTOS"},
		{ID: 8, Codigo: "520238", Descripcion: "Pequeño contribuyente", Nivel: 4, DebeHaber: "DEBE", Naturaleza: "GASTOS"},
	}
}

func num(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestInferirTipo(t *testing.T) {
	compra := documento.OperacionCompra
	venta := documento.OperacionVenta

	// Petróleo manda sobre todo lo demás.
	assert.Equal(t, documento.TipoCombustibles,
		cuentas.InferirTipo(compra, documento.Registro{Petroleo: num("10"), MontoServicio: num("5")}))

	// FPEQ y RECI solo aplican en compras.
	assert.Equal(t, documento.TipoPequenoContribuyente,
		cuentas.InferirTipo(compra, documento.Registro{TipoDte: "FPEQ"}))
	assert.Equal(t, documento.TipoSinCreditoFiscal,
		cuentas.InferirTipo(compra, documento.Registro{TipoDte: "RECI"}))
	assert.Equal(t, documento.TipoBien,
		cuentas.InferirTipo(venta, documento.Registro{TipoDte: "FPEQ"}))

	// La forma de los montos decide entre bien, servicio y mixto.
	assert.Equal(t, documento.TipoBienYServicio,
		cuentas.InferirTipo(compra, documento.Registro{MontoBien: num("100"), MontoServicio: num("50")}))
	assert.Equal(t, documento.TipoServicio,
		cuentas.InferirTipo(compra, documento.Registro{MontoServicio: num("50")}))
	assert.Equal(t, documento.TipoBien,
		cuentas.InferirTipo(compra, documento.Registro{MontoBien: num("100")}))
	assert.Equal(t, documento.TipoBien,
		cuentas.InferirTipo(compra, documento.Registro{}))

	// Combustibles no existe en ventas: cae a bien.
	assert.Equal(t, documento.TipoBien,
		cuentas.InferirTipo(venta, documento.Registro{Petroleo: num("10")}))
}

func TestCompletarVenta(t *testing.T) {
	m := cuentas.NewMotor(catalogoEstandar())

	reg := documento.Registro{MontoServicio: num("500")}
	m.Completar(documento.OperacionVenta, &reg)

	assert.Equal(t, "410102", reg.CuentaHaber)
	assert.Equal(t, "110101", reg.CuentaDebe)
	assert.Equal(t, documento.TipoServicio, reg.Tipo)

	reg = documento.Registro{MontoBien: num("500")}
	m.Completar(documento.OperacionVenta, &reg)
	assert.Equal(t, "410101", reg.CuentaHaber)
}

func TestCompletarCompraGenerica(t *testing.T) {
	m := cuentas.NewMotor(catalogoEstandar())

	reg := documento.Registro{MontoBien: num("300")}
	m.Completar(documento.OperacionCompra, &reg)
	assert.Equal(t, "520240", reg.CuentaDebe)
	assert.Equal(t, "110101", reg.CuentaHaber)
	assert.Equal(t, documento.TipoBien, reg.Tipo)

	reg = documento.Registro{MontoServicio: num("300")}
	m.Completar(documento.OperacionCompra, &reg)
	assert.Equal(t, "520239", reg.CuentaDebe)
	assert.Equal(t, documento.TipoServicio, reg.Tipo)
}

func TestCompletarCompraCombustibles(t *testing.T) {
	m := cuentas.NewMotor(catalogoEstandar())

	reg := documento.Registro{MontoBien: num("200"), Petroleo: num("15")}
	m.Completar(documento.OperacionCompra, &reg)
	assert.Equal(t, "520223", reg.CuentaDebe)
	assert.Equal(t, documento.TipoCombustibles, reg.Tipo)
}

func TestCompletarCompraPequenoContribuyente(t *testing.T) {
	m := cuentas.NewMotor(catalogoEstandar())

	reg := documento.Registro{TipoDte: "FPEQ", MontoBien: num("200")}
	m.Completar(documento.OperacionCompra, &reg)
	assert.Equal(t, "520238", reg.CuentaDebe)
	assert.Equal(t, documento.TipoPequenoContribuyente, reg.Tipo)
}

func TestCompletarNoPisaValoresAsignados(t *testing.T) {
	m := cuentas.NewMotor(catalogoEstandar())

	reg := documento.Registro{
		MontoBien:   num("300"),
		CuentaDebe:  "999999",
		CuentaHaber: "888888",
		Tipo:        documento.TipoServicio,
	}
	m.Completar(documento.OperacionCompra, &reg)
	assert.Equal(t, "999999", reg.CuentaDebe)
	assert.Equal(t, "888888", reg.CuentaHaber)
	assert.Equal(t, documento.TipoServicio, reg.Tipo)
}

func TestCompletarIgnoraEncabezados(t *testing.T) {
	// Solo encabezados (nivel <= 3): nada es asignable.
	catalogo := []cuentas.Opcion{
		{ID: 1, Codigo: "110101", Nivel: 3, DebeHaber: "DEBE", Naturaleza: "ACTIVO"},
		{ID: 2, Codigo: "520240", Nivel: 2, DebeHaber: "DEBE", Naturaleza: "GASTOS"},
	}
	m := cuentas.NewMotor(catalogo)

	reg := documento.Registro{MontoBien: num("300")}
	m.Completar(documento.OperacionCompra, &reg)
	assert.Empty(t, reg.CuentaDebe)
	assert.Empty(t, reg.CuentaHaber)
}

func TestCompletarFallbackPorNaturaleza(t *testing.T) {
	// Sin códigos preferidos: cae a la primera cuenta con la naturaleza
	// adecuada.
	catalogo := []cuentas.Opcion{
		{ID: 1, Codigo: "610305", Nivel: 4, DebeHaber: "DEBE", Naturaleza: "gastos"},
		{ID: 2, Codigo: "210102", Nivel: 4, DebeHaber: "HABER", Naturaleza: "PASIVO"},
	}
	m := cuentas.NewMotor(catalogo)

	reg := documento.Registro{MontoBien: num("300")}
	m.Completar(documento.OperacionCompra, &reg)
	assert.Equal(t, "610305", reg.CuentaDebe)
	assert.Equal(t, "210102", reg.CuentaHaber)
}

func TestVentaSinCuentaDeVentasQuedaVacia(t *testing.T) {
	// En ventas el haber solo sale de las cuentas de ventas; no hay fallback
	// por naturaleza.
	catalogo := []cuentas.Opcion{
		{ID: 1, Codigo: "110101", Nivel: 4, DebeHaber: "DEBE", Naturaleza: "ACTIVO"},
		{ID: 2, Codigo: "210102", Nivel: 4, DebeHaber: "HABER", Naturaleza: "INGRESOS"},
	}
	m := cuentas.NewMotor(catalogo)

	reg := documento.Registro{MontoBien: num("300")}
	m.Completar(documento.OperacionVenta, &reg)
	assert.Empty(t, reg.CuentaHaber)
	assert.Equal(t, "110101", reg.CuentaDebe)
}

// Package documento contiene la lógica pura del documento fiscal: enums de
// operación y tipo, llaves de identidad y la fusión Excel/XML.
package documento

import "strings"

// TipoOperacion clasifica el libro al que pertenece el documento.
type TipoOperacion string

const (
	OperacionCompra TipoOperacion = "compra"
	OperacionVenta  TipoOperacion = "venta"
)

// Valida informa si la operación es una de las dos reconocidas.
func (t TipoOperacion) Valida() bool {
	return t == OperacionCompra || t == OperacionVenta
}

// TipoFactura clasificación contable del documento dentro de una operación.
type TipoFactura string

const (
	TipoBien                 TipoFactura = "bien"
	TipoServicio             TipoFactura = "servicio"
	TipoBienYServicio        TipoFactura = "bien_y_servicio"
	TipoCombustibles         TipoFactura = "combustibles"
	TipoPequenoContribuyente TipoFactura = "pequeno_contribuyente"
	TipoSinCreditoFiscal     TipoFactura = "sin_derecho_credito_fiscal"
)

var tiposCompra = []TipoFactura{
	TipoBien,
	TipoServicio,
	TipoBienYServicio,
	TipoCombustibles,
	TipoPequenoContribuyente,
	TipoSinCreditoFiscal,
}

var tiposVenta = []TipoFactura{
	TipoBien,
	TipoServicio,
	TipoBienYServicio,
}

// TiposPermitidos devuelve el catálogo cerrado de tipos para la operación.
// Las ventas no admiten combustibles, pequeño contribuyente ni sin derecho
// a crédito fiscal.
func TiposPermitidos(op TipoOperacion) []TipoFactura {
	if op == OperacionVenta {
		return tiposVenta
	}
	return tiposCompra
}

// TipoValido informa si el tipo pertenece al catálogo de la operación.
func TipoValido(op TipoOperacion, tipo TipoFactura) bool {
	for _, t := range TiposPermitidos(op) {
		if t == tipo {
			return true
		}
	}
	return false
}

// NormalizarTipo valida el tipo contra el catálogo de la operación y cae a
// "bien" cuando no pertenece. El valor vacío también cae a "bien".
func NormalizarTipo(op TipoOperacion, tipo TipoFactura) TipoFactura {
	t := TipoFactura(strings.ToLower(strings.TrimSpace(string(tipo))))
	if TipoValido(op, t) {
		return t
	}
	return TipoBien
}

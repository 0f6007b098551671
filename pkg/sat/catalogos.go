package sat

import "strings"

// =============================================================================
// Tipos de DTE (Documento Tributario Electrónico) relevantes para la carga
// masiva. El catálogo FEL completo tiene más tipos; aquí solo los que cambian
// la clasificación contable del documento.
// =============================================================================

const (
	// DTEFacturaPequenoContribuyente factura de pequeño contribuyente (FPEQ).
	DTEFacturaPequenoContribuyente = "FPEQ"
	// DTEFacturaCambiariaPequenoContribuyente factura cambiaria de pequeño contribuyente (FCAP).
	DTEFacturaCambiariaPequenoContribuyente = "FCAP"
	// DTERecibo recibo (RECI), sin derecho a crédito fiscal.
	DTERecibo = "RECI"
	// DTEReciboDonacion recibo por donación (RDON), sin derecho a crédito fiscal.
	DTEReciboDonacion = "RDON"
)

// EsPequenoContribuyente informa si el tipo de DTE corresponde a un documento
// emitido bajo el régimen de pequeño contribuyente.
func EsPequenoContribuyente(tipoDte string) bool {
	t := strings.ToUpper(strings.TrimSpace(tipoDte))
	return t == DTEFacturaPequenoContribuyente || t == DTEFacturaCambiariaPequenoContribuyente
}

// EsSinCreditoFiscal informa si el tipo de DTE no da derecho a crédito fiscal.
func EsSinCreditoFiscal(tipoDte string) bool {
	t := strings.ToUpper(strings.TrimSpace(tipoDte))
	return t == DTERecibo || t == DTEReciboDonacion
}

// =============================================================================
// Nombres cortos de impuestos según aparecen en el TotalImpuesto del XML FEL
// (atributo NombreCorto). La comparación es exacta sobre la forma normalizada
// (mayúsculas, espacios colapsados), nunca por substring: "TURISMO HOSPEDAJE"
// no debe capturar "TURISMO PASAJES".
// =============================================================================

const (
	ImpuestoIVA                  = "IVA"
	ImpuestoPetroleo             = "PETROLEO"
	ImpuestoTurismoHospedaje     = "TURISMO HOSPEDAJE"
	ImpuestoTurismoPasajes       = "TURISMO PASAJES"
	ImpuestoTimbrePrensa         = "TIMBRE DE PRENSA"
	ImpuestoBomberos             = "BOMBEROS"
	ImpuestoTasaMunicipal        = "TASA MUNICIPAL"
	ImpuestoBebidasAlcoholicas   = "BEBIDAS ALCOHOLICAS"
	ImpuestoBebidasNoAlcoholicas = "BEBIDAS NO ALCOHOLICAS"
	ImpuestoTabaco               = "TABACO"
	ImpuestoCemento              = "CEMENTO"
	ImpuestoTarifaPortuaria      = "TARIFA PORTUARIA"
)

// NombresImpuestos catálogo cerrado de nombres cortos reconocidos.
var NombresImpuestos = []string{
	ImpuestoIVA,
	ImpuestoPetroleo,
	ImpuestoTurismoHospedaje,
	ImpuestoTurismoPasajes,
	ImpuestoTimbrePrensa,
	ImpuestoBomberos,
	ImpuestoTasaMunicipal,
	ImpuestoBebidasAlcoholicas,
	ImpuestoBebidasNoAlcoholicas,
	ImpuestoTabaco,
	ImpuestoCemento,
	ImpuestoTarifaPortuaria,
}

// NormalizarNombreImpuesto reduce un nombre corto a la forma del catálogo.
func NormalizarNombreImpuesto(nombre string) string {
	return strings.ToUpper(strings.Join(strings.Fields(nombre), " "))
}

// Package sat contiene utilidades y catálogos alineados al régimen FEL
// (Factura Electrónica en Línea) de la SAT de Guatemala.
package sat

import "unicode"

// NormalizarNIT deja solo los dígitos del NIT. La SAT acepta el NIT con
// guiones, espacios o el dígito verificador pegado ("12-345678-9",
// "123456789"); para comparar emisor contra empresa ambos se reducen a
// su forma de solo dígitos.
func NormalizarNIT(nit string) string {
	var out []rune
	for _, r := range nit {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// MismoNIT compara dos NITs en su forma normalizada. Un NIT vacío nunca
// coincide con nada (ni siquiera con otro vacío).
func MismoNIT(a, b string) bool {
	na, nb := NormalizarNIT(a), NormalizarNIT(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}

// Package retenciones implementa la carga masiva de constancias de retención
// de IVA e ISR desde los reportes del portal de la SAT.
package retenciones

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Encabezados canónicos del reporte de retenciones.
const (
	cabNitRetenedor    = "NIT RETENEDOR"
	cabNombreRetenedor = "NOMBRE RETENEDOR"
	cabEstado          = "ESTADO CONSTANCIA"
	cabConstancia      = "CONSTANCIA"
	cabFechaEmision    = "FECHA EMISION"
	cabTotalFactura    = "TOTAL FACTURA"
	cabImporteNeto     = "IMPORTE NETO"
	cabAfectoRetencion = "AFECTO RETENCION"
	cabRentaImponible  = "RENTA IMPONIBLE"
	cabTotalRetencion  = "TOTAL RETENCION"
)

var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// canonCabecera normaliza un encabezado del Excel: sin tildes, en mayúsculas
// y con los espacios colapsados. Así "FECHA EMISIÓN" y "fecha emision"
// resuelven al mismo campo.
func canonCabecera(s string) string {
	plano, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		plano = s
	}
	return strings.ToUpper(strings.Join(strings.Fields(plano), " "))
}

// campo busca en la fila el valor cuyo encabezado canonicaliza al pedido.
func campo(fila map[string]any, cabecera string) any {
	for k, v := range fila {
		if canonCabecera(k) == cabecera {
			return v
		}
	}
	return nil
}

var noNumerico = regexp.MustCompile(`[^\d.-]`)

// asNum convierte una celda a decimal quitando símbolos y separadores de
// miles. Una celda ilegible vale cero.
func asNum(v any) decimal.Decimal {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case nil:
		return decimal.Zero
	}
	s := noNumerico.ReplaceAllString(strings.TrimSpace(toString(v)), "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return strings.TrimSpace(decimalString(v))
}

func decimalString(v any) string {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n).String()
	case int:
		return decimal.NewFromInt(int64(n)).String()
	default:
		return ""
	}
}

// epochExcel base de los seriales de fecha de Excel (sistema 1900).
var epochExcel = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseFechaCelda interpreta la celda de fecha del reporte: serial de Excel,
// dd/mm/yyyy o yyyy-mm-dd. Una celda ilegible vale la fecha actual.
func parseFechaCelda(v any) time.Time {
	switch n := v.(type) {
	case float64:
		return epochExcel.Add(time.Duration(n * float64(24*time.Hour)))
	case int:
		return epochExcel.AddDate(0, 0, n)
	}

	s := strings.TrimSpace(toString(v))
	if s == "" {
		return time.Now().UTC()
	}
	for _, layout := range []string{"02/01/2006", "2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}

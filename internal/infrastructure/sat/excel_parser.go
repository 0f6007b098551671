// Package sat implementa los parsers de las fuentes de la SAT: el reporte
// Excel de DTEs recibidos/emitidos y los XML FEL individuales.
package sat

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Columnas del reporte de la SAT, con las variantes de nombre que aparecen
// según la versión del portal. Se toma la primera columna presente y no
// vacía.
var (
	colFechaEmision       = []string{"Fecha de emisión", "Fecha Emision", "Fecha"}
	colNumeroAutorizacion = []string{"Número de Autorización", "Numero de Autorizacion", "Autorización"}
	colTipoDte            = []string{"Tipo de DTE (nombre)", "Tipo DTE", "Tipo"}
	colSerie              = []string{"Serie"}
	colNumeroDte          = []string{"Número del DTE", "Numero DTE"}
	colNitEmisor          = []string{"NIT del emisor", "NIT Emisor"}
	colNombreEmisor       = []string{"Nombre completo del emisor", "Nombre Emisor"}
	colCodigoEstab        = []string{"Código de establecimiento", "Codigo Establecimiento"}
	colNombreEstab        = []string{"Nombre del establecimiento", "Nombre Comercial"}
	colIDReceptor         = []string{"ID del receptor", "NIT Receptor", "ID Receptor"}
	colNombreReceptor     = []string{"Nombre completo del receptor", "Nombre Receptor"}
	colNitCertificador    = []string{"NIT del Certificador", "NIT Certificador"}
	colNombreCertificador = []string{"Nombre completo del Certificador", "Nombre Certificador"}
	colMoneda             = []string{"Moneda"}
	colMontoTotal         = []string{"Gran Total (Moneda Original)"}
	colEstado             = []string{"Estado"}
	colMarcaAnulado       = []string{"Marca de anulado", "Anulado"}
	colFechaAnulacion     = []string{"Fecha de anulación", "Fecha Anulación"}

	colIVA                  = []string{"IVA (monto de este impuesto)"}
	colPetroleo             = []string{"Petróleo (monto de este impuesto)"}
	colTurismoHospedaje     = []string{"Turismo Hospedaje (monto de este impuesto)"}
	colTurismoPasajes       = []string{"Turismo Pasajes (monto de este impuesto)"}
	colTimbrePrensa         = []string{"Timbre de Prensa (monto de este impuesto)"}
	colBomberos             = []string{"Bomberos (monto de este impuesto)"}
	colTasaMunicipal        = []string{"Tasa Municipal (monto de este impuesto)"}
	colBebidasAlcoholicas   = []string{"Bebidas alcohólicas (monto de este impuesto)"}
	colBebidasNoAlcoholicas = []string{"Bebidas no Alcohólicas (monto de este impuesto)"}
	colTabaco               = []string{"Tabaco (monto de este impuesto)"}
	colCemento              = []string{"Cemento (monto de este impuesto)"}
	colTarifaPortuaria      = []string{"Tarifa Portuaria (monto de este impuesto)"}
)

// ExcelParser lee el reporte de facturas de la SAT desde la primera hoja.
type ExcelParser struct{}

// NewExcelParser construye el parser.
func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// Parse lee la primera hoja del libro, fila por fila, usando la primera fila
// como encabezado. Un libro ilegible aborta con error; las celdas ilegibles
// caen a sus valores por defecto.
func (p *ExcelParser) Parse(r io.Reader) ([]documento.Registro, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	out := make([]documento.Registro, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		fila := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(cells) {
				fila[strings.TrimSpace(h)] = cells[i]
			}
		}
		if vacia(fila) {
			continue
		}
		out = append(out, parseFila(fila))
	}
	return out, nil
}

func vacia(fila map[string]string) bool {
	for _, v := range fila {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseFila(fila map[string]string) documento.Registro {
	s := func(cols []string) string { return strings.TrimSpace(pick(fila, cols)) }
	n := func(cols []string) decimal.Decimal { return coerceNum(pick(fila, cols)) }

	reg := documento.Registro{
		Serie:              s(colSerie),
		NumeroDte:          s(colNumeroDte),
		NumeroAutorizacion: s(colNumeroAutorizacion),
		FechaEmision:       parseFechaExcel(pick(fila, colFechaEmision)),
		TipoDte:            s(colTipoDte),
		NitEmisor:          s(colNitEmisor),
		NombreEmisor:       s(colNombreEmisor),

		CodigoEstablecimiento: s(colCodigoEstab),
		NombreEstablecimiento: s(colNombreEstab),
		IDReceptor:            s(colIDReceptor),
		NombreReceptor:        s(colNombreReceptor),
		NitCertificador:       s(colNitCertificador),
		NombreCertificador:    s(colNombreCertificador),

		Moneda:        s(colMoneda),
		MontoTotal:    n(colMontoTotal),
		FacturaEstado: s(colEstado),

		IVA:                  n(colIVA),
		Petroleo:             n(colPetroleo),
		TurismoHospedaje:     n(colTurismoHospedaje),
		TurismoPasajes:       n(colTurismoPasajes),
		TimbrePrensa:         n(colTimbrePrensa),
		Bomberos:             n(colBomberos),
		TasaMunicipal:        n(colTasaMunicipal),
		BebidasAlcoholicas:   n(colBebidasAlcoholicas),
		BebidasNoAlcoholicas: n(colBebidasNoAlcoholicas),
		Tabaco:               n(colTabaco),
		Cemento:              n(colCemento),
		TarifaPortuaria:      n(colTarifaPortuaria),
	}
	if reg.Moneda == "" {
		reg.Moneda = "GTQ"
	}
	if anulado := parseMarcaAnulado(s(colMarcaAnulado)); anulado != nil {
		reg.MarcaAnulado = anulado
	}
	if t := parseFechaExcel(pick(fila, colFechaAnulacion)); !t.IsZero() {
		reg.FechaAnulacion = &t
	}

	// El reporte no separa bienes de servicios: todo es bien, neto de
	// impuestos. El XML refina esto en la fusión.
	base := reg.MontoTotal.Sub(reg.IVA).Sub(reg.OtrosImpuestos())
	if base.IsNegative() {
		base = decimal.Zero
	}
	reg.MontoBien = base.Round(2)
	reg.MontoServicio = decimal.Zero
	return reg
}

// pick devuelve el primer valor no vacío entre las columnas candidatas.
func pick(fila map[string]string, cols []string) string {
	for _, c := range cols {
		if v, ok := fila[c]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

var noMonto = regexp.MustCompile(`[^0-9\-,.]`)

// coerceNum convierte una celda de monto a decimal con dos decimales.
// Soporta "1.234,56" y "1,234.56"; una celda ilegible vale 0.00.
func coerceNum(v string) decimal.Decimal {
	s := noMonto.ReplaceAllString(strings.TrimSpace(v), "")
	if s == "" {
		return decimal.Zero
	}
	coma, punto := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case coma >= 0 && punto >= 0 && coma > punto:
		// formato europeo: puntos de miles, coma decimal
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case coma >= 0 && punto >= 0:
		s = strings.ReplaceAll(s, ",", "")
	default:
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// epochExcel base de los seriales de fecha (sistema 1900 con el ajuste del
// 30 de diciembre de 1899).
var epochExcel = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseFechaExcel acepta seriales de Excel (mayores a 20000 para no
// confundirlos con montos) y fechas textuales comunes.
func parseFechaExcel(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil && n > 20000 {
		return epochExcel.AddDate(0, 0, int(n))
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseMarcaAnulado(s string) *bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "si", "sí", "true", "1":
		t := true
		return &t
	case "no", "false", "0":
		f := false
		return &f
	}
	return nil
}

package ingesta

import (
	"strings"
	"time"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
)

// layouts aceptados para fechas que vienen como texto del cliente.
var layoutsFecha = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
}

// parseFecha interpreta una fecha textual con tolerancia. Devuelve false si
// no se pudo interpretar.
func parseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layoutsFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseMesTrabajo interpreta el mes de trabajo ("YYYY-MM" o "YYYY-MM-DD") y
// lo normaliza al primer día del mes. Si no se puede, usa el mes actual.
func parseMesTrabajo(s string) time.Time {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01", s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// asBool interpreta las marcas de anulación que trae el reporte de la SAT.
// Devuelve nil cuando la celda viene vacía o con un valor no reconocido.
func asBool(s string) *bool {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "si", "sí", "true", "1":
		t := true
		return &t
	case "no", "false", "0":
		f := false
		return &f
	}
	return nil
}

// aRegistro convierte el payload del cliente a la forma canónica del dominio.
func aRegistro(d dto.DocumentoPayload) documento.Registro {
	reg := documento.Registro{
		Serie:              strings.TrimSpace(d.Serie),
		NumeroDte:          strings.TrimSpace(d.NumeroDte),
		NumeroAutorizacion: strings.TrimSpace(d.NumeroAutorizacion),
		TipoDte:            strings.TrimSpace(d.TipoDte),
		NitEmisor:          strings.TrimSpace(d.NitEmisor),
		NombreEmisor:       strings.TrimSpace(d.NombreEmisor),

		CodigoEstablecimiento: d.CodigoEstablecimiento,
		NombreEstablecimiento: d.NombreEstablecimiento,
		IDReceptor:            d.IDReceptor,
		NombreReceptor:        d.NombreReceptor,
		NitCertificador:       d.NitCertificador,
		NombreCertificador:    d.NombreCertificador,

		Moneda:        strings.TrimSpace(d.Moneda),
		MontoTotal:    d.MontoTotal,
		MontoBien:     d.MontoBien,
		MontoServicio: d.MontoServicio,

		FacturaEstado: d.FacturaEstado,
		MarcaAnulado:  asBool(d.MarcaAnulado),

		IVA:                  d.IVA,
		Petroleo:             d.Petroleo,
		TurismoHospedaje:     d.TurismoHospedaje,
		TurismoPasajes:       d.TurismoPasajes,
		TimbrePrensa:         d.TimbrePrensa,
		Bomberos:             d.Bomberos,
		TasaMunicipal:        d.TasaMunicipal,
		BebidasAlcoholicas:   d.BebidasAlcoholicas,
		BebidasNoAlcoholicas: d.BebidasNoAlcoholicas,
		Tabaco:               d.Tabaco,
		Cemento:              d.Cemento,
		TarifaPortuaria:      d.TarifaPortuaria,

		CuentaDebe:  strings.TrimSpace(d.CuentaDebe),
		CuentaDebe2: strings.TrimSpace(d.CuentaDebe2),
		CuentaHaber: strings.TrimSpace(d.CuentaHaber),
		Tipo:        documento.TipoFactura(strings.TrimSpace(d.Tipo)),
	}
	if reg.Moneda == "" {
		reg.Moneda = "GTQ"
	}
	if t, ok := parseFecha(d.FechaEmision); ok {
		reg.FechaEmision = t
	}
	if t, ok := parseFecha(d.FechaAnulacion); ok {
		reg.FechaAnulacion = &t
	}
	return reg
}

package sat

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
	pkgsat "github.com/gnio/contabilidad-api/pkg/sat"
	"github.com/shopspring/decimal"
)

// XMLParser lee un DTE FEL (un documento por archivo).
type XMLParser struct{}

// NewXMLParser construye el parser.
func NewXMLParser() *XMLParser {
	return &XMLParser{}
}

// Parse interpreta el XML. Devuelve nil, nil cuando el archivo no tiene la
// estructura GTDocumento o no trae número de autorización: esos archivos se
// omiten sin tumbar el lote. Un XML malformado sí devuelve error.
func (p *XMLParser) Parse(data []byte) (*documento.Registro, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("leer XML: %w", err)
	}

	dte := doc.FindElement("dte:GTDocumento/dte:SAT/dte:DTE")
	if dte == nil {
		return nil, nil
	}
	base := dte.SelectElement("dte:DatosEmision")
	cert := dte.SelectElement("dte:Certificacion")
	if base == nil || cert == nil {
		return nil, nil
	}

	numAut := cert.SelectElement("dte:NumeroAutorizacion")
	if numAut == nil || strings.TrimSpace(numAut.Text()) == "" {
		return nil, nil
	}

	generales := base.SelectElement("dte:DatosGenerales")
	emisor := base.SelectElement("dte:Emisor")
	receptor := base.SelectElement("dte:Receptor")
	totales := base.SelectElement("dte:Totales")

	reg := documento.Registro{
		NumeroAutorizacion: strings.TrimSpace(numAut.Text()),
		Serie:              numAut.SelectAttrValue("Serie", ""),
		NumeroDte:          numAut.SelectAttrValue("Numero", ""),
		NitCertificador:    textoHijo(cert, "dte:NITCertificador"),
		NombreCertificador: textoHijo(cert, "dte:NombreCertificador"),
		Moneda:             "GTQ",
	}
	if generales != nil {
		reg.FechaEmision = parseFechaXML(generales.SelectAttrValue("FechaHoraEmision", ""))
		reg.TipoDte = generales.SelectAttrValue("Tipo", "")
		if m := generales.SelectAttrValue("CodigoMoneda", ""); m != "" {
			reg.Moneda = m
		}
	}
	if emisor != nil {
		reg.NitEmisor = emisor.SelectAttrValue("NITEmisor", "")
		reg.NombreEmisor = emisor.SelectAttrValue("NombreEmisor", "")
		reg.CodigoEstablecimiento = emisor.SelectAttrValue("CodigoEstablecimiento", "")
		reg.NombreEstablecimiento = emisor.SelectAttrValue("NombreComercial", "")
	}
	if receptor != nil {
		reg.IDReceptor = receptor.SelectAttrValue("IDReceptor", "")
		reg.NombreReceptor = receptor.SelectAttrValue("NombreReceptor", "")
	}

	granTotal := decimal.Zero
	var totalesImpuesto []*etree.Element
	if totales != nil {
		granTotal = aDecimal(textoHijo(totales, "dte:GranTotal"))
		if ti := totales.SelectElement("dte:TotalImpuestos"); ti != nil {
			totalesImpuesto = ti.SelectElements("dte:TotalImpuesto")
		}
	}
	reg.MontoTotal = granTotal.Round(2)

	// Impuestos itemizados por nombre corto, comparación exacta sobre la
	// forma normalizada.
	sumPorNombre := func(nombre string) decimal.Decimal {
		sum := decimal.Zero
		for _, ti := range totalesImpuesto {
			corto := pkgsat.NormalizarNombreImpuesto(ti.SelectAttrValue("NombreCorto", ""))
			if corto == nombre {
				sum = sum.Add(aDecimal(ti.SelectAttrValue("TotalMontoImpuesto", "")))
			}
		}
		return sum.Round(2)
	}
	reg.IVA = sumPorNombre(pkgsat.ImpuestoIVA)
	reg.Petroleo = sumPorNombre(pkgsat.ImpuestoPetroleo)
	reg.TurismoHospedaje = sumPorNombre(pkgsat.ImpuestoTurismoHospedaje)
	reg.TurismoPasajes = sumPorNombre(pkgsat.ImpuestoTurismoPasajes)
	reg.TimbrePrensa = sumPorNombre(pkgsat.ImpuestoTimbrePrensa)
	reg.Bomberos = sumPorNombre(pkgsat.ImpuestoBomberos)
	reg.TasaMunicipal = sumPorNombre(pkgsat.ImpuestoTasaMunicipal)
	reg.BebidasAlcoholicas = sumPorNombre(pkgsat.ImpuestoBebidasAlcoholicas)
	reg.BebidasNoAlcoholicas = sumPorNombre(pkgsat.ImpuestoBebidasNoAlcoholicas)
	reg.Tabaco = sumPorNombre(pkgsat.ImpuestoTabaco)
	reg.Cemento = sumPorNombre(pkgsat.ImpuestoCemento)
	reg.TarifaPortuaria = sumPorNombre(pkgsat.ImpuestoTarifaPortuaria)

	// Reparto bien/servicio por ítem; sin ítems, todo es bien neto de
	// impuestos.
	var items []*etree.Element
	if it := base.SelectElement("dte:Items"); it != nil {
		items = it.SelectElements("dte:Item")
	}
	montoBien, montoServicio := decimal.Zero, decimal.Zero
	if len(items) > 0 {
		for _, item := range items {
			total := aDecimal(textoHijo(item, "dte:Total"))
			imps := decimal.Zero
			if ie := item.SelectElement("dte:Impuestos"); ie != nil {
				for _, imp := range ie.SelectElements("dte:Impuesto") {
					imps = imps.Add(aDecimal(textoHijo(imp, "dte:MontoImpuesto")))
				}
			}
			baseItem := total.Sub(imps)
			if baseItem.IsNegative() {
				baseItem = decimal.Zero
			}
			if item.SelectAttrValue("BienOServicio", "B") == "S" {
				montoServicio = montoServicio.Add(baseItem)
			} else {
				montoBien = montoBien.Add(baseItem)
			}
		}
	} else {
		allTax := decimal.Zero
		for _, ti := range totalesImpuesto {
			allTax = allTax.Add(aDecimal(ti.SelectAttrValue("TotalMontoImpuesto", "")))
		}
		montoBien = granTotal.Sub(allTax)
		if montoBien.IsNegative() {
			montoBien = decimal.Zero
		}
	}
	reg.MontoBien = montoBien.Round(2)
	reg.MontoServicio = montoServicio.Round(2)

	return &reg, nil
}

func textoHijo(e *etree.Element, tag string) string {
	if h := e.SelectElement(tag); h != nil {
		return strings.TrimSpace(h.Text())
	}
	return ""
}

func aDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseFechaXML interpreta FechaHoraEmision, que trae zona horaria y a veces
// milisegundos.
func parseFechaXML(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

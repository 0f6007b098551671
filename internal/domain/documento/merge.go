package documento

import "github.com/shopspring/decimal"

// Fusionar combina los registros del Excel con los del XML usando la llave
// serie + número de DTE + número de autorización. Cuando un documento aparece
// en ambas fuentes gana el XML en los montos e impuestos con valor distinto
// de cero y en las cuentas y tipo cuando los trae asignados; los datos de
// identidad (fechas, nombres, establecimiento) se conservan del Excel. El
// orden del Excel se respeta y los documentos que solo vienen en XML se
// agregan al final en su propio orden.
func Fusionar(excel, xml []Registro) []Registro {
	idx := make(map[string]int, len(excel))
	out := make([]Registro, len(excel))
	copy(out, excel)
	for i, r := range excel {
		idx[r.Llave()] = i
	}

	for _, x := range xml {
		i, ok := idx[x.Llave()]
		if !ok {
			out = append(out, x)
			continue
		}
		base := out[i]

		base.MontoTotal = siNoCero(x.MontoTotal, base.MontoTotal)
		base.MontoBien = siNoCero(x.MontoBien, base.MontoBien)
		base.MontoServicio = siNoCero(x.MontoServicio, base.MontoServicio)
		base.IVA = siNoCero(x.IVA, base.IVA)
		base.Petroleo = siNoCero(x.Petroleo, base.Petroleo)
		base.TurismoHospedaje = siNoCero(x.TurismoHospedaje, base.TurismoHospedaje)
		base.TurismoPasajes = siNoCero(x.TurismoPasajes, base.TurismoPasajes)
		base.TimbrePrensa = siNoCero(x.TimbrePrensa, base.TimbrePrensa)
		base.Bomberos = siNoCero(x.Bomberos, base.Bomberos)
		base.TasaMunicipal = siNoCero(x.TasaMunicipal, base.TasaMunicipal)
		base.BebidasAlcoholicas = siNoCero(x.BebidasAlcoholicas, base.BebidasAlcoholicas)
		base.BebidasNoAlcoholicas = siNoCero(x.BebidasNoAlcoholicas, base.BebidasNoAlcoholicas)
		base.Tabaco = siNoCero(x.Tabaco, base.Tabaco)
		base.Cemento = siNoCero(x.Cemento, base.Cemento)
		base.TarifaPortuaria = siNoCero(x.TarifaPortuaria, base.TarifaPortuaria)

		if x.CuentaDebe != "" {
			base.CuentaDebe = x.CuentaDebe
		}
		if x.CuentaDebe2 != "" {
			base.CuentaDebe2 = x.CuentaDebe2
		}
		if x.CuentaHaber != "" {
			base.CuentaHaber = x.CuentaHaber
		}
		if x.Tipo != "" {
			base.Tipo = x.Tipo
		}

		out[i] = base
	}
	return out
}

func siNoCero(xml, excel decimal.Decimal) decimal.Decimal {
	if !xml.IsZero() {
		return xml
	}
	return excel
}

package usecase

import (
	"context"
	"io"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/gnio/contabilidad-api/pkg/logger"
)

// ExcelParser convierte el reporte de facturas de la SAT en registros.
type ExcelParser interface {
	Parse(r io.Reader) ([]documento.Registro, error)
}

// XMLParser convierte un DTE XML en un registro. Devuelve nil, nil cuando el
// archivo no trae número de autorización y debe omitirse.
type XMLParser interface {
	Parse(data []byte) (*documento.Registro, error)
}

// PreviewUseCase parsea y fusiona Excel + XMLs en el servidor y devuelve los
// registros canónicos para revisión, sin persistir nada.
type PreviewUseCase struct {
	excel ExcelParser
	xml   XMLParser
	log   *logger.Logger
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(excel ExcelParser, xml XMLParser, log *logger.Logger) *PreviewUseCase {
	return &PreviewUseCase{excel: excel, xml: xml, log: log}
}

// Ejecutar parsea las fuentes y fusiona. El Excel es opcional (nil); un
// Excel ilegible aborta la petición, un XML ilegible solo se omite.
func (uc *PreviewUseCase) Ejecutar(ctx context.Context, excelFile io.Reader, xmlFiles [][]byte) (*dto.PreviewResponse, error) {
	var excelRegs []documento.Registro
	if excelFile != nil {
		regs, err := uc.excel.Parse(excelFile)
		if err != nil {
			return nil, err
		}
		excelRegs = regs
	}

	var xmlRegs []documento.Registro
	omitidos := 0
	for _, data := range xmlFiles {
		reg, err := uc.xml.Parse(data)
		if err != nil {
			uc.log.Warn().Err(err).Msg("XML ilegible, se omite del preview")
			omitidos++
			continue
		}
		if reg == nil {
			omitidos++
			continue
		}
		xmlRegs = append(xmlRegs, *reg)
	}

	if len(excelRegs) == 0 && len(xmlRegs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	merged := documento.Fusionar(excelRegs, xmlRegs)
	data := make([]dto.DocumentoPayload, len(merged))
	for i, r := range merged {
		data[i] = aPayload(r)
	}
	return &dto.PreviewResponse{
		Data: data,
		Fuentes: dto.PreviewFuentes{
			Excel:       len(excelRegs),
			XML:         len(xmlRegs),
			XMLOmitidos: omitidos,
		},
	}, nil
}

func aPayload(r documento.Registro) dto.DocumentoPayload {
	fecha := ""
	if !r.FechaEmision.IsZero() {
		fecha = r.FechaEmision.Format("2006-01-02")
	}
	marcaAnulado := ""
	if r.MarcaAnulado != nil {
		if *r.MarcaAnulado {
			marcaAnulado = "SI"
		} else {
			marcaAnulado = "NO"
		}
	}
	fechaAnulacion := ""
	if r.FechaAnulacion != nil {
		fechaAnulacion = r.FechaAnulacion.Format("2006-01-02")
	}
	return dto.DocumentoPayload{
		Serie:              r.Serie,
		NumeroDte:          r.NumeroDte,
		NumeroAutorizacion: r.NumeroAutorizacion,
		FechaEmision:       fecha,
		TipoDte:            r.TipoDte,
		NitEmisor:          r.NitEmisor,
		NombreEmisor:       r.NombreEmisor,

		CodigoEstablecimiento: r.CodigoEstablecimiento,
		NombreEstablecimiento: r.NombreEstablecimiento,
		IDReceptor:            r.IDReceptor,
		NombreReceptor:        r.NombreReceptor,
		NitCertificador:       r.NitCertificador,
		NombreCertificador:    r.NombreCertificador,

		Moneda:        r.Moneda,
		MontoTotal:    r.MontoTotal,
		MontoBien:     r.MontoBien,
		MontoServicio: r.MontoServicio,

		FacturaEstado:  r.FacturaEstado,
		MarcaAnulado:   marcaAnulado,
		FechaAnulacion: fechaAnulacion,

		IVA:                  r.IVA,
		Petroleo:             r.Petroleo,
		TurismoHospedaje:     r.TurismoHospedaje,
		TurismoPasajes:       r.TurismoPasajes,
		TimbrePrensa:         r.TimbrePrensa,
		Bomberos:             r.Bomberos,
		TasaMunicipal:        r.TasaMunicipal,
		BebidasAlcoholicas:   r.BebidasAlcoholicas,
		BebidasNoAlcoholicas: r.BebidasNoAlcoholicas,
		Tabaco:               r.Tabaco,
		Cemento:              r.Cemento,
		TarifaPortuaria:      r.TarifaPortuaria,

		CuentaDebe:  r.CuentaDebe,
		CuentaDebe2: r.CuentaDebe2,
		CuentaHaber: r.CuentaHaber,
		Tipo:        string(r.Tipo),
	}
}

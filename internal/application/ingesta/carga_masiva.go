package ingesta

import (
	"context"
	"time"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/cuentas"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/gnio/contabilidad-api/internal/domain/entity"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
	"github.com/gnio/contabilidad-api/pkg/logger"
	"github.com/gnio/contabilidad-api/pkg/sat"
)

// timeoutTransaccion límite para la transacción del lote completo.
const timeoutTransaccion = 60 * time.Second

// CargaMasivaUseCase valida y persiste un lote de documentos fiscales.
// El lote es todo o nada: cualquier NIT ajeno o duplicado ya cargado
// rechaza la carga completa sin escribir.
type CargaMasivaUseCase struct {
	txRunner         TxRunner
	docRepo          repository.DocumentoRepository
	empresaRepo      repository.EmpresaRepository
	nomenclaturaRepo repository.NomenclaturaRepository
	log              *logger.Logger
}

// NewCargaMasivaUseCase construye el caso de uso.
func NewCargaMasivaUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentoRepository,
	empresaRepo repository.EmpresaRepository,
	nomenclaturaRepo repository.NomenclaturaRepository,
	log *logger.Logger,
) *CargaMasivaUseCase {
	return &CargaMasivaUseCase{
		txRunner:         txRunner,
		docRepo:          docRepo,
		empresaRepo:      empresaRepo,
		nomenclaturaRepo: nomenclaturaRepo,
		log:              log,
	}
}

// Ejecutar corre el flujo completo: validación de entrada, empresa, NITs,
// duplicados globales, inferencia de cuentas y upsert transaccional.
func (uc *CargaMasivaUseCase) Ejecutar(ctx context.Context, in dto.CargaMasivaRequest) (*dto.CargaMasivaResponse, error) {
	if in.EmpresaID == 0 || !in.Operacion.Valida() || len(in.Documentos) == 0 {
		return nil, domain.ErrInvalidInput
	}

	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNotFound
	}

	regs := make([]documento.Registro, len(in.Documentos))
	for i, d := range in.Documentos {
		regs[i] = aRegistro(d)
	}

	// Todas las facturas deben ser de la empresa: una sola ajena tumba el lote.
	var ajenas []string
	for _, r := range regs {
		if !sat.MismoNIT(r.NitEmisor, empresa.NIT) {
			ajenas = append(ajenas, r.Serie+"-"+r.NumeroDte)
		}
	}
	if len(ajenas) > 0 {
		return nil, &ErrNITNoCoincide{NitEmpresa: empresa.NIT, Documentos: ajenas}
	}

	// Duplicados contra todo el sistema, sin importar empresa ni período.
	claves := make([]repository.ClaveDocumento, len(regs))
	for i, r := range regs {
		claves[i] = repository.ClaveDocumento{
			Serie:              r.Serie,
			NumeroDte:          r.NumeroDte,
			NumeroAutorizacion: r.NumeroAutorizacion,
		}
	}
	existentes, err := uc.docRepo.BuscarExistentes(claves)
	if err != nil {
		return nil, err
	}
	if len(existentes) > 0 {
		detalles := make([]dto.DuplicadoDetalle, len(existentes))
		for i, e := range existentes {
			detalles[i] = dto.DuplicadoDetalle{
				Serie:              e.Serie,
				NumeroDte:          e.NumeroDte,
				NumeroAutorizacion: e.NumeroAutorizacion,
				EmpresaID:          e.EmpresaID,
				NitEmisor:          e.NitEmisor,
				Periodo:            e.Periodo(),
			}
		}
		return nil, &ErrDuplicados{Detalles: detalles}
	}

	// Inferencia de cuentas y tipo sobre la nomenclatura de la empresa.
	// Solo rellena campos vacíos.
	catalogo, err := uc.nomenclaturaRepo.CuentasPorEmpresa(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	motor := cuentas.NewMotor(aOpciones(catalogo))
	for i := range regs {
		motor.Completar(in.Operacion, &regs[i])
	}

	fechaTrabajo := parseMesTrabajo(in.Date)

	ctxTx, cancel := context.WithTimeout(ctx, timeoutTransaccion)
	defer cancel()
	err = uc.txRunner.Run(ctxTx, func(docRepo repository.DocumentoRepository) error {
		for i := range regs {
			if err := docRepo.Upsert(aEntidad(regs[i], in.EmpresaID, in.Operacion, fechaTrabajo)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("empresa_id", in.EmpresaID).
		Str("operacion", string(in.Operacion)).
		Int("documentos", len(regs)).
		Msg("carga masiva procesada")

	return &dto.CargaMasivaResponse{
		Status:  200,
		OK:      true,
		Count:   len(regs),
		Message: "Documentos procesados correctamente",
	}, nil
}

func aOpciones(catalogo []*entity.CuentaContable) []cuentas.Opcion {
	opts := make([]cuentas.Opcion, len(catalogo))
	for i, c := range catalogo {
		opts[i] = cuentas.Opcion{
			ID:          c.ID,
			Codigo:      c.Codigo,
			Descripcion: c.Descripcion,
			Nivel:       c.Nivel,
			DebeHaber:   cuentas.Lado(c.DebeHaber),
			Naturaleza:  c.Naturaleza,
		}
	}
	return opts
}

func aEntidad(r documento.Registro, empresaID int64, op documento.TipoOperacion, fechaTrabajo time.Time) *entity.Documento {
	doc := &entity.Documento{
		IdentificadorUnico: documento.IdentificadorUnico(r.Serie, r.NumeroDte, r.NumeroAutorizacion, empresaID, op),

		Serie:              r.Serie,
		NumeroDte:          r.NumeroDte,
		NumeroAutorizacion: r.NumeroAutorizacion,
		FechaEmision:       r.FechaEmision,
		TipoDte:            r.TipoDte,

		NitEmisor:             r.NitEmisor,
		NombreEmisor:          r.NombreEmisor,
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
		MarcaAnulado:   r.MarcaAnulado,
		FechaAnulacion: r.FechaAnulacion,

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

		TipoOperacion: op,
		Tipo:          documento.NormalizarTipo(op, r.Tipo),

		EmpresaID:    empresaID,
		FechaTrabajo: fechaTrabajo,
	}
	if r.CuentaDebe != "" {
		doc.CuentaDebe = &r.CuentaDebe
	}
	if r.CuentaDebe2 != "" {
		doc.CuentaDebe2 = &r.CuentaDebe2
	}
	if r.CuentaHaber != "" {
		doc.CuentaHaber = &r.CuentaHaber
	}
	return doc
}

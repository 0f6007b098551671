package dto

import (
	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/shopspring/decimal"
)

// DocumentoPayload es un documento tal como llega del cliente tras la fusión
// Excel/XML. Los montos aceptan número o cadena JSON (decimal los tolera);
// las fechas llegan como texto y se interpretan con tolerancia en el caso de
// uso.
type DocumentoPayload struct {
	Serie              string `json:"serie"`
	NumeroDte          string `json:"numero_dte"`
	NumeroAutorizacion string `json:"numero_autorizacion"`
	FechaEmision       string `json:"fecha_emision"`
	TipoDte            string `json:"tipo_dte"`
	NitEmisor          string `json:"nit_emisor"`
	NombreEmisor       string `json:"nombre_emisor"`

	CodigoEstablecimiento string `json:"codigo_establecimiento"`
	NombreEstablecimiento string `json:"nombre_establecimiento"`
	IDReceptor            string `json:"id_receptor"`
	NombreReceptor        string `json:"nombre_receptor"`
	NitCertificador       string `json:"nit_certificador"`
	NombreCertificador    string `json:"nombre_certificador"`

	Moneda        string          `json:"moneda"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
	MontoBien     decimal.Decimal `json:"monto_bien"`
	MontoServicio decimal.Decimal `json:"monto_servicio"`

	FacturaEstado  string `json:"factura_estado"`
	MarcaAnulado   string `json:"marca_anulado"`
	FechaAnulacion string `json:"fecha_anulacion"`

	IVA                  decimal.Decimal `json:"iva"`
	Petroleo             decimal.Decimal `json:"petroleo"`
	TurismoHospedaje     decimal.Decimal `json:"turismo_hospedaje"`
	TurismoPasajes       decimal.Decimal `json:"turismo_pasajes"`
	TimbrePrensa         decimal.Decimal `json:"timbre_prensa"`
	Bomberos             decimal.Decimal `json:"bomberos"`
	TasaMunicipal        decimal.Decimal `json:"tasa_municipal"`
	BebidasAlcoholicas   decimal.Decimal `json:"bebidas_alcoholicas"`
	BebidasNoAlcoholicas decimal.Decimal `json:"bebidas_no_alcoholicas"`
	Tabaco               decimal.Decimal `json:"tabaco"`
	Cemento              decimal.Decimal `json:"cemento"`
	TarifaPortuaria      decimal.Decimal `json:"tarifa_portuaria"`

	CuentaDebe  string `json:"cuenta_debe"`
	CuentaDebe2 string `json:"cuenta_debe2"`
	CuentaHaber string `json:"cuenta_haber"`
	Tipo        string `json:"tipo"`
}

// CargaMasivaRequest cuerpo de POST /api/documentos/masivo.
type CargaMasivaRequest struct {
	EmpresaID  int64                   `json:"empresa_id"`
	Operacion  documento.TipoOperacion `json:"operacion_tipo"`
	Date       string                  `json:"date"` // YYYY-MM-01, mes de trabajo
	Documentos []DocumentoPayload      `json:"documentos"`
}

// CargaMasivaResponse respuesta exitosa de la carga masiva.
type CargaMasivaResponse struct {
	Status  int    `json:"status"`
	OK      bool   `json:"ok"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// DuplicadoDetalle describe un documento ya cargado que bloquea la carga.
type DuplicadoDetalle struct {
	Serie              string `json:"serie"`
	NumeroDte          string `json:"numeroDte"`
	NumeroAutorizacion string `json:"numeroAutorizacion"`
	EmpresaID          int64  `json:"empresaId"`
	NitEmisor          string `json:"nitEmisor"`
	Periodo            string `json:"periodo"` // YYYY-MM
}

// DuplicadosResponse cuerpo del 409 de la carga masiva.
type DuplicadosResponse struct {
	Status     int                `json:"status"`
	Message    string             `json:"message"`
	Duplicadas []DuplicadoDetalle `json:"duplicadas"`
}

// RectificarRequest cuerpo de POST /api/documentos/rectificar. Los campos en
// nil no se rectifican.
type RectificarRequest struct {
	EmpresaID    int64                    `json:"empresa_id"`
	Operacion    *documento.TipoOperacion `json:"operacion_tipo"`
	FechaEmision string                   `json:"fecha_emision"`
	CuentaDebe   *string                  `json:"cuenta_debe"`
	CuentaDebe2  *string                  `json:"cuenta_debe2"`
	CuentaHaber  *string                  `json:"cuenta_haber"`
	Documentos   []RectificarDocumento    `json:"documentos"`
}

// RectificarDocumento referencia por uuid a un documento ya cargado.
type RectificarDocumento struct {
	UUID string `json:"uuid"`
}

// RectificarResponse respuesta exitosa de la rectificación.
type RectificarResponse struct {
	Status  int    `json:"status"`
	OK      bool   `json:"ok"`
	Updated int    `json:"updated"`
	Message string `json:"message"`
}

// DocumentoItem fila del listado mensual. Las etiquetas csv fijan el orden y
// encabezados de la exportación.
type DocumentoItem struct {
	UUID               string `json:"uuid" csv:"uuid"`
	Serie              string `json:"serie" csv:"serie"`
	NumeroDte          string `json:"numeroDte" csv:"numero_dte"`
	NumeroAutorizacion string `json:"numeroAutorizacion" csv:"numero_autorizacion"`
	FechaEmision       string `json:"fechaEmision" csv:"fecha_emision"`
	TipoDte            string `json:"tipoDte" csv:"tipo_dte"`
	NitEmisor          string `json:"nitEmisor" csv:"nit_emisor"`
	NombreEmisor       string `json:"nombreEmisor" csv:"nombre_emisor"`
	Moneda             string `json:"moneda" csv:"moneda"`

	MontoTotal     decimal.Decimal `json:"montoTotal" csv:"monto_total"`
	MontoBien      decimal.Decimal `json:"montoBien" csv:"monto_bien"`
	MontoServicio  decimal.Decimal `json:"montoServicio" csv:"monto_servicio"`
	IVA            decimal.Decimal `json:"iva" csv:"iva"`
	Petroleo       decimal.Decimal `json:"petroleo" csv:"petroleo"`
	OtrosImpuestos decimal.Decimal `json:"otrosImpuestos" csv:"otros_impuestos"`

	TipoOperacion string `json:"tipoOperacion" csv:"tipo_operacion"`
	Tipo          string `json:"tipo" csv:"tipo"`
	CuentaDebe    string `json:"cuentaDebe" csv:"cuenta_debe"`
	CuentaDebe2   string `json:"cuentaDebe2" csv:"cuenta_debe2"`
	CuentaHaber   string `json:"cuentaHaber" csv:"cuenta_haber"`
	Periodo       string `json:"periodo" csv:"periodo"`
}

// ListaDocumentosResponse respuesta del listado mensual.
type ListaDocumentosResponse struct {
	Data     []DocumentoItem `json:"data"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

// PreviewResponse respuesta de POST /api/documentos/preview: los registros
// canónicos ya fusionados, listos para revisión.
type PreviewResponse struct {
	Data    []DocumentoPayload `json:"data"`
	Fuentes PreviewFuentes     `json:"fuentes"`
}

// PreviewFuentes contadores por fuente del preview.
type PreviewFuentes struct {
	Excel       int `json:"excel"`
	XML         int `json:"xml"`
	XMLOmitidos int `json:"xmlOmitidos"`
}

// Package repository define los puertos de persistencia del dominio.
package repository

import (
	"time"

	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/gnio/contabilidad-api/internal/domain/entity"
)

// ClaveDocumento identifica un DTE para la detección de duplicados.
type ClaveDocumento struct {
	Serie              string
	NumeroDte          string
	NumeroAutorizacion string
}

// FiltroDocumentos parámetros del listado mensual.
type FiltroDocumentos struct {
	EmpresaID int64
	Mes       time.Time               // primer día del mes
	Operacion documento.TipoOperacion // vacío = ambas
	Page      int
	PageSize  int
}

// Rectificacion campos actualizables de un documento ya cargado. Los punteros
// en nil no se tocan; los montos y la anulación nunca se rectifican.
type Rectificacion struct {
	FechaEmision  *time.Time
	TipoOperacion *documento.TipoOperacion
	CuentaDebe    *string
	CuentaDebe2   *string
	CuentaHaber   *string
}

// DocumentoRepository puerto de persistencia del documento fiscal.
type DocumentoRepository interface {
	// Upsert crea o actualiza por identificador_unico. La actualización toca
	// fechas, montos, impuestos, cuentas y estado; nunca empresa, operación
	// ni los campos de la llave.
	Upsert(doc *entity.Documento) error
	// BuscarExistentes devuelve los documentos ya cargados que coinciden con
	// alguna de las claves, sin importar empresa, operación ni período.
	BuscarExistentes(claves []ClaveDocumento) ([]*entity.Documento, error)
	// Listar devuelve la página pedida y el total de documentos del mes
	// (por fecha de emisión o fecha de trabajo dentro del mes).
	Listar(filtro FiltroDocumentos) ([]*entity.Documento, int64, error)
	// Rectificar aplica los campos no nulos al documento con ese uuid.
	// Devuelve false si el uuid no existe.
	Rectificar(uuid string, campos Rectificacion) (bool, error)
}

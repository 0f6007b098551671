// Package ingesta contiene los casos de uso de la carga masiva de documentos
// y su rectificación.
package ingesta

import (
	"context"

	"github.com/gnio/contabilidad-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con un repositorio de
// documentos atado a ella. Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(docRepo repository.DocumentoRepository) error) error
}

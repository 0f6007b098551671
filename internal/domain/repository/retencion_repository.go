package repository

import (
	"time"

	"github.com/gnio/contabilidad-api/internal/domain/entity"
)

// RetencionRepository puerto de persistencia de constancias de retención.
// Las inserciones ignoran constancias ya cargadas (mismo número de
// constancia para la misma empresa).
type RetencionRepository interface {
	InsertarIVA(rets []*entity.RetencionIVA) error
	InsertarISR(rets []*entity.RetencionISR) error
	ListarIVA(empresaID int64, mes time.Time) ([]*entity.RetencionIVA, error)
}

package ingesta

import (
	"fmt"
	"strings"

	"github.com/gnio/contabilidad-api/internal/application/dto"
)

// ErrNITNoCoincide rechaza el lote completo cuando alguna factura trae un
// NIT emisor vacío o distinto al de la empresa.
type ErrNITNoCoincide struct {
	NitEmpresa string
	Documentos []string // serie-numeroDte de cada factura ofensora
}

func (e *ErrNITNoCoincide) Error() string {
	return fmt.Sprintf(
		"el NIT de estas facturas no coincide con el de la empresa (%s): %s",
		e.NitEmpresa, strings.Join(e.Documentos, ", "),
	)
}

// ErrDuplicados rechaza el lote completo cuando alguna factura ya fue
// cargada en cualquier empresa, operación o período.
type ErrDuplicados struct {
	Detalles []dto.DuplicadoDetalle
}

func (e *ErrDuplicados) Error() string {
	return fmt.Sprintf(
		"se encontraron %d factura(s) que ya habían sido cargadas, no se guardó nada",
		len(e.Detalles),
	)
}

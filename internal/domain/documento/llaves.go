package documento

import (
	"fmt"
	"strings"
)

// IdentificadorUnico construye la llave de almacenamiento del documento.
// Incluye empresa y operación: el mismo DTE puede existir como compra de una
// empresa y como venta de otra, cada uno con su propio registro.
func IdentificadorUnico(serie, numeroDte, numeroAutorizacion string, empresaID int64, operacion TipoOperacion) string {
	return fmt.Sprintf("%s-%s-%s-%d-%s", serie, numeroDte, numeroAutorizacion, empresaID, operacion)
}

// LlaveGlobal construye la llave de detección de duplicados. No incluye
// empresa, operación ni período: un DTE ya cargado en cualquier parte del
// sistema bloquea una nueva carga.
func LlaveGlobal(serie, numeroDte, numeroAutorizacion string) string {
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", serie, numeroDte, numeroAutorizacion))
}

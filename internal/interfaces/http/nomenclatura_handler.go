package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/application/usecase"
)

// NomenclaturaHandler consulta del plan de cuentas.
type NomenclaturaHandler struct {
	uc *usecase.NomenclaturaUseCase
}

// NewNomenclaturaHandler construye el handler.
func NewNomenclaturaHandler(uc *usecase.NomenclaturaUseCase) *NomenclaturaHandler {
	return &NomenclaturaHandler{uc: uc}
}

// Cuentas devuelve la página pedida de cuentas de una nomenclatura.
// GET /api/nomenclaturas/:id/cuentas?page&pageSize
func (h *NomenclaturaHandler) Cuentas(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	resp, err := h.uc.Cuentas(c.Context(), id, page)
	if err != nil {
		return errorJSON(c, err, "id inválido")
	}
	return c.JSON(resp)
}

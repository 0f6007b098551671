package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/application/retenciones"
)

// RetencionHandler maneja la carga y consulta de constancias de retención.
type RetencionHandler struct {
	uc *retenciones.UseCase
}

// NewRetencionHandler construye el handler.
func NewRetencionHandler(uc *retenciones.UseCase) *RetencionHandler {
	return &RetencionHandler{uc: uc}
}

// CargaIVA guarda un lote de constancias de retención de IVA.
// POST /api/retenciones/iva/masivo
func (h *RetencionHandler) CargaIVA(c *fiber.Ctx) error {
	var in dto.CargaRetencionesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CargarIVA(c.Context(), in)
	if err != nil {
		return errorJSON(c, err, "faltan datos (empresa_id, retenciones[]) o el NIT retenido no es el de la empresa")
	}
	return c.JSON(resp)
}

// CargaISR guarda un lote de constancias de retención de ISR.
// POST /api/retenciones/isr/masivo
func (h *RetencionHandler) CargaISR(c *fiber.Ctx) error {
	var in dto.CargaRetencionesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CargarISR(c.Context(), in)
	if err != nil {
		return errorJSON(c, err, "faltan datos (empresa_id, retenciones[]) o el NIT retenido no es el de la empresa")
	}
	return c.JSON(resp)
}

// ListarIVA devuelve las retenciones de IVA del mes.
// GET /api/retenciones/iva?empresaId&mes=YYYY-MM
func (h *RetencionHandler) ListarIVA(c *fiber.Ctx) error {
	empresaID, _ := strconv.ParseInt(c.Query("empresaId"), 10, 64)
	resp, err := h.uc.ListarIVA(c.Context(), empresaID, c.Query("mes"))
	if err != nil {
		return errorJSON(c, err, "empresaId requerido")
	}
	return c.JSON(resp)
}

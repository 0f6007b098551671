package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/application/usecase"
)

// EmpresaHandler alta y consulta de empresas.
type EmpresaHandler struct {
	uc *usecase.EmpresaUseCase
}

// NewEmpresaHandler construye el handler.
func NewEmpresaHandler(uc *usecase.EmpresaUseCase) *EmpresaHandler {
	return &EmpresaHandler{uc: uc}
}

// List devuelve todas las empresas.
// GET /api/empresas
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	empresas, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err, "")
	}
	return c.JSON(empresas)
}

// Get devuelve una empresa por id.
// GET /api/empresas/:id
func (h *EmpresaHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	empresa, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return errorJSON(c, err, "id inválido")
	}
	return c.JSON(empresa)
}

// Create da de alta una empresa.
// POST /api/empresas
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	empresa, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err, "nombre y nit son requeridos")
	}
	return c.Status(fiber.StatusCreated).JSON(empresa)
}

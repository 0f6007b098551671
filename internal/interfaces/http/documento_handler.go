// Package http expone la API sobre Fiber.
package http

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gnio/contabilidad-api/internal/application/dto"
	"github.com/gnio/contabilidad-api/internal/application/ingesta"
	"github.com/gnio/contabilidad-api/internal/application/usecase"
	"github.com/gnio/contabilidad-api/internal/domain"
	"github.com/gnio/contabilidad-api/internal/domain/documento"
	"github.com/gnio/contabilidad-api/internal/domain/repository"
)

// DocumentoHandler maneja la carga masiva, rectificación y listado de
// documentos.
type DocumentoHandler struct {
	cargaUC      *ingesta.CargaMasivaUseCase
	rectificarUC *ingesta.RectificarUseCase
	listadoUC    *usecase.DocumentoUseCase
	previewUC    *usecase.PreviewUseCase
}

// NewDocumentoHandler construye el handler.
func NewDocumentoHandler(
	cargaUC *ingesta.CargaMasivaUseCase,
	rectificarUC *ingesta.RectificarUseCase,
	listadoUC *usecase.DocumentoUseCase,
	previewUC *usecase.PreviewUseCase,
) *DocumentoHandler {
	return &DocumentoHandler{
		cargaUC:      cargaUC,
		rectificarUC: rectificarUC,
		listadoUC:    listadoUC,
		previewUC:    previewUC,
	}
}

// CargaMasiva guarda un lote de documentos.
// POST /api/documentos/masivo
func (h *DocumentoHandler) CargaMasiva(c *fiber.Ctx) error {
	var in dto.CargaMasivaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.cargaUC.Ejecutar(c.Context(), in)
	if err != nil {
		var nit *ingesta.ErrNITNoCoincide
		if errors.As(err, &nit) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":     fiber.StatusBadRequest,
				"code":       "NIT_NO_COINCIDE",
				"message":    nit.Error(),
				"documentos": nit.Documentos,
			})
		}
		var dup *ingesta.ErrDuplicados
		if errors.As(err, &dup) {
			return c.Status(fiber.StatusConflict).JSON(dto.DuplicadosResponse{
				Status:     fiber.StatusConflict,
				Message:    dup.Error(),
				Duplicadas: dup.Detalles,
			})
		}
		return errorJSON(c, err, "faltan datos requeridos (empresa_id, operacion_tipo, documentos)")
	}
	return c.JSON(resp)
}

// Rectificar corrige fecha, operación y cuentas de documentos ya cargados.
// POST /api/documentos/rectificar
func (h *DocumentoHandler) Rectificar(c *fiber.Ctx) error {
	var in dto.RectificarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.rectificarUC.Ejecutar(c.Context(), in)
	if err != nil {
		return errorJSON(c, err, "faltan datos (empresa_id, documentos[])")
	}
	return c.JSON(resp)
}

// Listar devuelve los documentos del mes; con format=csv exporta.
// GET /api/documentos?empresaId&mes=YYYY-MM&operacion&page&pageSize&format
func (h *DocumentoHandler) Listar(c *fiber.Ctx) error {
	empresaID, _ := strconv.ParseInt(c.Query("empresaId"), 10, 64)
	var page dto.PageRequest
	_ = c.QueryParser(&page)
	page.DefaultPage()
	filtro := repository.FiltroDocumentos{
		EmpresaID: empresaID,
		Mes:       mesDesdeQuery(c.Query("mes")),
		Operacion: documento.TipoOperacion(c.Query("operacion")),
		Page:      page.Page,
		PageSize:  page.PageSize,
	}

	if c.Query("format") == "csv" {
		csvData, err := h.listadoUC.ExportarCSV(c.Context(), filtro)
		if err != nil {
			return errorJSON(c, err, "empresaId requerido")
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="documentos.csv"`)
		return c.SendString(csvData)
	}

	resp, err := h.listadoUC.Listar(c.Context(), filtro)
	if err != nil {
		return errorJSON(c, err, "empresaId requerido")
	}
	return c.JSON(resp)
}

// Preview parsea y fusiona Excel + XMLs sin persistir.
// POST /api/documentos/preview (multipart: excel, xml[])
func (h *DocumentoHandler) Preview(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera multipart con excel y/o xml"})
	}

	var excel io.Reader
	if files := form.File["excel"]; len(files) > 0 {
		f, err := files[0].Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el Excel"})
		}
		defer f.Close()
		excel = f
	}

	var xmls [][]byte
	for _, fh := range form.File["xml"] {
		f, err := fh.Open()
		if err != nil {
			continue
		}
		var buf bytes.Buffer
		_, copyErr := buf.ReadFrom(f)
		f.Close()
		if copyErr != nil {
			continue
		}
		xmls = append(xmls, buf.Bytes())
	}

	resp, err := h.previewUC.Ejecutar(c.Context(), excel, xmls)
	if err != nil {
		return errorJSON(c, err, "no hay documentos legibles en las fuentes")
	}
	return c.JSON(resp)
}

// mesDesdeQuery interpreta "YYYY-MM" como el primer día del mes; vacío o
// ilegible cae al mes actual.
func mesDesdeQuery(mes string) time.Time {
	if t, err := time.Parse("2006-01", mes); err == nil {
		return t
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func errorJSON(c *fiber.Ctx, err error, invalidMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: invalidMsg})
	case errors.Is(err, domain.ErrEmpresaNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

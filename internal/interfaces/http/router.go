package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gnio/contabilidad-api/internal/application/ingesta"
	"github.com/gnio/contabilidad-api/internal/application/retenciones"
	"github.com/gnio/contabilidad-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CargaMasiva    *ingesta.CargaMasivaUseCase
	Rectificar     *ingesta.RectificarUseCase
	DocumentoUC    *usecase.DocumentoUseCase
	PreviewUC      *usecase.PreviewUseCase
	RetencionUC    *retenciones.UseCase
	EmpresaUC      *usecase.EmpresaUseCase
	NomenclaturaUC *usecase.NomenclaturaUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Empresas
	empresas := api.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", empresaHandler.Create)
	empresas.Get("/:id", empresaHandler.Get)

	// Documentos (carga masiva, rectificación, listado, preview)
	documentos := api.Group("/documentos")
	documentoHandler := NewDocumentoHandler(deps.CargaMasiva, deps.Rectificar, deps.DocumentoUC, deps.PreviewUC)
	documentos.Post("/masivo", documentoHandler.CargaMasiva)
	documentos.Post("/rectificar", documentoHandler.Rectificar)
	documentos.Post("/preview", documentoHandler.Preview)
	documentos.Get("/", documentoHandler.Listar)

	// Retenciones
	retGroup := api.Group("/retenciones")
	retencionHandler := NewRetencionHandler(deps.RetencionUC)
	retGroup.Post("/iva/masivo", retencionHandler.CargaIVA)
	retGroup.Post("/isr/masivo", retencionHandler.CargaISR)
	retGroup.Get("/iva", retencionHandler.ListarIVA)

	// Nomenclaturas (plan de cuentas)
	nomenclaturas := api.Group("/nomenclaturas")
	nomenclaturaHandler := NewNomenclaturaHandler(deps.NomenclaturaUC)
	nomenclaturas.Get("/:id/cuentas", nomenclaturaHandler.Cuentas)
}

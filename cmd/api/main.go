package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gnio/contabilidad-api/internal/application/ingesta"
	"github.com/gnio/contabilidad-api/internal/application/retenciones"
	"github.com/gnio/contabilidad-api/internal/application/usecase"
	"github.com/gnio/contabilidad-api/internal/infrastructure/postgres"
	infrasat "github.com/gnio/contabilidad-api/internal/infrastructure/sat"
	httpRouter "github.com/gnio/contabilidad-api/internal/interfaces/http"
	"github.com/gnio/contabilidad-api/pkg/config"
	"github.com/gnio/contabilidad-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	docRepo := postgres.NewDocumentoRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	nomenclaturaRepo := postgres.NewNomenclaturaRepository(pool)
	retencionRepo := postgres.NewRetencionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	excelParser := infrasat.NewExcelParser()
	xmlParser := infrasat.NewXMLParser()

	cargaMasivaUC := ingesta.NewCargaMasivaUseCase(txRunner, docRepo, empresaRepo, nomenclaturaRepo, log)
	rectificarUC := ingesta.NewRectificarUseCase(txRunner, empresaRepo, log)
	documentoUC := usecase.NewDocumentoUseCase(docRepo, log)
	previewUC := usecase.NewPreviewUseCase(excelParser, xmlParser, log)
	retencionUC := retenciones.NewUseCase(retencionRepo, empresaRepo, log)
	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	nomenclaturaUC := usecase.NewNomenclaturaUseCase(nomenclaturaRepo)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// La carga masiva manda lotes grandes de documentos y archivos.
		BodyLimit:    32 * 1024 * 1024,
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CargaMasiva:    cargaMasivaUC,
		Rectificar:     rectificarUC,
		DocumentoUC:    documentoUC,
		PreviewUC:      previewUC,
		RetencionUC:    retencionUC,
		EmpresaUC:      empresaUC,
		NomenclaturaUC: nomenclaturaUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/jhoicas/furnistore-api/docs"
	appanalytics "github.com/jhoicas/furnistore-api/internal/application/analytics"
	"github.com/jhoicas/furnistore-api/internal/application/auth"
	"github.com/jhoicas/furnistore-api/internal/application/inventory"
	"github.com/jhoicas/furnistore-api/internal/application/payments"
	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/application/reporting"
	"github.com/jhoicas/furnistore-api/internal/application/usecase"
	"github.com/jhoicas/furnistore-api/internal/domain/repository"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/memory"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/furnistore-api/internal/infrastructure/pdf"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/sheets"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/sitemap"
	"github.com/jhoicas/furnistore-api/internal/infrastructure/upload"
	httpRouter "github.com/jhoicas/furnistore-api/internal/interfaces/http"
	"github.com/jhoicas/furnistore-api/internal/scheduler"
	"github.com/jhoicas/furnistore-api/pkg/config"
	"github.com/jhoicas/furnistore-api/pkg/logger"
)

// @title                       Furnistore API
// @version                     1.0
// @description                 API de la tienda de muebles: catálogo, pedidos, pagos, bodega y compras.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repo     repository.Registry
		txRunner ports.TxRunner
	)
	switch cfg.DB.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		repo = memory.NewRegistry(store)
		txRunner = memory.NewTxRunner(store)
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		client, err := mongodb.Connect(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		db := client.Database(cfg.DB.Name)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("índices de MongoDB")
		}
		repo = mongodb.NewRegistry(db)
		txRunner = mongodb.NewTxRunner(client, cfg.DB.UseTransactions)
	}

	jwtCfg := auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		ExpMinutes:         cfg.JWT.Expiration,
		CustomerExpMinutes: cfg.JWT.CustomerExpiration,
		Issuer:             cfg.JWT.Issuer,
	}
	authUC := auth.NewAuthUseCase(repo.Users, jwtCfg)
	customerAuthUC := auth.NewCustomerAuthUseCase(repo.Customers, jwtCfg)

	stock := inventory.NewStockService(repo.Warehouse, repo.Products, repo.Movements)
	paymentSvc := payments.NewService(txRunner, repo.Payments, repo.Cashbook, repo.Orders, repo.PurchaseOrders, log.Component("payments"))
	replenishmentUC := inventory.NewReplenishmentUseCase(repo.Products, repo.Warehouse)

	// PDF: comprobantes de pedido y órdenes de compra
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.Store)

	categoryUC := usecase.NewCategoryUseCase(repo.Categories, repo.Products)
	productUC := usecase.NewProductUseCase(txRunner, repo.Products, repo.Categories, repo.Customers, repo.Orders, stock)
	orderUC := usecase.NewOrderUseCase(txRunner, repo.Orders, repo.Products, repo.Customers, stock, paymentSvc, pdfGenerator)
	posUC := usecase.NewPOSUseCase(txRunner, repo.Orders, repo.Products, repo.Customers, stock, paymentSvc)
	purchaseOrderUC := usecase.NewPurchaseOrderUseCase(txRunner, repo.PurchaseOrders, repo.Suppliers, repo.Products, stock, paymentSvc, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(repo.Orders, repo.Products, repo.Cashbook, replenishmentUC)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		// Exportación a Sheets solo si hay credenciales; el reporte de bajo stock corre siempre.
		var exporter scheduler.CashbookDayExporter
		if cfg.Sheets.Enabled() {
			sheetsExporter, err := sheets.NewCashbookExporter(ctx, cfg.Sheets, log.Component("sheets"))
			if err != nil {
				log.Fatal().Err(err).Msg("cliente de Google Sheets")
			}
			exporter = reporting.NewCashbookExportUseCase(repo.Cashbook, sheetsExporter)
		}
		sched, err = scheduler.New(cfg.Scheduler, replenishmentUC, exporter, log.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("configuración del scheduler")
		}
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("arranque del scheduler")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		// la imagen más el resto del formulario multipart
		BodyLimit: cfg.Upload.MaxBytes + 1<<20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Furnistore API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		CustomerAuthUC:  customerAuthUC,
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		UploadUC:        usecase.NewUploadUseCase(upload.NewFreeImageClient(cfg.Upload), int64(cfg.Upload.MaxBytes)),
		SitemapUC:       usecase.NewSitemapUseCase(repo.Products, repo.Categories, sitemap.Encoder{}, cfg.App.PublicURL),
		CustomerUC:      usecase.NewCustomerUseCase(repo.Customers),
		SupplierUC:      usecase.NewSupplierUseCase(repo.Suppliers, repo.PurchaseOrders),
		WarehouseUC:     usecase.NewWarehouseUseCase(txRunner, repo.Warehouse, repo.Products, repo.Movements, stock),
		Replenishment:   replenishmentUC,
		OrderUC:         orderUC,
		POSUC:           posUC,
		Payments:        paymentSvc,
		CashbookUC:      usecase.NewCashbookUseCase(repo.Cashbook),
		PurchaseOrderUC: purchaseOrderUC,
		DashboardUC:     dashboardUC,
		JWTSecret:       cfg.JWT.Secret,
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
	if sched != nil {
		sched.Stop()
	}

	log.Info().Msg("aplicación detenida")
}

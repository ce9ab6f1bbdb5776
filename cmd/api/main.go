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

	"github.com/jmgutierrez/ferreteria-api/internal/application/auth"
	"github.com/jmgutierrez/ferreteria-api/internal/application/pedidos"
	"github.com/jmgutierrez/ferreteria-api/internal/application/reportes"
	"github.com/jmgutierrez/ferreteria-api/internal/application/usecase"
	"github.com/jmgutierrez/ferreteria-api/internal/application/ventas"
	infrapdf "github.com/jmgutierrez/ferreteria-api/internal/infrastructure/pdf"
	"github.com/jmgutierrez/ferreteria-api/internal/infrastructure/postgres"
	"github.com/jmgutierrez/ferreteria-api/internal/infrastructure/reniec"
	httpRouter "github.com/jmgutierrez/ferreteria-api/internal/interfaces/http"
	"github.com/jmgutierrez/ferreteria-api/pkg/config"
	"github.com/jmgutierrez/ferreteria-api/pkg/logger"
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

	// Repositorios sobre el pool; los casos de uso transaccionales reciben
	// además el TxRunner, que les entrega repos atados a una tx.
	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := usecase.NewProductoUseCase(productoRepo, categoriaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)

	crearVentaUC := ventas.NewCrearVentaUseCase(txRunner, productoRepo, ventaRepo)
	anularVentaUC := ventas.NewAnularVentaUseCase(txRunner)
	consultasUC := ventas.NewConsultasUseCase(ventaRepo)
	pedidoUC := pedidos.NewPedidoUseCase(pedidoRepo, txRunner)

	reporteUC := reportes.NewReporteUseCase(reporteRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	exportUC := reportes.NewExportUseCase(reporteUC, pdfGenerator)

	var googleAuth *auth.GoogleAuth
	if cfg.Google.ClientID != "" {
		googleAuth = auth.NewGoogleAuth(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	} else {
		log.Warn().Msg("login con Google deshabilitado: falta GOOGLE_CLIENT_ID")
	}
	authUC := auth.NewAuthUseCase(usuarioRepo, googleAuth, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.RENIEC.Token == "" {
		log.Warn().Msg("consulta de DNI sin token: el proveedor puede rechazar las peticiones")
	}
	consultor := reniec.NewClient(cfg.RENIEC.BaseURL, cfg.RENIEC.Token)

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de uploads")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ferretería J&M Gutiérrez API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Imágenes de productos subidas desde el panel
	app.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:  productoUC,
		CategoriaUC: categoriaUC,
		UsuarioUC:   usuarioUC,
		CrearVenta:  crearVentaUC,
		AnularVenta: anularVentaUC,
		Consultas:   consultasUC,
		PedidoUC:    pedidoUC,
		ReporteUC:   reporteUC,
		ExportUC:    exportUC,
		AuthUC:      authUC,
		Consultor:   consultor,
		Upload:      cfg.Upload,
		JWTSecret:   cfg.JWT.Secret,
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

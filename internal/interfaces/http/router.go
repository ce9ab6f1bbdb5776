// Package http contiene los handlers Fiber, el middleware de autenticación y
// el registro de rutas de la API.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/auth"
	"github.com/jmgutierrez/ferreteria-api/internal/application/pedidos"
	"github.com/jmgutierrez/ferreteria-api/internal/application/reportes"
	"github.com/jmgutierrez/ferreteria-api/internal/application/usecase"
	"github.com/jmgutierrez/ferreteria-api/internal/application/ventas"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/infrastructure/reniec"
	"github.com/jmgutierrez/ferreteria-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *usecase.ProductoUseCase
	CategoriaUC *usecase.CategoriaUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	CrearVenta  *ventas.CrearVentaUseCase
	AnularVenta *ventas.AnularVentaUseCase
	Consultas   *ventas.ConsultasUseCase
	PedidoUC    *pedidos.PedidoUseCase
	ReporteUC   *reportes.ReporteUseCase
	ExportUC    *reportes.ExportUseCase
	AuthUC      *auth.AuthUseCase
	Consultor   reniec.Consultor
	Upload      config.UploadConfig
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/google/url", authHandler.GoogleURL)
	authGroup.Post("/google/callback", authHandler.GoogleCallback)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.Upload)
	products.Get("/", RequirePermission(entity.PermInventarioView), productoHandler.List)
	products.Post("/", RequirePermission(entity.PermInventarioEdit), productoHandler.Create)
	products.Post("/upload-image", RequirePermission(entity.PermInventarioEdit), productoHandler.UploadImagen)
	products.Get("/:id", RequirePermission(entity.PermInventarioView), productoHandler.GetByID)
	products.Put("/:id", RequirePermission(entity.PermInventarioEdit), productoHandler.Update)
	products.Delete("/:id", RequirePermission(entity.PermInventarioEdit), productoHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categories.Get("/", RequirePermission(entity.PermInventarioView), categoriaHandler.List)
	categories.Post("/", RequirePermission(entity.PermInventarioEdit), categoriaHandler.Create)
	categories.Put("/:id", RequirePermission(entity.PermInventarioEdit), categoriaHandler.Update)
	categories.Delete("/:id", RequirePermission(entity.PermInventarioEdit), categoriaHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	ventaHandler := NewVentaHandler(deps.CrearVenta, deps.AnularVenta, deps.Consultas, deps.ReporteUC)
	sales.Get("/", RequirePermission(entity.PermVentasView), ventaHandler.List)
	sales.Post("/", RequirePermission(entity.PermVentasCreate), ventaHandler.Create)
	sales.Get("/stats", RequirePermission(entity.PermVentasView), ventaHandler.Stats)
	sales.Get("/top-products", RequirePermission(entity.PermVentasView), ventaHandler.TopProducts)
	sales.Get("/:id", RequirePermission(entity.PermVentasView), ventaHandler.GetByID)
	sales.Post("/:id/void", RequirePermission(entity.PermVentasAnular), ventaHandler.Void)

	// Orders (protegido)
	orders := protected.Group("/orders")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	orders.Get("/", RequirePermission(entity.PermPedidosView), pedidoHandler.List)
	orders.Get("/:id", RequirePermission(entity.PermPedidosView), pedidoHandler.GetByID)
	orders.Put("/:id/status", RequirePermission(entity.PermPedidosManage), pedidoHandler.UpdateStatus)
	orders.Post("/:id/convert", RequirePermission(entity.PermPedidosManage), pedidoHandler.Convert)

	// Users y clientes frecuentes (protegido)
	users := protected.Group("/users")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC, deps.Consultas)
	users.Get("/frequent-clients", RequirePermission(entity.PermVentasView), usuarioHandler.FrequentClients)
	users.Get("/", RequirePermission(entity.PermUsuariosView), usuarioHandler.List)
	users.Post("/", RequirePermission(entity.PermUsuariosEdit), usuarioHandler.Create)
	users.Get("/:id", RequirePermission(entity.PermUsuariosView), usuarioHandler.GetByID)
	users.Put("/:id", RequirePermission(entity.PermUsuariosEdit), usuarioHandler.Update)

	// Consulta de DNI (protegido)
	clients := protected.Group("/clients")
	clienteHandler := NewClienteHandler(deps.Consultor)
	clients.Get("/dni/:dni", RequirePermission(entity.PermVentasCreate), clienteHandler.ConsultarDNI)

	// Reports (protegido)
	reports := protected.Group("/reports", RequirePermission(entity.PermReportesView))
	reporteHandler := NewReporteHandler(deps.ReporteUC, deps.ExportUC)
	reports.Get("/sales", reporteHandler.Sales)
	reports.Get("/sales/export/pdf", reporteHandler.ExportSalesPDF)
	reports.Get("/sales/export/csv", reporteHandler.ExportSalesCSV)
	reports.Get("/products", reporteHandler.Products)
	reports.Get("/clients", reporteHandler.Clients)
	reports.Get("/financial", reporteHandler.Financial)
}

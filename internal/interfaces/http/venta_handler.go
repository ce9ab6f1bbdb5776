package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/application/reportes"
	"github.com/jmgutierrez/ferreteria-api/internal/application/ventas"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// VentaHandler maneja las peticiones HTTP del flujo de caja (protegido).
type VentaHandler struct {
	crear     *ventas.CrearVentaUseCase
	anular    *ventas.AnularVentaUseCase
	consultas *ventas.ConsultasUseCase
	reportes  *reportes.ReporteUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(
	crear *ventas.CrearVentaUseCase,
	anular *ventas.AnularVentaUseCase,
	consultas *ventas.ConsultasUseCase,
	reportesUC *reportes.ReporteUseCase,
) *VentaHandler {
	return &VentaHandler{crear: crear, anular: anular, consultas: consultas, reportes: reportesUC}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Borrador de venta"
// @Success      201   {object}  dto.Envelope{data=dto.VentaResponse}
// @Failure      422   {object}  dto.Envelope  "errores de validación por campo"
// @Failure      409   {object}  dto.Envelope  "stock insuficiente"
// @Router       /api/sales [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.crear.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// Void godoc
// @Summary      Anular venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.AnularVentaRequest  true  "Motivo de anulación"
// @Success      200   {object}  dto.Envelope{data=dto.VentaResponse}
// @Failure      409   {object}  dto.Envelope  "ya anulada o fuera de plazo"
// @Router       /api/sales/{id}/void [post]
func (h *VentaHandler) Void(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.AnularVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.anular.Anular(c.Context(), id, GetUserID(c), in.Motivo)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// List godoc
// @Summary      Historial de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtrar por estado"
// @Param        desde   query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta   query  string  false  "Fecha final (2006-01-02)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Envelope{data=dto.VentaListResponse}
// @Router       /api/sales [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	f := repository.VentaFilter{
		Estado: c.Query("estado"),
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	var ok bool
	if f.Desde, ok = parseFecha(c.Query("desde")); !ok {
		return badRequest(c, "VALIDATION", "desde debe tener formato 2006-01-02")
	}
	if f.Hasta, ok = parseFecha(c.Query("hasta")); !ok {
		return badRequest(c, "VALIDATION", "hasta debe tener formato 2006-01-02")
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	out, err := h.consultas.Listar(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GetByID godoc
// @Summary      Obtener venta con detalle
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.Envelope{data=dto.VentaResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/sales/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.consultas.Obtener(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Stats godoc
// @Summary      Métricas del dashboard de caja
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.VentasStatsResponse}
// @Router       /api/sales/stats [get]
func (h *VentaHandler) Stats(c *fiber.Ctx) error {
	out, err := h.reportes.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  false  "Fecha final (2006-01-02)"
// @Param        limit  query  int     false  "Cantidad"  default(5)
// @Success      200  {object}  dto.Envelope{data=[]dto.TopProductoDTO}
// @Router       /api/sales/top-products [get]
func (h *VentaHandler) TopProducts(c *fiber.Ctx) error {
	desde, ok := parseFecha(c.Query("desde"))
	if !ok {
		return badRequest(c, "VALIDATION", "desde debe tener formato 2006-01-02")
	}
	hasta, ok := parseFecha(c.Query("hasta"))
	if !ok {
		return badRequest(c, "VALIDATION", "hasta debe tener formato 2006-01-02")
	}
	out, err := h.reportes.TopProductos(c.Context(), desde, hasta, c.QueryInt("limit", 5))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// parseFecha interpreta una fecha 2006-01-02 de query string; vacío es válido
// y devuelve el cero de time.Time.
func parseFecha(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

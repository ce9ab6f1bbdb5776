package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/reportes"
)

// ReporteHandler maneja las peticiones HTTP de reportes y exportación (protegido).
type ReporteHandler struct {
	uc     *reportes.ReporteUseCase
	export *reportes.ExportUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.ReporteUseCase, export *reportes.ExportUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc, export: export}
}

// Sales godoc
// @Summary      Reporte de ventas por día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  false  "Fecha final (2006-01-02)"
// @Success      200  {object}  dto.Envelope{data=dto.ReporteVentasResponse}
// @Router       /api/reports/sales [get]
func (h *ReporteHandler) Sales(c *fiber.Ctx) error {
	desde, hasta, err := rangoDeQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", "las fechas deben tener formato 2006-01-02")
	}
	out, err := h.uc.ReporteVentas(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Products godoc
// @Summary      Reporte de inventario valorizado y stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.ReporteProductosResponse}
// @Router       /api/reports/products [get]
func (h *ReporteHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.ReporteProductos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Clients godoc
// @Summary      Reporte de mejores clientes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  false  "Fecha final (2006-01-02)"
// @Param        limit  query  int     false  "Cantidad"  default(10)
// @Success      200  {object}  dto.Envelope{data=dto.ReporteClientesResponse}
// @Router       /api/reports/clients [get]
func (h *ReporteHandler) Clients(c *fiber.Ctx) error {
	desde, hasta, err := rangoDeQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", "las fechas deben tener formato 2006-01-02")
	}
	out, err := h.uc.ReporteClientes(c.Context(), desde, hasta, c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Financial godoc
// @Summary      Reporte financiero del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  false  "Fecha final (2006-01-02)"
// @Success      200  {object}  dto.Envelope{data=dto.ReporteFinancieroResponse}
// @Router       /api/reports/financial [get]
func (h *ReporteHandler) Financial(c *fiber.Ctx) error {
	desde, hasta, err := rangoDeQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", "las fechas deben tener formato 2006-01-02")
	}
	out, err := h.uc.ReporteFinanciero(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// ExportSalesPDF godoc
// @Summary      Descargar reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        desde  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  false  "Fecha final (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/reports/sales/export/pdf [get]
func (h *ReporteHandler) ExportSalesPDF(c *fiber.Ctx) error {
	desde, hasta, err := rangoDeQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", "las fechas deben tener formato 2006-01-02")
	}
	pdfBytes, filename, err := h.export.VentasPDF(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// ExportSalesCSV godoc
// @Summary      Descargar reporte de ventas en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        desde  query  string  false  "Fecha inicial (2006-01-02)"
// @Param        hasta  query  string  false  "Fecha final (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/reports/sales/export/csv [get]
func (h *ReporteHandler) ExportSalesCSV(c *fiber.Ctx) error {
	desde, hasta, err := rangoDeQuery(c)
	if err != nil {
		return badRequest(c, "VALIDATION", "las fechas deben tener formato 2006-01-02")
	}
	csvBytes, filename, err := h.export.VentasCSV(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(csvBytes)
}

// rangoDeQuery extrae desde/hasta de la query string; vacíos son válidos.
func rangoDeQuery(c *fiber.Ctx) (desde, hasta time.Time, err error) {
	var ok bool
	if desde, ok = parseFecha(c.Query("desde")); !ok {
		return time.Time{}, time.Time{}, errFechaInvalida
	}
	if hasta, ok = parseFecha(c.Query("hasta")); !ok {
		return time.Time{}, time.Time{}, errFechaInvalida
	}
	return desde, hasta, nil
}

var errFechaInvalida = errors.New("fecha inválida")

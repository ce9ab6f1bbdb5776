// Package reportes contiene los casos de uso de reportes de negocio, las
// métricas del dashboard de ventas y la exportación a PDF y CSV.
package reportes

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// UmbralStockBajo unidades por debajo de las cuales un producto aparece en la
// alerta de stock bajo del reporte de inventario.
const UmbralStockBajo = 5

const topPorDefecto = 5

// ReporteUseCase genera los reportes de ventas, productos, clientes y el
// resumen financiero. Solo lecturas; delega todo en ReporteRepository.
type ReporteUseCase struct {
	reporteRepo repository.ReporteRepository
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(reporteRepo repository.ReporteRepository) *ReporteUseCase {
	return &ReporteUseCase{reporteRepo: reporteRepo}
}

// Stats construye las métricas del dashboard de caja.
//
// Tres consultas en paralelo:
//  1. TotalesDelPeriodo(hoy)  → VentasHoy + CuentaHoy
//  2. TotalesDelPeriodo(mes)  → VentasMes + CuentaMes + AnuladoMes
//  3. IngresosPorMetodo(mes)  → PorMetodoPago
func (uc *ReporteUseCase) Stats(ctx context.Context) (*dto.VentasStatsResponse, error) {
	now := time.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	hoyInicio := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hoyFin := hoyInicio.Add(24*time.Hour - time.Nanosecond)
	mesInicio := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	mesFin := hoyFin

	type totalesResult struct {
		ingreso decimal.Decimal
		cuenta  int
		anulado decimal.Decimal
		err     error
	}
	type metodosResult struct {
		metodos []repository.TotalPorMetodo
		err     error
	}

	hoyCh := make(chan totalesResult, 1)
	mesCh := make(chan totalesResult, 1)
	metodosCh := make(chan metodosResult, 1)

	go func() {
		ingreso, cuenta, anulado, err := uc.reporteRepo.TotalesDelPeriodo(ctx, hoyInicio, hoyFin)
		hoyCh <- totalesResult{ingreso, cuenta, anulado, err}
	}()
	go func() {
		ingreso, cuenta, anulado, err := uc.reporteRepo.TotalesDelPeriodo(ctx, mesInicio, mesFin)
		mesCh <- totalesResult{ingreso, cuenta, anulado, err}
	}()
	go func() {
		metodos, err := uc.reporteRepo.IngresosPorMetodo(ctx, mesInicio, mesFin)
		metodosCh <- metodosResult{metodos, err}
	}()

	hoy := <-hoyCh
	mes := <-mesCh
	metodos := <-metodosCh

	if hoy.err != nil {
		return nil, fmt.Errorf("stats: totales de hoy: %w", hoy.err)
	}
	if mes.err != nil {
		return nil, fmt.Errorf("stats: totales del mes: %w", mes.err)
	}
	if metodos.err != nil {
		return nil, fmt.Errorf("stats: ingresos por método: %w", metodos.err)
	}

	resp := &dto.VentasStatsResponse{
		VentasHoy:  hoy.ingreso.Round(2),
		CuentaHoy:  hoy.cuenta,
		VentasMes:  mes.ingreso.Round(2),
		CuentaMes:  mes.cuenta,
		AnuladoMes: mes.anulado.Round(2),
	}
	for _, m := range metodos.metodos {
		resp.PorMetodoPago = append(resp.PorMetodoPago, dto.MetodoPagoStatDTO{
			MetodoPago: m.MetodoPago,
			Total:      m.Total.Round(2),
			Cuenta:     m.Cuenta,
		})
	}
	return resp, nil
}

// TopProductos devuelve los productos más vendidos del rango.
func (uc *ReporteUseCase) TopProductos(ctx context.Context, desde, hasta time.Time, limit int) ([]dto.TopProductoDTO, error) {
	desde, hasta = normalizarRango(desde, hasta)
	if limit <= 0 {
		limit = topPorDefecto
	}
	top, err := uc.reporteRepo.TopProductos(ctx, desde, hasta, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductoDTO, 0, len(top))
	for _, t := range top {
		out = append(out, dto.TopProductoDTO{
			ProductoID: t.ProductoID,
			Nombre:     t.Nombre,
			Unidades:   t.Unidades,
			Ingreso:    t.Ingreso.Round(2),
		})
	}
	return out, nil
}

// ReporteVentas genera el reporte de ventas por día del rango.
func (uc *ReporteUseCase) ReporteVentas(ctx context.Context, desde, hasta time.Time) (*dto.ReporteVentasResponse, error) {
	desde, hasta = normalizarRango(desde, hasta)
	dias, err := uc.reporteRepo.VentasPorDia(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReporteVentasResponse{Desde: desde, Hasta: hasta, Total: decimal.Zero}
	for _, d := range dias {
		resp.PorDia = append(resp.PorDia, dto.VentaDiariaDTO{
			Dia:    d.Dia.Format("2006-01-02"),
			Total:  d.Total.Round(2),
			Cuenta: d.Cuenta,
		})
		resp.Total = resp.Total.Add(d.Total)
		resp.CuentaTotal += d.Cuenta
	}
	resp.Total = resp.Total.Round(2)
	return resp, nil
}

// ReporteProductos genera el inventario valorizado y la lista de stock bajo.
func (uc *ReporteUseCase) ReporteProductos(ctx context.Context) (*dto.ReporteProductosResponse, error) {
	inventario, err := uc.reporteRepo.InventarioValorizado(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReporteProductosResponse{
		ValorTotal:      decimal.Zero,
		UmbralStockBajo: UmbralStockBajo,
	}
	for _, p := range inventario {
		item := dto.ProductoStockDTO{
			ProductoID: p.ProductoID,
			Nombre:     p.Nombre,
			Categoria:  p.Categoria,
			Stock:      p.Stock,
			Precio:     p.Precio,
			Valorizado: p.Valorizado.Round(2),
		}
		resp.Inventario = append(resp.Inventario, item)
		if p.Stock < UmbralStockBajo {
			resp.StockBajo = append(resp.StockBajo, item)
		}
		resp.ValorTotal = resp.ValorTotal.Add(p.Valorizado)
	}
	resp.ValorTotal = resp.ValorTotal.Round(2)
	return resp, nil
}

// ReporteClientes genera el reporte de mejores clientes del rango.
func (uc *ReporteUseCase) ReporteClientes(ctx context.Context, desde, hasta time.Time, limit int) (*dto.ReporteClientesResponse, error) {
	desde, hasta = normalizarRango(desde, hasta)
	if limit <= 0 {
		limit = 10
	}
	top, err := uc.reporteRepo.TopClientes(ctx, desde, hasta, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.ReporteClientesResponse{Desde: desde, Hasta: hasta}
	for _, c := range top {
		resp.Top = append(resp.Top, dto.TopClienteDTO{
			Nombre:  c.Nombre,
			DNI:     c.DNI,
			Compras: c.Compras,
			Total:   c.Total.Round(2),
		})
	}
	return resp, nil
}

// ReporteFinanciero genera el resumen de ingresos y anulaciones del rango.
func (uc *ReporteUseCase) ReporteFinanciero(ctx context.Context, desde, hasta time.Time) (*dto.ReporteFinancieroResponse, error) {
	desde, hasta = normalizarRango(desde, hasta)

	ingreso, _, anulado, err := uc.reporteRepo.TotalesDelPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}
	metodos, err := uc.reporteRepo.IngresosPorMetodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReporteFinancieroResponse{
		Desde:   desde,
		Hasta:   hasta,
		Ingreso: ingreso.Round(2),
		Anulado: anulado.Round(2),
		Neto:    ingreso.Sub(anulado).Round(2),
	}
	for _, m := range metodos {
		resp.PorMetodoPago = append(resp.PorMetodoPago, dto.MetodoPagoStatDTO{
			MetodoPago: m.MetodoPago,
			Total:      m.Total.Round(2),
			Cuenta:     m.Cuenta,
		})
	}
	return resp, nil
}

// normalizarRango aplica el mes en curso si el rango viene vacío y expande
// hasta al fin del día.
func normalizarRango(desde, hasta time.Time) (time.Time, time.Time) {
	now := time.Now()
	if desde.IsZero() {
		desde = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	if hasta.IsZero() {
		hasta = now
	}
	hasta = time.Date(hasta.Year(), hasta.Month(), hasta.Day(), 0, 0, 0, 0, hasta.Location()).
		Add(24*time.Hour - time.Nanosecond)
	return desde, hasta
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo implementación read-only de ReporteRepository sobre PostgreSQL.
type ReporteRepo struct {
	pool *pgxpool.Pool
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(pool *pgxpool.Pool) *ReporteRepo {
	return &ReporteRepo{pool: pool}
}

// VentasPorDia total e importe por día del rango, excluyendo anuladas.
func (r *ReporteRepo) VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]repository.VentaDiaria, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', fecha) AS dia, COALESCE(sum(total), 0), count(*)
		FROM ventas
		WHERE estado <> 'anulada' AND fecha BETWEEN $1 AND $2
		GROUP BY dia ORDER BY dia`, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas por dia: %w", err)
	}
	defer rows.Close()
	var list []repository.VentaDiaria
	for rows.Next() {
		var d repository.VentaDiaria
		if err := rows.Scan(&d.Dia, &d.Total, &d.Cuenta); err != nil {
			return nil, fmt.Errorf("scan venta diaria: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// TotalesDelPeriodo ingreso, número de ventas y total anulado del rango.
func (r *ReporteRepo) TotalesDelPeriodo(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, int, decimal.Decimal, error) {
	var ingreso, anulado decimal.Decimal
	var ventas int
	err := r.pool.QueryRow(ctx, `
		SELECT
			COALESCE(sum(total) FILTER (WHERE estado <> 'anulada'), 0),
			count(*)             FILTER (WHERE estado <> 'anulada'),
			COALESCE(sum(total) FILTER (WHERE estado = 'anulada'), 0)
		FROM ventas WHERE fecha BETWEEN $1 AND $2`, desde, hasta,
	).Scan(&ingreso, &ventas, &anulado)
	if err != nil {
		return decimal.Zero, 0, decimal.Zero, fmt.Errorf("totales del periodo: %w", err)
	}
	return ingreso, ventas, anulado, nil
}

// TopProductos los limit productos con más unidades vendidas del rango.
func (r *ReporteRepo) TopProductos(ctx context.Context, desde, hasta time.Time, limit int) ([]repository.TopProducto, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.producto_id, d.producto, sum(d.cantidad)::int, COALESCE(sum(d.subtotal), 0)
		FROM venta_detalles d
		JOIN ventas v ON v.id = d.venta_id
		WHERE v.estado <> 'anulada' AND v.fecha BETWEEN $1 AND $2
		GROUP BY d.producto_id, d.producto
		ORDER BY sum(d.cantidad) DESC
		LIMIT $3`, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProducto
	for rows.Next() {
		var t repository.TopProducto
		if err := rows.Scan(&t.ProductoID, &t.Nombre, &t.Unidades, &t.Ingreso); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// IngresosPorMetodo ingreso del rango agrupado por método de pago.
func (r *ReporteRepo) IngresosPorMetodo(ctx context.Context, desde, hasta time.Time) ([]repository.TotalPorMetodo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT metodo_pago, COALESCE(sum(total), 0), count(*)
		FROM ventas
		WHERE estado <> 'anulada' AND fecha BETWEEN $1 AND $2
		GROUP BY metodo_pago ORDER BY sum(total) DESC`, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ingresos por metodo: %w", err)
	}
	defer rows.Close()
	var list []repository.TotalPorMetodo
	for rows.Next() {
		var t repository.TotalPorMetodo
		if err := rows.Scan(&t.MetodoPago, &t.Total, &t.Cuenta); err != nil {
			return nil, fmt.Errorf("scan total por metodo: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// TopClientes los limit clientes con más compras del rango.
func (r *ReporteRepo) TopClientes(ctx context.Context, desde, hasta time.Time, limit int) ([]repository.TopCliente, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cliente_nombre, COALESCE(max(cliente_dni), ''), count(*), COALESCE(sum(total), 0)
		FROM ventas
		WHERE estado <> 'anulada' AND fecha BETWEEN $1 AND $2
		GROUP BY cliente_nombre
		ORDER BY count(*) DESC, sum(total) DESC
		LIMIT $3`, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("top clientes: %w", err)
	}
	defer rows.Close()
	var list []repository.TopCliente
	for rows.Next() {
		var t repository.TopCliente
		if err := rows.Scan(&t.Nombre, &t.DNI, &t.Compras, &t.Total); err != nil {
			return nil, fmt.Errorf("scan top cliente: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// InventarioValorizado stock y valorización por producto activo.
func (r *ReporteRepo) InventarioValorizado(ctx context.Context) ([]repository.ProductoStock, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.nombre, COALESCE(c.nombre, ''), p.stock, p.precio, p.stock * p.precio
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.activo
		ORDER BY p.nombre`)
	if err != nil {
		return nil, fmt.Errorf("inventario valorizado: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductoStock
	for rows.Next() {
		var p repository.ProductoStock
		if err := rows.Scan(&p.ProductoID, &p.Nombre, &p.Categoria, &p.Stock, &p.Precio, &p.Valorizado); err != nil {
			return nil, fmt.Errorf("scan producto stock: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

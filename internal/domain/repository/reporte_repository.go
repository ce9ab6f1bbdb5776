package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// VentaDiaria total vendido en un día calendario.
type VentaDiaria struct {
	Dia    time.Time
	Total  decimal.Decimal
	Cuenta int
}

// TopProducto unidades e ingreso de un producto en un período.
type TopProducto struct {
	ProductoID string
	Nombre     string
	Unidades   int
	Ingreso    decimal.Decimal
}

// TotalPorMetodo ingreso agrupado por método de pago.
type TotalPorMetodo struct {
	MetodoPago string
	Total      decimal.Decimal
	Cuenta     int
}

// TopCliente cliente con más compras en un período.
type TopCliente struct {
	Nombre  string
	DNI     string
	Compras int
	Total   decimal.Decimal
}

// ProductoStock proyección de inventario para el reporte de productos.
type ProductoStock struct {
	ProductoID string
	Nombre     string
	Categoria  string
	Stock      int
	Precio     decimal.Decimal
	Valorizado decimal.Decimal // stock × precio
}

// ReporteRepository define las consultas de lectura para reportes y dashboard.
// Las implementaciones son read-only.
type ReporteRepository interface {
	// VentasPorDia devuelve el total e importe por día en el rango dado,
	// excluyendo ventas anuladas. COALESCE a cero si no hubo ventas.
	VentasPorDia(ctx context.Context, desde, hasta time.Time) ([]VentaDiaria, error)

	// TotalesDelPeriodo devuelve ingreso, número de ventas y total anulado del rango.
	TotalesDelPeriodo(ctx context.Context, desde, hasta time.Time) (ingreso decimal.Decimal, ventas int, anulado decimal.Decimal, err error)

	// TopProductos devuelve los limit productos con más unidades vendidas.
	TopProductos(ctx context.Context, desde, hasta time.Time, limit int) ([]TopProducto, error)

	// IngresosPorMetodo agrupa el ingreso del rango por método de pago.
	IngresosPorMetodo(ctx context.Context, desde, hasta time.Time) ([]TotalPorMetodo, error)

	// TopClientes devuelve los limit clientes con más compras del rango.
	TopClientes(ctx context.Context, desde, hasta time.Time, limit int) ([]TopCliente, error)

	// InventarioValorizado devuelve stock y valorización por producto activo.
	InventarioValorizado(ctx context.Context) ([]ProductoStock, error)
}

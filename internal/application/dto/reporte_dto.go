package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaDiariaDTO total de un día calendario.
type VentaDiariaDTO struct {
	Dia    string          `json:"dia"` // formato 2006-01-02
	Total  decimal.Decimal `json:"total"`
	Cuenta int             `json:"cuenta"`
}

// ReporteVentasResponse reporte de ventas por rango de fechas.
type ReporteVentasResponse struct {
	Desde       time.Time        `json:"desde"`
	Hasta       time.Time        `json:"hasta"`
	Total       decimal.Decimal  `json:"total"`
	CuentaTotal int              `json:"cuenta_total"`
	PorDia      []VentaDiariaDTO `json:"por_dia"`
}

// ProductoStockDTO stock y valorización de un producto.
type ProductoStockDTO struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Categoria  string          `json:"categoria"`
	Stock      int             `json:"stock"`
	Precio     decimal.Decimal `json:"precio"`
	Valorizado decimal.Decimal `json:"valorizado"`
}

// ReporteProductosResponse reporte de inventario valorizado y stock bajo.
type ReporteProductosResponse struct {
	Inventario      []ProductoStockDTO `json:"inventario"`
	StockBajo       []ProductoStockDTO `json:"stock_bajo"`
	ValorTotal      decimal.Decimal    `json:"valor_total"`
	UmbralStockBajo int                `json:"umbral_stock_bajo"`
}

// TopClienteDTO cliente con más compras del período.
type TopClienteDTO struct {
	Nombre  string          `json:"nombre"`
	DNI     string          `json:"dni,omitempty"`
	Compras int             `json:"compras"`
	Total   decimal.Decimal `json:"total"`
}

// ReporteClientesResponse reporte de mejores clientes.
type ReporteClientesResponse struct {
	Desde time.Time       `json:"desde"`
	Hasta time.Time       `json:"hasta"`
	Top   []TopClienteDTO `json:"top"`
}

// ReporteFinancieroResponse ingreso por método de pago y neto del período.
type ReporteFinancieroResponse struct {
	Desde         time.Time           `json:"desde"`
	Hasta         time.Time           `json:"hasta"`
	Ingreso       decimal.Decimal     `json:"ingreso"`
	Anulado       decimal.Decimal     `json:"anulado"`
	Neto          decimal.Decimal     `json:"neto"`
	PorMetodoPago []MetodoPagoStatDTO `json:"por_metodo_pago"`
}

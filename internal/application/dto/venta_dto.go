package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemVentaRequest una línea del borrador de venta.
type ItemVentaRequest struct {
	ProductoID     string          `json:"producto_id" validate:"required,uuid"`
	Cantidad       int             `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"` // 0 = usar precio de catálogo
}

// CreateVentaRequest entrada para registrar una venta en caja.
type CreateVentaRequest struct {
	ClienteNombre   string             `json:"cliente_nombre" validate:"required"`
	ClienteTelefono string             `json:"cliente_telefono"`
	ClienteDNI      string             `json:"cliente_dni"`
	Items           []ItemVentaRequest `json:"detalles" validate:"required,min=1,dive"`
	MetodoPago      string             `json:"metodo_pago" validate:"required,oneof=efectivo tarjeta transferencia yape"`
	MontoPagado     decimal.Decimal    `json:"monto_pagado"`
}

// AnularVentaRequest entrada para anular una venta.
type AnularVentaRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5"`
}

// VentaDetalleResponse línea de venta en respuestas.
type VentaDetalleResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID              string                 `json:"id"`
	Numero          string                 `json:"numero"`
	ClienteNombre   string                 `json:"cliente_nombre"`
	ClienteTelefono string                 `json:"cliente_telefono,omitempty"`
	ClienteDNI      string                 `json:"cliente_dni,omitempty"`
	Detalles        []VentaDetalleResponse `json:"detalles,omitempty"`
	Total           decimal.Decimal        `json:"total"`
	MetodoPago      string                 `json:"metodo_pago"`
	MontoPagado     decimal.Decimal        `json:"monto_pagado"`
	Vuelto          decimal.Decimal        `json:"vuelto"`
	Estado          string                 `json:"estado"`
	Fecha           time.Time              `json:"fecha"`
	MotivoAnulacion string                 `json:"motivo_anulacion,omitempty"`
	AnuladoPor      string                 `json:"anulado_por,omitempty"`
}

// VentaListResponse lista paginada de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ClienteFrecuenteResponse cliente recurrente para el autocompletado de caja.
type ClienteFrecuenteResponse struct {
	Nombre       string          `json:"nombre"`
	Telefono     string          `json:"telefono,omitempty"`
	DNI          string          `json:"dni,omitempty"`
	Compras      int             `json:"compras"`
	TotalGastado decimal.Decimal `json:"total_gastado"`
}

// VentasStatsResponse métricas para el dashboard.
type VentasStatsResponse struct {
	VentasHoy     decimal.Decimal     `json:"ventas_hoy"`
	CuentaHoy     int                 `json:"cuenta_hoy"`
	VentasMes     decimal.Decimal     `json:"ventas_mes"`
	CuentaMes     int                 `json:"cuenta_mes"`
	AnuladoMes    decimal.Decimal     `json:"anulado_mes"`
	PorMetodoPago []MetodoPagoStatDTO `json:"por_metodo_pago"`
}

// MetodoPagoStatDTO ingreso por método de pago.
type MetodoPagoStatDTO struct {
	MetodoPago string          `json:"metodo_pago"`
	Total      decimal.Decimal `json:"total"`
	Cuenta     int             `json:"cuenta"`
}

// TopProductoDTO producto más vendido.
type TopProductoDTO struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Unidades   int             `json:"unidades"`
	Ingreso    decimal.Decimal `json:"ingreso"`
}

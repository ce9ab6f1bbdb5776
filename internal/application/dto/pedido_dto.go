package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdatePedidoEstadoRequest entrada para cambiar el estado de un pedido.
type UpdatePedidoEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente confirmado cancelado"`
}

// PedidoDetalleResponse línea de pedido en respuestas.
type PedidoDetalleResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID              string                  `json:"id"`
	ClienteNombre   string                  `json:"cliente_nombre"`
	ClienteTelefono string                  `json:"cliente_telefono,omitempty"`
	ClienteEmail    string                  `json:"cliente_email,omitempty"`
	Detalles        []PedidoDetalleResponse `json:"detalles"`
	Total           decimal.Decimal         `json:"total"`
	Estado          string                  `json:"estado"`
	Fecha           time.Time               `json:"fecha"`
}

// PedidoListResponse lista paginada de pedidos.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// ConvertirPedidoResponse salida de la conversión pedido → venta.
type ConvertirPedidoResponse struct {
	Venta  VentaResponse  `json:"venta"`
	Pedido PedidoResponse `json:"pedido"`
}

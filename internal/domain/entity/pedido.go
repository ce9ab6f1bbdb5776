package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido (originado por WhatsApp).
const (
	PedidoPendiente  = "pendiente"
	PedidoConfirmado = "confirmado"
	PedidoCancelado  = "cancelado"
)

// Pedido representa un pedido de cliente iniciado por WhatsApp, pendiente de
// confirmación. Se convierte en Venta al confirmarse.
type Pedido struct {
	ID              string
	ClienteNombre   string
	ClienteTelefono string
	ClienteEmail    string
	Detalles        []*PedidoDetalle
	Estado          string
	Fecha           time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PedidoDetalle es una línea de pedido.
type PedidoDetalle struct {
	ID             string
	PedidoID       string
	ProductoID     string
	Producto       string // nombre denormalizado
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Total suma precio unitario × cantidad sobre las líneas del pedido.
func (p *Pedido) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Detalles {
		total = total.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	return total
}

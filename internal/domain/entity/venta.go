package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	VentaPendiente  = "pendiente"
	VentaCompletada = "completada"
	VentaConfirmada = "confirmado" // ventas originadas por pedidos de WhatsApp
	VentaAnulada    = "anulada"
	VentaCancelada  = "cancelada"
)

// Métodos de pago aceptados en caja.
const (
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
	PagoTransferencia = "transferencia"
	PagoYape          = "yape"
)

// MetodosPago lista los métodos válidos en orden de presentación.
var MetodosPago = []string{PagoEfectivo, PagoTarjeta, PagoTransferencia, PagoYape}

// MetodoPagoValido indica si s es un método de pago aceptado.
func MetodoPagoValido(s string) bool {
	for _, m := range MetodosPago {
		if m == s {
			return true
		}
	}
	return false
}

// Venta representa una transacción de venta registrada en caja.
// Total y Vuelto son los valores autoritativos calculados por el servidor
// al crearla; el cliente solo los sugiere.
type Venta struct {
	ID              string
	Numero          string // consecutivo legible, ej. V-1718900000
	ClienteNombre   string
	ClienteTelefono string
	ClienteDNI      string
	Detalles        []*VentaDetalle
	Total           decimal.Decimal
	MetodoPago      string
	MontoPagado     decimal.Decimal
	Vuelto          decimal.Decimal
	Estado          string
	Fecha           time.Time
	MotivoAnulacion string
	AnuladoPor      string // ID del usuario que anuló
	VendedorID      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VentaDetalle es una línea de venta.
type VentaDetalle struct {
	ID             string
	VentaID        string
	ProductoID     string
	Producto       string // nombre denormalizado al momento de la venta
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

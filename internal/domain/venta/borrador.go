// Package venta contiene la lógica pura del flujo de caja: totales, vuelto,
// validación del borrador de venta, autocompletado y la regla de anulación.
// No depende de HTTP ni de persistencia; es la parte del sistema que se
// prueba en profundidad.
package venta

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
)

// Item es una línea seleccionada en el borrador de venta.
type Item struct {
	ProductoID     string
	Producto       string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Borrador es el estado del formulario de venta antes de enviarse.
type Borrador struct {
	ClienteNombre   string
	ClienteTelefono string
	ClienteDNI      string
	Items           []Item
	MetodoPago      string
	MontoPagado     decimal.Decimal
}

// CalcularTotal suma precio unitario × cantidad sobre los items. Lista vacía → 0.
func CalcularTotal(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))))
	}
	return total
}

// CalcularVuelto devuelve el vuelto a mostrar y si el pago alcanza.
// Si montoPagado < total el vuelto mostrado se fija en 0 y suficiente es false;
// la diferencia cruda queda para el mensaje de pago insuficiente.
func CalcularVuelto(total, montoPagado decimal.Decimal) (vuelto decimal.Decimal, suficiente bool) {
	diff := montoPagado.Sub(total)
	if diff.IsNegative() {
		return decimal.Zero, false
	}
	return diff, true
}

// AgregarProducto añade un producto al borrador con cantidad 1.
// Es idempotente por ProductoID: reagregar un producto existente no cambia la lista.
func AgregarProducto(items []Item, p *entity.Producto) []Item {
	for _, it := range items {
		if it.ProductoID == p.ID {
			return items
		}
	}
	return append(items, Item{
		ProductoID:     p.ID,
		Producto:       p.Nombre,
		Cantidad:       1,
		PrecioUnitario: p.Precio,
	})
}

// QuitarProducto elimina la línea con el ProductoID dado.
func QuitarProducto(items []Item, productoID string) []Item {
	out := items[:0]
	for _, it := range items {
		if it.ProductoID != productoID {
			out = append(out, it)
		}
	}
	return out
}

// Claves del mapa de errores de validación.
const (
	CampoCliente    = "cliente_nombre"
	CampoTelefono   = "cliente_telefono"
	CampoDNI        = "cliente_dni"
	CampoProductos  = "productos"
	CampoCantidad   = "cantidad"
	CampoMetodoPago = "metodo_pago"
	CampoMonto      = "monto_pagado"
)

// Validar revisa el borrador completo y devuelve un mapa campo → mensaje.
// Un mapa vacío significa que el borrador puede enviarse. Reglas:
//   - nombre de cliente con al menos dos palabras
//   - teléfono opcional, pero si viene debe tener ≥6 caracteres
//   - DNI opcional, pero si viene debe ser de exactamente 8 dígitos
//   - al menos un producto, cada línea con cantidad ≥1
//   - método de pago dentro del catálogo
//   - monto pagado ≥ total
func Validar(b Borrador) map[string]string {
	errs := make(map[string]string)

	if len(strings.Fields(b.ClienteNombre)) < 2 {
		errs[CampoCliente] = "ingrese nombre y apellido del cliente"
	}
	if tel := strings.TrimSpace(b.ClienteTelefono); tel != "" && len(tel) < 6 {
		errs[CampoTelefono] = "el teléfono debe tener al menos 6 caracteres"
	}
	if dni := strings.TrimSpace(b.ClienteDNI); dni != "" && !DNIValido(dni) {
		errs[CampoDNI] = "el DNI debe tener 8 dígitos"
	}

	if len(b.Items) == 0 {
		errs[CampoProductos] = "agregue al menos un producto"
	}
	for _, it := range b.Items {
		if it.Cantidad < 1 {
			errs[CampoCantidad] = "la cantidad de " + it.Producto + " debe ser al menos 1"
			break
		}
	}

	if !entity.MetodoPagoValido(b.MetodoPago) {
		errs[CampoMetodoPago] = "seleccione un método de pago"
	}

	if len(b.Items) > 0 {
		total := CalcularTotal(b.Items)
		if b.MontoPagado.LessThan(total) {
			errs[CampoMonto] = "el monto pagado es menor al total"
		}
	}

	return errs
}

// DNIValido indica si s son exactamente 8 dígitos.
func DNIValido(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

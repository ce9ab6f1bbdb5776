package venta_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/venta"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func item(id string, precio string, cantidad int) venta.Item {
	return venta.Item{
		ProductoID:     id,
		Producto:       "Producto " + id,
		Cantidad:       cantidad,
		PrecioUnitario: decimal.RequireFromString(precio),
	}
}

func borradorValido() venta.Borrador {
	return venta.Borrador{
		ClienteNombre: "Maria Lopez",
		Items:         []venta.Item{item("p1", "10.00", 2)},
		MetodoPago:    entity.PagoEfectivo,
		MontoPagado:   decimal.RequireFromString("25"),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CalcularTotal
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularTotal_ListaVacia(t *testing.T) {
	assert.True(t, venta.CalcularTotal(nil).IsZero(), "sin items el total debe ser 0")
}

func TestCalcularTotal_SumaPrecioPorCantidad(t *testing.T) {
	items := []venta.Item{
		item("p1", "10.50", 2), // 21.00
		item("p2", "3.20", 3),  // 9.60
	}
	total := venta.CalcularTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("30.60")),
		"total = Σ precio × cantidad, got %s", total)
}

// ──────────────────────────────────────────────────────────────────────────────
// CalcularVuelto
// ──────────────────────────────────────────────────────────────────────────────

func TestCalcularVuelto_PagoExacto(t *testing.T) {
	vuelto, ok := venta.CalcularVuelto(decimal.RequireFromString("20"), decimal.RequireFromString("20"))
	assert.True(t, ok)
	assert.True(t, vuelto.IsZero())
}

func TestCalcularVuelto_PagoConExceso(t *testing.T) {
	vuelto, ok := venta.CalcularVuelto(decimal.RequireFromString("20"), decimal.RequireFromString("25"))
	assert.True(t, ok)
	assert.True(t, vuelto.Equal(decimal.RequireFromString("5")), "vuelto = pagado − total")
}

func TestCalcularVuelto_PagoInsuficiente(t *testing.T) {
	// El vuelto mostrado se fija en 0 y se levanta la bandera de insuficiencia.
	vuelto, ok := venta.CalcularVuelto(decimal.RequireFromString("20"), decimal.RequireFromString("15"))
	assert.False(t, ok, "pago menor al total debe marcar insuficiencia")
	assert.True(t, vuelto.IsZero(), "el vuelto mostrado se clampa a 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// AgregarProducto / QuitarProducto
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregarProducto_CantidadInicialUno(t *testing.T) {
	p := &entity.Producto{ID: "p1", Nombre: "Martillo", Precio: decimal.RequireFromString("35.90"), Activo: true}
	items := venta.AgregarProducto(nil, p)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Cantidad)
	assert.Equal(t, "Martillo", items[0].Producto)
	assert.True(t, items[0].PrecioUnitario.Equal(p.Precio))
}

func TestAgregarProducto_Idempotente(t *testing.T) {
	p := &entity.Producto{ID: "p1", Nombre: "Martillo", Precio: decimal.RequireFromString("35.90")}
	items := venta.AgregarProducto(nil, p)
	items = venta.AgregarProducto(items, p)
	assert.Len(t, items, 1, "reagregar el mismo producto no debe duplicar la línea")
}

func TestQuitarProducto(t *testing.T) {
	items := []venta.Item{item("p1", "10", 1), item("p2", "5", 2)}
	items = venta.QuitarProducto(items, "p1")
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductoID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validar
// ──────────────────────────────────────────────────────────────────────────────

func TestValidar_NombreDeUnaPalabra(t *testing.T) {
	b := borradorValido()
	b.ClienteNombre = "Juan"
	errs := venta.Validar(b)
	assert.Contains(t, errs, venta.CampoCliente, "una sola palabra no es nombre completo")
}

func TestValidar_SinProductos(t *testing.T) {
	b := borradorValido()
	b.Items = nil
	errs := venta.Validar(b)
	assert.Contains(t, errs, venta.CampoProductos)
}

func TestValidar_CantidadCero(t *testing.T) {
	b := borradorValido()
	b.Items = []venta.Item{item("p1", "10", 0)}
	errs := venta.Validar(b)
	assert.Contains(t, errs, venta.CampoCantidad)
}

func TestValidar_TelefonoCorto(t *testing.T) {
	b := borradorValido()
	b.ClienteTelefono = "123"
	errs := venta.Validar(b)
	assert.Contains(t, errs, venta.CampoTelefono)
}

func TestValidar_TelefonoVacioEsOpcional(t *testing.T) {
	b := borradorValido()
	b.ClienteTelefono = ""
	errs := venta.Validar(b)
	assert.NotContains(t, errs, venta.CampoTelefono)
}

func TestValidar_DNIInvalido(t *testing.T) {
	casos := []string{"1234567", "123456789", "12a45678"}
	for _, dni := range casos {
		b := borradorValido()
		b.ClienteDNI = dni
		errs := venta.Validar(b)
		assert.Contains(t, errs, venta.CampoDNI, "dni %q debe rechazarse", dni)
	}
}

func TestValidar_DNIDeOchoDigitos(t *testing.T) {
	b := borradorValido()
	b.ClienteDNI = "45781236"
	errs := venta.Validar(b)
	assert.NotContains(t, errs, venta.CampoDNI)
}

func TestValidar_MetodoPagoDesconocido(t *testing.T) {
	b := borradorValido()
	b.MetodoPago = "cheque"
	errs := venta.Validar(b)
	assert.Contains(t, errs, venta.CampoMetodoPago)
}

func TestValidar_MontoInsuficiente(t *testing.T) {
	b := borradorValido() // total 20.00
	b.MontoPagado = decimal.RequireFromString("19.99")
	errs := venta.Validar(b)
	assert.Contains(t, errs, venta.CampoMonto)
}

func TestValidar_BorradorCompleto_SinErrores(t *testing.T) {
	errs := venta.Validar(borradorValido())
	assert.Empty(t, errs, "un borrador bien formado debe pasar con mapa vacío: %v", errs)
}

// Escenario de punta a punta del formulario de caja: cliente "Maria Lopez",
// un producto a 10.00 con cantidad 2, efectivo, pagó 25 → total 20, vuelto 5.
func TestEscenario_VentaSimple(t *testing.T) {
	p := &entity.Producto{ID: "p1", Nombre: "Cinta métrica", Precio: decimal.RequireFromString("10.00"), Activo: true}
	items := venta.AgregarProducto(nil, p)
	items[0].Cantidad = 2

	total := venta.CalcularTotal(items)
	require.True(t, total.Equal(decimal.RequireFromString("20.00")))

	vuelto, ok := venta.CalcularVuelto(total, decimal.RequireFromString("25"))
	require.True(t, ok)
	require.True(t, vuelto.Equal(decimal.RequireFromString("5")))

	errs := venta.Validar(venta.Borrador{
		ClienteNombre: "Maria Lopez",
		Items:         items,
		MetodoPago:    entity.PagoEfectivo,
		MontoPagado:   decimal.RequireFromString("25"),
	})
	assert.Empty(t, errs)
}

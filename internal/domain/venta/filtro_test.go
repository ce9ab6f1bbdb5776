package venta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/venta"
)

func clientes() []*entity.ClienteFrecuente {
	return []*entity.ClienteFrecuente{
		{Nombre: "Ana Torres", Telefono: "987654321", DNI: "45781236"},
		{Nombre: "Luis Mamani", Telefono: "912345678", DNI: "40123456"},
	}
}

func TestFiltrarClientes_SubcadenaInsensibleAMayusculas(t *testing.T) {
	// "an" coincide con "Ana" y con "Mamani".
	out := venta.FiltrarClientes(clientes(), "an")
	require.Len(t, out, 2)
	assert.Equal(t, "Ana Torres", out[0].Nombre)
	assert.Equal(t, "Luis Mamani", out[1].Nombre)
}

func TestFiltrarClientes_SinCoincidencias(t *testing.T) {
	assert.Empty(t, venta.FiltrarClientes(clientes(), "zzz"))
}

func TestFiltrarClientes_ConsultaVacia(t *testing.T) {
	assert.Empty(t, venta.FiltrarClientes(clientes(), "   "),
		"sin consulta no se sugiere nada")
}

func TestFiltrarClientes_PorTelefonoYDNI(t *testing.T) {
	out := venta.FiltrarClientes(clientes(), "9876")
	require.Len(t, out, 1)
	assert.Equal(t, "Ana Torres", out[0].Nombre)

	out = venta.FiltrarClientes(clientes(), "40123")
	require.Len(t, out, 1)
	assert.Equal(t, "Luis Mamani", out[0].Nombre)
}

func TestFiltrarClientes_IgnoraTildes(t *testing.T) {
	cs := []*entity.ClienteFrecuente{{Nombre: "José Pérez"}}
	out := venta.FiltrarClientes(cs, "perez")
	require.Len(t, out, 1, "la búsqueda sin tilde debe encontrar el nombre acentuado")

	out = venta.FiltrarClientes(cs, "PÉREZ")
	assert.Len(t, out, 1)
}

func producto(nombre string, activo bool) *entity.Producto {
	return &entity.Producto{ID: nombre, Nombre: nombre, Activo: activo}
}

func TestFiltrarProductos_SoloActivos(t *testing.T) {
	ps := []*entity.Producto{
		producto("Martillo carpintero", true),
		producto("Martillo demolición", false),
	}
	out := venta.FiltrarProductos(ps, "martillo")
	require.Len(t, out, 1)
	assert.Equal(t, "Martillo carpintero", out[0].Nombre)
}

func TestFiltrarProductos_ConsultaVacia(t *testing.T) {
	assert.Empty(t, venta.FiltrarProductos([]*entity.Producto{producto("Clavos", true)}, ""))
}

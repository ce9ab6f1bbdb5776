package venta

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
)

// normalizar baja a minúsculas y quita tildes ("Pérez" → "perez") para que el
// autocompletado encuentre coincidencias sin importar acentos.
func normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// contiene hace el match por subcadena, insensible a mayúsculas y tildes.
func contiene(texto, q string) bool {
	return strings.Contains(normalizar(texto), normalizar(q))
}

// FiltrarClientes devuelve los clientes frecuentes cuyo nombre, teléfono o DNI
// contiene la consulta. Consulta vacía → lista vacía (no se sugiere nada).
func FiltrarClientes(clientes []*entity.ClienteFrecuente, q string) []*entity.ClienteFrecuente {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	var out []*entity.ClienteFrecuente
	for _, c := range clientes {
		if contiene(c.Nombre, q) || strings.Contains(c.Telefono, q) || strings.Contains(c.DNI, q) {
			out = append(out, c)
		}
	}
	return out
}

// FiltrarProductos devuelve los productos activos cuyo nombre contiene la
// consulta. Consulta vacía → lista vacía.
func FiltrarProductos(productos []*entity.Producto, q string) []*entity.Producto {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	var out []*entity.Producto
	for _, p := range productos {
		if p.Activo && contiene(p.Nombre, q) {
			out = append(out, p)
		}
	}
	return out
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo de la ferretería.
// Stock es único por producto (la tienda tiene un solo local); se descuenta
// al registrar una venta y se restaura al anularla.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal // precio de venta unitario
	Stock       int
	CategoriaID string
	Categoria   *Categoria // cargada por join en listados; nil si no se pidió
	Imagen      string     // ruta pública de la imagen (ej. /uploads/<uuid>.jpg)
	Activo      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

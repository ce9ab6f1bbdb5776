package entity

import "time"

// Categoria representa una categoría de productos.
type Categoria struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

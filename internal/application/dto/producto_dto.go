package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CategoriaID string          `json:"categoria_id" validate:"required,uuid"`
	Imagen      string          `json:"imagen"`
}

// UpdateProductoRequest entrada para actualización parcial de un producto.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
	CategoriaID *string          `json:"categoria_id"`
	Imagen      *string          `json:"imagen"`
	Activo      *bool            `json:"activo"`
}

// CategoriaResumen categoría embebida dentro de un producto.
type CategoriaResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string            `json:"id"`
	Nombre      string            `json:"nombre"`
	Descripcion string            `json:"descripcion"`
	Precio      decimal.Decimal   `json:"precio"`
	Stock       int               `json:"stock"`
	CategoriaID string            `json:"categoria_id"`
	Categoria   *CategoriaResumen `json:"categoria,omitempty"`
	Imagen      string            `json:"imagen"`
	Activo      bool              `json:"activo"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// UploadImagenResponse salida de la subida de imagen.
type UploadImagenResponse struct {
	URL string `json:"url"`
}

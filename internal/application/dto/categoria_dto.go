package dto

import "time"

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion"`
}

// UpdateCategoriaRequest entrada para actualizar una categoría.
type UpdateCategoriaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Descripcion *string `json:"descripcion"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package dto

import "time"

// CreateUsuarioRequest entrada para crear un usuario (el password se hashea en el use case).
type CreateUsuarioRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required,oneof=admin vendedor empleado cliente"`
}

// UpdateUsuarioRequest entrada para actualizar un usuario.
type UpdateUsuarioRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Rol    *string `json:"rol" validate:"omitempty,oneof=admin vendedor empleado cliente"`
	Activo *bool   `json:"activo"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	Permisos  []string  `json:"permisos,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse lista paginada de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

package dto

// LoginRequest entrada para login con email y password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// GoogleURLResponse URL de autorización para el flujo de Google.
type GoogleURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GoogleCallbackRequest entrada del callback de Google (código de autorización).
type GoogleCallbackRequest struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state"`
}

// ConsultaDNIResponse resultado de la consulta al registro nacional.
type ConsultaDNIResponse struct {
	DNI             string `json:"dni"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	NombreCompleto  string `json:"nombre_completo"`
}

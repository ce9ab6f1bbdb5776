package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/auth"
	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
)

// AuthHandler maneja login con email/password y con Google.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GoogleURL godoc
// @Summary      URL de autorización de Google
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.GoogleURLResponse}
// @Router       /api/auth/google/url [get]
func (h *AuthHandler) GoogleURL(c *fiber.Ctx) error {
	out, err := h.uc.GoogleURL()
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GoogleCallback godoc
// @Summary      Completar login con Google
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GoogleCallbackRequest  true  "Código de autorización"
// @Success      200   {object}  dto.Envelope{data=dto.LoginResponse}
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/google/callback [post]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	var in dto.GoogleCallbackRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Code == "" {
		return badRequest(c, "VALIDATION", "code es requerido")
	}
	out, err := h.uc.GoogleCallback(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

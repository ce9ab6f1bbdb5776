package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/application/usecase"
	"github.com/jmgutierrez/ferreteria-api/internal/application/ventas"
)

// UsuarioHandler maneja las peticiones HTTP de usuarios y clientes frecuentes
// (protegido).
type UsuarioHandler struct {
	uc        *usecase.UsuarioUseCase
	consultas *ventas.ConsultasUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase, consultas *ventas.ConsultasUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc, consultas: consultas}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUsuarioRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.Envelope{data=dto.UsuarioResponse}
// @Failure      409   {object}  dto.Envelope  "email ya registrado"
// @Router       /api/users [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return badRequest(c, "VALIDATION", "name, email y password son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.Envelope{data=dto.UsuarioListResponse}
// @Router       /api/users [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope{data=dto.UsuarioResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/users/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUsuarioRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.UsuarioResponse}
// @Failure      404   {object}  dto.Envelope
// @Router       /api/users/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.UpdateUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// FrequentClients godoc
// @Summary      Clientes frecuentes
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  false  "Búsqueda parcial (nombre, teléfono o DNI)"
// @Param        limit  query  int     false  "Cantidad"  default(10)
// @Success      200  {object}  dto.Envelope{data=[]dto.ClienteFrecuenteResponse}
// @Router       /api/users/frequent-clients [get]
func (h *UsuarioHandler) FrequentClients(c *fiber.Ctx) error {
	out, err := h.consultas.ClientesFrecuentes(c.Context(), c.Query("q"), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/infrastructure/reniec"
)

// ClienteHandler resuelve la consulta de clientes contra el registro nacional.
type ClienteHandler struct {
	consultor reniec.Consultor
}

// NewClienteHandler construye el handler.
func NewClienteHandler(consultor reniec.Consultor) *ClienteHandler {
	return &ClienteHandler{consultor: consultor}
}

// ConsultarDNI godoc
// @Summary      Consultar nombre por DNI
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        dni  path  string  true  "DNI de 8 dígitos"
// @Success      200  {object}  dto.Envelope{data=dto.ConsultaDNIResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/clients/dni/{dni} [get]
func (h *ClienteHandler) ConsultarDNI(c *fiber.Ctx) error {
	dni := c.Params("dni")
	persona, err := h.consultor.ConsultarDNI(c.Context(), dni)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, dto.ConsultaDNIResponse{
		DNI:             persona.DNI,
		Nombres:         persona.Nombres,
		ApellidoPaterno: persona.ApellidoPaterno,
		ApellidoMaterno: persona.ApellidoMaterno,
		NombreCompleto:  persona.NombreCompleto(),
	})
}

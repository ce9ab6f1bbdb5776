package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/application/pedidos"
)

// PedidoHandler maneja las peticiones HTTP de pedidos de WhatsApp (protegido).
type PedidoHandler struct {
	uc *pedidos.PedidoUseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedidos.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Envelope{data=dto.PedidoListResponse}
// @Router       /api/orders [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.Listar(c.Context(), c.Query("estado"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// GetByID godoc
// @Summary      Obtener pedido con detalle
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.Envelope{data=dto.PedidoResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/orders/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdatePedidoEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.Envelope{data=dto.PedidoResponse}
// @Failure      409   {object}  dto.Envelope  "pedido ya no está pendiente"
// @Router       /api/orders/{id}/status [put]
func (h *PedidoHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.UpdatePedidoEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.CambiarEstado(c.Context(), id, in.Estado)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, out)
}

// Convert godoc
// @Summary      Convertir pedido en venta
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      201  {object}  dto.Envelope{data=dto.ConvertirPedidoResponse}
// @Failure      409  {object}  dto.Envelope  "no pendiente o stock insuficiente"
// @Router       /api/orders/{id}/convert [post]
func (h *PedidoHandler) Convert(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.Convertir(c.Context(), id, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, out)
}

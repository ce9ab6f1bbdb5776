package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/application/ventas"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
)

// respondError traduce los errores de dominio al sobre {success:false, code,
// message} y su status HTTP. El panel web discrimina por code, nunca por el
// texto del mensaje.
func respondError(c *fiber.Ctx, err error) error {
	var ev *ventas.ErrValidacion
	if errors.As(err, &ev) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationError(ev.Campos))
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("NOT_FOUND", "recurso no encontrado"))
	case errors.Is(err, domain.ErrDNINoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("DNI_NOT_FOUND", "DNI no encontrado en el registro"))
	case errors.Is(err, domain.ErrDNIInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("DNI_INVALID", "el DNI debe tener 8 dígitos"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("VALIDATION", "datos inválidos"))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("DUPLICATE", "el registro ya existe"))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("CONFLICT", "la operación entra en conflicto con el estado actual"))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("INSUFFICIENT_STOCK", "stock insuficiente para completar la venta"))
	case errors.Is(err, domain.ErrVentaAnulada):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("SALE_ALREADY_VOID", "la venta ya está anulada"))
	case errors.Is(err, domain.ErrVentaFueraDePlazo):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("SALE_VOID_WINDOW_EXPIRED", "solo se puede anular dentro de las 24 horas"))
	case errors.Is(err, domain.ErrMotivoRequerido):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Error("VOID_REASON_REQUIRED", "el motivo de anulación es muy corto"))
	case errors.Is(err, domain.ErrPedidoNoPendiente):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("ORDER_NOT_PENDING", "el pedido ya no está pendiente"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("FORBIDDEN", "no tiene permiso para esta operación"))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", "error interno"))
}

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(dto.OK(data))
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Error(code, message))
}

package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Anulación de ventas.
	ErrVentaAnulada      = errors.New("la venta ya está anulada")
	ErrVentaFueraDePlazo = errors.New("solo se pueden anular ventas con menos de 24 horas")
	ErrMotivoRequerido   = errors.New("el motivo de anulación debe tener al menos 5 caracteres")

	// Pedidos.
	ErrPedidoNoPendiente = errors.New("el pedido no está pendiente")

	// Consulta DNI.
	ErrDNIInvalido     = errors.New("el DNI debe tener 8 dígitos")
	ErrDNINoEncontrado = errors.New("DNI no encontrado en el registro")
)

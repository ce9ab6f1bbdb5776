package repository

import (
	"time"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
)

// VentaFilter filtros de listado de ventas.
type VentaFilter struct {
	Estado string
	Desde  time.Time // cero = sin límite inferior
	Hasta  time.Time // cero = sin límite superior
	Limit  int
	Offset int
}

// VentaRepository define el puerto de persistencia para Venta (DIP).
type VentaRepository interface {
	Create(v *entity.Venta) error
	CreateDetalle(d *entity.VentaDetalle) error
	GetByID(id string) (*entity.Venta, error)
	// GetDetalles carga las líneas de una venta.
	GetDetalles(ventaID string) ([]*entity.VentaDetalle, error)
	// Anular marca la venta como anulada con su auditoría, solo si aún no lo
	// está. Si otra transacción la anuló primero devuelve domain.ErrVentaAnulada;
	// de dos anulaciones concurrentes a lo sumo una surte efecto.
	Anular(v *entity.Venta) error
	List(f VentaFilter) ([]*entity.Venta, int, error)
	// ClientesFrecuentes agrega las ventas no anuladas por cliente
	// (nombre/teléfono/DNI) y devuelve los limit con más compras.
	ClientesFrecuentes(limit int) ([]*entity.ClienteFrecuente, error)
}

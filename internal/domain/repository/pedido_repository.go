package repository

import "github.com/jmgutierrez/ferreteria-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	GetByID(id string) (*entity.Pedido, error)
	GetDetalles(pedidoID string) ([]*entity.PedidoDetalle, error)
	List(estado string, limit, offset int) ([]*entity.Pedido, int, error)
	// UpdateEstado transiciona un pedido que sigue pendiente; si ya salió de
	// pendiente devuelve domain.ErrPedidoNoPendiente. De dos transiciones
	// concurrentes a lo sumo una surte efecto.
	UpdateEstado(id, estado string) error
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository (usable con pool o tx).
// Los pedidos entran por el webhook de WhatsApp; este servicio solo los lee
// y les cambia el estado.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// GetByID obtiene un pedido con sus detalles.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), `
		SELECT id, cliente_nombre, cliente_telefono, cliente_email, estado, fecha, created_at, updated_at
		FROM pedidos WHERE id = $1`, id,
	).Scan(&p.ID, &p.ClienteNombre, &p.ClienteTelefono, &p.ClienteEmail, &p.Estado, &p.Fecha, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	detalles, err := r.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	p.Detalles = detalles
	return &p, nil
}

// GetDetalles carga las líneas de un pedido.
func (r *PedidoRepo) GetDetalles(pedidoID string) ([]*entity.PedidoDetalle, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, pedido_id, producto_id, producto, cantidad, precio_unitario
		FROM pedido_detalles WHERE pedido_id = $1 ORDER BY producto`, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("get pedido detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.PedidoDetalle
	for rows.Next() {
		var d entity.PedidoDetalle
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.ProductoID, &d.Producto, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan pedido detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista pedidos, opcionalmente por estado, con total sin paginar.
// Los detalles se cargan por pedido; los volúmenes de la tienda son bajos.
func (r *PedidoRepo) List(estado string, limit, offset int) ([]*entity.Pedido, int, error) {
	where := ""
	args := []any{}
	if estado != "" {
		where = "WHERE estado = $1"
		args = append(args, estado)
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM pedidos `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pedidos: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, cliente_nombre, cliente_telefono, cliente_email, estado, fecha, created_at, updated_at
		FROM pedidos %s ORDER BY fecha DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.ClienteNombre, &p.ClienteTelefono, &p.ClienteEmail, &p.Estado, &p.Fecha, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, p := range list {
		detalles, err := r.GetDetalles(p.ID)
		if err != nil {
			return nil, 0, err
		}
		p.Detalles = detalles
	}
	return list, total, nil
}

// UpdateEstado cambia el estado de un pedido que sigue pendiente. La condición
// de estado en el UPDATE impide que dos transiciones concurrentes surtan efecto
// ambas: si el pedido ya salió de pendiente no afecta filas y se devuelve
// ErrPedidoNoPendiente.
func (r *PedidoRepo) UpdateEstado(id, estado string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $2, updated_at = now() WHERE id = $1 AND estado = $3`,
		id, estado, entity.PedidoPendiente)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPedidoNoPendiente
	}
	return nil
}

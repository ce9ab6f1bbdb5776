package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jmgutierrez/ferreteria-api/internal/application/pedidos"
	"github.com/jmgutierrez/ferreteria-api/internal/application/ventas"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

var (
	_ ventas.TxRunner  = (*TxRunner)(nil)
	_ pedidos.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Lo usan la creación y anulación de ventas (venta + descuento/restauración de stock)
// y la conversión pedido → venta (venta + confirmación del pedido, atómicas).
func (r *TxRunner) Run(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ventaRepo := NewVentaRepository(tx)
	productoRepo := NewProductoRepository(tx)
	pedidoRepo := NewPedidoRepository(tx)

	if err := fn(ventaRepo, productoRepo, pedidoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

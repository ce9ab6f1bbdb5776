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

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaCols = `id, numero, cliente_nombre, cliente_telefono, cliente_dni, total, metodo_pago, monto_pagado, vuelto, estado, fecha, motivo_anulacion, anulado_por, vendedor_id, created_at, updated_at`

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	err := row.Scan(
		&v.ID, &v.Numero, &v.ClienteNombre, &v.ClienteTelefono, &v.ClienteDNI,
		&v.Total, &v.MetodoPago, &v.MontoPagado, &v.Vuelto, &v.Estado, &v.Fecha,
		&v.MotivoAnulacion, &v.AnuladoPor, &v.VendedorID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste la cabecera de la venta.
func (r *VentaRepo) Create(v *entity.Venta) error {
	query := `
		INSERT INTO ventas (` + ventaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Numero, v.ClienteNombre, v.ClienteTelefono, v.ClienteDNI,
		v.Total, v.MetodoPago, v.MontoPagado, v.Vuelto, v.Estado, v.Fecha,
		v.MotivoAnulacion, v.AnuladoPor, v.VendedorID, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de venta.
func (r *VentaRepo) CreateDetalle(d *entity.VentaDetalle) error {
	query := `
		INSERT INTO venta_detalles (id, venta_id, producto_id, producto, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.VentaID, d.ProductoID, d.Producto, d.Cantidad, d.PrecioUnitario, d.Subtotal)
	if err != nil {
		return fmt.Errorf("insert venta detalle: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID (sin detalles; usar GetDetalles).
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	v, err := scanVenta(r.q.QueryRow(context.Background(),
		`SELECT `+ventaCols+` FROM ventas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// GetDetalles carga las líneas de una venta.
func (r *VentaRepo) GetDetalles(ventaID string) ([]*entity.VentaDetalle, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, venta_id, producto_id, producto, cantidad, precio_unitario, subtotal
		FROM venta_detalles WHERE venta_id = $1 ORDER BY producto`, ventaID)
	if err != nil {
		return nil, fmt.Errorf("get venta detalles: %w", err)
	}
	defer rows.Close()
	var list []*entity.VentaDetalle
	for rows.Next() {
		var d entity.VentaDetalle
		if err := rows.Scan(&d.ID, &d.VentaID, &d.ProductoID, &d.Producto, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan venta detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Anular marca la venta como anulada con motivo y auditoría. La condición de
// estado en el UPDATE es la garantía contra la doble anulación: si otra
// transacción anuló primero, el UPDATE no afecta filas y se devuelve
// ErrVentaAnulada.
func (r *VentaRepo) Anular(v *entity.Venta) error {
	query := `
		UPDATE ventas
		SET estado = $2, motivo_anulacion = $3, anulado_por = $4, updated_at = $5
		WHERE id = $1 AND estado <> $2`
	cmd, err := r.q.Exec(context.Background(), query,
		v.ID, entity.VentaAnulada, v.MotivoAnulacion, v.AnuladoPor, v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("anular venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrVentaAnulada
	}
	return nil
}

// List lista ventas con filtros y devuelve el total sin paginar.
func (r *VentaRepo) List(f repository.VentaFilter) ([]*entity.Venta, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	n := 0
	if f.Estado != "" {
		n++
		where += fmt.Sprintf(" AND estado = $%d", n)
		args = append(args, f.Estado)
	}
	if !f.Desde.IsZero() {
		n++
		where += fmt.Sprintf(" AND fecha >= $%d", n)
		args = append(args, f.Desde)
	}
	if !f.Hasta.IsZero() {
		n++
		where += fmt.Sprintf(" AND fecha <= $%d", n)
		args = append(args, f.Hasta)
	}

	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM ventas `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ventas: %w", err)
	}

	query := `SELECT ` + ventaCols + ` FROM ventas ` + where +
		fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// ClientesFrecuentes agrega las ventas no anuladas por cliente y devuelve los
// limit con más compras. Alimenta el autocompletado de caja.
func (r *VentaRepo) ClientesFrecuentes(limit int) ([]*entity.ClienteFrecuente, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT cliente_nombre,
		       COALESCE(max(cliente_telefono), '') AS telefono,
		       COALESCE(max(cliente_dni), '')      AS dni,
		       count(*)                            AS compras,
		       COALESCE(sum(total), 0)             AS total_gastado
		FROM ventas
		WHERE estado <> 'anulada'
		GROUP BY cliente_nombre
		ORDER BY compras DESC, total_gastado DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("clientes frecuentes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClienteFrecuente
	for rows.Next() {
		var c entity.ClienteFrecuente
		if err := rows.Scan(&c.Nombre, &c.Telefono, &c.DNI, &c.Compras, &c.TotalGastado); err != nil {
			return nil, fmt.Errorf("scan cliente frecuente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `p.id, p.nombre, p.descripcion, p.precio, p.stock, p.categoria_id, p.imagen, p.activo, p.created_at, p.updated_at, c.id, c.nombre`

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var catID, catNombre *string
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.CategoriaID,
		&p.Imagen, &p.Activo, &p.CreatedAt, &p.UpdatedAt, &catID, &catNombre,
	)
	if err != nil {
		return nil, err
	}
	if catID != nil {
		p.Categoria = &entity.Categoria{ID: *catID, Nombre: *catNombre}
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, descripcion, precio, stock, categoria_id, imagen, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.Stock, p.CategoriaID,
		p.Imagen, p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con su categoría.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT ` + productoCols + `
		FROM productos p LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByNombre obtiene un producto por nombre exacto.
func (r *ProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	query := `
		SELECT ` + productoCols + `
		FROM productos p LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE lower(p.nombre) = lower($1)`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por nombre: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. El stock se cambia solo vía AjustarStock
// o por el valor explícito que fija el panel de inventario.
func (r *ProductoRepo) Update(p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio = $4, stock = $5, categoria_id = $6, imagen = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, p.Precio, p.Stock, p.CategoriaID,
		p.Imagen, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// AjustarStock suma delta al stock. El WHERE impide dejar stock negativo;
// cero filas afectadas con delta negativo significa stock insuficiente.
func (r *ProductoRepo) AjustarStock(id string, delta int) error {
	query := `
		UPDATE productos SET stock = stock + $2, updated_at = now()
		WHERE id = $1 AND stock + $2 >= 0`
	cmd, err := r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("ajustar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		if delta < 0 {
			return domain.ErrInsufficientStock
		}
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con filtros opcionales y devuelve también el total sin paginar.
func (r *ProductoRepo) List(f repository.ProductoFilter) ([]*entity.Producto, int, error) {
	where := "WHERE 1=1"
	args := []any{}
	n := 0
	if f.Query != "" {
		n++
		where += fmt.Sprintf(" AND p.nombre ILIKE $%d", n)
		args = append(args, "%"+f.Query+"%")
	}
	if f.CategoriaID != "" {
		n++
		where += fmt.Sprintf(" AND p.categoria_id = $%d", n)
		args = append(args, f.CategoriaID)
	}
	if f.SoloActivos {
		where += " AND p.activo"
	}

	var total int
	countQuery := `SELECT count(*) FROM productos p ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	query := `
		SELECT ` + productoCols + `
		FROM productos p LEFT JOIN categorias c ON c.id = p.categoria_id
		` + where + fmt.Sprintf(" ORDER BY p.nombre LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Desactivar marca el producto como inactivo (soft delete).
func (r *ProductoRepo) Desactivar(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

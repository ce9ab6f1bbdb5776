package repository

import "github.com/jmgutierrez/ferreteria-api/internal/domain/entity"

// ProductoFilter filtros opcionales para listados de productos.
type ProductoFilter struct {
	Query       string // subcadena sobre el nombre
	CategoriaID string
	SoloActivos bool
	Limit       int
	Offset      int
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(p *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetByNombre(nombre string) (*entity.Producto, error)
	Update(p *entity.Producto) error
	// AjustarStock suma delta (negativo para descuentos) y falla con
	// domain.ErrInsufficientStock si el resultado sería negativo.
	AjustarStock(id string, delta int) error
	List(f ProductoFilter) ([]*entity.Producto, int, error)
	// Desactivar marca activo=false; las ventas históricas conservan la referencia.
	Desactivar(id string) error
}

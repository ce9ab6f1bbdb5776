package repository

import "github.com/jmgutierrez/ferreteria-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	GetByNombre(nombre string) (*entity.Categoria, error)
	Update(c *entity.Categoria) error
	List() ([]*entity.Categoria, error)
	// Delete elimina la categoría; falla con domain.ErrConflict si tiene productos.
	Delete(id string) error
	CountProductos(id string) (int, error)
}

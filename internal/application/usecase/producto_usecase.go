package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para el inventario de productos.
// El stock solo cambia aquí por alta o edición directa; las ventas lo
// descuentan dentro de su propia transacción.
type ProductoUseCase struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// Create crea un nuevo producto activo. El nombre es único en el catálogo.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	existing, _ := uc.repo.GetByNombre(in.Nombre)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Precio.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	cat, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Stock:       in.Stock,
		CategoriaID: in.CategoriaID,
		Categoria:   cat,
		Imagen:      in.Imagen,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// Update actualiza un producto con semántica parcial (campos nil no cambian).
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil && *in.Nombre != producto.Nombre {
		if existing, _ := uc.repo.GetByNombre(*in.Nombre); existing != nil {
			return nil, domain.ErrDuplicate
		}
		producto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		producto.Stock = *in.Stock
	}
	if in.CategoriaID != nil {
		cat, err := uc.categoriaRepo.GetByID(*in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
		producto.CategoriaID = *in.CategoriaID
		producto.Categoria = cat
	}
	if in.Imagen != nil {
		producto.Imagen = *in.Imagen
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista productos con filtros de búsqueda, categoría y paginación.
func (uc *ProductoUseCase) List(f repository.ProductoFilter) (*dto.ProductoListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	list, total, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}, nil
}

// Delete desactiva el producto. Las ventas históricas conservan la referencia,
// por eso nunca se borra la fila.
func (uc *ProductoUseCase) Delete(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Desactivar(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		CategoriaID: p.CategoriaID,
		Imagen:      p.Imagen,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Categoria != nil {
		resp.Categoria = &dto.CategoriaResumen{ID: p.Categoria.ID, Nombre: p.Categoria.Nombre}
	}
	return resp
}

package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de productos.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría con nombre único.
func (uc *CategoriaUseCase) Create(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	existing, _ := uc.repo.GetByNombre(in.Nombre)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	c := &entity.Categoria{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoriaResponse(c), nil
}

// Update actualiza una categoría (campos nil no cambian).
func (uc *CategoriaUseCase) Update(id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil && *in.Nombre != c.Nombre {
		if existing, _ := uc.repo.GetByNombre(*in.Nombre); existing != nil {
			return nil, domain.ErrDuplicate
		}
		c.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// List lista todas las categorías.
func (uc *CategoriaUseCase) List() ([]dto.CategoriaResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría sin productos asociados.
func (uc *CategoriaUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	n, err := uc.repo.CountProductos(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

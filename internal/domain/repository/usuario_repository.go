package repository

import "github.com/jmgutierrez/ferreteria-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	GetByGoogleID(googleID string) (*entity.Usuario, error)
	Update(u *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, int, error)
}

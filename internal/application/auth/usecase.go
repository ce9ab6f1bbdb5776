// Package auth contiene los casos de uso de autenticación: login con
// email/password y login con Google.
package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
	"github.com/jmgutierrez/ferreteria-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	google      *GoogleAuth
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth. google puede ser nil si el
// login con Google no está configurado.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, google *GoogleAuth, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, google: google, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.PasswordHash == "" {
		// cuenta creada vía Google, sin password local
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !u.Activo {
		return nil, domain.ErrForbidden
	}
	return uc.emitirToken(u)
}

func (uc *AuthUseCase) emitirToken(u *entity.Usuario) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UsuarioResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Rol:       u.Rol,
			Activo:    u.Activo,
			Permisos:  entity.PermisosDeRol(u.Rol),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
	}, nil
}

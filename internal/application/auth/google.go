package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleAuth encapsula el flujo OAuth2 de Google (authorization code).
type GoogleAuth struct {
	cfg *oauth2.Config
}

// NewGoogleAuth construye el flujo con las credenciales de la consola de Google.
func NewGoogleAuth(clientID, clientSecret, redirectURL string) *GoogleAuth {
	return &GoogleAuth{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// googleUser es la respuesta del endpoint userinfo de Google.
type googleUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthURL genera la URL de autorización con un state aleatorio que el
// cliente debe devolver intacto en el callback.
func (g *GoogleAuth) AuthURL() (url, state string) {
	state = uuid.New().String()
	return g.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline), state
}

// fetchUser canjea el código por un token y consulta el perfil del usuario.
func (g *GoogleAuth) fetchUser(ctx context.Context, code string) (*googleUser, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("canjear código de Google: %w", err)
	}
	client := g.cfg.Client(ctx, tok)
	client.Timeout = 10 * time.Second
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("consultar perfil de Google: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("perfil de Google: status %d", resp.StatusCode)
	}
	var u googleUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decodificar perfil de Google: %w", err)
	}
	if u.Email == "" {
		return nil, domain.ErrUnauthorized
	}
	return &u, nil
}

// GoogleURL inicia el flujo de login con Google.
func (uc *AuthUseCase) GoogleURL() (*dto.GoogleURLResponse, error) {
	if uc.google == nil {
		return nil, domain.ErrNotFound
	}
	url, state := uc.google.AuthURL()
	return &dto.GoogleURLResponse{URL: url, State: state}, nil
}

// GoogleCallback completa el login: busca la cuenta por GoogleID, la enlaza
// por email si ya existía, o la crea con rol cliente.
func (uc *AuthUseCase) GoogleCallback(ctx context.Context, in dto.GoogleCallbackRequest) (*dto.LoginResponse, error) {
	if uc.google == nil {
		return nil, domain.ErrNotFound
	}
	gu, err := uc.google.fetchUser(ctx, in.Code)
	if err != nil {
		return nil, err
	}

	u, err := uc.usuarioRepo.GetByGoogleID(gu.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		email := strings.ToLower(gu.Email)
		u, err = uc.usuarioRepo.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		now := time.Now()
		if u != nil {
			// cuenta local preexistente: se enlaza con Google
			u.GoogleID = gu.ID
			u.UpdatedAt = now
			if err := uc.usuarioRepo.Update(u); err != nil {
				return nil, err
			}
		} else {
			u = &entity.Usuario{
				ID:        uuid.New().String(),
				Name:      gu.Name,
				Email:     email,
				Rol:       entity.RolCliente,
				Activo:    true,
				GoogleID:  gu.ID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := uc.usuarioRepo.Create(u); err != nil {
				return nil, err
			}
		}
	}
	if !u.Activo {
		return nil, domain.ErrForbidden
	}
	return uc.emitirToken(u)
}

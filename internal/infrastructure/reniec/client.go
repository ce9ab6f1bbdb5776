// Package reniec implementa la consulta de DNI contra el registro nacional
// (API pública de identidad, Perú). Es una sola ida y vuelta HTTP sin
// reintentos; el caso de uso decide qué mensaje mostrar al fallar.
package reniec

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jmgutierrez/ferreteria-api/internal/domain"
)

// Persona datos devueltos por el registro para un DNI.
type Persona struct {
	DNI             string `json:"numeroDocumento"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
}

// NombreCompleto arma "Nombres ApellidoPaterno ApellidoMaterno".
func (p Persona) NombreCompleto() string {
	parts := []string{}
	for _, s := range []string{p.Nombres, p.ApellidoPaterno, p.ApellidoMaterno} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Consultor define el puerto de salida para la consulta de identidad.
// La implementación concreta usa HTTP; para tests se puede inyectar un mock.
type Consultor interface {
	// ConsultarDNI busca la persona por su DNI de 8 dígitos.
	ConsultarDNI(ctx context.Context, dni string) (*Persona, error)
}

// Client implementa Consultor contra el API del proveedor.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient construye el cliente con un timeout corto: la consulta bloquea el
// formulario de caja y más vale fallar rápido que colgar al cajero.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ConsultarDNI hace GET /v2/reniec/dni?numero=<dni> con bearer token.
func (c *Client) ConsultarDNI(ctx context.Context, dni string) (*Persona, error) {
	if len(dni) != 8 {
		return nil, domain.ErrDNIInvalido
	}
	for _, r := range dni {
		if r < '0' || r > '9' {
			return nil, domain.ErrDNIInvalido
		}
	}

	endpoint := fmt.Sprintf("%s/v2/reniec/dni?numero=%s", c.baseURL, url.QueryEscape(dni))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("reniec: construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reniec: consulta DNI %s: %w", dni, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrDNINoEncontrado
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("reniec: status inesperado %d", resp.StatusCode)
	}

	var persona Persona
	if err := json.NewDecoder(resp.Body).Decode(&persona); err != nil {
		return nil, fmt.Errorf("reniec: decodificar respuesta: %w", err)
	}
	if persona.NombreCompleto() == "" {
		return nil, domain.ErrDNINoEncontrado
	}
	if persona.DNI == "" {
		persona.DNI = dni
	}
	return &persona, nil
}

package reniec_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/infrastructure/reniec"
)

func TestConsultarDNI_Exitoso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/reniec/dni", r.URL.Path)
		assert.Equal(t, "45781236", r.URL.Query().Get("numero"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numeroDocumento":"45781236","nombres":"MARIA ELENA","apellidoPaterno":"LOPEZ","apellidoMaterno":"QUISPE"}`))
	}))
	defer srv.Close()

	c := reniec.NewClient(srv.URL, "test-token")
	p, err := c.ConsultarDNI(context.Background(), "45781236")
	require.NoError(t, err)
	assert.Equal(t, "MARIA ELENA LOPEZ QUISPE", p.NombreCompleto())
	assert.Equal(t, "45781236", p.DNI)
}

func TestConsultarDNI_NoEncontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := reniec.NewClient(srv.URL, "")
	_, err := c.ConsultarDNI(context.Background(), "00000000")
	assert.ErrorIs(t, err, domain.ErrDNINoEncontrado)
}

func TestConsultarDNI_FormatoInvalido(t *testing.T) {
	c := reniec.NewClient("http://localhost", "")
	casos := []string{"1234567", "123456789", "12a45678", ""}
	for _, dni := range casos {
		_, err := c.ConsultarDNI(context.Background(), dni)
		assert.ErrorIs(t, err, domain.ErrDNIInvalido, "dni %q", dni)
	}
}

func TestConsultarDNI_RespuestaVacia(t *testing.T) {
	// El proveedor a veces responde 200 con campos vacíos para DNIs inexistentes.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numeroDocumento":"","nombres":""}`))
	}))
	defer srv.Close()

	c := reniec.NewClient(srv.URL, "")
	_, err := c.ConsultarDNI(context.Background(), "99999999")
	assert.ErrorIs(t, err, domain.ErrDNINoEncontrado)
}

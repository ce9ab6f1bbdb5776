package venta_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/venta"
)

func TestPuedeAnular_VentaReciente(t *testing.T) {
	ahora := time.Now()
	v := &entity.Venta{Estado: entity.VentaCompletada, Fecha: ahora.Add(-2 * time.Hour)}
	assert.True(t, venta.PuedeAnular(v, ahora))
}

func TestPuedeAnular_YaAnulada(t *testing.T) {
	ahora := time.Now()
	v := &entity.Venta{Estado: entity.VentaAnulada, Fecha: ahora.Add(-time.Hour)}
	assert.False(t, venta.PuedeAnular(v, ahora), "una venta anulada no se anula dos veces")
}

func TestPuedeAnular_FueraDePlazo(t *testing.T) {
	ahora := time.Now()
	v := &entity.Venta{Estado: entity.VentaCompletada, Fecha: ahora.Add(-25 * time.Hour)}
	assert.False(t, venta.PuedeAnular(v, ahora), "pasadas 24 horas la venta queda firme")
}

func TestPuedeAnular_JustoEnElLimite(t *testing.T) {
	ahora := time.Now()
	v := &entity.Venta{Estado: entity.VentaCompletada, Fecha: ahora.Add(-venta.PlazoAnulacion)}
	assert.True(t, venta.PuedeAnular(v, ahora), "exactamente 24 horas todavía es anulable")
}

func TestMotivoValido(t *testing.T) {
	assert.False(t, venta.MotivoValido("err"))
	assert.False(t, venta.MotivoValido("    a    "))
	assert.True(t, venta.MotivoValido("cliente devolvió el producto"))
}

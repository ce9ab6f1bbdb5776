package venta

import (
	"strings"
	"time"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
)

// PlazoAnulacion es la ventana desde la fecha de la venta dentro de la cual
// se permite anularla.
const PlazoAnulacion = 24 * time.Hour

// MotivoMinimo caracteres mínimos del motivo de anulación.
const MotivoMinimo = 5

// PuedeAnular indica si la venta es anulable en el instante dado:
// no debe estar ya anulada y no deben haber pasado más de 24 horas desde su fecha.
func PuedeAnular(v *entity.Venta, ahora time.Time) bool {
	if v == nil || v.Estado == entity.VentaAnulada {
		return false
	}
	return ahora.Sub(v.Fecha) <= PlazoAnulacion
}

// MotivoValido indica si el motivo de anulación cumple el mínimo de caracteres.
func MotivoValido(motivo string) bool {
	return len(strings.TrimSpace(motivo)) >= MotivoMinimo
}

package ventas

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// TxRunner define el puerto de transacción: ejecuta fn con repos atados a una
// misma transacción y confirma o revierte según el error.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}

// ErrValidacion agrupa los errores de validación del borrador por campo.
// El handler lo serializa como mapa campo → mensaje con HTTP 422.
type ErrValidacion struct {
	Campos map[string]string
}

// Error implementa error con un resumen estable de los campos inválidos.
func (e *ErrValidacion) Error() string {
	keys := make([]string, 0, len(e.Campos))
	for k := range e.Campos {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("validación fallida: %s", strings.Join(keys, ", "))
}

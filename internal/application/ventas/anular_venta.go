package ventas

import (
	"context"
	"time"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
	dventa "github.com/jmgutierrez/ferreteria-api/internal/domain/venta"
)

// AnularVentaUseCase anula una venta y repone el stock en una sola transacción.
type AnularVentaUseCase struct {
	txRunner TxRunner
}

// NewAnularVentaUseCase construye el caso de uso.
func NewAnularVentaUseCase(txRunner TxRunner) *AnularVentaUseCase {
	return &AnularVentaUseCase{txRunner: txRunner}
}

// Anular marca la venta como anulada con motivo y usuario, y devuelve cada
// unidad vendida al stock. La ventana de 24 horas y el motivo mínimo se
// verifican en el servidor, no en el cliente. La elegibilidad se evalúa
// dentro de la transacción: una lectura previa a la petición puede quedar
// obsoleta si dos cajas anulan la misma venta a la vez.
func (uc *AnularVentaUseCase) Anular(ctx context.Context, ventaID, usuarioID, motivo string) (*dto.VentaResponse, error) {
	if !dventa.MotivoValido(motivo) {
		return nil, domain.ErrMotivoRequerido
	}

	var (
		v        *entity.Venta
		detalles []*entity.VentaDetalle
	)
	err := uc.txRunner.Run(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		_ repository.PedidoRepository,
	) error {
		var err error
		v, err = ventaRepo.GetByID(ventaID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if v.Estado == entity.VentaAnulada {
			return domain.ErrVentaAnulada
		}
		if !dventa.PuedeAnular(v, time.Now()) {
			return domain.ErrVentaFueraDePlazo
		}

		// 1) Marcar la anulación. El UPDATE condicionado por estado deja
		//    pasar una sola anulación; la perdedora aborta aquí sin haber
		//    tocado el stock.
		v.Estado = entity.VentaAnulada
		v.MotivoAnulacion = motivo
		v.AnuladoPor = usuarioID
		v.UpdatedAt = time.Now()
		if err := ventaRepo.Anular(v); err != nil {
			return err
		}

		// 2) Reponer stock línea por línea.
		detalles, err = ventaRepo.GetDetalles(v.ID)
		if err != nil {
			return err
		}
		for _, d := range detalles {
			if err := productoRepo.AjustarStock(d.ProductoID, d.Cantidad); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toVentaResponse(v, detalles), nil
}

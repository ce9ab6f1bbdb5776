// Package pedidos contiene los casos de uso de pedidos de WhatsApp:
// listado, cambio de estado y conversión a venta.
package pedidos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// TxRunner define el puerto de transacción compartido con el flujo de caja.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}

// PedidoUseCase orquesta el ciclo de vida de los pedidos.
type PedidoUseCase struct {
	pedidoRepo repository.PedidoRepository
	txRunner   TxRunner
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(pedidoRepo repository.PedidoRepository, txRunner TxRunner) *PedidoUseCase {
	return &PedidoUseCase{pedidoRepo: pedidoRepo, txRunner: txRunner}
}

// Listar devuelve los pedidos paginados, opcionalmente por estado.
func (uc *PedidoUseCase) Listar(ctx context.Context, estado string, limit, offset int) (*dto.PedidoListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	pedidos, total, err := uc.pedidoRepo.List(estado, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PedidoListResponse{
		Items: make([]dto.PedidoResponse, 0, len(pedidos)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}
	for _, p := range pedidos {
		detalles, err := uc.pedidoRepo.GetDetalles(p.ID)
		if err != nil {
			return nil, err
		}
		p.Detalles = detalles
		out.Items = append(out.Items, *toPedidoResponse(p))
	}
	return out, nil
}

// Obtener carga un pedido con sus líneas.
func (uc *PedidoUseCase) Obtener(ctx context.Context, id string) (*dto.PedidoResponse, error) {
	p, err := uc.cargarPedido(id)
	if err != nil {
		return nil, err
	}
	return toPedidoResponse(p), nil
}

// CambiarEstado actualiza el estado de un pedido pendiente. Confirmar por esta
// vía no crea venta; para eso está Convertir.
func (uc *PedidoUseCase) CambiarEstado(ctx context.Context, id, estado string) (*dto.PedidoResponse, error) {
	switch estado {
	case entity.PedidoPendiente, entity.PedidoConfirmado, entity.PedidoCancelado:
	default:
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.cargarPedido(id)
	if err != nil {
		return nil, err
	}
	// Repetir el estado actual es un no-op, no un conflicto.
	if estado == p.Estado {
		return toPedidoResponse(p), nil
	}
	if p.Estado != entity.PedidoPendiente {
		return nil, domain.ErrPedidoNoPendiente
	}
	if err := uc.pedidoRepo.UpdateEstado(id, estado); err != nil {
		return nil, err
	}
	p.Estado = estado
	return toPedidoResponse(p), nil
}

// Convertir confirma un pedido pendiente creando la venta correspondiente,
// descuenta el stock y marca el pedido confirmado, todo en una transacción.
// La venta queda con método transferencia, monto pagado igual al total y
// vuelto cero. El pedido se lee y se transiciona dentro de la transacción:
// el UPDATE condicionado a pendiente deja pasar una sola conversión, la
// perdedora aborta sin tocar stock ni crear venta.
func (uc *PedidoUseCase) Convertir(ctx context.Context, pedidoID, vendedorID string) (*dto.ConvertirPedidoResponse, error) {
	var (
		p     *entity.Pedido
		venta *entity.Venta
	)
	err := uc.txRunner.Run(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		var err error
		p, err = pedidoRepo.GetByID(pedidoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Estado != entity.PedidoPendiente {
			return domain.ErrPedidoNoPendiente
		}
		p.Detalles, err = pedidoRepo.GetDetalles(pedidoID)
		if err != nil {
			return err
		}
		if len(p.Detalles) == 0 {
			return domain.ErrInvalidInput
		}

		// 1) Confirmar el pedido. Aquí se decide qué conversión gana.
		if err := pedidoRepo.UpdateEstado(p.ID, entity.PedidoConfirmado); err != nil {
			return err
		}

		now := time.Now()
		total := p.Total()
		venta = &entity.Venta{
			ID:              uuid.New().String(),
			Numero:          fmt.Sprintf("V-%d", now.Unix()),
			ClienteNombre:   p.ClienteNombre,
			ClienteTelefono: p.ClienteTelefono,
			Total:           total,
			MetodoPago:      entity.PagoTransferencia,
			MontoPagado:     total,
			Vuelto:          decimal.Zero,
			Estado:          entity.VentaConfirmada,
			Fecha:           now,
			VendedorID:      vendedorID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		for _, d := range p.Detalles {
			venta.Detalles = append(venta.Detalles, &entity.VentaDetalle{
				ID:             uuid.New().String(),
				VentaID:        venta.ID,
				ProductoID:     d.ProductoID,
				Producto:       d.Producto,
				Cantidad:       d.Cantidad,
				PrecioUnitario: d.PrecioUnitario,
				Subtotal:       d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))),
			})
		}

		// 2) Descontar stock y persistir la venta.
		for _, d := range venta.Detalles {
			if err := productoRepo.AjustarStock(d.ProductoID, -d.Cantidad); err != nil {
				return err
			}
		}
		if err := ventaRepo.Create(venta); err != nil {
			return err
		}
		for _, d := range venta.Detalles {
			if err := ventaRepo.CreateDetalle(d); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.Estado = entity.PedidoConfirmado

	resp := &dto.ConvertirPedidoResponse{Pedido: *toPedidoResponse(p)}
	resp.Venta = dto.VentaResponse{
		ID:              venta.ID,
		Numero:          venta.Numero,
		ClienteNombre:   venta.ClienteNombre,
		ClienteTelefono: venta.ClienteTelefono,
		Total:           venta.Total,
		MetodoPago:      venta.MetodoPago,
		MontoPagado:     venta.MontoPagado,
		Vuelto:          venta.Vuelto,
		Estado:          venta.Estado,
		Fecha:           venta.Fecha,
	}
	for _, d := range venta.Detalles {
		resp.Venta.Detalles = append(resp.Venta.Detalles, dto.VentaDetalleResponse{
			ProductoID:     d.ProductoID,
			Producto:       d.Producto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return resp, nil
}

func (uc *PedidoUseCase) cargarPedido(id string) (*entity.Pedido, error) {
	p, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.pedidoRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	p.Detalles = detalles
	return p, nil
}

func toPedidoResponse(p *entity.Pedido) *dto.PedidoResponse {
	resp := &dto.PedidoResponse{
		ID:              p.ID,
		ClienteNombre:   p.ClienteNombre,
		ClienteTelefono: p.ClienteTelefono,
		ClienteEmail:    p.ClienteEmail,
		Detalles:        make([]dto.PedidoDetalleResponse, 0, len(p.Detalles)),
		Total:           p.Total(),
		Estado:          p.Estado,
		Fecha:           p.Fecha,
	}
	for _, d := range p.Detalles {
		resp.Detalles = append(resp.Detalles, dto.PedidoDetalleResponse{
			ProductoID:     d.ProductoID,
			Producto:       d.Producto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}
	return resp
}

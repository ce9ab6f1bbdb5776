// Package ventas contiene los casos de uso del flujo de caja: registro,
// anulación y consulta de ventas. Los cálculos y validaciones puras viven
// en internal/domain/venta; aquí solo se orquesta persistencia y stock.
package ventas

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
	dventa "github.com/jmgutierrez/ferreteria-api/internal/domain/venta"
)

// CrearVentaUseCase registra una venta y descuenta el stock en una sola transacción.
type CrearVentaUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
}

// NewCrearVentaUseCase construye el caso de uso.
func NewCrearVentaUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository, ventaRepo repository.VentaRepository) *CrearVentaUseCase {
	return &CrearVentaUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		ventaRepo:    ventaRepo,
	}
}

// Crear valida el borrador, recalcula total y vuelto en el servidor y persiste
// cabecera, detalles y descuentos de stock atómicamente. El precio unitario en 0
// se reemplaza por el precio de catálogo.
func (uc *CrearVentaUseCase) Crear(ctx context.Context, vendedorID string, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	// Validar productos y precios (fuera de la tx, solo lectura)
	productosPorID := make(map[string]*entity.Producto)
	items := make([]dventa.Item, 0, len(in.Items))
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductoID == "" {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productoRepo.GetByID(item.ProductoID)
		if err != nil {
			return nil, err
		}
		if p == nil || !p.Activo {
			return nil, domain.ErrNotFound
		}
		if item.PrecioUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if item.PrecioUnitario.IsZero() {
			item.PrecioUnitario = p.Precio
		}
		productosPorID[item.ProductoID] = p
		items = append(items, dventa.Item{
			ProductoID:     p.ID,
			Producto:       p.Nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
		})
	}

	borrador := dventa.Borrador{
		ClienteNombre:   in.ClienteNombre,
		ClienteTelefono: in.ClienteTelefono,
		ClienteDNI:      in.ClienteDNI,
		Items:           items,
		MetodoPago:      in.MetodoPago,
		MontoPagado:     in.MontoPagado,
	}
	if errs := dventa.Validar(borrador); len(errs) > 0 {
		return nil, &ErrValidacion{Campos: errs}
	}

	// Total y vuelto autoritativos: lo que mandó el cliente es solo sugerencia.
	total := dventa.CalcularTotal(items)
	vuelto, _ := dventa.CalcularVuelto(total, in.MontoPagado)

	now := time.Now()
	venta := &entity.Venta{
		ID:              uuid.New().String(),
		Numero:          fmt.Sprintf("V-%d", now.Unix()),
		ClienteNombre:   in.ClienteNombre,
		ClienteTelefono: in.ClienteTelefono,
		ClienteDNI:      in.ClienteDNI,
		Total:           total,
		MetodoPago:      in.MetodoPago,
		MontoPagado:     in.MontoPagado,
		Vuelto:          vuelto,
		Estado:          entity.VentaCompletada,
		Fecha:           now,
		VendedorID:      vendedorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, it := range items {
		venta.Detalles = append(venta.Detalles, &entity.VentaDetalle{
			ID:             uuid.New().String(),
			VentaID:        venta.ID,
			ProductoID:     it.ProductoID,
			Producto:       it.Producto,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad))),
		})
	}

	err := uc.txRunner.Run(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		_ repository.PedidoRepository,
	) error {
		// 1) Descontar stock por cada línea; sin stock → rollback completo.
		for _, d := range venta.Detalles {
			if err := productoRepo.AjustarStock(d.ProductoID, -d.Cantidad); err != nil {
				return err
			}
		}
		// 2) Cabecera y detalles.
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

	return toVentaResponse(venta, venta.Detalles), nil
}

func toVentaResponse(v *entity.Venta, detalles []*entity.VentaDetalle) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:              v.ID,
		Numero:          v.Numero,
		ClienteNombre:   v.ClienteNombre,
		ClienteTelefono: v.ClienteTelefono,
		ClienteDNI:      v.ClienteDNI,
		Total:           v.Total,
		MetodoPago:      v.MetodoPago,
		MontoPagado:     v.MontoPagado,
		Vuelto:          v.Vuelto,
		Estado:          v.Estado,
		Fecha:           v.Fecha,
		MotivoAnulacion: v.MotivoAnulacion,
		AnuladoPor:      v.AnuladoPor,
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.VentaDetalleResponse{
			ProductoID:     d.ProductoID,
			Producto:       d.Producto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return resp
}

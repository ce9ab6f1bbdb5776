package ventas

import (
	"context"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
	dventa "github.com/jmgutierrez/ferreteria-api/internal/domain/venta"
)

// ConsultasUseCase resuelve las lecturas del flujo de caja: historial,
// detalle de venta y clientes frecuentes para el autocompletado.
type ConsultasUseCase struct {
	ventaRepo repository.VentaRepository
}

// NewConsultasUseCase construye el caso de uso.
func NewConsultasUseCase(ventaRepo repository.VentaRepository) *ConsultasUseCase {
	return &ConsultasUseCase{ventaRepo: ventaRepo}
}

// Listar devuelve el historial de ventas paginado, opcionalmente por estado y rango de fechas.
func (uc *ConsultasUseCase) Listar(ctx context.Context, f repository.VentaFilter) (*dto.VentaListResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	ventas, total, err := uc.ventaRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := &dto.VentaListResponse{
		Items: make([]dto.VentaResponse, 0, len(ventas)),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}
	for _, v := range ventas {
		out.Items = append(out.Items, *toVentaResponse(v, nil))
	}
	return out, nil
}

// Obtener carga una venta con sus líneas.
func (uc *ConsultasUseCase) Obtener(ctx context.Context, id string) (*dto.VentaResponse, error) {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	return toVentaResponse(v, detalles), nil
}

// ClientesFrecuentes devuelve los clientes con más compras registradas,
// opcionalmente filtrados por una búsqueda parcial (nombre, teléfono o DNI,
// sin distinguir tildes).
func (uc *ConsultasUseCase) ClientesFrecuentes(ctx context.Context, query string, limit int) ([]dto.ClienteFrecuenteResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	clientes, err := uc.ventaRepo.ClientesFrecuentes(limit)
	if err != nil {
		return nil, err
	}
	if query != "" {
		clientes = dventa.FiltrarClientes(clientes, query)
	}
	out := make([]dto.ClienteFrecuenteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, dto.ClienteFrecuenteResponse{
			Nombre:       c.Nombre,
			Telefono:     c.Telefono,
			DNI:          c.DNI,
			Compras:      c.Compras,
			TotalGastado: c.TotalGastado,
		})
	}
	return out, nil
}

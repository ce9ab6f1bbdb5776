package pedidos_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgutierrez/ferreteria-api/internal/application/pedidos"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorio (en memoria)
// ──────────────────────────────────────────────────────────────────────────────

type pedidoRepoStub struct {
	mu       sync.Mutex
	pedidos  map[string]*entity.Pedido
	detalles map[string][]*entity.PedidoDetalle
}

func newPedidoRepoStub(p *entity.Pedido) *pedidoRepoStub {
	s := &pedidoRepoStub{
		pedidos:  make(map[string]*entity.Pedido),
		detalles: make(map[string][]*entity.PedidoDetalle),
	}
	if p != nil {
		s.pedidos[p.ID] = p
		s.detalles[p.ID] = p.Detalles
	}
	return s
}

func (s *pedidoRepoStub) GetByID(id string) (*entity.Pedido, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pedidos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}
func (s *pedidoRepoStub) GetDetalles(pedidoID string) ([]*entity.PedidoDetalle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detalles[pedidoID], nil
}
func (s *pedidoRepoStub) List(estado string, limit, offset int) ([]*entity.Pedido, int, error) {
	var out []*entity.Pedido
	for _, p := range s.pedidos {
		if estado == "" || p.Estado == estado {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}
// UpdateEstado reproduce la condición de pendiente del UPDATE: solo la
// primera transición surte efecto.
func (s *pedidoRepoStub) UpdateEstado(id, estado string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pedidos[id]
	if !ok || p.Estado != entity.PedidoPendiente {
		return domain.ErrPedidoNoPendiente
	}
	p.Estado = estado
	return nil
}

type ventaRepoStub struct {
	mu       sync.Mutex
	ventas   []*entity.Venta
	detalles []*entity.VentaDetalle
}

func (s *ventaRepoStub) Create(v *entity.Venta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ventas = append(s.ventas, v)
	return nil
}
func (s *ventaRepoStub) CreateDetalle(d *entity.VentaDetalle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detalles = append(s.detalles, d)
	return nil
}
func (s *ventaRepoStub) GetByID(string) (*entity.Venta, error)              { return nil, nil }
func (s *ventaRepoStub) GetDetalles(string) ([]*entity.VentaDetalle, error) { return nil, nil }
func (s *ventaRepoStub) Anular(*entity.Venta) error                         { return nil }
func (s *ventaRepoStub) List(repository.VentaFilter) ([]*entity.Venta, int, error) {
	return nil, 0, nil
}
func (s *ventaRepoStub) ClientesFrecuentes(int) ([]*entity.ClienteFrecuente, error) {
	return nil, nil
}

type productoRepoStub struct {
	mu      sync.Mutex
	stock   map[string]int
	ajustes map[string]int
}

func newProductoRepoStub(stock map[string]int) *productoRepoStub {
	return &productoRepoStub{stock: stock, ajustes: make(map[string]int)}
}

func (s *productoRepoStub) Create(*entity.Producto) error                 { return nil }
func (s *productoRepoStub) GetByID(string) (*entity.Producto, error)      { return nil, nil }
func (s *productoRepoStub) GetByNombre(string) (*entity.Producto, error)  { return nil, nil }
func (s *productoRepoStub) Update(*entity.Producto) error                 { return nil }
func (s *productoRepoStub) Desactivar(string) error                       { return nil }
func (s *productoRepoStub) List(repository.ProductoFilter) ([]*entity.Producto, int, error) {
	return nil, 0, nil
}
func (s *productoRepoStub) AjustarStock(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stock[id]+delta < 0 {
		return domain.ErrInsufficientStock
	}
	s.stock[id] += delta
	s.ajustes[id] += delta
	return nil
}

// txRunnerStub entrega los stubs a fn tal cual. Si puerta no es nil, Run
// espera a que todas las transacciones del test hayan llegado antes de
// ejecutar fn.
type txRunnerStub struct {
	ventaRepo    *ventaRepoStub
	productoRepo *productoRepoStub
	pedidoRepo   *pedidoRepoStub
	puerta       *sync.WaitGroup
}

func (s *txRunnerStub) Run(ctx context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	if s.puerta != nil {
		s.puerta.Done()
		s.puerta.Wait()
	}
	return fn(s.ventaRepo, s.productoRepo, s.pedidoRepo)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func pedidoDePrueba(estado string) *entity.Pedido {
	return &entity.Pedido{
		ID:              "ped-1",
		ClienteNombre:   "Rosa Huamán",
		ClienteTelefono: "987654321",
		Estado:          estado,
		Fecha:           time.Now().Add(-time.Hour),
		Detalles: []*entity.PedidoDetalle{
			{ID: "pd1", PedidoID: "ped-1", ProductoID: "p1", Producto: "Cemento",
				Cantidad: 3, PrecioUnitario: dec("32.50")},
			{ID: "pd2", PedidoID: "ped-1", ProductoID: "p2", Producto: "Arena",
				Cantidad: 2, PrecioUnitario: dec("15.00")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Convertir
// ──────────────────────────────────────────────────────────────────────────────

// La conversión crea la venta (transferencia, pagado = total, vuelto 0,
// estado confirmado), descuenta el stock y confirma el pedido, todo de una vez.
func TestConvertir_PedidoPendiente(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoPendiente))
	ventaRepo := &ventaRepoStub{}
	productoRepo := newProductoRepoStub(map[string]int{"p1": 10, "p2": 5})
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo, pedidoRepo: pedidoRepo}
	uc := pedidos.NewPedidoUseCase(pedidoRepo, tx)

	out, err := uc.Convertir(context.Background(), "ped-1", "vendedor-1")
	require.NoError(t, err)

	// 3 × 32.50 + 2 × 15.00 = 127.50
	assert.True(t, dec("127.50").Equal(out.Venta.Total))
	assert.True(t, dec("127.50").Equal(out.Venta.MontoPagado), "pagado exacto al total")
	assert.True(t, out.Venta.Vuelto.IsZero())
	assert.Equal(t, entity.PagoTransferencia, out.Venta.MetodoPago)
	assert.Equal(t, entity.VentaConfirmada, out.Venta.Estado)
	assert.Equal(t, "Rosa Huamán", out.Venta.ClienteNombre)
	assert.Len(t, out.Venta.Detalles, 2)

	assert.Equal(t, entity.PedidoConfirmado, out.Pedido.Estado)
	assert.Equal(t, entity.PedidoConfirmado, pedidoRepo.pedidos["ped-1"].Estado)

	require.Len(t, ventaRepo.ventas, 1)
	assert.Len(t, ventaRepo.detalles, 2)
	assert.Equal(t, -3, productoRepo.ajustes["p1"])
	assert.Equal(t, -2, productoRepo.ajustes["p2"])
}

func TestConvertir_PedidoYaConfirmado_RetornaNoPendiente(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoConfirmado))
	ventaRepo := &ventaRepoStub{}
	productoRepo := newProductoRepoStub(map[string]int{"p1": 10, "p2": 5})
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo, pedidoRepo: pedidoRepo}
	uc := pedidos.NewPedidoUseCase(pedidoRepo, tx)

	_, err := uc.Convertir(context.Background(), "ped-1", "vendedor-1")
	require.ErrorIs(t, err, domain.ErrPedidoNoPendiente)
	assert.Empty(t, ventaRepo.ventas, "no debe crearse venta")
}

// En el stub no hay rollback real, por eso solo se verifica que la venta
// nunca llegó a crearse; contra PostgreSQL la transacción revierte también
// la confirmación del pedido.
func TestConvertir_StockInsuficiente_AbortaSinCrearVenta(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoPendiente))
	ventaRepo := &ventaRepoStub{}
	productoRepo := newProductoRepoStub(map[string]int{"p1": 1, "p2": 5})
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo, pedidoRepo: pedidoRepo}
	uc := pedidos.NewPedidoUseCase(pedidoRepo, tx)

	_, err := uc.Convertir(context.Background(), "ped-1", "vendedor-1")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, ventaRepo.ventas)
}

// Dos conversiones simultáneas del mismo pedido. La puerta del tx runner
// garantiza que ambas transacciones arranquen juntas; la condición de
// pendiente deja pasar solo una: una sola venta y un solo descuento de stock.
func TestConvertir_Concurrente_CreaUnaSolaVenta(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoPendiente))
	ventaRepo := &ventaRepoStub{}
	productoRepo := newProductoRepoStub(map[string]int{"p1": 10, "p2": 5})

	puerta := &sync.WaitGroup{}
	puerta.Add(2)
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo, pedidoRepo: pedidoRepo, puerta: puerta}
	uc := pedidos.NewPedidoUseCase(pedidoRepo, tx)

	var wg sync.WaitGroup
	resultados := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Convertir(context.Background(), "ped-1", "vendedor-1")
			resultados <- err
		}()
	}
	wg.Wait()
	close(resultados)

	var convertidas, rechazadas int
	for err := range resultados {
		switch {
		case err == nil:
			convertidas++
		case errors.Is(err, domain.ErrPedidoNoPendiente):
			rechazadas++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, convertidas, "solo una conversión debe aplicarse")
	assert.Equal(t, 1, rechazadas, "la otra debe rechazarse como no pendiente")
	assert.Len(t, ventaRepo.ventas, 1, "una sola venta creada")
	assert.Equal(t, -3, productoRepo.ajustes["p1"], "stock descontado una sola vez")
	assert.Equal(t, -2, productoRepo.ajustes["p2"])
}

func TestConvertir_PedidoInexistente_RetornaNotFound(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(nil)
	tx := &txRunnerStub{ventaRepo: &ventaRepoStub{}, productoRepo: newProductoRepoStub(nil), pedidoRepo: pedidoRepo}
	uc := pedidos.NewPedidoUseCase(pedidoRepo, tx)

	_, err := uc.Convertir(context.Background(), "no-existe", "vendedor-1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CambiarEstado
// ──────────────────────────────────────────────────────────────────────────────

func TestCambiarEstado_CancelarPendiente(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoPendiente))
	uc := pedidos.NewPedidoUseCase(pedidoRepo, &txRunnerStub{pedidoRepo: pedidoRepo})

	out, err := uc.CambiarEstado(context.Background(), "ped-1", entity.PedidoCancelado)
	require.NoError(t, err)
	assert.Equal(t, entity.PedidoCancelado, out.Estado)
}

func TestCambiarEstado_EstadoInvalido(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoPendiente))
	uc := pedidos.NewPedidoUseCase(pedidoRepo, &txRunnerStub{pedidoRepo: pedidoRepo})

	_, err := uc.CambiarEstado(context.Background(), "ped-1", "entregado")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCambiarEstado_MismoEstado_EsIdempotente(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoCancelado))
	uc := pedidos.NewPedidoUseCase(pedidoRepo, &txRunnerStub{pedidoRepo: pedidoRepo})

	out, err := uc.CambiarEstado(context.Background(), "ped-1", entity.PedidoCancelado)
	require.NoError(t, err)
	assert.Equal(t, entity.PedidoCancelado, out.Estado)
}

func TestCambiarEstado_PedidoCancelado_NoSeReabre(t *testing.T) {
	pedidoRepo := newPedidoRepoStub(pedidoDePrueba(entity.PedidoCancelado))
	uc := pedidos.NewPedidoUseCase(pedidoRepo, &txRunnerStub{pedidoRepo: pedidoRepo})

	_, err := uc.CambiarEstado(context.Background(), "ped-1", entity.PedidoPendiente)
	require.ErrorIs(t, err, domain.ErrPedidoNoPendiente)
}

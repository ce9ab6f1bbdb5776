package ventas_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgutierrez/ferreteria-api/internal/application/dto"
	"github.com/jmgutierrez/ferreteria-api/internal/application/ventas"
	"github.com/jmgutierrez/ferreteria-api/internal/domain"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/entity"
	"github.com/jmgutierrez/ferreteria-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de repositorio (en memoria)
// ──────────────────────────────────────────────────────────────────────────────

type productoRepoStub struct {
	mu        sync.Mutex
	productos map[string]*entity.Producto
	ajustes   map[string]int // producto_id → delta acumulado
}

func newProductoRepoStub(productos ...*entity.Producto) *productoRepoStub {
	s := &productoRepoStub{
		productos: make(map[string]*entity.Producto),
		ajustes:   make(map[string]int),
	}
	for _, p := range productos {
		s.productos[p.ID] = p
	}
	return s
}

func (s *productoRepoStub) Create(p *entity.Producto) error {
	s.productos[p.ID] = p
	return nil
}

func (s *productoRepoStub) GetByID(id string) (*entity.Producto, error) {
	return s.productos[id], nil
}

func (s *productoRepoStub) GetByNombre(nombre string) (*entity.Producto, error) {
	for _, p := range s.productos {
		if p.Nombre == nombre {
			return p, nil
		}
	}
	return nil, nil
}

func (s *productoRepoStub) Update(p *entity.Producto) error { return nil }

func (s *productoRepoStub) AjustarStock(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += delta
	s.ajustes[id] += delta
	return nil
}

func (s *productoRepoStub) List(repository.ProductoFilter) ([]*entity.Producto, int, error) {
	return nil, 0, nil
}

func (s *productoRepoStub) Desactivar(id string) error { return nil }

type ventaRepoStub struct {
	mu       sync.Mutex
	ventas   map[string]*entity.Venta
	detalles map[string][]*entity.VentaDetalle
}

func newVentaRepoStub(ventas ...*entity.Venta) *ventaRepoStub {
	s := &ventaRepoStub{
		ventas:   make(map[string]*entity.Venta),
		detalles: make(map[string][]*entity.VentaDetalle),
	}
	for _, v := range ventas {
		s.ventas[v.ID] = v
		s.detalles[v.ID] = v.Detalles
	}
	return s
}

func (s *ventaRepoStub) Create(v *entity.Venta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ventas[v.ID] = v
	return nil
}

func (s *ventaRepoStub) CreateDetalle(d *entity.VentaDetalle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detalles[d.VentaID] = append(s.detalles[d.VentaID], d)
	return nil
}

func (s *ventaRepoStub) GetByID(id string) (*entity.Venta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.ventas[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (s *ventaRepoStub) GetDetalles(ventaID string) ([]*entity.VentaDetalle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detalles[ventaID], nil
}

// Anular reproduce la condición de estado del UPDATE: solo la primera
// anulación surte efecto.
func (s *ventaRepoStub) Anular(v *entity.Venta) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	actual, ok := s.ventas[v.ID]
	if !ok || actual.Estado == entity.VentaAnulada {
		return domain.ErrVentaAnulada
	}
	copia := *v
	s.ventas[v.ID] = &copia
	return nil
}

func (s *ventaRepoStub) List(repository.VentaFilter) ([]*entity.Venta, int, error) {
	return nil, 0, nil
}

func (s *ventaRepoStub) ClientesFrecuentes(limit int) ([]*entity.ClienteFrecuente, error) {
	return nil, nil
}

type pedidoRepoStub struct {
	pedidos  map[string]*entity.Pedido
	detalles map[string][]*entity.PedidoDetalle
}

func (s *pedidoRepoStub) GetByID(id string) (*entity.Pedido, error) { return s.pedidos[id], nil }
func (s *pedidoRepoStub) GetDetalles(pedidoID string) ([]*entity.PedidoDetalle, error) {
	return s.detalles[pedidoID], nil
}
func (s *pedidoRepoStub) List(string, int, int) ([]*entity.Pedido, int, error) {
	return nil, 0, nil
}
func (s *pedidoRepoStub) UpdateEstado(id, estado string) error {
	if p, ok := s.pedidos[id]; ok {
		p.Estado = estado
	}
	return nil
}

// txRunnerStub entrega los stubs a fn tal cual; no hay rollback real, los
// tests verifican que el error de fn se propague antes de cualquier efecto
// observable posterior. Si puerta no es nil, Run espera a que todas las
// transacciones del test hayan llegado antes de ejecutar fn.
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
	pedidoRepo := s.pedidoRepo
	if pedidoRepo == nil {
		pedidoRepo = &pedidoRepoStub{}
	}
	return fn(s.ventaRepo, s.productoRepo, pedidoRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func producto(id, nombre string, precio float64, stock int) *entity.Producto {
	return &entity.Producto{
		ID:     id,
		Nombre: nombre,
		Precio: decimal.NewFromFloat(precio),
		Stock:  stock,
		Activo: true,
	}
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CrearVenta
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de caja completo: Maria Lopez compra 2 unidades de un producto de
// 10.00 pagando 25 en efectivo. El servidor calcula total 20.00 y vuelto 5.00.
func TestCrearVenta_EscenarioMariaLopez(t *testing.T) {
	productoRepo := newProductoRepoStub(producto("p1", "Martillo", 10.00, 8))
	ventaRepo := newVentaRepoStub()
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewCrearVentaUseCase(tx, productoRepo, ventaRepo)

	out, err := uc.Crear(context.Background(), "vendedor-1", dto.CreateVentaRequest{
		ClienteNombre: "Maria Lopez",
		Items: []dto.ItemVentaRequest{
			{ProductoID: "p1", Cantidad: 2}, // precio 0 → usa catálogo
		},
		MetodoPago:  entity.PagoEfectivo,
		MontoPagado: dec("25"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, dec("20.00").Equal(out.Total), "total autoritativo: 10.00 × 2")
	assert.True(t, dec("5.00").Equal(out.Vuelto), "vuelto: 25 − 20")
	assert.Equal(t, entity.VentaCompletada, out.Estado)
	assert.NotEmpty(t, out.Numero)
	require.Len(t, out.Detalles, 1)
	assert.Equal(t, "Martillo", out.Detalles[0].Producto)
	assert.True(t, dec("20.00").Equal(out.Detalles[0].Subtotal))

	// El stock se descontó dentro de la transacción
	assert.Equal(t, -2, productoRepo.ajustes["p1"])
	// Cabecera y detalle quedaron persistidos
	assert.Len(t, ventaRepo.ventas, 1)
	assert.Len(t, ventaRepo.detalles[out.ID], 1)
}

func TestCrearVenta_ValidacionFallida_DevuelveMapaDeCampos(t *testing.T) {
	productoRepo := newProductoRepoStub(producto("p1", "Clavos", 2.50, 100))
	ventaRepo := newVentaRepoStub()
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewCrearVentaUseCase(tx, productoRepo, ventaRepo)

	// Nombre de una sola palabra y pago insuficiente
	_, err := uc.Crear(context.Background(), "vendedor-1", dto.CreateVentaRequest{
		ClienteNombre: "Maria",
		Items: []dto.ItemVentaRequest{
			{ProductoID: "p1", Cantidad: 4},
		},
		MetodoPago:  entity.PagoEfectivo,
		MontoPagado: dec("5"),
	})
	require.Error(t, err)

	var ev *ventas.ErrValidacion
	require.True(t, errors.As(err, &ev), "debe ser un error de validación por campo")
	assert.Contains(t, ev.Campos, "cliente_nombre")
	assert.Contains(t, ev.Campos, "monto_pagado")

	// Nada se persistió ni se tocó el stock
	assert.Empty(t, ventaRepo.ventas)
	assert.Empty(t, productoRepo.ajustes)
}

func TestCrearVenta_StockInsuficiente_AbortaSinPersistir(t *testing.T) {
	productoRepo := newProductoRepoStub(producto("p1", "Taladro", 150.00, 1))
	ventaRepo := newVentaRepoStub()
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewCrearVentaUseCase(tx, productoRepo, ventaRepo)

	_, err := uc.Crear(context.Background(), "vendedor-1", dto.CreateVentaRequest{
		ClienteNombre: "Luis Mamani",
		Items: []dto.ItemVentaRequest{
			{ProductoID: "p1", Cantidad: 3},
		},
		MetodoPago:  entity.PagoTarjeta,
		MontoPagado: dec("450"),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, ventaRepo.ventas, "la venta no debe quedar persistida")
}

func TestCrearVenta_ProductoInactivo_RetornaNotFound(t *testing.T) {
	inactivo := producto("p1", "Descontinuado", 9.90, 10)
	inactivo.Activo = false
	productoRepo := newProductoRepoStub(inactivo)
	ventaRepo := newVentaRepoStub()
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewCrearVentaUseCase(tx, productoRepo, ventaRepo)

	_, err := uc.Crear(context.Background(), "vendedor-1", dto.CreateVentaRequest{
		ClienteNombre: "Ana Torres",
		Items: []dto.ItemVentaRequest{
			{ProductoID: "p1", Cantidad: 1},
		},
		MetodoPago:  entity.PagoEfectivo,
		MontoPagado: dec("10"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearVenta_PrecioExplicitoSeRespeta(t *testing.T) {
	productoRepo := newProductoRepoStub(producto("p1", "Pintura", 45.00, 20))
	ventaRepo := newVentaRepoStub()
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewCrearVentaUseCase(tx, productoRepo, ventaRepo)

	// Precio negociado en caja distinto al de catálogo
	out, err := uc.Crear(context.Background(), "vendedor-1", dto.CreateVentaRequest{
		ClienteNombre: "Jorge Quispe",
		Items: []dto.ItemVentaRequest{
			{ProductoID: "p1", Cantidad: 1, PrecioUnitario: dec("40.00")},
		},
		MetodoPago:  entity.PagoYape,
		MontoPagado: dec("40"),
	})
	require.NoError(t, err)
	assert.True(t, dec("40.00").Equal(out.Total))
	assert.True(t, out.Vuelto.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AnularVenta
// ──────────────────────────────────────────────────────────────────────────────

func ventaDePrueba(id string, fecha time.Time, estado string) *entity.Venta {
	return &entity.Venta{
		ID:            id,
		Numero:        "V-1718900000",
		ClienteNombre: "Maria Lopez",
		Total:         dec("20.00"),
		MetodoPago:    entity.PagoEfectivo,
		MontoPagado:   dec("25.00"),
		Vuelto:        dec("5.00"),
		Estado:        estado,
		Fecha:         fecha,
		Detalles: []*entity.VentaDetalle{
			{ID: "d1", VentaID: id, ProductoID: "p1", Producto: "Martillo", Cantidad: 2,
				PrecioUnitario: dec("10.00"), Subtotal: dec("20.00")},
		},
	}
}

func TestAnularVenta_ReponeStockYMarcaAnulada(t *testing.T) {
	v := ventaDePrueba("v1", time.Now().Add(-2*time.Hour), entity.VentaCompletada)
	productoRepo := newProductoRepoStub(producto("p1", "Martillo", 10.00, 6))
	ventaRepo := newVentaRepoStub(v)
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewAnularVentaUseCase(tx)

	out, err := uc.Anular(context.Background(), "v1", "admin-1", "cliente devolvió el producto")
	require.NoError(t, err)

	assert.Equal(t, entity.VentaAnulada, out.Estado)
	assert.Equal(t, "cliente devolvió el producto", out.MotivoAnulacion)
	assert.Equal(t, "admin-1", out.AnuladoPor)
	assert.Equal(t, 2, productoRepo.ajustes["p1"], "las 2 unidades vuelven al stock")
	assert.Equal(t, entity.VentaAnulada, ventaRepo.ventas["v1"].Estado)
}

func TestAnularVenta_YaAnulada_RetornaVentaAnulada(t *testing.T) {
	v := ventaDePrueba("v1", time.Now().Add(-time.Hour), entity.VentaAnulada)
	productoRepo := newProductoRepoStub(producto("p1", "Martillo", 10.00, 8))
	ventaRepo := newVentaRepoStub(v)
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewAnularVentaUseCase(tx)

	_, err := uc.Anular(context.Background(), "v1", "admin-1", "motivo suficientemente largo")
	require.ErrorIs(t, err, domain.ErrVentaAnulada)
	assert.Empty(t, productoRepo.ajustes, "no debe tocar el stock")
}

func TestAnularVenta_FueraDePlazo_RetornaFueraDePlazo(t *testing.T) {
	v := ventaDePrueba("v1", time.Now().Add(-25*time.Hour), entity.VentaCompletada)
	productoRepo := newProductoRepoStub(producto("p1", "Martillo", 10.00, 8))
	ventaRepo := newVentaRepoStub(v)
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewAnularVentaUseCase(tx)

	_, err := uc.Anular(context.Background(), "v1", "admin-1", "motivo suficientemente largo")
	require.ErrorIs(t, err, domain.ErrVentaFueraDePlazo)
}

func TestAnularVenta_MotivoCorto_RetornaMotivoRequerido(t *testing.T) {
	v := ventaDePrueba("v1", time.Now().Add(-time.Hour), entity.VentaCompletada)
	productoRepo := newProductoRepoStub(producto("p1", "Martillo", 10.00, 8))
	ventaRepo := newVentaRepoStub(v)
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewAnularVentaUseCase(tx)

	_, err := uc.Anular(context.Background(), "v1", "admin-1", "mal")
	require.ErrorIs(t, err, domain.ErrMotivoRequerido)
}

// Dos cajas anulan la misma venta a la vez. La puerta del tx runner garantiza
// que ambas transacciones arranquen juntas; solo una anulación debe aplicarse
// y las 2 unidades deben reponerse una sola vez.
func TestAnularVenta_Concurrente_ReponeStockUnaVez(t *testing.T) {
	v := ventaDePrueba("v1", time.Now().Add(-time.Hour), entity.VentaCompletada)
	productoRepo := newProductoRepoStub(producto("p1", "Martillo", 10.00, 6))
	ventaRepo := newVentaRepoStub(v)

	puerta := &sync.WaitGroup{}
	puerta.Add(2)
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo, puerta: puerta}
	uc := ventas.NewAnularVentaUseCase(tx)

	var wg sync.WaitGroup
	resultados := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Anular(context.Background(), "v1", "admin-1", "cliente devolvió el producto")
			resultados <- err
		}()
	}
	wg.Wait()
	close(resultados)

	var anuladas, rechazadas int
	for err := range resultados {
		switch {
		case err == nil:
			anuladas++
		case errors.Is(err, domain.ErrVentaAnulada):
			rechazadas++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, anuladas, "solo una anulación debe aplicarse")
	assert.Equal(t, 1, rechazadas, "la otra debe rechazarse como ya anulada")
	assert.Equal(t, 2, productoRepo.ajustes["p1"], "el stock debe reponerse una sola vez")
	assert.Equal(t, entity.VentaAnulada, ventaRepo.ventas["v1"].Estado)
}

func TestAnularVenta_NoExiste_RetornaNotFound(t *testing.T) {
	productoRepo := newProductoRepoStub()
	ventaRepo := newVentaRepoStub()
	tx := &txRunnerStub{ventaRepo: ventaRepo, productoRepo: productoRepo}
	uc := ventas.NewAnularVentaUseCase(tx)

	_, err := uc.Anular(context.Background(), "no-existe", "admin-1", "motivo suficientemente largo")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

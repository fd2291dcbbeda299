package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner ejecuta el callback con los fakes directos:
// no hay transacción real, pero el contrato (error => nada persistido visible)
// se verifica mirando qué mutaciones ocurrieron antes del fallo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	repository.CartRepository
	items   []entity.CartItem
	cleared bool
}

func (f *fakeCartRepo) ListByUser(_ context.Context, _ string) ([]entity.CartItem, error) {
	return f.items, nil
}

func (f *fakeCartRepo) Clear(_ context.Context, _ string) error {
	f.cleared = true
	return nil
}

type fakeProductRepo struct {
	repository.ProductRepository
	products map[string]*entity.Product
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) DecrementStock(_ context.Context, productID string, qty int) error {
	p, ok := f.products[productID]
	if !ok || p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

type fakeOrderRepo struct {
	repository.OrderRepository
	orders      map[string]*entity.Order
	crmRows     []entity.CRMOrderView
	crmLimit    int
	lastStatus  string
	statusCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) ListCRMOrders(_ context.Context, limit, _ int) ([]entity.CRMOrderView, error) {
	f.crmLimit = limit
	return f.crmRows, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.statusCalls++
	f.lastStatus = status
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type fakeTxRunner struct {
	cart    *fakeCartRepo
	product *fakeProductRepo
	order   *fakeOrderRepo
}

func (f *fakeTxRunner) RunCheckout(_ context.Context, fn func(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	return fn(f.cart, f.product, f.order)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_CreaPedidoYVaciaCarrito(t *testing.T) {
	cart := &fakeCartRepo{items: []entity.CartItem{
		{ProductID: "p1", ProductName: "Botas de cuero", UnitPrice: decimal.NewFromInt(150000), Quantity: 2},
		{ProductID: "p2", ProductName: "Correa clásica", UnitPrice: decimal.NewFromInt(45000), Quantity: 1},
	}}
	product := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Stock: 10},
		"p2": {ID: "p2", Stock: 5},
	}}
	order := newFakeOrderRepo()
	uc := NewOrderUseCase(&fakeTxRunner{cart, product, order}, order)

	out, err := uc.Checkout(context.Background(), "user-1")

	require.NoError(t, err)
	// Total calculado en servidor: 2×150000 + 45000 = 345000
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(345000)), "total = %s", out.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, out.Status)
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].LineTotal.Equal(decimal.NewFromInt(300000)))

	assert.True(t, cart.cleared, "el carrito debe quedar vacío")
	assert.Equal(t, 8, product.products["p1"].Stock)
	assert.Equal(t, 4, product.products["p2"].Stock)
	assert.Len(t, order.orders, 1)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	order := newFakeOrderRepo()
	uc := NewOrderUseCase(&fakeTxRunner{&fakeCartRepo{}, &fakeProductRepo{}, order}, order)

	_, err := uc.Checkout(context.Background(), "user-1")

	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, order.orders)
}

func TestCheckout_StockInsuficiente(t *testing.T) {
	cart := &fakeCartRepo{items: []entity.CartItem{
		{ProductID: "p1", ProductName: "Botas de cuero", UnitPrice: decimal.NewFromInt(150000), Quantity: 3},
	}}
	product := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Stock: 2},
	}}
	order := newFakeOrderRepo()
	uc := NewOrderUseCase(&fakeTxRunner{cart, product, order}, order)

	_, err := uc.Checkout(context.Background(), "user-1")

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, order.orders, "el pedido no llega a crearse")
	assert.False(t, cart.cleared, "el carrito no se toca si el checkout falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelación y cambio de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestCancelOwn_SoloPending(t *testing.T) {
	order := newFakeOrderRepo()
	order.orders["o1"] = &entity.Order{ID: "o1", UserID: "user-1", Status: entity.OrderStatusPending}
	order.orders["o2"] = &entity.Order{ID: "o2", UserID: "user-1", Status: entity.OrderStatusShipped}
	uc := NewOrderUseCase(&fakeTxRunner{&fakeCartRepo{}, &fakeProductRepo{}, order}, order)

	require.NoError(t, uc.CancelOwn(context.Background(), "user-1", "o1"))
	assert.Equal(t, entity.OrderStatusCanceled, order.orders["o1"].Status)

	err := uc.CancelOwn(context.Background(), "user-1", "o2")
	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

// El pedido de otro usuario se responde como inexistente, no como prohibido.
func TestCancelOwn_PedidoAjeno(t *testing.T) {
	order := newFakeOrderRepo()
	order.orders["o1"] = &entity.Order{ID: "o1", UserID: "user-2", Status: entity.OrderStatusPending}
	uc := NewOrderUseCase(&fakeTxRunner{&fakeCartRepo{}, &fakeProductRepo{}, order}, order)

	err := uc.CancelOwn(context.Background(), "user-1", "o1")

	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, order.statusCalls)
}

func TestUpdateStatus_CanceladoEsTerminal(t *testing.T) {
	order := newFakeOrderRepo()
	order.orders["o1"] = &entity.Order{ID: "o1", UserID: "user-1", Status: entity.OrderStatusCanceled}
	uc := NewOrderUseCase(&fakeTxRunner{&fakeCartRepo{}, &fakeProductRepo{}, order}, order)

	err := uc.UpdateStatus(context.Background(), "o1", entity.OrderStatusProcessing)

	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	order := newFakeOrderRepo()
	uc := NewOrderUseCase(&fakeTxRunner{&fakeCartRepo{}, &fakeProductRepo{}, order}, order)

	err := uc.UpdateStatus(context.Background(), "o1", "entregado-parcial")

	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetOwn
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOwn_OcultaPedidosAjenos(t *testing.T) {
	order := newFakeOrderRepo()
	order.orders["o1"] = &entity.Order{ID: "o1", UserID: "user-2", Status: entity.OrderStatusPending}
	uc := NewOrderUseCase(&fakeTxRunner{&fakeCartRepo{}, &fakeProductRepo{}, order}, order)

	out, err := uc.GetOwn(context.Background(), "user-1", "o1")

	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListCRM_EtiquetaEstadosYPagina(t *testing.T) {
	order := newFakeOrderRepo()
	order.crmRows = []entity.CRMOrderView{
		{OrderID: "o1", CustomerName: "Ana Pérez", Status: entity.OrderStatusShipped, ItemCount: 3},
	}
	uc := NewOrderUseCase(&fakeTxRunner{&fakeCartRepo{}, &fakeProductRepo{}, order}, order)

	out, err := uc.ListCRM(context.Background(), dto.PageRequest{Limit: -5, Offset: -1})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Enviado", out.Items[0].StatusLabel)
	// Los valores fuera de rango caen a los defaults.
	assert.Equal(t, 20, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
	assert.Equal(t, 20, order.crmLimit)
}

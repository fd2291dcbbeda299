package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// OrderUseCase pedidos: checkout e historial del cliente, gestión desde el CRM.
type OrderUseCase struct {
	txRunner  CheckoutTxRunner
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(txRunner CheckoutTxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// Checkout convierte el carrito del usuario en un pedido, en una sola transacción:
// lee el carrito, congela precios, descuenta stock, crea el pedido y vacía el carrito.
// El total se calcula en el servidor como Σ precio × cantidad; nunca lo envía el cliente.
func (uc *OrderUseCase) Checkout(ctx context.Context, userID string) (*dto.OrderResponse, error) {
	var created *entity.Order

	err := uc.txRunner.RunCheckout(ctx, func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		cartItems, err := cartRepo.ListByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("leer carrito: %w", err)
		}
		if len(cartItems) == 0 {
			return domain.ErrEmptyCart
		}

		now := time.Now()
		order := &entity.Order{
			ID:          uuid.NewString(),
			UserID:      userID,
			Status:      entity.OrderStatusPending,
			TotalAmount: decimal.Zero,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		for _, it := range cartItems {
			if err := productRepo.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
				return fmt.Errorf("descontar stock de %s: %w", it.ProductID, err)
			}
			line := entity.OrderItem{
				ID:          uuid.NewString(),
				OrderID:     order.ID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
			}
			order.Items = append(order.Items, line)
			order.TotalAmount = order.TotalAmount.Add(line.LineTotal())
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("crear pedido: %w", err)
		}
		if err := cartRepo.Clear(ctx, userID); err != nil {
			return fmt.Errorf("vaciar carrito: %w", err)
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(*created, true)
	return &resp, nil
}

// ListByUser historial del cliente (solo cabeceras).
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderResponse(o, false))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetOwn devuelve un pedido del cliente con sus líneas; nil si no existe o no es suyo.
func (uc *OrderUseCase) GetOwn(ctx context.Context, userID, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido: %w", err)
	}
	if o == nil || o.UserID != userID {
		return nil, nil
	}
	resp := toOrderResponse(*o, true)
	return &resp, nil
}

// CancelOwn cancela un pedido propio. Solo se permite en estado pending;
// después de eso el estado es territorio exclusivo del CRM.
func (uc *OrderUseCase) CancelOwn(ctx context.Context, userID, orderID string) error {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("obtener pedido: %w", err)
	}
	if o == nil || o.UserID != userID {
		return domain.ErrNotFound
	}
	if o.Status != entity.OrderStatusPending {
		return domain.ErrInvalidStatusTransition
	}
	if err := uc.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCanceled); err != nil {
		return fmt.Errorf("cancelar pedido: %w", err)
	}
	return nil
}

// ListCRM vista denormalizada pedido+cliente para el CRM.
func (uc *OrderUseCase) ListCRM(ctx context.Context, page dto.PageRequest) (*dto.CRMOrderListResponse, error) {
	page.DefaultPage()
	rows, err := uc.orderRepo.ListCRMOrders(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos CRM: %w", err)
	}
	items := make([]dto.CRMOrderResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.CRMOrderResponse{
			OrderID:       row.OrderID,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			TotalAmount:   row.TotalAmount,
			Status:        row.Status,
			StatusLabel:   entity.OrderStatusLabel(row.Status),
			ItemCount:     row.ItemCount,
			CreatedAt:     row.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.CRMOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateStatus cambio de estado desde el CRM. canceled es terminal.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !entity.ValidOrderStatus(status) {
		return domain.ErrInvalidInput
	}
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("obtener pedido: %w", err)
	}
	if o == nil {
		return domain.ErrNotFound
	}
	if o.Status == entity.OrderStatusCanceled {
		return domain.ErrInvalidStatusTransition
	}
	if err := uc.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("actualizar estado: %w", err)
	}
	return nil
}

func toOrderResponse(o entity.Order, withItems bool) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:          o.ID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		StatusLabel: entity.OrderStatusLabel(o.Status),
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
	if withItems {
		resp.Items = make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			resp.Items = append(resp.Items, dto.OrderItemResponse{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
				LineTotal:   it.LineTotal(),
			})
		}
	}
	return resp
}

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

// CartUseCase carrito del cliente. Los precios mostrados son los vigentes del
// catálogo; se congelan recién en el checkout.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// Get devuelve el carrito del usuario con subtotal.
func (uc *CartUseCase) Get(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar carrito: %w", err)
	}
	resp := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items)), Subtotal: decimal.Zero}
	for _, it := range items {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			LineTotal:   lineTotal,
		})
		resp.Subtotal = resp.Subtotal.Add(lineTotal)
	}
	return resp, nil
}

// AddItem agrega un producto activo al carrito (acumula cantidad si ya estaba).
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, in dto.AddCartItemRequest) error {
	if in.ProductID == "" || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil || !p.Active {
		return domain.ErrNotFound
	}
	item := &entity.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
	}
	if err := uc.cartRepo.Upsert(ctx, item); err != nil {
		return fmt.Errorf("agregar al carrito: %w", err)
	}
	return nil
}

// RemoveItem quita un producto del carrito.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, productID string) error {
	if productID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.cartRepo.Remove(ctx, userID, productID); err != nil {
		return fmt.Errorf("quitar del carrito: %w", err)
	}
	return nil
}

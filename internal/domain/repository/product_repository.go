package repository

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia del catálogo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	// GetByID devuelve el producto; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// List catálogo paginado. Con onlyActive solo productos visibles en tienda.
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]entity.Product, error)

	Update(ctx context.Context, product *entity.Product) error

	// DecrementStock descuenta qty de forma atómica; ErrInsufficientStock si
	// el stock disponible no alcanza.
	DecrementStock(ctx context.Context, productID string, qty int) error
}

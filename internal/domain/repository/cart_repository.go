package repository

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// CartRepository puerto de persistencia del carrito.
type CartRepository interface {
	// ListByUser líneas del carrito con nombre y precio vigente del catálogo.
	ListByUser(ctx context.Context, userID string) ([]entity.CartItem, error)

	// Upsert agrega el producto o acumula cantidad si ya está en el carrito.
	Upsert(ctx context.Context, item *entity.CartItem) error

	// Remove quita un producto del carrito del usuario.
	Remove(ctx context.Context, userID, productID string) error

	// Clear vacía el carrito (se invoca dentro de la transacción de checkout).
	Clear(ctx context.Context, userID string) error
}

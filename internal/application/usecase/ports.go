package usecase

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta fn con repositorios atados a una misma transacción.
// La implementación Postgres hace Begin/Commit/Rollback; el caso de uso solo
// describe el trabajo atómico: leer carrito, descontar stock, crear pedido,
// vaciar carrito.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

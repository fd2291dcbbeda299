package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem línea del carrito de un usuario. El precio NO se congela aquí:
// se lee del catálogo en el checkout, que es donde se fija en OrderItem.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time

	// Campos denormalizados del catálogo para mostrar el carrito sin segundo fetch.
	ProductName string
	UnitPrice   decimal.Decimal
}

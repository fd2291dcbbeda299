package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es total simple (una sola bodega); Active controla visibilidad en la tienda.
type Product struct {
	ID          string
	SKU         string // código único de catálogo
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CRMOrderView fila denormalizada del listado de pedidos del CRM:
// pedido + datos del cliente en una sola lectura (JOIN en el repositorio).
// Es una proyección de solo lectura; nunca se persiste de vuelta.
type CRMOrderView struct {
	OrderID       string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	TotalAmount   decimal.Decimal
	Status        string
	ItemCount     int
	CreatedAt     time.Time
}

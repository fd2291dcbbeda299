package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"
)

// orderStatusLabels etiquetas en español para CRM y reportes.
var orderStatusLabels = map[string]string{
	OrderStatusPending:    "Pendiente",
	OrderStatusProcessing: "En proceso",
	OrderStatusShipped:    "Enviado",
	OrderStatusDelivered:  "Entregado",
	OrderStatusCanceled:   "Cancelado",
}

// OrderStatusLabel devuelve la etiqueta localizada del estado; el valor crudo si no se reconoce.
func OrderStatusLabel(status string) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return status
}

// ValidOrderStatus indica si el estado pertenece al ciclo de vida del pedido.
func ValidOrderStatus(status string) bool {
	_, ok := orderStatusLabels[status]
	return ok
}

// Order representa un pedido de la tienda.
// TotalAmount es la suma de UnitPrice × Quantity de sus líneas al momento del checkout;
// los descuentos posteriores se aplican en presentación, nunca se persisten aquí.
// El estado solo lo muta el staff del CRM, o el cliente al cancelar un pedido pendiente.
type Order struct {
	ID          string
	UserID      string
	TotalAmount decimal.Decimal
	Status      string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem línea de pedido (precio congelado al momento de la compra).
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// LineTotal devuelve UnitPrice × Quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

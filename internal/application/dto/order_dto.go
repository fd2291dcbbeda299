package dto

import "github.com/shopspring/decimal"

// OrderItemResponse línea de pedido con el precio congelado al checkout.
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// OrderResponse pedido para la tienda (historial) y detalle CRM.
type OrderResponse struct {
	ID          string              `json:"id"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	StatusLabel string              `json:"status_label"`
	Items       []OrderItemResponse `json:"items,omitempty"`
	CreatedAt   string              `json:"created_at"`
}

// OrderListResponse historial paginado.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// UpdateOrderStatusRequest cambio de estado desde el CRM.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CRMOrderResponse fila del listado de pedidos del CRM (pedido + cliente).
type CRMOrderResponse struct {
	OrderID       string          `json:"order_id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
	ItemCount     int             `json:"item_count"`
	CreatedAt     string          `json:"created_at"`
}

// CRMOrderListResponse listado CRM paginado.
type CRMOrderListResponse struct {
	Items []CRMOrderResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

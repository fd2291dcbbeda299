package dto

// CreateReturnRequest devolución iniciada por el cliente sobre un pedido
// entregado o enviado.
type CreateReturnRequest struct {
	OrderID   string   `json:"order_id"`
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Reason    string   `json:"reason"`
	Images    []string `json:"images"`
}

// ReturnResponse devolución para tienda y CRM.
type ReturnResponse struct {
	ID          string   `json:"id"`
	OrderID     string   `json:"order_id,omitempty"`
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	Reason      string   `json:"reason"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"status_label"`
	Images      []string `json:"images,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// ReturnListResponse listado paginado.
type ReturnListResponse struct {
	Items []ReturnResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// UpdateReturnStatusRequest cambio de estado del flujo (solo staff CRM).
type UpdateReturnStatusRequest struct {
	Status string `json:"status"`
}

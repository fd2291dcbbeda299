package dto

// CreateDefectRequest reporte de unidades defectuosas desde bodega.
type CreateDefectRequest struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"` // production | material | equipment | other
	Description string `json:"description"`
}

// DefectResponse defecto para el CRM.
type DefectResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"`
	TypeLabel   string `json:"type_label"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// DefectListResponse listado para el CRM.
type DefectListResponse struct {
	Items []DefectResponse `json:"items"`
}

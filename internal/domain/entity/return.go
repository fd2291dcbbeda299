package entity

import "time"

// Estados del flujo de devoluciones. Los terminales son rejected y completed.
const (
	ReturnStatusPending    = "pending"
	ReturnStatusApproved   = "approved"
	ReturnStatusRejected   = "rejected"
	ReturnStatusProcessing = "processing"
	ReturnStatusCompleted  = "completed"
)

var returnStatusLabels = map[string]string{
	ReturnStatusPending:    "Pendiente",
	ReturnStatusApproved:   "Aprobada",
	ReturnStatusRejected:   "Rechazada",
	ReturnStatusProcessing: "En proceso",
	ReturnStatusCompleted:  "Completada",
}

// ReturnStatusLabel devuelve la etiqueta localizada del estado; el valor crudo si no se reconoce.
func ReturnStatusLabel(status string) string {
	if label, ok := returnStatusLabels[status]; ok {
		return label
	}
	return status
}

// ValidReturnStatus indica si el estado pertenece al flujo de devoluciones.
func ValidReturnStatus(status string) bool {
	_, ok := returnStatusLabels[status]
	return ok
}

// ReturnIsActive indica si la devolución sigue abierta (cuenta para la regla
// de "una devolución activa por (pedido, producto)").
func ReturnIsActive(status string) bool {
	return status == ReturnStatusPending || status == ReturnStatusProcessing
}

// Return representa una devolución iniciada por el cliente sobre un pedido
// entregado o enviado. El estado solo lo muta el staff del CRM.
//
// Reason se normaliza a un único campo en la capa de acceso a datos;
// el resto del pipeline nunca pregunta por variantes del campo.
type Return struct {
	ID          string
	UserID      string
	OrderID     string // opcional: vacío si la devolución no referencia pedido
	ProductID   string
	ProductName string
	Quantity    int
	Reason      string
	Status      string
	Images      []string // referencias a imágenes de evidencia
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

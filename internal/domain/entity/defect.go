package entity

import "time"

// Tipos de defecto reportados por bodega.
const (
	DefectTypeProduction = "production"
	DefectTypeMaterial   = "material"
	DefectTypeEquipment  = "equipment"
	DefectTypeOther      = "other"
)

var defectTypeLabels = map[string]string{
	DefectTypeProduction: "Defecto de producción",
	DefectTypeMaterial:   "Defecto de material",
	DefectTypeEquipment:  "Falla de equipo",
	DefectTypeOther:      "Otro",
}

// DefectTypeLabel devuelve la etiqueta localizada del tipo; el valor crudo si no se reconoce.
func DefectTypeLabel(defectType string) string {
	if label, ok := defectTypeLabels[defectType]; ok {
		return label
	}
	return defectType
}

// ValidDefectType indica si el tipo es uno de los reconocidos.
func ValidDefectType(defectType string) bool {
	_, ok := defectTypeLabels[defectType]
	return ok
}

// Estados de un registro de defecto. La transición a closed existe en el tipo
// pero hoy ningún flujo la ejercita; los registros se crean y no se mutan.
const (
	DefectStatusOpen   = "open"
	DefectStatusClosed = "closed"
)

// Defect representa unidades defectuosas reportadas por el staff de bodega,
// distinto de una devolución iniciada por el cliente.
type Defect struct {
	ID          string
	ProductID   string // opcional: puede reportarse por nombre sin referencia de catálogo
	ProductName string
	Quantity    int
	Type        string
	Description string
	Status      string
	CreatedAt   time.Time
}

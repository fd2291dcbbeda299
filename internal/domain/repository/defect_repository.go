package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// DefectRepository puerto de persistencia de defectos de bodega.
// Los registros se crean y se leen; hoy ningún flujo los muta.
type DefectRepository interface {
	Create(ctx context.Context, defect *entity.Defect) error

	// ListAll devuelve todos los defectos (fuente de los widgets de stats).
	ListAll(ctx context.Context) ([]entity.Defect, error)

	// ListByRange defectos creados dentro de [start, end].
	ListByRange(ctx context.Context, start, end time.Time) ([]entity.Defect, error)
}

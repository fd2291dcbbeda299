package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ReturnRepository puerto de persistencia de devoluciones.
// Las implementaciones normalizan el campo Reason en la lectura (una sola
// columna efectiva hacia el dominio, sin variantes de nombre).
type ReturnRepository interface {
	Create(ctx context.Context, ret *entity.Return) error

	// GetByID devuelve la devolución; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Return, error)

	// ListByUser devoluciones del cliente, más reciente primero.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Return, error)

	// List listado completo paginado para el CRM.
	List(ctx context.Context, limit, offset int) ([]entity.Return, error)

	// ListAll devuelve todas las devoluciones; fuente de los widgets de stats
	// (total histórico + mes actual).
	ListAll(ctx context.Context) ([]entity.Return, error)

	// ListByRange devoluciones creadas dentro de [start, end].
	ListByRange(ctx context.Context, start, end time.Time) ([]entity.Return, error)

	// CountActive cuenta devoluciones pending/processing para el par
	// (pedido, producto); soporta la regla de una devolución activa a la vez.
	CountActive(ctx context.Context, orderID, productID string) (int, error)

	// UpdateStatus cambia el estado del flujo (solo staff CRM).
	UpdateStatus(ctx context.Context, id, status string) error
}

package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// OrderCounts vista pre-agregada de pedidos para el encabezado del dashboard.
// La produce la DB en una sola consulta; no es un PeriodAggregate.
type OrderCounts struct {
	NewOrders        int // creados dentro del período
	ProcessingOrders int // en estado processing dentro del período
	TotalOrders      int // histórico completo
}

// OrderRepository puerto de persistencia de pedidos.
type OrderRepository interface {
	// Create persiste la cabecera del pedido y todas sus líneas.
	Create(ctx context.Context, order *entity.Order) error

	// GetByID devuelve el pedido con sus líneas; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser historial de pedidos del cliente, más reciente primero.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Order, error)

	// ListByRange devuelve las cabeceras creadas dentro de [start, end].
	// Es la fuente cruda del motor de agregación; no carga líneas.
	ListByRange(ctx context.Context, start, end time.Time) ([]entity.Order, error)

	// ListCRMOrders vista denormalizada pedido+cliente para el listado del CRM.
	ListCRMOrders(ctx context.Context, limit, offset int) ([]entity.CRMOrderView, error)

	// UpdateStatus cambia el estado del ciclo de vida del pedido.
	UpdateStatus(ctx context.Context, id, status string) error

	// CountsForPeriod vista de conveniencia: pedidos nuevos y en proceso del
	// período más el total histórico, resuelto con COUNT FILTER en la DB.
	CountsForPeriod(ctx context.Context, start, end time.Time) (OrderCounts, error)
}

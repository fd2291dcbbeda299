package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido y todas sus líneas.
// Se invoca dentro de la transacción de checkout; no abre una propia.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.UserID, order.TotalAmount, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, product_name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range order.Items {
		if _, err := r.q.Exec(ctx, itemQuery,
			it.ID, it.OrderID, it.ProductID, it.ProductName, it.UnitPrice, it.Quantity,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el pedido con sus líneas; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, user_id, total_amount, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) listItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, unit_price, quantity
		FROM order_items WHERE order_id = $1`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByUser historial de pedidos del cliente, más reciente primero. Solo
// cabeceras; el detalle de líneas se carga al abrir un pedido puntual.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Order, error) {
	query := `
		SELECT id, user_id, total_amount, status, created_at, updated_at
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListByRange cabeceras creadas dentro de [start, end], fuente cruda del motor
// de agregación.
func (r *OrderRepo) ListByRange(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	query := `
		SELECT id, user_id, total_amount, status, created_at, updated_at
		FROM orders WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list orders by range: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]entity.Order, error) {
	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// ListCRMOrders vista denormalizada pedido+cliente para el listado del CRM.
// El JOIN con users es LEFT: un pedido de un usuario borrado sigue listándose.
func (r *OrderRepo) ListCRMOrders(ctx context.Context, limit, offset int) ([]entity.CRMOrderView, error) {
	query := `
		SELECT o.id, o.user_id,
		       COALESCE(u.name, ''), COALESCE(u.email, ''),
		       o.total_amount, o.status,
		       (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
		       o.created_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list crm orders: %w", err)
	}
	defer rows.Close()
	var list []entity.CRMOrderView
	for rows.Next() {
		var v entity.CRMOrderView
		if err := rows.Scan(&v.OrderID, &v.CustomerID, &v.CustomerName, &v.CustomerEmail,
			&v.TotalAmount, &v.Status, &v.ItemCount, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan crm order: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del ciclo de vida del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountsForPeriod conteos del encabezado del dashboard en una sola consulta:
// pedidos nuevos y en proceso dentro del período más el total histórico.
func (r *OrderRepo) CountsForPeriod(ctx context.Context, start, end time.Time) (repository.OrderCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE created_at BETWEEN $1 AND $2)                            AS new_orders,
			COUNT(*) FILTER (WHERE created_at BETWEEN $1 AND $2 AND status = 'processing')  AS processing_orders,
			COUNT(*)                                                                        AS total_orders
		FROM orders`
	var c repository.OrderCounts
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&c.NewOrders, &c.ProcessingOrders, &c.TotalOrders); err != nil {
		return repository.OrderCounts{}, fmt.Errorf("count orders: %w", err)
	}
	return c, nil
}

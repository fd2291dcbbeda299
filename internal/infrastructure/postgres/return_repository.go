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

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

// ReturnRepo implementación de ReturnRepository (usable con pool o tx).
//
// La tabla arrastra dos columnas de motivo por una migración vieja (reason y
// return_reason); todas las lecturas las normalizan a un solo campo con
// COALESCE y las escrituras solo llenan reason.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador de devoluciones. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

const returnColumns = `
	id, user_id, COALESCE(order_id, ''), product_id, product_name, quantity,
	COALESCE(NULLIF(reason, ''), return_reason, ''), status,
	COALESCE(images, '{}'), created_at, updated_at`

// Create persiste una nueva devolución.
func (r *ReturnRepo) Create(ctx context.Context, ret *entity.Return) error {
	query := `
		INSERT INTO returns (id, user_id, order_id, product_id, product_name, quantity, reason, status, images, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		ret.ID, ret.UserID, ret.OrderID, ret.ProductID, ret.ProductName, ret.Quantity,
		ret.Reason, ret.Status, ret.Images, ret.CreatedAt, ret.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// GetByID obtiene la devolución; nil si no existe.
func (r *ReturnRepo) GetByID(ctx context.Context, id string) (*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`
	var ret entity.Return
	err := r.q.QueryRow(ctx, query, id).Scan(
		&ret.ID, &ret.UserID, &ret.OrderID, &ret.ProductID, &ret.ProductName, &ret.Quantity,
		&ret.Reason, &ret.Status, &ret.Images, &ret.CreatedAt, &ret.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	return &ret, nil
}

// ListByUser devoluciones del cliente, más reciente primero.
func (r *ReturnRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Return, error) {
	query := `SELECT ` + returnColumns + `
		FROM returns WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list returns by user: %w", err)
	}
	defer rows.Close()
	return scanReturns(rows)
}

// List listado completo paginado para el CRM.
func (r *ReturnRepo) List(ctx context.Context, limit, offset int) ([]entity.Return, error) {
	query := `SELECT ` + returnColumns + `
		FROM returns ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()
	return scanReturns(rows)
}

// ListAll todas las devoluciones, fuente de los widgets de stats.
func (r *ReturnRepo) ListAll(ctx context.Context) ([]entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all returns: %w", err)
	}
	defer rows.Close()
	return scanReturns(rows)
}

// ListByRange devoluciones creadas dentro de [start, end].
func (r *ReturnRepo) ListByRange(ctx context.Context, start, end time.Time) ([]entity.Return, error) {
	query := `SELECT ` + returnColumns + `
		FROM returns WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list returns by range: %w", err)
	}
	defer rows.Close()
	return scanReturns(rows)
}

func scanReturns(rows pgx.Rows) ([]entity.Return, error) {
	var list []entity.Return
	for rows.Next() {
		var ret entity.Return
		if err := rows.Scan(
			&ret.ID, &ret.UserID, &ret.OrderID, &ret.ProductID, &ret.ProductName, &ret.Quantity,
			&ret.Reason, &ret.Status, &ret.Images, &ret.CreatedAt, &ret.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, ret)
	}
	return list, rows.Err()
}

// CountActive cuenta devoluciones pending/processing para el par (pedido, producto).
func (r *ReturnRepo) CountActive(ctx context.Context, orderID, productID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM returns
		WHERE order_id = $1 AND product_id = $2 AND status IN ('pending', 'processing')`
	var n int
	if err := r.q.QueryRow(ctx, query, orderID, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active returns: %w", err)
	}
	return n, nil
}

// UpdateStatus cambia el estado del flujo de la devolución.
func (r *ReturnRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE returns SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update return status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

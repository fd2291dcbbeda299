package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.DefectRepository = (*DefectRepo)(nil)

// DefectRepo implementación de DefectRepository (usable con pool o tx).
type DefectRepo struct {
	q Querier
}

// NewDefectRepository construye el adaptador de defectos. Pasar pool o tx (Querier).
func NewDefectRepository(q Querier) *DefectRepo {
	return &DefectRepo{q: q}
}

// Create persiste un registro de defecto de bodega.
func (r *DefectRepo) Create(ctx context.Context, d *entity.Defect) error {
	query := `
		INSERT INTO defects (id, product_id, product_name, quantity, type, description, status, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.ProductID, d.ProductName, d.Quantity, d.Type, d.Description, d.Status, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert defect: %w", err)
	}
	return nil
}

// ListAll todos los defectos, fuente de los widgets de stats.
func (r *DefectRepo) ListAll(ctx context.Context) ([]entity.Defect, error) {
	query := `
		SELECT id, COALESCE(product_id, ''), product_name, quantity, type, COALESCE(description, ''), status, created_at
		FROM defects`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all defects: %w", err)
	}
	defer rows.Close()
	return scanDefects(rows)
}

// ListByRange defectos creados dentro de [start, end].
func (r *DefectRepo) ListByRange(ctx context.Context, start, end time.Time) ([]entity.Defect, error) {
	query := `
		SELECT id, COALESCE(product_id, ''), product_name, quantity, type, COALESCE(description, ''), status, created_at
		FROM defects WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("list defects by range: %w", err)
	}
	defer rows.Close()
	return scanDefects(rows)
}

func scanDefects(rows pgx.Rows) ([]entity.Defect, error) {
	var list []entity.Defect
	for rows.Next() {
		var d entity.Defect
		if err := rows.Scan(&d.ID, &d.ProductID, &d.ProductName, &d.Quantity, &d.Type, &d.Description, &d.Status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan defect: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

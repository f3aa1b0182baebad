package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación de OperationRepository sobre PostgreSQL (usable con pool o tx).
// La tabla operations es append-only: no hay UPDATE ni DELETE.
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

// Create inserta una operación en el ledger y asigna su ID.
func (r *OperationRepo) Create(op *entity.Operation) error {
	query := `
		INSERT INTO operations (product_id, kind, quantity, price, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		op.ProductID, op.Kind, op.Quantity, op.Price, op.Total, op.CreatedAt,
	).Scan(&op.ID)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// ListByProduct devuelve las operaciones de un producto en orden de creación.
func (r *OperationRepo) ListByProduct(productID int64) ([]entity.Operation, error) {
	query := `
		SELECT id, product_id, kind, quantity, price, total, created_at
		FROM operations WHERE product_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []entity.Operation
	for rows.Next() {
		var op entity.Operation
		if err := rows.Scan(&op.ID, &op.ProductID, &op.Kind, &op.Quantity, &op.Price, &op.Total, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		list = append(list, op)
	}
	return list, rows.Err()
}

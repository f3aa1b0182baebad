package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OperationRepository define el puerto de persistencia para el ledger de
// operaciones. Solo inserta y lista: las operaciones son inmutables.
type OperationRepository interface {
	Create(op *entity.Operation) error // asigna ID
	ListByProduct(productID int64) ([]entity.Operation, error)
}

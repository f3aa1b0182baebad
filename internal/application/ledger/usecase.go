package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/pricing"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// LedgerUseCase registra compras y ventas de forma transaccional: bloqueo de
// fila sobre el producto (SELECT FOR UPDATE), actualización de existencias y
// precios, e inserción del registro en el ledger, con Commit o Rollback.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// Purchase registra una entrada de stock:
//   - quantity se suma a las existencias
//   - el precio de compra pasa a ser el de esta compra (sin promediar)
//   - el precio de venta sube a precio×1.5 si supera al vigente; nunca baja
//
// Ambas escrituras (producto + operación) van en la misma transacción.
func (uc *LedgerUseCase) Purchase(ctx context.Context, productID int64, in dto.PurchaseRequest) (*dto.OperationResponse, error) {
	if in.Quantity <= 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Operation
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		opRepo repository.OperationRepository,
	) error {
		// Bloquea la fila del producto para evitar carreras read-modify-write
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		product.Quantity += in.Quantity
		product.PurchasePrice = in.Price
		product.SalePrice = pricing.SalePrice(in.Price, product.SalePrice)
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}

		op := &entity.Operation{
			ProductID: productID,
			Kind:      entity.OperationPurchase,
			Quantity:  in.Quantity,
			Price:     in.Price,
			Total:     decimal.NewFromInt(in.Quantity).Mul(in.Price),
			CreatedAt: now,
		}
		if err := opRepo.Create(op); err != nil {
			return err
		}
		created = op
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toOperationResponse(created)
	return &out, nil
}

// Sell registra una salida de stock al precio de venta vigente del producto.
// Si las existencias quedan en cero, ambos precios se reinician a 0 (un
// producto sin stock no tiene precio significativo). Falla con
// ErrInsufficientStock si se pide más de lo disponible, sin escribir nada.
func (uc *LedgerUseCase) Sell(ctx context.Context, productID int64, in dto.SaleRequest) (*dto.OperationResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Operation
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		opRepo repository.OperationRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		// La operación se valora al precio de venta previo a la actualización
		salePrice := product.SalePrice

		now := time.Now()
		product.Quantity -= in.Quantity
		if product.Quantity == 0 {
			product.PurchasePrice = decimal.Zero
			product.SalePrice = decimal.Zero
		}
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}

		op := &entity.Operation{
			ProductID: productID,
			Kind:      entity.OperationSale,
			Quantity:  in.Quantity,
			Price:     salePrice,
			Total:     decimal.NewFromInt(in.Quantity).Mul(salePrice),
			CreatedAt: now,
		}
		if err := opRepo.Create(op); err != nil {
			return err
		}
		created = op
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toOperationResponse(created)
	return &out, nil
}

// ListByProduct devuelve el ledger de un producto en orden de creación.
// La comprobación de existencia y la lectura del ledger comparten transacción
// para leer una vista consistente del producto y sus operaciones.
func (uc *LedgerUseCase) ListByProduct(ctx context.Context, productID int64) ([]dto.OperationResponse, error) {
	var items []dto.OperationResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		opRepo repository.OperationRepository,
	) error {
		product, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		ops, err := opRepo.ListByProduct(productID)
		if err != nil {
			return err
		}
		items = make([]dto.OperationResponse, 0, len(ops))
		for _, op := range ops {
			items = append(items, toOperationResponse(&op))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func toOperationResponse(op *entity.Operation) dto.OperationResponse {
	return dto.OperationResponse{
		ID:        op.ID,
		ProductID: op.ProductID,
		Kind:      op.Kind,
		Quantity:  op.Quantity,
		Price:     op.Price,
		Total:     op.Total,
		CreatedAt: op.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRequest entrada para registrar una compra (entrada de stock).
type PurchaseRequest struct {
	Quantity int64           `json:"quantity" validate:"required,min=1"`
	Price    decimal.Decimal `json:"price" validate:"min=0"`
}

// SaleRequest entrada para registrar una venta (salida de stock).
// El precio no se recibe: la venta usa el precio de venta vigente del producto.
type SaleRequest struct {
	Quantity int64 `json:"quantity" validate:"required,min=1"`
}

// OperationResponse salida de una operación del ledger.
type OperationResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Kind      int             `json:"kind"` // 1 = compra, 2 = venta
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de operación sobre un producto.
const (
	OperationPurchase = 1 // compra: entrada de stock
	OperationSale     = 2 // venta: salida de stock
)

// Operation es un registro inmutable del ledger de compras/ventas.
// Total = Quantity × Price al momento de crearse; no se recalcula nunca.
type Operation struct {
	ID        int64
	ProductID int64
	Kind      int   // OperationPurchase u OperationSale
	Quantity  int64 // siempre positivo
	Price     decimal.Decimal
	Total     decimal.Decimal
	CreatedAt time.Time
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del almacén. PurchasePrice y SalePrice se
// recalculan con cada compra (ver domain/pricing); Quantity solo cambia vía
// operaciones de compra/venta. Nunca se borra físicamente: desactivar pone
// Active en false.
type Product struct {
	ID            int64
	Name          string
	Description   string
	PurchasePrice decimal.Decimal // último precio de compra
	SalePrice     decimal.Decimal // precio de venta vigente
	Quantity      int64           // existencias, nunca negativo
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Operations se carga solo en consultas de detalle (GetByID).
	Operations []Operation
}

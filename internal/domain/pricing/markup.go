package pricing

import "github.com/shopspring/decimal"

// Markup multiplicador aplicado al último precio de compra para derivar el
// precio de venta candidato. Constante nombrada para facilitar ajustes.
var Markup = decimal.NewFromFloat(1.5)

// SalePrice calcula el precio de venta tras una compra (servicio de dominio):
// max(precioCompra × Markup, precioVentaActual). El precio de venta nunca
// baja por efecto de una compra.
func SalePrice(purchasePrice, currentSalePrice decimal.Decimal) decimal.Decimal {
	candidate := purchasePrice.Mul(Markup)
	if candidate.GreaterThan(currentSalePrice) {
		return candidate
	}
	return currentSalePrice
}

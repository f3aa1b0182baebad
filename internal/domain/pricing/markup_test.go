package pricing_test

import (
	"testing"

	"github.com/jhoicas/almacen-api/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalePrice_AplicaMarkupCuandoSupera(t *testing.T) {
	// compra a 6 → candidato 9, supera al vigente 8
	got := pricing.SalePrice(decimal.NewFromInt(6), decimal.NewFromInt(8))
	assert.Equal(t, "9", got.String())
}

func TestSalePrice_NuncaBaja(t *testing.T) {
	// compra a 4 → candidato 6, no supera al vigente 10: se mantiene
	got := pricing.SalePrice(decimal.NewFromInt(4), decimal.NewFromInt(10))
	assert.Equal(t, "10", got.String())
}

func TestSalePrice_EmpateConservaElVigente(t *testing.T) {
	// candidato igual al vigente: no hay razón para cambiarlo
	got := pricing.SalePrice(decimal.NewFromInt(4), decimal.NewFromInt(6))
	assert.Equal(t, "6", got.String())
}

func TestSalePrice_DesdeCero(t *testing.T) {
	got := pricing.SalePrice(decimal.NewFromInt(10), decimal.Zero)
	assert.Equal(t, "15", got.String())
}

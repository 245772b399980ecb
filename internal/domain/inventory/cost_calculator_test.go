package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWeightedAverageCost(t *testing.T) {
	// 10 unidades a 1.000.000 + 10 a 2.000.000 => 1.500.000
	got := WeightedAverageCost(10, decimal.NewFromInt(1000000), 10, decimal.NewFromInt(2000000))
	assert.True(t, got.Equal(decimal.NewFromInt(1500000)), got.String())

	// sin existencia previa toma el costo de entrada
	got = WeightedAverageCost(0, decimal.NewFromInt(999), 5, decimal.NewFromInt(700))
	assert.True(t, got.Equal(decimal.NewFromInt(700)))

	// sin entrada conserva el costo
	got = WeightedAverageCost(4, decimal.NewFromInt(500), 0, decimal.NewFromInt(700))
	assert.True(t, got.Equal(decimal.NewFromInt(500)))
}

func TestSuggestedReorderQty(t *testing.T) {
	assert.Equal(t, 25, SuggestedReorderQty(20, 5))
	assert.Equal(t, 0, SuggestedReorderQty(20, 40))
	assert.Equal(t, 2, SuggestedReorderQty(1, 0))
}

func TestIsLowStock(t *testing.T) {
	assert.True(t, IsLowStock(20, 20))
	assert.False(t, IsLowStock(20, 21))
}

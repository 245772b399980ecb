package inventory

import (
	"math"

	"github.com/shopspring/decimal"
)

// WeightedAverageCost costo promedio ponderado tras una entrada de mercancía.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Con existencia negativa o nula se toma directamente el costo de entrada.
func WeightedAverageCost(stock int, cost decimal.Decimal, inQty int, inCost decimal.Decimal) decimal.Decimal {
	if inQty <= 0 {
		return cost
	}
	if stock <= 0 {
		return inCost
	}
	s := decimal.NewFromInt(int64(stock))
	q := decimal.NewFromInt(int64(inQty))
	num := s.Mul(cost).Add(q.Mul(inCost))
	return num.Div(s.Add(q)).Round(0)
}

// SuggestedReorderQty cantidad sugerida para volver al stock ideal (1.5 veces el nivel de reorden).
func SuggestedReorderQty(reorder, stock int) int {
	ideal := int(math.Ceil(float64(reorder) * 1.5))
	if q := ideal - stock; q > 0 {
		return q
	}
	return 0
}

// IsLowStock existencia en o bajo el nivel de reorden.
func IsLowStock(reorder, stock int) bool {
	return stock <= reorder
}

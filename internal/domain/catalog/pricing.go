// Package catalog reúne cálculos del catálogo: precio con descuento,
// calificación media, normalización de estado y generación de SKU.
package catalog

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountedPrice = price - price*discount/100. Un descuento fuera de 0..100 se ignora.
func DiscountedPrice(price, discount decimal.Decimal) decimal.Decimal {
	if !discount.IsPositive() || discount.GreaterThan(hundred) {
		return price
	}
	return price.Sub(price.Mul(discount).Div(hundred)).Round(0)
}

// AverageRating media de las reseñas con un decimal; 0 sin reseñas.
func AverageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}

// NormalizeStatus acepta "Active"/"Inactive" de clientes antiguos y devuelve el estado canónico.
func NormalizeStatus(s string) (string, bool) {
	st := strings.ToLower(strings.TrimSpace(s))
	switch st {
	case entity.ProductActive, entity.ProductInactive, entity.ProductDiscontinued, entity.ProductDraft:
		return st, true
	}
	return "", false
}

// IsPurchasable indica si el producto puede venderse en la tienda.
func IsPurchasable(p *entity.Product) bool {
	return p != nil && p.Status == entity.ProductActive
}

// GenerateSKU produce FURN-{6 últimos dígitos del timestamp en ms}-{3 dígitos}.
func GenerateSKU(now time.Time, rnd int) string {
	ts := now.UnixMilli() % 1000000
	return fmt.Sprintf("FURN-%06d-%03d", ts, rnd%1000)
}

// SplitList normaliza listas que llegan como "a, b,c" o como arreglo.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

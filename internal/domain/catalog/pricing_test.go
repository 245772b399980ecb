package catalog

import (
	"testing"
	"time"

	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	price := decimal.NewFromInt(2500000)
	assert.True(t, DiscountedPrice(price, decimal.NewFromInt(20)).Equal(decimal.NewFromInt(2000000)))
	assert.True(t, DiscountedPrice(price, decimal.Zero).Equal(price))
	assert.True(t, DiscountedPrice(price, decimal.NewFromInt(150)).Equal(price), "descuento inválido se ignora")
	assert.True(t, DiscountedPrice(price, decimal.NewFromInt(100)).IsZero())
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	reviews := []entity.Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.Equal(t, 4.3, AverageRating(reviews))
}

func TestNormalizeStatus(t *testing.T) {
	st, ok := NormalizeStatus("Active")
	assert.True(t, ok)
	assert.Equal(t, entity.ProductActive, st)

	_, ok = NormalizeStatus("vendido")
	assert.False(t, ok)
}

func TestGenerateSKU(t *testing.T) {
	now := time.UnixMilli(1700000123456)
	assert.Equal(t, "FURN-123456-042", GenerateSKU(now, 42))
	assert.Regexp(t, `^FURN-\d{6}-\d{3}$`, GenerateSKU(time.Now(), 1234))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"rojo", "azul", "verde"}, SplitList([]string{"rojo, azul", " verde "}))
	assert.Empty(t, SplitList([]string{"", " , "}))
}

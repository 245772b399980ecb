package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "1.250.000 ₫", FormatVND(decimal.NewFromInt(1250000)))
	assert.Equal(t, "0 ₫", FormatVND(decimal.Zero))
	assert.Equal(t, "1.000 ₫", FormatVND(decimal.RequireFromString("999.6")))
}
